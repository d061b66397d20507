package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrencyIDR(t *testing.T) {
	cases := map[float64]string{
		0:        "Rp 0",
		500:      "Rp 500",
		7000:     "Rp 7.000",
		15000.50: "Rp 15.000,50",
		1250000:  "Rp 1.250.000",
		-25000:   "Rp -25.000",
		999.999:  "Rp 1.000",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatCurrencyIDR(in), "amount %v", in)
	}
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2026, 10, 19, 8, 5, 9, 0, time.UTC)
	assert.Equal(t, "2026-10-19 08:05:09", FormatDateTime(ts))
	assert.Equal(t, "2026-10-19 08:05", FormatDateTimeShort(ts))
	assert.Empty(t, FormatDateTime(time.Time{}))
	assert.Empty(t, FormatDateTimeShort(time.Time{}))
}
