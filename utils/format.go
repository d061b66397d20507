package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	DateTimeLayout      = "2006-01-02 15:04:05"
	DateTimeShortLayout = "2006-01-02 15:04"
)

// FormatDateTime renders t as "YYYY-MM-DD HH:MM:SS". Zero times render empty.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateTimeLayout)
}

// FormatDateTimeShort renders t as "YYYY-MM-DD HH:MM".
func FormatDateTimeShort(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateTimeShortLayout)
}

// FormatCurrencyIDR formats an amount as Rupiah.
// Example: 15000.50 -> "Rp 15.000,50", 7000 -> "Rp 7.000"
func FormatCurrencyIDR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	cents := int64(math.Round(amount * 100))
	whole, frac := cents/100, cents%100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if frac > 0 {
		return fmt.Sprintf("Rp %s%s,%02d", sign, b.String(), frac)
	}
	return fmt.Sprintf("Rp %s%s", sign, b.String())
}
