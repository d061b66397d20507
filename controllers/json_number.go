package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// flexNumber decodes a JSON number or a numeric string, so values posted
// from HTML selects ("5") bind the same as 5. Empty strings and null are zero.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}

	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*n = 0
			return nil
		}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", raw)
	}
	*n = flexNumber(f)
	return nil
}

func (n flexNumber) Float() float64 {
	return float64(n)
}

// ID returns the value as an id; fractional or negative values give 0.
func (n flexNumber) ID() uint {
	f := float64(n)
	if f <= 0 || f != float64(uint64(f)) {
		return 0
	}
	return uint(f)
}
