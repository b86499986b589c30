package core

import (
	"math"
	"strconv"
	"strings"
)

// ZeroPrice is the canonical rendering of a missing or invalid price.
const ZeroPrice = "0.00"

// FormatPrice renders a raw price string with exactly two fraction digits.
// Empty, non-numeric and NaN/Inf input all collapse to ZeroPrice; grouping
// never fails on a bad price field.
func FormatPrice(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" || raw == ZeroPrice {
		return ZeroPrice
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return ZeroPrice
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}
