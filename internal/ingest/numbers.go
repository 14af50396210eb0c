package ingest

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber coerces a raw CSV cell into a number. Source files embed
// currency symbols and thousands separators, so everything except
// digits, the minus sign and the decimal point is stripped before
// parsing. Malformed cells become 0 rather than aborting the file.
func ParseNumber(raw string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '-' || r == '.' {
			return r
		}
		return -1
	}, raw)

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// ParseCount coerces a raw cell into a non-fractional count.
func ParseCount(raw string) int {
	return int(ParseNumber(raw))
}
