package player

import (
	"math"
	"strconv"
	"strings"
)

// ParseMarketValue converts a corpus market value into euros.
// The corpus stores values as bare digit strings; anything else ("-", "",
// "€1.2M") yields nil, as does zero. Abbreviated forms only ever come out of
// FormatMarketValue and are not read back.
func ParseMarketValue(value *string) *int64 {
	if value == nil {
		return nil
	}

	s := strings.TrimSpace(*value)
	if s == "" || !isDigits(s) {
		return nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n == 0 {
		return nil
	}
	return &n
}

// FormatMarketValue renders a euro amount for display: €1.5M, €500K, €750.
// Non-positive amounts render as "-". The output is lossy above one thousand.
func FormatMarketValue(v float64) string {
	switch {
	case v >= 1_000_000:
		return "€" + strconv.FormatFloat(math.Round(v/100_000)/10, 'f', 1, 64) + "M"
	case v >= 1_000:
		return "€" + strconv.FormatFloat(math.Round(v/1_000), 'f', 0, 64) + "K"
	case v > 0:
		return "€" + strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return "-"
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
