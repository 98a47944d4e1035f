package formative

import (
	"math"
	"strconv"
	"strings"
)

// NumericMatch reports whether text parses to a finite number within tol of
// target. Either '.' or ',' is accepted as the decimal separator. Empty,
// non-numeric and hexadecimal text never matches. There is no epsilon:
// float rounding at the tolerance edge is part of the rule.
func NumericMatch(text string, target, tol float64) bool {
	v, ok := parseDecimal(text)
	if !ok {
		return false
	}
	return math.Abs(v-target) <= tol
}

func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(strings.ToLower(strings.TrimLeft(s, "+-")), "0x") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
