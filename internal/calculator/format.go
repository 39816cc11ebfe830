package calculator

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var nan = math.NaN()

// FormatNumber renders f as the shortest decimal that round-trips. Values
// with magnitude in [1e-6, 1e21) use plain notation, others use an exponent
// without zero padding ("1e+21", "1.5e-7").
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}

// parseOperand parses an entry or accumulated buffer. Empty, malformed and
// NaN operands are rejected.
func parseOperand(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, ok := parseNumber(s)
	if !ok || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// parseNumber parses s as a float64. Literals beyond float64 range are
// numbers too: they parse to ±Inf or 0.
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}
