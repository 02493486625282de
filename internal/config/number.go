package config

import (
	"math"
	"strconv"
	"strings"
)

// Number holds a numeric option as typed into a form. It is NaN when the
// input had no leading integer; NaN is persisted as-is rather than rejected.
type Number float64

// NaN is the value stored for input that is not a number
func NaN() Number {
	return Number(math.NaN())
}

// ParseNumber coerces form text to an integer the way a numeric input does:
// leading whitespace and an optional sign are accepted, the longest run of
// decimal digits is taken and anything after it is ignored.
func ParseNumber(text string) Number {
	s := strings.TrimLeft(text, " \t\n\r\f\v")
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return NaN()
	}
	f, err := strconv.ParseFloat(sign+s[:end], 64)
	if err != nil {
		return NaN()
	}
	return Number(f)
}

// IsNaN reports whether the number holds the "not a number" value
func (n Number) IsNaN() bool {
	return math.IsNaN(float64(n))
}

// Int returns the value as an int, ok is false for NaN
func (n Number) Int() (int, bool) {
	if n.IsNaN() {
		return 0, false
	}
	f := float64(n)
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32, true
	case f < math.MinInt32:
		return math.MinInt32, true
	}
	return int(f), true
}

// String renders the value for a form input; NaN renders as "NaN"
func (n Number) String() string {
	if n.IsNaN() {
		return "NaN"
	}
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}
