package obj

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders f in its shortest round-trip form. Integral values keep
// a trailing ".0" and very large or small magnitudes use exponent notation,
// so "1" is written as "1.0" and 0.00001 as "1e-05".
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if f != 0 {
		e := strconv.FormatFloat(f, 'e', -1, 64)
		exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
		if exp < -4 || exp >= 16 {
			return e
		}
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func joinFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = FormatFloat(v)
	}
	return strings.Join(parts, " ")
}
