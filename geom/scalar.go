package geom

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseScalar reads the longest numeric prefix of s (after leading
// whitespace) and returns its value. It returns 0 if s does not begin with a
// number. Trailing text is ignored, so "12px" yields 12. The non-finite forms
// "Inf", "+Inf", "-Inf" and "NaN" (any case) are read as such.
func ParseScalar(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	if f, ok := parseNonFinite(s); ok {
		return f
	}

	n := scanNumber(s)
	if n == 0 {
		return 0
	}

	f, err := strconv.ParseFloat(s[:n], 64)
	if err != nil {
		return 0
	}

	return f
}

// ParseInteger is like [ParseScalar] but stops at the fractional part, so
// "3.7" yields 3.
func ParseInteger(s string) int64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}

	if i == start {
		return 0
	}

	// On overflow ParseInt already returns the saturated value.
	n, _ := strconv.ParseInt(s[:i], 10, 64)

	return n
}

func parseNonFinite(s string) (float64, bool) {
	s = strings.TrimRightFunc(s, unicode.IsSpace)

	switch strings.ToLower(strings.TrimLeft(s, "+-")) {
	case "inf", "infinity", "nan":
		f, err := strconv.ParseFloat(s, 64)

		return f, err == nil
	default:
		return 0, false
	}
}

// scanNumber returns the length of the decimal floating-point literal at the
// start of s, or 0 if there is none.
func scanNumber(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}

	if i < len(s) && s[i] == '.' {
		i++

		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}

	if digits == 0 {
		return 0
	}

	// Exponent only counts when followed by at least one digit.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}

		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}

		if k > j {
			i = k
		}
	}

	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// fields splits s into components separated by whitespace or commas.
func fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}

// formatFloat renders a float32 component in its shortest exact form.
func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func joinFloats(f ...float32) string {
	var sb strings.Builder

	for i, v := range f {
		if i > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString(formatFloat(v))
	}

	return sb.String()
}

// components parses up to n float components from s; missing ones are zero.
func components(s string, n int) []float32 {
	out := make([]float32, n)

	for i, f := range fields(s) {
		if i >= n {
			break
		}

		out[i] = float32(ParseScalar(f))
	}

	return out
}
