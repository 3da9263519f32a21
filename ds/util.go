package ds

import (
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/ardnew/dsys/geom"
)

func resultTypeName(value any) string {
	if value == nil {
		return "nil"
	}

	return reflect.TypeOf(value).String()
}

// ParseBool reports whether s reads as true: one of "1", "t", "true", "y",
// "yes" or "on" (case-insensitive), or any text whose leading number is
// non-zero.
func ParseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))

	if slices.Contains([]string{"1", "t", "true", "y", "yes", "on"}, s) {
		return true
	}

	f := geom.ParseScalar(s)

	return f != 0 && !math.IsNaN(f)
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func boolFloat(b bool) float32 {
	if b {
		return 1
	}

	return 0
}
