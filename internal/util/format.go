package util

import (
	"math"
	"strconv"
	"strings"
)

// FormatTick formats an axis tick value with at most one decimal place.
func FormatTick(v float64) string {
	r := math.Round(v*10) / 10
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// FormatValues formats a list like [15 30 45] using prec decimals, or the
// shortest exact form when prec is negative.
func FormatValues(vs []float64, prec int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'f', prec, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
