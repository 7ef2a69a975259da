package lut

import (
	"github.com/sirupsen/logrus"
)

// Lookup standardizes a raw primary-axis reading taken at the given
// secondary condition: it returns the reference value the reading
// corresponds to once the condition's influence is interpolated away.
//
// The computation runs in two stages:
//  1. The condition is bracketed on the secondary axis and the grid is
//     sliced at the exact condition, interpolating each column between the
//     two bracketing rows into a synthetic row of readings.
//  2. The value is bracketed in that synthetic row and mapped back onto
//     the primary axis. The roles invert here: the synthetic readings act
//     as the independent variable and the reference values as the
//     dependent one.
//
// If either stage cannot bracket its input (condition outside the
// secondary range, value outside the synthetic row, or an axis with fewer
// than two points), Lookup returns value unchanged. Passing an uncorrected
// reading through is the designed out-of-range behavior, not an error.
func (t *Table) Lookup(value, condition float64) float64 {
	lo, hi, ok := bracket(t.secondary, condition)
	if !ok {
		logrus.Debugf("Condition %v outside secondary axis %v, returning value unchanged", condition, t.secondary)
		return value
	}

	// Slice the grid at the exact condition.
	row := make([]float64, len(t.primary))
	for j := range row {
		row[j] = lerp(t.secondary[lo], t.grid[lo][j], t.secondary[hi], t.grid[hi][j], condition)
	}

	lo2, hi2, ok := bracket(row, value)
	if !ok {
		logrus.Debugf("Value %v outside synthetic row at condition %v, returning value unchanged", value, condition)
		return value
	}

	// Inverse interpolation: solve for the reference value whose synthetic
	// reading matches the input.
	return lerp(row[lo2], t.primary[lo2], row[hi2], t.primary[hi2], value)
}

// bracket scans seq in order for the first adjacent pair satisfying
// seq[lo] <= v < seq[lo+1]. The interval is half-open, so a value equal to
// a knot resolves to the interval starting there, and the last element
// never opens an interval. ok is false when seq has fewer than two
// elements or no pair brackets v.
func bracket(seq []float64, v float64) (lo, hi int, ok bool) {
	for i := 0; i < len(seq)-1; i++ {
		if seq[i] <= v && v < seq[i+1] {
			return i, i + 1, true
		}
	}
	return 0, 0, false
}

// lerp evaluates the line through (x0, y0) and (x1, y1) at x. Bracketed
// inputs on a strictly ascending axis guarantee x0 != x1.
func lerp(x0, y0, x1, y1, x float64) float64 {
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}
