package lut

import (
	"fmt"
	"math"
)

// Table is an immutable two-dimensional calibration lookup table.
//
// The grid holds one row per secondary-axis point and one column per
// primary-axis point: grid[i][j] is the reading observed for reference
// value primary[j] at condition secondary[i]. Both axes are strictly
// increasing.
//
// A Table never changes after New returns, so concurrent readers need no
// locking.
type Table struct {
	grid      [][]float64
	primary   []float64
	secondary []float64
}

// New builds a Table from a rectangular grid and its two reference axes.
// All inputs are deep-copied; callers keep ownership of their slices.
//
// New fails fast on malformed data: a grid whose shape does not match the
// axis lengths (ErrDimensionMismatch), an axis that is not strictly
// increasing (ErrAxisNotAscending), or any NaN/Inf value (ErrNonFinite).
// Axes with fewer than two points are legal; every lookup on such a table
// takes the pass-through path.
func New(grid [][]float64, primary, secondary []float64) (*Table, error) {
	if len(grid) != len(secondary) {
		return nil, fmt.Errorf("%w: %d grid rows for %d secondary points", ErrDimensionMismatch, len(grid), len(secondary))
	}
	for i, row := range grid {
		if len(row) != len(primary) {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), len(primary))
		}
	}
	if err := checkAxis("primary", primary); err != nil {
		return nil, err
	}
	if err := checkAxis("secondary", secondary); err != nil {
		return nil, err
	}
	for i, row := range grid {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: grid[%d][%d] = %v", ErrNonFinite, i, j, v)
			}
		}
	}

	t := &Table{
		grid:      make([][]float64, len(grid)),
		primary:   append([]float64(nil), primary...),
		secondary: append([]float64(nil), secondary...),
	}
	for i, row := range grid {
		t.grid[i] = append([]float64(nil), row...)
	}
	return t, nil
}

// checkAxis rejects non-finite values first, then ordering violations, so
// a NaN reports as ErrNonFinite rather than confusing the ascending scan.
func checkAxis(name string, axis []float64) error {
	for i, v := range axis {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s axis[%d] = %v", ErrNonFinite, name, i, v)
		}
	}
	for i := 1; i < len(axis); i++ {
		if axis[i] <= axis[i-1] {
			return fmt.Errorf("%w: %s axis[%d]=%v, axis[%d]=%v", ErrAxisNotAscending, name, i-1, axis[i-1], i, axis[i])
		}
	}
	return nil
}

// Rows returns the number of secondary-axis points.
func (t *Table) Rows() int {
	return len(t.secondary)
}

// Cols returns the number of primary-axis points.
func (t *Table) Cols() int {
	return len(t.primary)
}

// PrimaryAxis returns a copy of the primary reference axis.
func (t *Table) PrimaryAxis() []float64 {
	return append([]float64(nil), t.primary...)
}

// SecondaryAxis returns a copy of the secondary reference axis.
func (t *Table) SecondaryAxis() []float64 {
	return append([]float64(nil), t.secondary...)
}

// Row returns a copy of grid row i, the readings calibrated at
// SecondaryAxis()[i]. Indexes outside [0, Rows) return ErrRowOutOfRange.
func (t *Table) Row(i int) ([]float64, error) {
	if i < 0 || i >= len(t.grid) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrRowOutOfRange, i, len(t.grid))
	}
	return append([]float64(nil), t.grid[i]...), nil
}
