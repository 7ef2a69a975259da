package lut

import "errors"

// Sentinel errors reported by table construction and row access. Call
// sites wrap them with detail via fmt.Errorf("...: %w", ...); match with
// errors.Is.
var (
	// ErrDimensionMismatch indicates a grid whose shape does not agree
	// with the axis lengths, including ragged rows.
	ErrDimensionMismatch = errors.New("lut: grid dimensions do not match axes")

	// ErrAxisNotAscending indicates a reference axis that is not strictly
	// increasing; duplicate values count as a violation.
	ErrAxisNotAscending = errors.New("lut: reference axis not strictly ascending")

	// ErrNonFinite indicates a NaN or ±Inf value in an axis or the grid.
	ErrNonFinite = errors.New("lut: non-finite value")

	// ErrRowOutOfRange indicates a row index outside [0, Rows).
	ErrRowOutOfRange = errors.New("lut: row index out of range")
)
