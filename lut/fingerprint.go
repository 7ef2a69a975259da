package lut

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a 64-bit xxHash over the table's dimensions, axes,
// and grid. Tables built from identical data share a fingerprint; changing
// any single value, axis point, or the shape produces a different one.
// Intended for logs and diagnostics, so operators can confirm which
// calibration data a process is running with.
func (t *Table) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte

	writeUint := func(u uint64) {
		binary.LittleEndian.PutUint64(buf[:], u)
		d.Write(buf[:])
	}
	writeFloats := func(vals []float64) {
		for _, v := range vals {
			writeUint(math.Float64bits(v))
		}
	}

	writeUint(uint64(len(t.secondary)))
	writeUint(uint64(len(t.primary)))
	writeFloats(t.primary)
	writeFloats(t.secondary)
	for _, row := range t.grid {
		writeFloats(row)
	}
	return d.Sum64()
}
