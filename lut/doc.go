// Package lut implements interpolating lookup tables for standardizing
// measurements against a confounding condition.
//
// A Table holds a rectangular grid of reference readings indexed by two
// strictly increasing axes. The primary axis lists the reference values of
// the measured quantity at the standard condition; the secondary axis lists
// the condition points at which the grid rows were calibrated. Lookup
// interpolates the grid at the observed condition and inverse-maps the raw
// reading onto the primary axis, yielding the value the instrument would
// have reported at the standard condition.
//
// The canonical example is pH-vs-temperature compensation: buffer solutions
// certified at 25 °C read differently at other temperatures, and the grid
// records those readings per buffer per temperature.
//
// Tables are immutable after construction and safe for concurrent readers.
// Inputs that the reference data cannot bracket pass through unchanged; see
// Lookup for the exact policy.
//
// Construction data can come from Go literals (New), CSV files (LoadCSV),
// or a YAML manifest via the registry subpackage.
package lut
