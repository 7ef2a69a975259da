// Package testutil provides shared test infrastructure for the lut
// packages: the golden lookup dataset and float comparison helpers.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Table   GoldenTable    `json:"table"`
	Lookups []GoldenLookup `json:"lookups"`
}

// GoldenTable is the reference table the golden lookups run against.
type GoldenTable struct {
	Name      string      `json:"name"`
	Primary   []float64   `json:"primary"`
	Secondary []float64   `json:"secondary"`
	Grid      [][]float64 `json:"grid"`
}

// GoldenLookup is one pinned lookup scenario: inputs plus the expected
// standardized value.
type GoldenLookup struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Condition float64 `json:"condition"`
	Want      float64 `json:"want"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate from lut/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()

	if want == got {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
