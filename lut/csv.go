package lut

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// LoadCSV reads a calibration table from a CSV file.
//
// The header row holds a label cell followed by the primary-axis reference
// values; each data row holds a secondary-axis point followed by one grid
// row:
//
//	condition,1.68,4.01,6.86,7.00,9.18,10.01,12.46
//	0,1.67,4.01,6.98,7.12,9.46,10.32,13.47
//	5,1.67,4.01,6.95,7.09,9.39,10.25,13.25
//	...
//
// The assembled data goes through New, so shape, monotonicity, and
// finiteness validation all apply.
func LoadCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table CSV: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // row widths checked per row below
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("table CSV %s: expected a header row and at least one data row", path)
	}

	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("table CSV header: expected a label cell and at least one primary reference")
	}
	primary := make([]float64, len(header)-1)
	for j, cell := range header[1:] {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("table CSV header column %d: invalid primary reference %q: %w", j+2, cell, err)
		}
		primary[j] = v
	}

	secondary := make([]float64, 0, len(records)-1)
	grid := make([][]float64, 0, len(records)-1)
	for i, record := range records[1:] { // Skip header
		if len(record) != len(header) {
			return nil, fmt.Errorf("table CSV row %d: expected %d columns, got %d", i+2, len(header), len(record))
		}
		cond, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("table CSV row %d: invalid secondary reference %q: %w", i+2, record[0], err)
		}
		row := make([]float64, len(record)-1)
		for j, cell := range record[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("table CSV row %d column %d: invalid reading %q: %w", i+2, j+2, cell, err)
			}
			row[j] = v
		}
		secondary = append(secondary, cond)
		grid = append(grid, row)
	}

	t, err := New(grid, primary, secondary)
	if err != nil {
		return nil, fmt.Errorf("table CSV %s: %w", path, err)
	}
	logrus.Infof("Loaded table from %s: %dx%d grid, fingerprint %016x", path, t.Rows(), t.Cols(), t.Fingerprint())
	return t, nil
}
