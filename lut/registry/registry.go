// Package registry loads named calibration tables from a YAML manifest,
// pairing each constructed table with its provenance metadata.
package registry

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/rickb777/date/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/caltab/caltab/lut"
)

// manifest mirrors the YAML document layout:
//
//	version: "1"
//	tables:
//	  - name: ph-buffers
//	    description: pH standard buffers vs temperature
//	    calibrated: "2015-05-04"
//	    primary: [1.68, 4.01, ...]
//	    secondary: [0, 5, ...]
//	    grid:
//	      - [1.67, 4.01, ...]
//	      - ...
type manifest struct {
	Version string        `yaml:"version"`
	Tables  []tableRecord `yaml:"tables"`
}

type tableRecord struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Calibrated  string      `yaml:"calibrated"` // ISO-8601 calendar date
	Primary     []float64   `yaml:"primary"`
	Secondary   []float64   `yaml:"secondary"`
	Grid        [][]float64 `yaml:"grid"`
}

// Entry is one named table from a manifest: the constructed lookup table
// plus its provenance.
type Entry struct {
	Name        string
	Description string
	Calibrated  date.Date
	Table       *lut.Table
}

// Registry holds the tables declared by one manifest, keyed by name.
type Registry struct {
	version string
	entries map[string]*Entry
}

// Load reads a YAML manifest and constructs every table it declares.
// Parsing is strict: unknown fields are errors, as are missing or
// duplicate table names, calibration dates that do not parse as ISO-8601,
// and any table data rejected by lut.New.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry %s: %w", path, err)
	}

	var m manifest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}

	reg := &Registry{
		version: m.Version,
		entries: make(map[string]*Entry, len(m.Tables)),
	}
	for i, rec := range m.Tables {
		if rec.Name == "" {
			return nil, fmt.Errorf("registry %s: table %d has no name", path, i)
		}
		if _, dup := reg.entries[rec.Name]; dup {
			return nil, fmt.Errorf("registry %s: duplicate table name %q", path, rec.Name)
		}
		calibrated, err := date.ParseISO(rec.Calibrated)
		if err != nil {
			return nil, fmt.Errorf("registry %s: table %q: invalid calibration date %q: %w", path, rec.Name, rec.Calibrated, err)
		}
		table, err := lut.New(rec.Grid, rec.Primary, rec.Secondary)
		if err != nil {
			return nil, fmt.Errorf("registry %s: table %q: %w", path, rec.Name, err)
		}
		reg.entries[rec.Name] = &Entry{
			Name:        rec.Name,
			Description: rec.Description,
			Calibrated:  calibrated,
			Table:       table,
		}
		logrus.Infof("Loaded table %q: %dx%d grid, calibrated %s, fingerprint %016x",
			rec.Name, table.Rows(), table.Cols(), calibrated, table.Fingerprint())
	}
	return reg, nil
}

// Version returns the manifest's version string.
func (r *Registry) Version() string {
	return r.version
}

// Names returns the registered table names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Table returns the entry registered under name, or an error naming the
// available tables when no such entry exists.
func (r *Registry) Table(name string) (*Entry, error) {
	entry, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("table %q not found in registry (available: %v)", name, r.Names())
	}
	return entry, nil
}
