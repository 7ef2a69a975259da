package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	entry := defaultTable()
	require.NotNil(t, entry.Table)

	assert.Equal(t, defaultTableName, entry.Name)
	assert.Equal(t, 12, entry.Table.Rows())
	assert.Equal(t, 7, entry.Table.Cols())
	assert.Equal(t, "2015-05-04", entry.Calibrated.String())
}

func TestDefaultTable_Standardizes(t *testing.T) {
	table := defaultTable().Table

	// A 7.01 reading at body temperature lands just above the 7.00 buffer.
	assert.InDelta(t, 7.035094696969697, table.Lookup(7.01, 37.0), 1e-9)

	// At the certified condition the table is the identity on knots.
	assert.InDelta(t, 7.00, table.Lookup(7.00, 25.0), 1e-12)

	// Outside the calibrated temperature range the reading passes through.
	assert.Equal(t, 7.01, table.Lookup(7.01, 60.0))
}
