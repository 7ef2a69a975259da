package lut

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validFixture returns a small well-formed table input. Each call returns
// fresh slices, so tests may mutate them freely.
func validFixture() (grid [][]float64, primary, secondary []float64) {
	grid = [][]float64{
		{1.0, 2.0, 3.0},
		{1.5, 2.5, 3.5},
		{2.0, 3.0, 4.0},
		{2.5, 3.5, 4.5},
	}
	primary = []float64{10, 20, 30}
	secondary = []float64{0, 10, 20, 30}
	return grid, primary, secondary
}

func TestNew_Valid(t *testing.T) {
	grid, primary, secondary := validFixture()
	table, err := New(grid, primary, secondary)
	require.NoError(t, err)

	assert.Equal(t, 4, table.Rows())
	assert.Equal(t, 3, table.Cols())
	assert.Equal(t, primary, table.PrimaryAxis())
	assert.Equal(t, secondary, table.SecondaryAxis())
}

func TestNew_EmptyAndSinglePoint(t *testing.T) {
	empty, err := New(nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())
	assert.Equal(t, 0, empty.Cols())

	single, err := New([][]float64{{5.0}}, []float64{1.0}, []float64{2.0})
	require.NoError(t, err)
	assert.Equal(t, 1, single.Rows())
	assert.Equal(t, 1, single.Cols())
}

func TestNew_RowCountMismatch(t *testing.T) {
	grid, primary, secondary := validFixture()
	_, err := New(grid[:3], primary, secondary)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestNew_RaggedRow(t *testing.T) {
	grid, primary, secondary := validFixture()
	grid[2] = []float64{2.0, 3.0}
	_, err := New(grid, primary, secondary)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestNew_ColumnCountMismatch(t *testing.T) {
	grid, _, secondary := validFixture()
	_, err := New(grid, []float64{10, 20}, secondary)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestNew_AxisNotAscending(t *testing.T) {
	tests := []struct {
		name      string
		primary   []float64
		secondary []float64
	}{
		{"duplicate primary", []float64{10, 20, 20}, []float64{0, 10, 20, 30}},
		{"descending primary", []float64{30, 20, 10}, []float64{0, 10, 20, 30}},
		{"duplicate secondary", []float64{10, 20, 30}, []float64{0, 10, 10, 30}},
		{"descending secondary", []float64{10, 20, 30}, []float64{30, 20, 10, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			grid, _, _ := validFixture()
			_, err := New(grid, tc.primary, tc.secondary)
			assert.ErrorIs(t, err, ErrAxisNotAscending)
		})
	}
}

func TestNew_NonFinite(t *testing.T) {
	grid, primary, secondary := validFixture()
	grid[1][1] = math.NaN()
	_, err := New(grid, primary, secondary)
	assert.ErrorIs(t, err, ErrNonFinite)

	grid, primary, secondary = validFixture()
	primary[0] = math.Inf(1)
	_, err = New(grid, primary, secondary)
	assert.ErrorIs(t, err, ErrNonFinite)

	// A NaN axis value reports as non-finite, not as an ordering problem.
	grid, primary, secondary = validFixture()
	secondary[3] = math.NaN()
	_, err = New(grid, primary, secondary)
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestNew_CopiesInputs(t *testing.T) {
	grid, primary, secondary := validFixture()
	table, err := New(grid, primary, secondary)
	require.NoError(t, err)

	before := table.Lookup(2.0, 5.0)
	grid[0][0] = 999
	primary[0] = 999
	secondary[0] = 999

	assert.Equal(t, before, table.Lookup(2.0, 5.0))
}

func TestAccessors_ReturnCopies(t *testing.T) {
	grid, primary, secondary := validFixture()
	table, err := New(grid, primary, secondary)
	require.NoError(t, err)

	row, err := table.Row(0)
	require.NoError(t, err)
	row[0] = 999
	axis := table.SecondaryAxis()
	axis[0] = 999

	fresh, err := table.Row(0)
	require.NoError(t, err)
	assert.Equal(t, grid[0], fresh)
	assert.Equal(t, secondary, table.SecondaryAxis())
	assert.Equal(t, primary, table.PrimaryAxis())
}

func TestRow_Bounds(t *testing.T) {
	grid, primary, secondary := validFixture()
	table, err := New(grid, primary, secondary)
	require.NoError(t, err)

	_, err = table.Row(-1)
	assert.ErrorIs(t, err, ErrRowOutOfRange)
	_, err = table.Row(table.Rows())
	assert.ErrorIs(t, err, ErrRowOutOfRange)

	last, err := table.Row(table.Rows() - 1)
	require.NoError(t, err)
	assert.Equal(t, grid[len(grid)-1], last)
}

func TestFingerprint(t *testing.T) {
	grid, primary, secondary := validFixture()
	a, err := New(grid, primary, secondary)
	require.NoError(t, err)
	b, err := New(grid, primary, secondary)
	require.NoError(t, err)

	// Same data, same fingerprint, on repeated calls too.
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Equal(t, a.Fingerprint(), a.Fingerprint())

	// One grid value changes the fingerprint.
	grid, primary, secondary = validFixture()
	grid[1][2] += 0.001
	c, err := New(grid, primary, secondary)
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())

	// So does an axis point.
	grid, primary, secondary = validFixture()
	secondary[0] = -5
	d, err := New(grid, primary, secondary)
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), d.Fingerprint())
}
