package desirability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDataTable(t *testing.T) {
	table, err := NewDataTable(
		Column{Name: "a", Values: []float64{1, 2, 3}},
		Column{Name: "b", Values: []float64{4, 5, 6}},
	)
	require.NoError(t, err)

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, []string{"a", "b"}, table.Names())
	assert.Equal(t, []int{0, 1, 2}, table.Index())

	values, err := table.Column("b")
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, values)
}

func TestNewDataTableWithIndex(t *testing.T) {
	table, err := NewDataTableWithIndex(
		[]int{7, 11},
		Column{Name: "a", Values: []float64{1, 2}},
	)
	require.NoError(t, err)

	assert.Equal(t, []int{7, 11}, table.Index())
}

func TestDataTableMissingColumn(t *testing.T) {
	table, err := NewDataTable(Column{Name: "a", Values: []float64{1}})
	require.NoError(t, err)

	_, err = table.Column("nope")
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestNewDataTableValidation(t *testing.T) {
	_, err := NewDataTable()
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewDataTable(Column{Name: "", Values: []float64{1}})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewDataTable(
		Column{Name: "a", Values: []float64{1}},
		Column{Name: "a", Values: []float64{2}},
	)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewDataTable(
		Column{Name: "a", Values: []float64{1, 2}},
		Column{Name: "b", Values: []float64{3}},
	)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestDataTableIsolatedFromInput(t *testing.T) {
	values := []float64{1, 2}

	table, err := NewDataTable(Column{Name: "a", Values: values})
	require.NoError(t, err)

	// Mutating the input slice after construction must not leak into the
	// table, and mutating an accessor result must not leak back in.
	values[0] = 99

	got, err := table.Column("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, got)

	got[1] = 99

	again, err := table.Column("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, again)
}
