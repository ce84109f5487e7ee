package desirability

import "fmt"

//////
// Const, vars, types.
//////

// Column is a named sequence of measurements, the unit from which a
// DataTable is built.
type Column struct {
	// Name identifies the column; unique within a table.
	Name string

	// Values holds one entry per row. NaN marks a missing measurement.
	Values []float64
}

// DataTable is a minimal column-oriented table of numeric measurements: a
// set of equally long named columns plus an integer row index. It stands in
// for the dataframe the surrounding tooling works with, at the boundary of
// this library.
//
// Tables are immutable once constructed: the constructor copies all input
// slices, accessors return copies, and Transform produces fresh tables that
// share no memory with their input. A table may therefore be read
// concurrently without coordination.
type DataTable struct {
	// names preserves column order.
	names []string

	// columns maps a column name to its values.
	columns map[string][]float64

	// index holds the row labels, one per row.
	index []int
}

//////
// Exported functionalities.
//////

// NewDataTable creates a table from the given columns with a default row
// index of 0..n-1.
//
// Parameters:
// - columns: One or more named columns, all of the same length
//
// Returns:
// - *DataTable: The constructed table
// - error: ErrConfiguration for zero columns, duplicate or empty names, or
//   mismatched column lengths
func NewDataTable(columns ...Column) (*DataTable, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: at least one column is required", ErrConfiguration)
	}

	index := make([]int, len(columns[0].Values))
	for i := range index {
		index[i] = i
	}

	return NewDataTableWithIndex(index, columns...)
}

// NewDataTableWithIndex creates a table from the given columns and an
// explicit row index.
//
// Parameters:
// - index: Row labels, one per row
// - columns: One or more named columns, all matching the index length
//
// Returns:
// - *DataTable: The constructed table
// - error: ErrConfiguration for zero columns, duplicate or empty names, or
//   any column length differing from the index length
func NewDataTableWithIndex(index []int, columns ...Column) (*DataTable, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: at least one column is required", ErrConfiguration)
	}

	t := &DataTable{
		names:   make([]string, 0, len(columns)),
		columns: make(map[string][]float64, len(columns)),
		index:   append([]int(nil), index...),
	}

	for _, col := range columns {
		if col.Name == "" {
			return nil, fmt.Errorf("%w: column names must not be empty", ErrConfiguration)
		}

		if _, ok := t.columns[col.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate column name %q", ErrConfiguration, col.Name)
		}

		if len(col.Values) != len(index) {
			return nil, fmt.Errorf(
				"%w: column %q has %d rows, expected %d",
				ErrConfiguration, col.Name, len(col.Values), len(index),
			)
		}

		t.names = append(t.names, col.Name)
		t.columns[col.Name] = append([]float64(nil), col.Values...)
	}

	return t, nil
}

//////
// Methods.
//////

// Len returns the number of rows in the table.
func (t *DataTable) Len() int { return len(t.index) }

// Names returns the column names in their original order.
func (t *DataTable) Names() []string {
	return append([]string(nil), t.names...)
}

// Index returns the row labels.
func (t *DataTable) Index() []int {
	return append([]int(nil), t.index...)
}

// Column returns the values of the named column.
//
// Returns:
// - []float64: A copy of the column values
// - error: ErrMissingColumn if no column with that name exists
func (t *DataTable) Column(name string) ([]float64, error) {
	values, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q not found in table", ErrMissingColumn, name)
	}

	return append([]float64(nil), values...), nil
}
