package dataset

import "golang.org/x/exp/slices"

// Row is a single timestep of the dataset. Values are either scalars,
// strings, decoded JSON lists, or tensors after conversion.
type Row map[string]interface{}

// Table is the row-oriented data of a dataset's train split
type Table struct {
	rows []Row
}

func NewTable() *Table {
	return &Table{rows: make([]Row, 0)}
}

func (t *Table) Append(r Row) {
	t.rows = append(t.rows, r)
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Columns returns the column names of the first row, sorted
func (t *Table) Columns() []string {
	if len(t.rows) == 0 {
		return nil
	}
	cols := make([]string, 0, len(t.rows[0]))
	for k := range t.rows[0] {
		cols = append(cols, k)
	}
	slices.Sort(cols)
	return cols
}
