package csvdb

import (
	"github.com/pkg/errors"
)

var (
	ErrColumnNotFound = errors.New("column not found")
	ErrTableNotFound  = errors.New("table not found")
)

// Row maps a header name to the cell text of one record.
type Row map[string]string

// Table is the parsed content of a CSV file. It is never modified after
// newTable returns.
type Table struct {
	columns []string
	colMap  map[string]int
	rows    []Row
}

func newEmptyTable() *Table {
	t := new(Table)
	t.columns = []string{}
	t.colMap = make(map[string]int)
	t.rows = []Row{}
	return t
}

func newTable(columns []string, records [][]string) (*Table, error) {
	t := newEmptyTable()
	t.columns = columns
	for i, col := range columns {
		t.colMap[col] = i
	}
	t.rows = make([]Row, len(records))
	for i, values := range records {
		// csv.Reader already rejects these when reading a file; records
		// built in memory are not checked anywhere else
		if len(values) != len(columns) {
			return nil, errors.Errorf("record %d has %d fields while header has %d",
				i+1, len(values), len(columns))
		}
		row := make(Row, len(columns))
		for j, col := range columns {
			row[col] = values[j]
		}
		t.rows[i] = row
	}
	return t, nil
}

func loadTable(path string) (*Table, error) {
	reader, err := newReader(path)
	if err != nil {
		return nil, err
	}
	defer reader.close()
	columns, records, err := reader.readAll()
	if err != nil {
		return nil, err
	}
	return newTable(columns, records)
}

func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

func (t *Table) GetColIdx(colName string) int {
	i, ok := t.colMap[colName]
	if ok {
		return i
	}
	return -1
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) Count(conditionCheckFunc func(Row) bool) int {
	if conditionCheckFunc == nil {
		return len(t.rows)
	}
	cnt := 0
	for _, row := range t.rows {
		if conditionCheckFunc(row) {
			cnt++
		}
	}
	return cnt
}

// SelectRows returns the rows accepted by conditionCheckFunc in load order.
// The result is a new slice; the rows themselves are shared.
func (t *Table) SelectRows(conditionCheckFunc func(Row) bool) []Row {
	found := make([]Row, 0)
	for _, row := range t.rows {
		if conditionCheckFunc == nil || conditionCheckFunc(row) {
			found = append(found, row)
		}
	}
	return found
}
