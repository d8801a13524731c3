package table

import (
	"go-colsearch/pkg/column"

	"github.com/pkg/errors"
)

// Table is an ordered collection of equal length columns. Column
// position, not name, is what engine operations key on.
type Table struct {
	columns []*column.Column
}

// New rejects ragged input, every column must share one row count.
func New(columns ...*column.Column) (*Table, error) {
	for i := 1; i < len(columns); i++ {
		if columns[i].Len() != columns[0].Len() {
			return nil, errors.Errorf(
				"ragged table => column %d has %d rows, column 0 has %d",
				i, columns[i].Len(), columns[0].Len(),
			)
		}
	}

	return &Table{columns: columns}, nil
}

func (t *Table) NumColumns() int {
	return len(t.columns)
}

func (t *Table) NumRows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Len()
}

func (t *Table) Column(i int) *column.Column {
	return t.columns[i]
}
