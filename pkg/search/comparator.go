package search

import (
	"go-colsearch/pkg/column"
	"go-colsearch/pkg/table"
	"go-colsearch/pkg/types"

	"github.com/pkg/errors"
)

// colComparator is one column's comparison strategy, resolved once
// from the schema and configuration so no per-element dispatch on
// type or direction remains in the search loop.
type colComparator struct {
	data      *column.Column
	probe     *column.Column
	desc      bool
	nullOrder NullOrder
}

// rowComparator defines the total order over rows of a multi-column
// table. Stateless per comparison, safe for concurrent use.
type rowComparator struct {
	cols []colComparator
}

func newRowComparator(
	t, values *table.Table,
	columnOrder []Order,
	nullPrecedence []NullOrder,
) (*rowComparator, error) {
	numCols := t.NumColumns()
	if values.NumColumns() != numCols {
		return nil, errors.Wrapf(ErrColumnCount,
			"table has %d columns, probe table has %d", numCols, values.NumColumns())
	}
	if len(columnOrder) != numCols {
		return nil, errors.Wrapf(ErrOrderSize,
			"%d entries for %d columns", len(columnOrder), numCols)
	}
	if len(nullPrecedence) != numCols {
		return nil, errors.Wrapf(ErrNullOrderSize,
			"%d entries for %d columns", len(nullPrecedence), numCols)
	}

	rc := &rowComparator{cols: make([]colComparator, numCols)}
	for i := 0; i < numCols; i++ {
		data, probe := t.Column(i), values.Column(i)
		if !types.MetasCompatible(data.Meta, probe.Meta) {
			return nil, errors.Wrapf(ErrTypeMismatch, "column %d", i)
		}
		if !data.Meta.Comparable() {
			return nil, errors.Wrapf(ErrUnsupportedType, "column %d", i)
		}

		rc.cols[i] = colComparator{
			data:      data,
			probe:     probe,
			desc:      columnOrder[i] == Descending,
			nullOrder: nullPrecedence[i],
		}
	}
	return rc, nil
}

// compare orders row ti of the searched table against row vi of the
// probe table. Lexicographic left to right, short-circuits on the
// first column that differs.
func (rc *rowComparator) compare(ti, vi int) int {
	for i := range rc.cols {
		if r := rc.cols[i].compare(ti, vi); r != 0 {
			return r
		}
	}
	return 0
}

func (c *colComparator) compare(ti, vi int) int {
	dataNull, probeNull := c.data.IsNull(ti), c.probe.IsNull(vi)
	if dataNull || probeNull {
		// two nulls are equal; a single null resolves by precedence,
		// regardless of direction
		if dataNull == probeNull {
			return 0
		}

		r := -1
		if c.nullOrder == NullsAfter {
			r = 1
		}
		if probeNull {
			r = -r
		}
		return r
	}

	r := c.data.Get(ti).Compare(c.probe.Get(vi))
	if c.desc {
		r = -r
	}
	return r
}
