// Package search finds insertion points in sorted multi-column tables
// and tests scalar membership in columns.
//
// LowerBound and UpperBound assume the searched table is already
// sorted consistently with the given per-column order and null
// precedence. That precondition is not validated, an unsorted table
// yields unspecified (but memory-safe) indices.
package search

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"go-colsearch/pkg/allocator"
	"go-colsearch/pkg/column"
	"go-colsearch/pkg/table"
	"go-colsearch/pkg/types"
	"go-colsearch/util/helpers"
	"go-colsearch/util/logger"

	"github.com/pkg/errors"
)

// LowerBound computes, for every row of values, the smallest index in
// t where inserting the row keeps t sorted. The result is a
// non-nullable INTEGER(8) column of length values.NumRows().
func LowerBound(
	t, values *table.Table,
	columnOrder []Order,
	nullPrecedence []NullOrder,
	alloc allocator.Allocator,
) (*column.Column, error) {
	return searchBound(t, values, columnOrder, nullPrecedence, alloc, false)
}

// UpperBound is LowerBound's counterpart: the largest index in t
// where inserting the probe row keeps t sorted.
func UpperBound(
	t, values *table.Table,
	columnOrder []Order,
	nullPrecedence []NullOrder,
	alloc allocator.Allocator,
) (*column.Column, error) {
	return searchBound(t, values, columnOrder, nullPrecedence, alloc, true)
}

func searchBound(
	t, values *table.Table,
	columnOrder []Order,
	nullPrecedence []NullOrder,
	alloc allocator.Allocator,
	upper bool,
) (*column.Column, error) {
	rc, err := newRowComparator(t, values, columnOrder, nullPrecedence)
	if err != nil {
		return nil, err
	}

	if alloc == nil {
		alloc = allocator.Default()
	}

	// the full output is sized and allocated before any comparison
	// runs, failure aborts with no partial result
	numProbes := values.NumRows()
	out, err := alloc.Alloc(types.Int64Meta(), numProbes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate result column")
	}

	numRows := t.NumRows()
	logger.L.Debugf("bound search: %d probes over %d rows, upper=%v", numProbes, numRows, upper)

	forEachChunk(numProbes, func(start, end int) {
		for k := start; k < end; k++ {
			idx := sort.Search(numRows, func(i int) bool {
				if upper {
					return rc.compare(i, k) > 0
				}
				return rc.compare(i, k) >= 0
			})
			out[k].Set(int64(idx))
		}
	})

	return column.Wrap("", types.Int64Meta(), out), nil
}

// forEachChunk fans [0, n) out across the available CPUs. Chunks
// share no mutable state, so results land in input order with no
// synchronization.
func forEachChunk(n int, fn func(start, end int)) {
	if n == 0 {
		return
	}

	workers := helpers.Min(runtime.GOMAXPROCS(0), n)
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	g := new(errgroup.Group)
	for start := 0; start < n; start += chunk {
		start, end := start, helpers.Min(start+chunk, n)
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	_ = g.Wait() // workers never fail
}
