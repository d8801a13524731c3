package search

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"go-colsearch/pkg/allocator"
	"go-colsearch/pkg/column"
	"go-colsearch/pkg/types"
	"go-colsearch/util/helpers"

	"github.com/pkg/errors"
)

// cancelStride is how many elements a contains worker scans between
// cancellation checks.
const cancelStride = 1024

// Contains reports whether some element of col equals value. Two
// nulls are equal, a null never equals a non-null. The column does
// not have to be sorted.
//
// A type mismatch between col and value is an error, never a false
// result.
func Contains(col *column.Column, value column.Scalar, alloc allocator.Allocator) (bool, error) {
	if !types.MetasCompatible(col.Meta, value.Meta()) {
		return false, errors.Wrapf(ErrTypeMismatch,
			"column type %v, scalar type %v", col.Typ, value.Meta().GetCode())
	}

	if col.Len() == 0 {
		return false, nil
	}
	if value.IsNull() {
		return col.NullCount() > 0, nil
	}

	if alloc == nil {
		alloc = allocator.Default()
	}

	n := col.Len()
	workers := helpers.Min(runtime.GOMAXPROCS(0), n)
	chunk := (n + workers - 1) / workers
	numChunks := (n + chunk - 1) / chunk

	// per-chunk match flags, OR-reduced below. The reduction is
	// commutative, chunk completion order does not matter.
	flags, err := alloc.Alloc(types.Meta(types.TYPE_BOOLEAN), numChunks)
	if err != nil {
		return false, errors.Wrap(err, "failed to allocate match flags")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	target := value.Value()
	g := new(errgroup.Group)
	for ci := 0; ci < numChunks; ci++ {
		ci, start, end := ci, ci*chunk, helpers.Min((ci+1)*chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if (i-start)%cancelStride == 0 && ctx.Err() != nil {
					return nil // another chunk already matched
				}
				if col.IsNull(i) {
					continue
				}
				if col.Get(i).CompareOp(types.Equal, target) {
					flags[ci].Set(true)
					cancel()
					return nil
				}
			}
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	for _, f := range flags {
		if f.Value().(bool) {
			return true, nil
		}
	}
	return false, nil
}
