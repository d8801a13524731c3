// Package allocator supplies the value buffers that engine operations
// write their results into. Implementations may fail, in which case
// the operation that asked aborts with no partial result.
package allocator

import (
	"github.com/pkg/errors"

	"go-colsearch/pkg/types"
)

// ErrExhausted is returned when an allocator cannot satisfy a
// request. The engine never retries with a smaller one.
var ErrExhausted = errors.New("allocator exhausted")

type Allocator interface {
	// Alloc returns n initialized values of meta's type.
	Alloc(meta types.DataTypeMeta, n int) ([]types.DataType, error)
}

// Heap is the unbounded default allocator.
type Heap struct{}

func (Heap) Alloc(meta types.DataTypeMeta, n int) ([]types.DataType, error) {
	out := make([]types.DataType, n)
	for i := range out {
		out[i] = meta.Default()
	}
	return out, nil
}

var defaultAllocator Allocator = Heap{}

// Default is the allocator used when an operation receives nil.
func Default() Allocator {
	return defaultAllocator
}
