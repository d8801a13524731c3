package allocator

import (
	"sync"

	"github.com/pkg/errors"

	"go-colsearch/pkg/types"
)

// Arena allocates against a fixed byte budget. Variable size types
// are charged a bookkeeping estimate per element.
type Arena struct {
	mu        sync.Mutex
	remaining int
}

const varSizeEstimate = 16

func NewArena(budget int) *Arena {
	return &Arena{remaining: budget}
}

func (a *Arena) Alloc(meta types.DataTypeMeta, n int) ([]types.DataType, error) {
	elem := meta.Size()
	if elem < 0 {
		elem = varSizeEstimate
	}
	size := elem * n

	a.mu.Lock()
	defer a.mu.Unlock()

	if size > a.remaining {
		return nil, errors.Wrapf(ErrExhausted, "requested %d bytes, %d left", size, a.remaining)
	}
	a.remaining -= size

	out := make([]types.DataType, n)
	for i := range out {
		out[i] = meta.Default()
	}
	return out, nil
}

// Remaining reports the unspent budget in bytes.
func (a *Arena) Remaining() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.remaining
}
