package reader

// Options restricts which named columns a reader materializes and
// optionally hints at the expected output size. The search engine
// never sees these, it receives already-materialized tables.
type Options struct {
	include   map[string]struct{}
	sizeGuess int
}

// includes reports whether a column should be materialized. An empty
// include set means every column.
func (o Options) includes(name string) bool {
	if len(o.include) == 0 {
		return true
	}
	_, ok := o.include[name]
	return ok
}

type OptionsBuilder struct {
	opts Options
}

func NewOptions() *OptionsBuilder {
	return &OptionsBuilder{
		opts: Options{include: map[string]struct{}{}},
	}
}

// IncludeColumn adds columns to materialize. Any column never named
// is skipped entirely.
func (b *OptionsBuilder) IncludeColumn(names ...string) *OptionsBuilder {
	for _, name := range names {
		b.opts.include[name] = struct{}{}
	}
	return b
}

// WithOutputSizeGuess hints at the expected row count so columns can
// reserve capacity up front. Purely an optimization.
func (b *OptionsBuilder) WithOutputSizeGuess(rows int) *OptionsBuilder {
	b.opts.sizeGuess = rows
	return b
}

func (b *OptionsBuilder) Build() Options {
	return b.opts
}
