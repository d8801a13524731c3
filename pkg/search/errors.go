package search

import "github.com/pkg/errors"

var (
	// ErrColumnCount is returned when the probe table's column count
	// differs from the searched table's.
	ErrColumnCount = errors.New("column count mismatch")

	// ErrOrderSize is returned when the column order configuration
	// does not cover every column exactly once.
	ErrOrderSize = errors.New("column order size mismatch")

	// ErrNullOrderSize is the ErrOrderSize analog for null precedence.
	ErrNullOrderSize = errors.New("null precedence size mismatch")

	// ErrTypeMismatch is returned when paired columns, or a column and
	// a scalar, differ in element type.
	ErrTypeMismatch = errors.New("element type mismatch")

	// ErrUnsupportedType is returned when a column's element type has
	// no defined ordering.
	ErrUnsupportedType = errors.New("type has no defined ordering")
)
