package column

import "go-colsearch/pkg/types"

// Scalar is a single typed value with a null flag.
type Scalar struct {
	meta  types.DataTypeMeta
	value types.DataType
	valid bool
}

func NewScalar(meta types.DataTypeMeta, value interface{}) Scalar {
	return Scalar{
		meta:  meta,
		value: types.Type(meta).Set(value),
		valid: true,
	}
}

// NullScalar is a typed null.
func NullScalar(meta types.DataTypeMeta) Scalar {
	return Scalar{
		meta:  meta,
		value: meta.Default(),
	}
}

func (s Scalar) Meta() types.DataTypeMeta {
	return s.meta
}

// Value is meaningless when IsNull reports true.
func (s Scalar) Value() types.DataType {
	return s.value
}

func (s Scalar) IsNull() bool {
	return !s.valid
}
