package column

import (
	"fmt"

	"go-colsearch/pkg/types"
	"go-colsearch/util/helpers"
)

// Column is a typed, possibly-null sequence of values. The null state
// of each element lives in a validity bitmap beside the value slice,
// bit set means null.
type Column struct {
	Name string             `json:"name"`
	Typ  types.TypeCode     `json:"type"`
	Meta types.DataTypeMeta `json:"meta"`

	values    []types.DataType
	nulls     []uint8
	nullCount int
}

func New(name string, meta types.DataTypeMeta) *Column {
	return &Column{
		Name: name,
		Typ:  meta.GetCode(),
		Meta: meta,
	}
}

// Wrap builds a column around an existing value slice, typically one
// handed out by an allocator. All elements are non-null.
func Wrap(name string, meta types.DataTypeMeta, values []types.DataType) *Column {
	return &Column{
		Name:   name,
		Typ:    meta.GetCode(),
		Meta:   meta,
		values: values,
		nulls:  make([]uint8, (len(values)+7)/8),
	}
}

func (c *Column) Len() int {
	return len(c.values)
}

func (c *Column) NullCount() int {
	return c.nullCount
}

// Get returns the value at row i. The result is meaningless when
// IsNull(i) reports true.
func (c *Column) Get(i int) types.DataType {
	return c.values[i]
}

func (c *Column) IsNull(i int) bool {
	return helpers.GetBit(c.nulls[i/8], uint8(i%8))
}

// Set overwrites row i with a non-null value.
func (c *Column) Set(i int, v interface{}) {
	c.values[i].Set(v)
	if c.IsNull(i) {
		helpers.SetBit(&c.nulls[i/8], uint8(i%8), false)
		c.nullCount--
	}
}

// Append adds a non-null value. Raw values are wrapped through the
// column's meta, a types.DataType is taken as is.
func (c *Column) Append(value interface{}) *Column {
	var v types.DataType
	switch dt := value.(type) {
	case types.DataType:
		if dt.GetCode() != c.Typ {
			panic(fmt.Errorf("invalid append type => %v != %v", dt.GetCode(), c.Typ))
		}
		v = dt
	default:
		v = types.Type(c.Meta).Set(value)
	}

	c.growNulls()
	c.values = append(c.values, v)
	return c
}

// AppendNull adds a null element. A default value backs the slot so
// Get never returns nil.
func (c *Column) AppendNull() *Column {
	c.growNulls()
	i := len(c.values)
	c.values = append(c.values, c.Meta.Default())
	helpers.SetBit(&c.nulls[i/8], uint8(i%8), true)
	c.nullCount++
	return c
}

// Reserve grows the column's capacity to hold at least n rows.
func (c *Column) Reserve(n int) {
	if cap(c.values) < n {
		values := make([]types.DataType, len(c.values), n)
		copy(values, c.values)
		c.values = values
	}
}

func (c *Column) growNulls() {
	if len(c.values)%8 == 0 {
		c.nulls = append(c.nulls, 0)
	}
}
