package types

import (
	"encoding/binary"
	"fmt"

	"go-colsearch/util/helpers"
)

var int64Meta = &DataTypeINTEGERMeta{Signed: true, ByteSize: 8}

// Int64Meta describes the platform row-index type used for search
// results.
func Int64Meta() DataTypeMeta {
	return int64Meta
}

func init() {
	numericTypes[TYPE_INTEGER] = struct{}{}

	typesMap[TYPE_INTEGER] = newable{
		newInstance: func(meta DataTypeMeta) DataType {
			m := meta.(*DataTypeINTEGERMeta)
			return &DataTypeINTEGER{
				DataTypeBASE: DataTypeBASE[*DataTypeINTEGERMeta]{Meta: m},
			}
		},
		newMeta: func(args ...interface{}) DataTypeMeta {
			if len(args) == 0 {
				return &DataTypeINTEGERMeta{Signed: true, ByteSize: 8}
			}

			return &DataTypeINTEGERMeta{
				Signed:   args[0].(bool),
				ByteSize: uint8(args[1].(int)),
			}
		},
	}
}

type DataTypeINTEGERMeta struct {
	Signed   bool  `json:"signed"`
	ByteSize uint8 `json:"byte_size"`
}

func (m *DataTypeINTEGERMeta) GetCode() TypeCode {
	return TYPE_INTEGER
}

func (m *DataTypeINTEGERMeta) Size() int {
	return int(m.ByteSize)
}

func (m *DataTypeINTEGERMeta) Default() DataType {
	return Type(m).Set(0)
}

func (m *DataTypeINTEGERMeta) IsFixedSize() bool {
	return true
}

func (m *DataTypeINTEGERMeta) IsNumeric() bool {
	return true
}

func (m *DataTypeINTEGERMeta) Comparable() bool {
	return true
}

type DataTypeINTEGER struct {
	// raw bits, truncated to ByteSize
	value uint64
	DataTypeBASE[*DataTypeINTEGERMeta]
}

func (t *DataTypeINTEGER) Copy() DataType {
	cp := *t
	return &cp
}

func (t *DataTypeINTEGER) Bytes() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, t.value)
	return b[8-t.Meta.ByteSize:]
}

func (t *DataTypeINTEGER) Value() interface{} {
	if t.Meta.Signed {
		return t.signed()
	}
	return t.value
}

func (t *DataTypeINTEGER) Set(value interface{}) DataType {
	var v uint64
	switch n := value.(type) {
	case int:
		v = uint64(n)
	case int8:
		v = uint64(n)
	case int16:
		v = uint64(n)
	case int32:
		v = uint64(n)
	case int64:
		v = uint64(n)
	case uint:
		v = uint64(n)
	case uint8:
		v = uint64(n)
	case uint16:
		v = uint64(n)
	case uint32:
		v = uint64(n)
	case uint64:
		v = n
	default:
		panic(fmt.Errorf("invalid set data type => %v", value))
	}

	t.value = v & t.mask()
	return t
}

func (t *DataTypeINTEGER) Compare(val DataType) int {
	v := val.(*DataTypeINTEGER)
	if t.Meta.Signed {
		return helpers.Compare(t.signed(), v.signed())
	}
	return helpers.Compare(t.value, v.value)
}

func (t *DataTypeINTEGER) CompareOp(operator Operator, val DataType) bool {
	return opResult(t.Compare(val), operator)
}

func (t *DataTypeINTEGER) mask() uint64 {
	return ^uint64(0) >> (64 - 8*uint(t.Meta.ByteSize))
}

func (t *DataTypeINTEGER) signed() int64 {
	shift := 64 - 8*uint(t.Meta.ByteSize)
	return int64(t.value<<shift) >> shift
}
