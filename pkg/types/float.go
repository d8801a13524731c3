package types

import (
	"encoding/binary"
	"fmt"
	"math"

	"go-colsearch/util/helpers"
)

func init() {
	numericTypes[TYPE_FLOAT] = struct{}{}

	typesMap[TYPE_FLOAT] = newable{
		newInstance: func(meta DataTypeMeta) DataType {
			m := meta.(*DataTypeFLOATMeta)
			return &DataTypeFLOAT{
				DataTypeBASE: DataTypeBASE[*DataTypeFLOATMeta]{Meta: m},
			}
		},
		newMeta: func(args ...interface{}) DataTypeMeta {
			if len(args) == 0 {
				return &DataTypeFLOATMeta{ByteSize: 8}
			}

			return &DataTypeFLOATMeta{ByteSize: uint8(args[0].(int))}
		},
	}
}

type DataTypeFLOATMeta struct {
	ByteSize uint8 `json:"byte_size"`
}

func (m *DataTypeFLOATMeta) GetCode() TypeCode {
	return TYPE_FLOAT
}

func (m *DataTypeFLOATMeta) Size() int {
	return int(m.ByteSize)
}

func (m *DataTypeFLOATMeta) Default() DataType {
	return Type(m).Set(0.0)
}

func (m *DataTypeFLOATMeta) IsFixedSize() bool {
	return true
}

func (m *DataTypeFLOATMeta) IsNumeric() bool {
	return true
}

func (m *DataTypeFLOATMeta) Comparable() bool {
	return true
}

type DataTypeFLOAT struct {
	value float64
	DataTypeBASE[*DataTypeFLOATMeta]
}

func (t *DataTypeFLOAT) Copy() DataType {
	cp := *t
	return &cp
}

func (t *DataTypeFLOAT) Bytes() []byte {
	if t.Meta.ByteSize == 4 {
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, math.Float32bits(float32(t.value)))
		return b
	}

	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, math.Float64bits(t.value))
	return b
}

func (t *DataTypeFLOAT) Value() interface{} {
	if t.Meta.ByteSize == 4 {
		return float32(t.value)
	}
	return t.value
}

func (t *DataTypeFLOAT) Set(value interface{}) DataType {
	var v float64
	switch n := value.(type) {
	case float32:
		v = float64(n)
	case float64:
		v = n
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	default:
		panic(fmt.Errorf("invalid set data type => %v", value))
	}

	// 4 byte columns hold what a float32 can represent
	if t.Meta.ByteSize == 4 {
		v = float64(float32(v))
	}

	t.value = v
	return t
}

func (t *DataTypeFLOAT) Compare(val DataType) int {
	return helpers.CompareFloat(t.value, val.(*DataTypeFLOAT).value)
}

func (t *DataTypeFLOAT) CompareOp(operator Operator, val DataType) bool {
	return opResult(t.Compare(val), operator)
}
