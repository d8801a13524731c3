package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

func init() {
	typesMap[TYPE_JSON] = newable{
		newInstance: func(meta DataTypeMeta) DataType {
			m := meta.(*DataTypeJSONMeta)
			return &DataTypeJSON{
				DataTypeBASE: DataTypeBASE[*DataTypeJSONMeta]{Meta: m},
			}
		},
		newMeta: func(args ...interface{}) DataTypeMeta {
			return &DataTypeJSONMeta{}
		},
	}
}

type DataTypeJSONMeta struct {
}

func (m *DataTypeJSONMeta) GetCode() TypeCode {
	return TYPE_JSON
}

func (m *DataTypeJSONMeta) Size() int {
	return -1
}

func (m *DataTypeJSONMeta) Default() DataType {
	return Type(m).Set("null")
}

func (m *DataTypeJSONMeta) IsFixedSize() bool {
	return false
}

func (m *DataTypeJSONMeta) IsNumeric() bool {
	return false
}

// json documents have no defined ordering, equality only
func (m *DataTypeJSONMeta) Comparable() bool {
	return false
}

type DataTypeJSON struct {
	value json.RawMessage
	DataTypeBASE[*DataTypeJSONMeta]
}

func (t *DataTypeJSON) Copy() DataType {
	return &DataTypeJSON{
		value:        slices.Clone(t.value),
		DataTypeBASE: t.DataTypeBASE,
	}
}

func (t *DataTypeJSON) Bytes() []byte {
	return t.value
}

func (t *DataTypeJSON) Value() interface{} {
	return t.value
}

func (t *DataTypeJSON) Set(value interface{}) DataType {
	switch v := value.(type) {
	case string:
		t.value = json.RawMessage(v)
	case []byte:
		t.value = json.RawMessage(v)
	case json.RawMessage:
		t.value = v
	default:
		b, err := json.Marshal(value)
		if err != nil {
			panic(fmt.Errorf("invalid set data type => %v", value))
		}
		t.value = b
	}
	return t
}

// Compare gives an arbitrary but stable byte order, meaningful only
// for equality checks.
func (t *DataTypeJSON) Compare(val DataType) int {
	return bytes.Compare(t.value, val.(*DataTypeJSON).value)
}

func (t *DataTypeJSON) CompareOp(operator Operator, val DataType) bool {
	return opResult(t.Compare(val), operator)
}
