package types

import (
	"fmt"
	"strings"
)

func init() {
	typesMap[TYPE_STRING] = newable{
		newInstance: func(meta DataTypeMeta) DataType {
			m := meta.(*DataTypeSTRINGMeta)
			return &DataTypeSTRING{
				DataTypeBASE: DataTypeBASE[*DataTypeSTRINGMeta]{Meta: m},
			}
		},
		newMeta: func(args ...interface{}) DataTypeMeta {
			return &DataTypeSTRINGMeta{}
		},
	}
}

type DataTypeSTRINGMeta struct {
}

func (m *DataTypeSTRINGMeta) GetCode() TypeCode {
	return TYPE_STRING
}

func (m *DataTypeSTRINGMeta) Size() int {
	return -1
}

func (m *DataTypeSTRINGMeta) Default() DataType {
	return Type(m).Set("")
}

func (m *DataTypeSTRINGMeta) IsFixedSize() bool {
	return false
}

func (m *DataTypeSTRINGMeta) IsNumeric() bool {
	return false
}

func (m *DataTypeSTRINGMeta) Comparable() bool {
	return true
}

type DataTypeSTRING struct {
	value string
	DataTypeBASE[*DataTypeSTRINGMeta]
}

func (t *DataTypeSTRING) Copy() DataType {
	cp := *t
	return &cp
}

func (t *DataTypeSTRING) Bytes() []byte {
	return []byte(t.value)
}

func (t *DataTypeSTRING) Value() interface{} {
	return t.value
}

func (t *DataTypeSTRING) Set(value interface{}) DataType {
	v, ok := value.(string)
	if !ok {
		panic(fmt.Errorf("invalid set data type => %v", value))
	}

	t.value = v
	return t
}

func (t *DataTypeSTRING) Compare(val DataType) int {
	return strings.Compare(t.value, val.(*DataTypeSTRING).value)
}

func (t *DataTypeSTRING) CompareOp(operator Operator, val DataType) bool {
	return opResult(t.Compare(val), operator)
}
