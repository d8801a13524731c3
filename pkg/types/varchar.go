package types

import (
	"fmt"
	"strings"
)

func init() {
	typesMap[TYPE_VARCHAR] = newable{
		newInstance: func(meta DataTypeMeta) DataType {
			m := meta.(*DataTypeVARCHARMeta)
			return &DataTypeVARCHAR{
				DataTypeBASE: DataTypeBASE[*DataTypeVARCHARMeta]{Meta: m},
			}
		},
		newMeta: func(args ...interface{}) DataTypeMeta {
			if len(args) == 0 {
				return &DataTypeVARCHARMeta{}
			}

			return &DataTypeVARCHARMeta{Cap: uint16(args[0].(int))}
		},
	}
}

type DataTypeVARCHARMeta struct {
	Cap uint16 `json:"cap"`
}

func (m *DataTypeVARCHARMeta) GetCode() TypeCode {
	return TYPE_VARCHAR
}

func (m *DataTypeVARCHARMeta) Size() int {
	return int(m.Cap)
}

func (m *DataTypeVARCHARMeta) Default() DataType {
	return Type(m).Set("")
}

func (m *DataTypeVARCHARMeta) IsFixedSize() bool {
	return true
}

func (m *DataTypeVARCHARMeta) IsNumeric() bool {
	return false
}

func (m *DataTypeVARCHARMeta) Comparable() bool {
	return true
}

type DataTypeVARCHAR struct {
	value string
	DataTypeBASE[*DataTypeVARCHARMeta]
}

func (t *DataTypeVARCHAR) Copy() DataType {
	cp := *t
	return &cp
}

func (t *DataTypeVARCHAR) Bytes() []byte {
	return []byte(t.value)
}

func (t *DataTypeVARCHAR) Value() interface{} {
	return t.value
}

func (t *DataTypeVARCHAR) Set(value interface{}) DataType {
	v, ok := value.(string)
	if !ok {
		panic(fmt.Errorf("invalid set data type => %v", value))
	}
	if len(v) > int(t.Meta.Cap) {
		panic(fmt.Errorf("varchar overflow => %d > %d", len(v), t.Meta.Cap))
	}

	t.value = v
	return t
}

func (t *DataTypeVARCHAR) Compare(val DataType) int {
	return strings.Compare(t.value, val.(*DataTypeVARCHAR).value)
}

func (t *DataTypeVARCHAR) CompareOp(operator Operator, val DataType) bool {
	return opResult(t.Compare(val), operator)
}
