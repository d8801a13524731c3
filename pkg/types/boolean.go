package types

import "fmt"

func init() {
	typesMap[TYPE_BOOLEAN] = newable{
		newInstance: func(meta DataTypeMeta) DataType {
			m := meta.(*DataTypeBOOLEANMeta)
			return &DataTypeBOOLEAN{
				DataTypeBASE: DataTypeBASE[*DataTypeBOOLEANMeta]{Meta: m},
			}
		},
		newMeta: func(args ...interface{}) DataTypeMeta {
			return &DataTypeBOOLEANMeta{}
		},
	}
}

type DataTypeBOOLEANMeta struct {
}

func (m *DataTypeBOOLEANMeta) GetCode() TypeCode {
	return TYPE_BOOLEAN
}

func (m *DataTypeBOOLEANMeta) Size() int {
	return 1
}

func (m *DataTypeBOOLEANMeta) Default() DataType {
	return Type(m).Set(false)
}

func (m *DataTypeBOOLEANMeta) IsFixedSize() bool {
	return true
}

func (m *DataTypeBOOLEANMeta) IsNumeric() bool {
	return false
}

func (m *DataTypeBOOLEANMeta) Comparable() bool {
	return true
}

type DataTypeBOOLEAN struct {
	value bool
	DataTypeBASE[*DataTypeBOOLEANMeta]
}

func (t *DataTypeBOOLEAN) Copy() DataType {
	cp := *t
	return &cp
}

func (t *DataTypeBOOLEAN) Bytes() []byte {
	if t.value {
		return []byte{1}
	}
	return []byte{0}
}

func (t *DataTypeBOOLEAN) Value() interface{} {
	return t.value
}

func (t *DataTypeBOOLEAN) Set(value interface{}) DataType {
	v, ok := value.(bool)
	if !ok {
		panic(fmt.Errorf("invalid set data type => %v", value))
	}

	t.value = v
	return t
}

// false orders before true
func (t *DataTypeBOOLEAN) Compare(val DataType) int {
	v := val.(*DataTypeBOOLEAN)
	if t.value == v.value {
		return 0
	} else if v.value {
		return -1
	}
	return 1
}

func (t *DataTypeBOOLEAN) CompareOp(operator Operator, val DataType) bool {
	return opResult(t.Compare(val), operator)
}
