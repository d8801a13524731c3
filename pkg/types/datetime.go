package types

import (
	"encoding/binary"
	"fmt"
	"time"

	"go-colsearch/util/helpers"
)

func init() {
	typesMap[TYPE_DATETIME] = newable{
		newInstance: func(meta DataTypeMeta) DataType {
			m := meta.(*DataTypeDATETIMEMeta)
			return &DataTypeDATETIME{
				DataTypeBASE: DataTypeBASE[*DataTypeDATETIMEMeta]{Meta: m},
			}
		},
		newMeta: func(args ...interface{}) DataTypeMeta {
			return &DataTypeDATETIMEMeta{}
		},
	}
}

type DataTypeDATETIMEMeta struct {
}

func (m *DataTypeDATETIMEMeta) GetCode() TypeCode {
	return TYPE_DATETIME
}

func (m *DataTypeDATETIMEMeta) Size() int {
	return 8
}

func (m *DataTypeDATETIMEMeta) Default() DataType {
	return Type(m).Set(int64(0))
}

func (m *DataTypeDATETIMEMeta) IsFixedSize() bool {
	return true
}

func (m *DataTypeDATETIMEMeta) IsNumeric() bool {
	return false
}

func (m *DataTypeDATETIMEMeta) Comparable() bool {
	return true
}

type DataTypeDATETIME struct {
	// unix seconds
	value int64
	DataTypeBASE[*DataTypeDATETIMEMeta]
}

func (t *DataTypeDATETIME) Copy() DataType {
	cp := *t
	return &cp
}

func (t *DataTypeDATETIME) Bytes() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(t.value))
	return b
}

func (t *DataTypeDATETIME) Value() interface{} {
	return time.Unix(t.value, 0).UTC()
}

func (t *DataTypeDATETIME) Set(value interface{}) DataType {
	switch v := value.(type) {
	case time.Time:
		t.value = v.Unix()
	case int64:
		t.value = v
	case int:
		t.value = int64(v)
	case string:
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			panic(fmt.Errorf("invalid datetime => %v", value))
		}
		t.value = parsed.Unix()
	default:
		panic(fmt.Errorf("invalid set data type => %v", value))
	}
	return t
}

func (t *DataTypeDATETIME) Compare(val DataType) int {
	return helpers.Compare(t.value, val.(*DataTypeDATETIME).value)
}

func (t *DataTypeDATETIME) CompareOp(operator Operator, val DataType) bool {
	return opResult(t.Compare(val), operator)
}
