package types

import "fmt"

type TypeCode uint8

const (
	TYPE_INTEGER  TypeCode = iota // 1/2/4/8 byte [un]signed integer
	TYPE_STRING                   // variable length string
	TYPE_VARCHAR                  // fixed capacity string
	TYPE_FLOAT                    // 4/8 byte floating point number
	TYPE_DATETIME                 // unix seconds
	TYPE_BOOLEAN                  // false < true
	TYPE_JSON                     // raw json document, equality only
)

type Operator string

const (
	Equal          Operator = "="
	GreaterOrEqual Operator = ">="
	LessOrEqual    Operator = "<="
	Greater        Operator = ">"
	Less           Operator = "<"
	NotEqual       Operator = "!="
)

type newable struct {
	newInstance func(meta DataTypeMeta) DataType
	newMeta     func(args ...interface{}) DataTypeMeta
}

var typesMap = map[TypeCode]newable{}
var numericTypes = map[TypeCode]struct{}{}

type DataTypeMeta interface {
	GetCode() TypeCode
	Size() int
	Default() DataType
	IsFixedSize() bool
	IsNumeric() bool

	// Comparable reports whether values of this type have a defined
	// ordering. Non-comparable types still support equality.
	Comparable() bool
}

type DataType interface {
	DataTypeMeta

	Copy() DataType
	Bytes() []byte
	Value() interface{}
	Set(value interface{}) DataType

	// Compare returns -1, 0 or 1 as t orders before, same as or
	// after val. val must be of a compatible meta.
	Compare(val DataType) int
	CompareOp(operator Operator, val DataType) bool
}

func Type(meta DataTypeMeta) DataType {
	return typesMap[meta.GetCode()].newInstance(meta)
}

func Meta(typeCode TypeCode, args ...interface{}) DataTypeMeta {
	return typesMap[typeCode].newMeta(args...)
}

func IsNumeric(code TypeCode) bool {
	_, ok := numericTypes[code]
	return ok
}

// MetasCompatible reports whether two metas describe the same element
// type. Width and signedness count, capacity of varchars does not.
func MetasCompatible(a, b DataTypeMeta) bool {
	if a.GetCode() != b.GetCode() {
		return false
	}

	switch am := a.(type) {
	case *DataTypeINTEGERMeta:
		bm := b.(*DataTypeINTEGERMeta)
		return am.Signed == bm.Signed && am.ByteSize == bm.ByteSize
	case *DataTypeFLOATMeta:
		return am.ByteSize == b.(*DataTypeFLOATMeta).ByteSize
	}
	return true
}

func opResult(cmp int, operator Operator) bool {
	switch operator {
		case Equal:          return cmp == 0
		case GreaterOrEqual: return cmp >= 0
		case LessOrEqual:    return cmp <= 0
		case Greater:        return cmp > 0
		case Less:           return cmp < 0
		case NotEqual:       return cmp != 0
	}
	panic(fmt.Errorf("invalid operator:'%s'", operator))
}
