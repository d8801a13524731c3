package types

type DataTypeBASE[T DataTypeMeta] struct {
	Meta T `json:"meta"`
}

func (t *DataTypeBASE[T]) GetCode() TypeCode {
	return t.Meta.GetCode()
}

func (t *DataTypeBASE[T]) Size() int {
	return t.Meta.Size()
}

func (t *DataTypeBASE[T]) Default() DataType {
	return t.Meta.Default()
}

func (t *DataTypeBASE[T]) IsFixedSize() bool {
	return t.Meta.IsFixedSize()
}

func (t *DataTypeBASE[T]) IsNumeric() bool {
	return t.Meta.IsNumeric()
}

func (t *DataTypeBASE[T]) Comparable() bool {
	return t.Meta.Comparable()
}
