package search

// Order is the sort direction of one column's contribution to the
// composite key.
type Order uint8

const (
	Ascending Order = iota
	Descending
)

// NullOrder places a column's nulls before or after every non-null
// value, independent of the column's Order.
type NullOrder uint8

const (
	NullsBefore NullOrder = iota
	NullsAfter
)
