package types

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIntegerCompare(t *testing.T) {
	meta := Meta(TYPE_INTEGER, true, 4)

	a := Type(meta).Set(10)
	b := Type(meta).Set(20)
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(Type(meta).Set(10)))

	neg := Type(meta).Set(-5)
	require.Equal(t, -1, neg.Compare(a))
	require.True(t, neg.CompareOp(Less, a))
	require.Equal(t, int64(-5), neg.Value())
}

func TestIntegerUnsignedCompare(t *testing.T) {
	meta := Meta(TYPE_INTEGER, false, 8)

	big := Type(meta).Set(uint64(math.MaxUint64))
	small := Type(meta).Set(uint64(1))
	require.Equal(t, 1, big.Compare(small))
	require.Equal(t, uint64(math.MaxUint64), big.Value())
}

func TestIntegerNarrowWidth(t *testing.T) {
	meta := Meta(TYPE_INTEGER, true, 1)

	v := Type(meta).Set(-1)
	require.Equal(t, int64(-1), v.Value())
	require.Equal(t, -1, v.Compare(Type(meta).Set(0)))
}

func TestFloatCompare(t *testing.T) {
	meta := Meta(TYPE_FLOAT, 8)

	require.Equal(t, -1, Type(meta).Set(.5).Compare(Type(meta).Set(.7)))
	require.Equal(t, 0, Type(meta).Set(.7).Compare(Type(meta).Set(.7)))

	// NaN is a total order: after every non-NaN, equal to itself
	nan := Type(meta).Set(math.NaN())
	require.Equal(t, 1, nan.Compare(Type(meta).Set(math.Inf(1))))
	require.Equal(t, 0, nan.Compare(Type(meta).Set(math.NaN())))
}

func TestStringCompare(t *testing.T) {
	meta := Meta(TYPE_STRING)

	require.Equal(t, -1, Type(meta).Set("abc").Compare(Type(meta).Set("abd")))
	require.True(t, Type(meta).Set("x").CompareOp(Equal, Type(meta).Set("x")))
}

func TestDatetimeCompare(t *testing.T) {
	meta := Meta(TYPE_DATETIME)

	earlier := Type(meta).Set(time.Unix(1000, 0))
	later := Type(meta).Set(time.Unix(2000, 0))
	require.Equal(t, -1, earlier.Compare(later))
	require.Equal(t, time.Unix(1000, 0).UTC(), earlier.Value())
}

func TestBooleanCompare(t *testing.T) {
	meta := Meta(TYPE_BOOLEAN)

	f := Type(meta).Set(false)
	tr := Type(meta).Set(true)
	require.Equal(t, -1, f.Compare(tr))
	require.Equal(t, 1, tr.Compare(f))
	require.Equal(t, 0, f.Compare(Type(meta).Set(false)))
}

func TestJSONEquality(t *testing.T) {
	meta := Meta(TYPE_JSON)
	require.False(t, meta.Comparable())

	a := Type(meta).Set(`{"a":1}`)
	require.True(t, a.CompareOp(Equal, Type(meta).Set(`{"a":1}`)))
	require.True(t, a.CompareOp(NotEqual, Type(meta).Set(`{"a":2}`)))
}

func TestMetasCompatible(t *testing.T) {
	require.True(t, MetasCompatible(Meta(TYPE_INTEGER, true, 4), Meta(TYPE_INTEGER, true, 4)))
	require.False(t, MetasCompatible(Meta(TYPE_INTEGER, true, 4), Meta(TYPE_INTEGER, true, 8)))
	require.False(t, MetasCompatible(Meta(TYPE_INTEGER, true, 4), Meta(TYPE_INTEGER, false, 4)))
	require.False(t, MetasCompatible(Meta(TYPE_INTEGER, true, 4), Meta(TYPE_FLOAT, 4)))
	require.False(t, MetasCompatible(Meta(TYPE_FLOAT, 4), Meta(TYPE_FLOAT, 8)))
	require.True(t, MetasCompatible(Meta(TYPE_STRING), Meta(TYPE_STRING)))

	// varchar capacity is not part of the element type
	require.True(t, MetasCompatible(Meta(TYPE_VARCHAR, 8), Meta(TYPE_VARCHAR, 16)))
}

func TestParse(t *testing.T) {
	v, err := Parse(Meta(TYPE_INTEGER, true, 4), "42")
	require.NoError(t, err)
	require.Equal(t, int64(42), v.Value())

	v, err = Parse(Meta(TYPE_FLOAT, 8), "0.5")
	require.NoError(t, err)
	require.Equal(t, 0.5, v.Value())

	v, err = Parse(Meta(TYPE_BOOLEAN), "true")
	require.NoError(t, err)
	require.Equal(t, true, v.Value())

	_, err = Parse(Meta(TYPE_INTEGER, true, 1), "1000")
	require.Error(t, err)

	_, err = Parse(Meta(TYPE_VARCHAR, 3), "toolong")
	require.Error(t, err)

	_, err = Parse(Meta(TYPE_DATETIME), "not-a-date")
	require.Error(t, err)
}
