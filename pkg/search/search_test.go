package search

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"go-colsearch/pkg/allocator"
	"go-colsearch/pkg/column"
	"go-colsearch/pkg/table"
	"go-colsearch/pkg/types"
)

func intMeta() types.DataTypeMeta {
	return types.Meta(types.TYPE_INTEGER, true, 4)
}

func intCol(vals ...int) *column.Column {
	col := column.New("", intMeta())
	for _, v := range vals {
		col.Append(v)
	}
	return col
}

func singleTable(t *testing.T, vals ...int) *table.Table {
	tbl, err := table.New(intCol(vals...))
	require.NoError(t, err)
	return tbl
}

func asc(n int) []Order {
	return make([]Order, n) // zero value is Ascending
}

func nullsAfter(n int) []NullOrder {
	out := make([]NullOrder, n)
	for i := range out {
		out[i] = NullsAfter
	}
	return out
}

func bounds(t *testing.T, data, probes *table.Table, order []Order, np []NullOrder) (lb, ub []int64) {
	lbCol, err := LowerBound(data, probes, order, np, nil)
	require.NoError(t, err)
	ubCol, err := UpperBound(data, probes, order, np, nil)
	require.NoError(t, err)

	for i := 0; i < lbCol.Len(); i++ {
		require.False(t, lbCol.IsNull(i))
		lb = append(lb, lbCol.Get(i).Value().(int64))
		ub = append(ub, ubCol.Get(i).Value().(int64))
	}
	return lb, ub
}

func TestBoundSingleColumn(t *testing.T) {
	data := singleTable(t, 10, 20, 20, 30, 50)
	probes := singleTable(t, 20)

	lb, ub := bounds(t, data, probes, asc(1), nullsAfter(1))
	require.Equal(t, []int64{1}, lb)
	require.Equal(t, []int64{3}, ub)
}

func TestBoundMultiColumn(t *testing.T) {
	floatMeta := types.Meta(types.TYPE_FLOAT, 8)

	data, err := table.New(
		intCol(10, 20, 20, 20, 20),
		column.New("", floatMeta).Append(5.0).Append(.5).Append(.5).Append(.7).Append(.7),
		intCol(90, 77, 78, 61, 61),
	)
	require.NoError(t, err)

	probes, err := table.New(
		intCol(20),
		column.New("", floatMeta).Append(.7),
		intCol(61),
	)
	require.NoError(t, err)

	lb, ub := bounds(t, data, probes, asc(3), nullsAfter(3))
	require.Equal(t, []int64{3}, lb)
	require.Equal(t, []int64{5}, ub)
}

func TestBoundEmptyTable(t *testing.T) {
	data := singleTable(t)
	probes := singleTable(t, 5, 500, -3)

	lb, ub := bounds(t, data, probes, asc(1), nullsAfter(1))
	require.Equal(t, []int64{0, 0, 0}, lb)
	require.Equal(t, []int64{0, 0, 0}, ub)
}

func TestBoundAllEqual(t *testing.T) {
	data := singleTable(t, 7, 7, 7, 7)
	probes := singleTable(t, 7, 7)

	lb, ub := bounds(t, data, probes, asc(1), nullsAfter(1))
	require.Equal(t, []int64{0, 0}, lb)
	require.Equal(t, []int64{4, 4}, ub)
}

func TestBoundDuplicateRunInvariant(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	vals := make([]int, 500)
	count := map[int]int{}
	for i := range vals {
		vals[i] = rnd.Intn(50)
		count[vals[i]]++
	}
	sort.Ints(vals)

	data := singleTable(t, vals...)
	probes := singleTable(t)
	for v := -1; v <= 50; v++ {
		probes.Column(0).Append(v)
	}

	lb, ub := bounds(t, data, probes, asc(1), nullsAfter(1))
	for i, v := 0, -1; v <= 50; i, v = i+1, v+1 {
		require.Equal(t, int64(count[v]), ub[i]-lb[i], "value %d", v)
	}
}

func TestBoundDescendingInvariance(t *testing.T) {
	ascVals := []int{10, 20, 30, 50}
	descVals := []int{50, 30, 20, 10}
	probeVals := []int{5, 10, 25, 30, 50, 99}
	n := int64(len(ascVals))

	probesAsc := singleTable(t, probeVals...)
	lbA, ubA := bounds(t, singleTable(t, ascVals...), probesAsc, asc(1), nullsAfter(1))
	lbD, ubD := bounds(t, singleTable(t, descVals...), probesAsc,
		[]Order{Descending}, nullsAfter(1))

	for i, v := range probeVals {
		// unique keys: the duplicate run is direction independent
		require.Equal(t, ubA[i]-lbA[i], ubD[i]-lbD[i], "value %d", v)

		// reversing the data mirrors the insertion window
		require.Equal(t, n-ubA[i], lbD[i], "value %d", v)
		require.Equal(t, n-lbA[i], ubD[i], "value %d", v)
	}
}

func TestBoundNullsAfter(t *testing.T) {
	data, err := table.New(intCol(10, 20).AppendNull().AppendNull())
	require.NoError(t, err)

	probes, err := table.New(intCol(20).AppendNull())
	require.NoError(t, err)

	lb, ub := bounds(t, data, probes, asc(1), nullsAfter(1))
	require.Equal(t, []int64{1, 2}, lb)
	require.Equal(t, []int64{2, 4}, ub)
}

func TestBoundNullsBefore(t *testing.T) {
	data, err := table.New(column.New("", intMeta()).AppendNull().AppendNull().Append(10).Append(20))
	require.NoError(t, err)

	probes, err := table.New(intCol(10).AppendNull())
	require.NoError(t, err)

	lb, ub := bounds(t, data, probes, asc(1), []NullOrder{NullsBefore})
	require.Equal(t, []int64{2, 0}, lb)
	require.Equal(t, []int64{3, 2}, ub)
}

func TestBoundManyProbes(t *testing.T) {
	vals := make([]int, 1000)
	for i := range vals {
		vals[i] = i
	}
	data := singleTable(t, vals...)

	rnd := rand.New(rand.NewSource(7))
	probes := singleTable(t)
	expected := make([]int64, 0, 5000)
	for i := 0; i < 5000; i++ {
		v := rnd.Intn(1000)
		probes.Column(0).Append(v)
		expected = append(expected, int64(v))
	}

	lb, ub := bounds(t, data, probes, asc(1), nullsAfter(1))
	for i := range expected {
		require.Equal(t, expected[i], lb[i])
		require.Equal(t, expected[i]+1, ub[i])
	}
}

func TestBoundConfigErrors(t *testing.T) {
	data := singleTable(t, 1, 2, 3)
	probes := singleTable(t, 2)

	_, err := LowerBound(data, probes, asc(2), nullsAfter(1), nil)
	require.ErrorIs(t, err, ErrOrderSize)

	_, err = LowerBound(data, probes, asc(1), nullsAfter(3), nil)
	require.ErrorIs(t, err, ErrNullOrderSize)

	wide, err := table.New(intCol(1), intCol(2))
	require.NoError(t, err)
	_, err = UpperBound(data, wide, asc(1), nullsAfter(1), nil)
	require.ErrorIs(t, err, ErrColumnCount)
}

func TestBoundTypeMismatch(t *testing.T) {
	data := singleTable(t, 1, 2, 3)

	probes, err := table.New(column.New("", types.Meta(types.TYPE_FLOAT, 8)).Append(.5))
	require.NoError(t, err)

	_, err = LowerBound(data, probes, asc(1), nullsAfter(1), nil)
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestBoundUnsupportedType(t *testing.T) {
	jsonMeta := types.Meta(types.TYPE_JSON)

	data, err := table.New(column.New("", jsonMeta).Append(`{"a":1}`))
	require.NoError(t, err)
	probes, err := table.New(column.New("", jsonMeta).Append(`{"a":1}`))
	require.NoError(t, err)

	_, err = LowerBound(data, probes, asc(1), nullsAfter(1), nil)
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestBoundAllocFailure(t *testing.T) {
	data := singleTable(t, 1, 2, 3)
	probes := singleTable(t, 2, 3)

	col, err := LowerBound(data, probes, asc(1), nullsAfter(1), allocator.NewArena(1))
	require.ErrorIs(t, err, allocator.ErrExhausted)
	require.Nil(t, col)
}
