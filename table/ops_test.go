// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func printRows(t *Table) {
	fmt.Println(t.Columns())
	for i := 0; i < t.Len(); i++ {
		fmt.Println(t.Row(i))
	}
}

func ExampleSort() {
	t := new(Builder).
		Add("City", []string{"Chicago", "LA"}).
		Add("Pop", []int{2716000, 3980400}).
		MustDone()
	s, _ := Sort(t, "Pop", true)
	printRows(s)
	// Output:
	// [City Pop]
	// [LA 3980400]
	// [Chicago 2716000]
}

func ExampleAggregate() {
	t := new(Builder).
		Add("State", []string{"CA", "TX", "CA"}).
		Add("Pop", []int{100, 50, 20}).
		MustDone()
	a, _ := Aggregate(t, "State", "Pop", Sum)
	printRows(a)
	// Output:
	// [State Pop]
	// [CA 120]
	// [TX 50]
}

func ExampleFilter() {
	t := new(Builder).
		Add("City", []string{"A", "B"}).
		Add("Pop", []int{5, 1}).
		MustDone()
	f, _ := Filter(t, "Pop", GreaterThan(I(3)))
	printRows(f)
	// Output:
	// [City Pop]
	// [A 5]
}

func ExampleJoin() {
	pop := new(Builder).
		Add("City", []string{"NY"}).
		Add("Pop", []int{8419600}).
		MustDone()
	area := new(Builder).
		Add("City", []string{"NY"}).
		Add("Area", []float64{302.6}).
		MustDone()
	j, _ := Join(pop, area, "City")
	printRows(j)
	// Output:
	// [City Pop Area]
	// [NY 8419600 302.6]
}

func TestSortStable(t *testing.T) {
	tab := new(Builder).
		Add("k", []int{2, 1, 2, 1, 3}).
		Add("id", []string{"a", "b", "c", "d", "e"}).
		MustDone()
	for _, test := range []struct {
		desc bool
		want []string
	}{
		{false, []string{"b", "d", "a", "c", "e"}},
		{true, []string{"e", "a", "c", "b", "d"}},
	} {
		s, err := Sort(tab, "k", test.desc)
		require.NoError(t, err)
		ids, _ := s.Strings("id")
		assert.Equal(t, test.want, ids, "descending=%v", test.desc)
	}
}

func TestSortStrings(t *testing.T) {
	s, err := Sort(cities(), "City", false)
	require.NoError(t, err)
	names, _ := s.Strings("City")
	assert.Equal(t, []string{"Chicago", "Houston", "Los Angeles", "New York", "Phoenix"}, names)
}

func TestSortNaN(t *testing.T) {
	tab := new(Builder).Add("x", []float64{2, math.NaN(), 1}).MustDone()
	for _, desc := range []bool{false, true} {
		s, err := Sort(tab, "x", desc)
		require.NoError(t, err)
		xs, _ := s.Floats("x")
		assert.True(t, math.IsNaN(xs[2]), "descending=%v: %v", desc, xs)
	}
}

func TestSortDoesNotMutate(t *testing.T) {
	tab := cities()
	_, err := Sort(tab, "Population", true)
	require.NoError(t, err)
	assert.True(t, tab.Equal(cities()))
}

func TestAggregateReducers(t *testing.T) {
	tab := new(Builder).
		Add("g", []string{"a", "b", "a", "a"}).
		Add("v", []int{4, 7, 1, 10}).
		MustDone()
	for _, test := range []struct {
		r    Reducer
		kind Kind
		want []Value
	}{
		{Sum, Int, []Value{I(15), I(7)}},
		{Mean, Float, []Value{F(5), F(7)}},
		{Count, Int, []Value{I(3), I(1)}},
		{Min, Int, []Value{I(1), I(7)}},
		{Max, Int, []Value{I(10), I(7)}},
	} {
		a, err := Aggregate(tab, "g", "v", test.r)
		require.NoError(t, err, "%v", test.r)
		k, _ := a.Kind("v")
		assert.Equal(t, test.kind, k, "%v", test.r)
		got, _ := a.Column("v")
		assert.Equal(t, test.want, got, "%v", test.r)
	}
}

func TestAggregateFloat(t *testing.T) {
	tab := new(Builder).
		Add("g", []int{1, 1, 2}).
		Add("v", []float64{0.5, 1.5, -2}).
		MustDone()
	for _, test := range []struct {
		r    Reducer
		want []Value
	}{
		{Sum, []Value{F(2), F(-2)}},
		{Min, []Value{F(0.5), F(-2)}},
		{Max, []Value{F(1.5), F(-2)}},
	} {
		a, err := Aggregate(tab, "g", "v", test.r)
		require.NoError(t, err)
		got, _ := a.Column("v")
		assert.Equal(t, test.want, got, "%v", test.r)
	}
}

func TestAggregateCountSelf(t *testing.T) {
	tab := new(Builder).Add("cell", []int{3, 1, 3, 3}).MustDone()
	a, err := Aggregate(tab, "cell", "cell", Count)
	require.NoError(t, err)
	assert.Equal(t, []string{"cell", "count"}, a.Columns())
	counts, _ := a.Ints("count")
	assert.Equal(t, []int64{3, 1}, counts)
}

func TestAggregateNaNGroups(t *testing.T) {
	// NaN groups are dropped for both Int and Float values.
	for _, vals := range []interface{}{
		[]int{1, 2, 3, 4},
		[]float64{1, 2, 3, 4},
	} {
		tab := new(Builder).
			Add("g", []float64{1, math.NaN(), 1, math.NaN()}).
			Add("v", vals).
			MustDone()
		a, err := Aggregate(tab, "g", "v", Sum)
		require.NoError(t, err)
		require.Equal(t, 1, a.Len(), "%v", a.Columns())
		got, _ := a.Floats("v")
		assert.Equal(t, []float64{4}, got)
		keys, _ := a.Floats("g")
		assert.Equal(t, []float64{1}, keys)
	}
}

func TestAggregateOverflow(t *testing.T) {
	for _, vals := range [][]int64{
		{math.MaxInt64, 1},
		{math.MinInt64, -1},
	} {
		tab := new(Builder).
			Add("g", []string{"a", "a"}).
			Add("v", vals).
			MustDone()
		_, err := Aggregate(tab, "g", "v", Sum)
		assert.True(t, errors.Is(err, ErrOverflow), "%v: %v", vals, err)
	}
	// Large values that cancel stay exact.
	tab := new(Builder).
		Add("g", []string{"a", "a", "a"}).
		Add("v", []int64{math.MaxInt64, -1, 1}).
		MustDone()
	a, err := Aggregate(tab, "g", "v", Sum)
	require.NoError(t, err)
	got, _ := a.Ints("v")
	assert.Equal(t, []int64{math.MaxInt64}, got)
}

func TestAggregateErrors(t *testing.T) {
	tab := cities()
	_, err := Aggregate(tab, "State", "Population", Sum)
	assert.True(t, errors.Is(err, ErrColumnNotFound))
	_, err = Aggregate(tab, "City", "Area", Sum)
	assert.True(t, errors.Is(err, ErrColumnNotFound))
	_, err = Aggregate(tab, "Population", "City", Sum)
	assert.True(t, errors.Is(err, ErrTypeMismatch))
}

func TestParseReducer(t *testing.T) {
	for _, r := range []Reducer{Sum, Mean, Count, Min, Max} {
		got, err := ParseReducer(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	_, err := ParseReducer("median")
	assert.Error(t, err)
}

func TestFilterPredicates(t *testing.T) {
	tab := cities()
	for _, test := range []struct {
		col  string
		pred Predicate
		want []string
	}{
		{"Population", GreaterThan(I(3000000)), []string{"Los Angeles", "New York"}},
		{"Population", GreaterEqual(F(2716000)), []string{"Chicago", "Los Angeles", "New York"}},
		{"Population", LessThan(I(2328000)), []string{"Phoenix"}},
		{"Population", LessEqual(I(2328000)), []string{"Houston", "Phoenix"}},
		{"City", EqualTo(S("Houston")), []string{"Houston"}},
		{"City", NotEqual(S("Houston")), []string{"Chicago", "Los Angeles", "New York", "Phoenix"}},
		{"City", In(S("Phoenix"), S("Chicago")), []string{"Chicago", "Phoenix"}},
		// Strings never compare with numbers.
		{"City", GreaterThan(I(0)), []string{}},
	} {
		f, err := Filter(tab, test.col, test.pred)
		require.NoError(t, err)
		names, _ := f.Strings("City")
		assert.Equal(t, test.want, names)
		assert.Equal(t, tab.Columns(), f.Columns())
	}
}

func TestFilterMissing(t *testing.T) {
	_, err := Filter(cities(), "Area", GreaterThan(I(0)))
	assert.True(t, errors.Is(err, ErrColumnNotFound))
}

func TestJoinCollisions(t *testing.T) {
	l := new(Builder).
		Add("k", []string{"a", "b"}).
		Add("v", []int{1, 2}).
		MustDone()
	r := new(Builder).
		Add("v", []int{10, 20}).
		Add("k", []string{"b", "a"}).
		MustDone()
	j, err := Join(l, r, "k")
	require.NoError(t, err)
	assert.Equal(t, []string{"k", "v_x", "v_y"}, j.Columns())
	assert.Equal(t, []Value{S("a"), I(1), I(20)}, j.Row(0))
	assert.Equal(t, []Value{S("b"), I(2), I(10)}, j.Row(1))
}

func TestJoinSuffixTaken(t *testing.T) {
	l := new(Builder).
		Add("k", []string{"a"}).
		Add("v", []int{1}).
		Add("v_x", []int{2}).
		MustDone()
	r := new(Builder).
		Add("k", []string{"a"}).
		Add("v", []int{3}).
		MustDone()
	j, err := Join(l, r, "k")
	require.NoError(t, err)
	assert.Equal(t, []string{"k", "v_x_x", "v_x", "v_y"}, j.Columns())
	assert.Equal(t, []Value{S("a"), I(1), I(2), I(3)}, j.Row(0))
	for i, name := range j.Columns() {
		v, err := j.Value(name, 0)
		require.NoError(t, err)
		assert.Equal(t, j.Row(0)[i], v, name)
	}
}

func TestJoinOrderAndDuplicates(t *testing.T) {
	l := new(Builder).
		Add("k", []int{1, 2, 1, 9}).
		Add("l", []string{"l0", "l1", "l2", "l3"}).
		MustDone()
	r := new(Builder).
		Add("k", []float64{1, 1, 2}).
		Add("r", []string{"r0", "r1", "r2"}).
		MustDone()
	j, err := Join(l, r, "k")
	require.NoError(t, err)
	ls, _ := j.Strings("l")
	rs, _ := j.Strings("r")
	assert.Equal(t, []string{"l0", "l0", "l1", "l2", "l2"}, ls)
	assert.Equal(t, []string{"r0", "r1", "r2", "r0", "r1"}, rs)
	k, _ := j.Kind("k")
	assert.Equal(t, Int, k)
}

func TestJoinErrors(t *testing.T) {
	l := cities()
	r := new(Builder).Add("Town", []string{"x"}).MustDone()
	_, err := Join(l, r, "City")
	assert.True(t, errors.Is(err, ErrColumnNotFound))
	_, err = Join(r, l, "City")
	assert.True(t, errors.Is(err, ErrColumnNotFound))

	n := new(Builder).Add("City", []int{1}).MustDone()
	_, err = Join(l, n, "City")
	assert.True(t, errors.Is(err, ErrTypeMismatch))
}
