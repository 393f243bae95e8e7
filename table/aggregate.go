// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
)

// A Reducer collapses the numeric values of one group into a single
// value.
type Reducer int

const (
	Sum Reducer = iota
	Mean
	Count
	Min
	Max
)

var reducerNames = []string{"sum", "mean", "count", "min", "max"}

func (r Reducer) String() string {
	if r < 0 || int(r) >= len(reducerNames) {
		return fmt.Sprintf("Reducer(%d)", int(r))
	}
	return reducerNames[r]
}

// ParseReducer returns the Reducer called name ("sum", "mean",
// "count", "min", or "max").
func ParseReducer(name string) (Reducer, error) {
	for i, n := range reducerNames {
		if n == name {
			return Reducer(i), nil
		}
	}
	return 0, fmt.Errorf("unknown reducer %q", name)
}

// resultKind returns the kind of r applied to a column of kind k.
func (r Reducer) resultKind(k Kind) Kind {
	switch r {
	case Mean:
		return Float
	case Count:
		return Int
	}
	return k
}

// Aggregate groups the rows of t by the distinct values of column
// group and reduces column value within each group. The result has
// the columns group and value and one row per group, in the order
// each group first appears in t. Rows whose group is a Float NaN
// belong to no group and are dropped.
//
// Sum, Min, and Max of an Int column are exact; if a Sum does not
// fit in an int64, Aggregate fails with ErrOverflow.
func Aggregate(t *Table, group, value string, r Reducer) (*Table, error) {
	gc, err := t.col("aggregate", group)
	if err != nil {
		return nil, err
	}
	vc, err := t.col("aggregate", value)
	if err != nil {
		return nil, err
	}
	if !vc.kind.Numeric() {
		return nil, mismatch("aggregate", value)
	}
	if r < Sum || r > Max {
		return nil, fmt.Errorf("aggregate: %v", r)
	}

	// Partition row indexes, remembering first-seen order.
	var keys []Value
	parts := make(map[Value][]int)
	for i, k := range gc.vals {
		if k.isNaN() {
			continue
		}
		if _, ok := parts[k]; !ok {
			keys = append(keys, k)
		}
		parts[k] = append(parts[k], i)
	}

	out := make([]Value, len(keys))
	for i, k := range keys {
		v, ok := reduce(r, vc, parts[k])
		if !ok {
			return nil, &ColumnError{"aggregate", value, ErrOverflow}
		}
		out[i] = v
	}

	gcol := &column{gc.name, gc.kind, keys}
	if group == value {
		// Reducing the grouping column onto itself only makes
		// sense for Count; name the counts distinctly.
		return newTable([]*column{gcol, {r.String(), r.resultKind(vc.kind), out}}), nil
	}
	return newTable([]*column{gcol, {vc.name, r.resultKind(vc.kind), out}}), nil
}

// reduce applies r to the rows of c. It reports false if an Int sum
// overflows.
func reduce(r Reducer, c *column, rows []int) (Value, bool) {
	if r == Count {
		return I(int64(len(rows))), true
	}
	if c.kind == Int && r != Mean {
		acc := c.vals[rows[0]].i
		for _, row := range rows[1:] {
			x := c.vals[row].i
			switch r {
			case Sum:
				sum := acc + x
				if (x > 0 && sum < acc) || (x < 0 && sum > acc) {
					return Value{}, false
				}
				acc = sum
			case Min:
				if x < acc {
					acc = x
				}
			case Max:
				if x > acc {
					acc = x
				}
			}
		}
		return I(acc), true
	}

	xs := make([]float64, len(rows))
	for i, row := range rows {
		xs[i] = c.vals[row].Float()
	}
	switch r {
	case Sum:
		var sum float64
		for _, x := range xs {
			sum += x
		}
		return F(sum), true
	case Mean:
		return F(stats.Mean(xs)), true
	case Min:
		lo, _ := stats.Bounds(xs)
		return F(lo), true
	}
	_, hi := stats.Bounds(xs)
	return F(hi), true
}
