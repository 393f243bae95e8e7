// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

// A Predicate reports whether a row's value should be kept.
type Predicate func(v Value) bool

// GreaterThan matches values ordered after x.
func GreaterThan(x Value) Predicate {
	return func(v Value) bool {
		c, ok := Compare(v, x)
		return ok && c > 0
	}
}

// GreaterEqual matches values not ordered before x.
func GreaterEqual(x Value) Predicate {
	return func(v Value) bool {
		c, ok := Compare(v, x)
		return ok && c >= 0
	}
}

// LessThan matches values ordered before x.
func LessThan(x Value) Predicate {
	return func(v Value) bool {
		c, ok := Compare(v, x)
		return ok && c < 0
	}
}

// LessEqual matches values not ordered after x.
func LessEqual(x Value) Predicate {
	return func(v Value) bool {
		c, ok := Compare(v, x)
		return ok && c <= 0
	}
}

// EqualTo matches values equal to x.
func EqualTo(x Value) Predicate {
	return func(v Value) bool { return Equal(v, x) }
}

// NotEqual matches values comparable with, but not equal to, x.
func NotEqual(x Value) Predicate {
	return func(v Value) bool {
		c, ok := Compare(v, x)
		return ok && c != 0
	}
}

// In matches values equal to any of xs.
func In(xs ...Value) Predicate {
	return func(v Value) bool {
		for _, x := range xs {
			if Equal(v, x) {
				return true
			}
		}
		return false
	}
}

// Filter returns the rows of t whose value in col satisfies pred, in
// their original order.
func Filter(t *Table, col string, pred Predicate) (*Table, error) {
	c, err := t.col("filter", col)
	if err != nil {
		return nil, err
	}
	idxs := []int{}
	for i, v := range c.vals {
		if pred(v) {
			idxs = append(idxs, i)
		}
	}
	return t.pick(idxs), nil
}
