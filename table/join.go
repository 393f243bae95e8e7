// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

// Join returns the inner equality join of left and right on column
// key. For each row of left, in order, it emits one row for each
// matching row of right, in order; rows without a match are dropped.
// Keys that repeat on both sides produce every pairing.
//
// The result has the columns of left followed by the columns of
// right other than key. A non-key column name present on both sides
// is suffixed with "_x" for left and "_y" for right. If that name is
// already taken, the suffix is repeated until it is not.
func Join(left, right *Table, key string) (*Table, error) {
	lk, err := left.col("join", key)
	if err != nil {
		return nil, err
	}
	rk, err := right.col("join", key)
	if err != nil {
		return nil, err
	}
	if (lk.kind == String) != (rk.kind == String) {
		return nil, mismatch("join", key)
	}

	// Index right's rows by key. Mixed Int/Float keys are indexed
	// as floats so they compare numerically.
	norm := func(v Value) Value { return v }
	if lk.kind != rk.kind {
		norm = func(v Value) Value { return F(v.Float()) }
	}
	index := make(map[Value][]int)
	for i, v := range rk.vals {
		if v.isNaN() {
			continue
		}
		index[norm(v)] = append(index[norm(v)], i)
	}

	var lrows, rrows []int
	for i, v := range lk.vals {
		for _, j := range index[norm(v)] {
			lrows = append(lrows, i)
			rrows = append(rrows, j)
		}
	}

	lt, rt := left.pick(lrows), right.pick(rrows)
	taken := make(map[string]bool)
	for _, t := range []*Table{left, right} {
		for _, c := range t.cols {
			taken[c.name] = true
		}
	}
	// suffix appends sfx to name until it names no other column.
	suffix := func(name, sfx string) string {
		for {
			name += sfx
			if !taken[name] {
				taken[name] = true
				return name
			}
		}
	}

	cols := make([]*column, 0, len(lt.cols)+len(rt.cols)-1)
	for _, c := range lt.cols {
		if c.name != key && right.Has(c.name) {
			c.name = suffix(c.name, "_x")
		}
		cols = append(cols, c)
	}
	for _, c := range rt.cols {
		if c.name == key {
			continue
		}
		if left.Has(c.name) {
			c.name = suffix(c.name, "_y")
		}
		cols = append(cols, c)
	}
	return newTable(cols), nil
}
