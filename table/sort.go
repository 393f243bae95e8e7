// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import "sort"

// Sort returns a copy of t with its rows ordered by column key,
// ascending unless descending is set. The sort is stable in both
// directions. NaNs sort last regardless of direction.
func Sort(t *Table, key string, descending bool) (*Table, error) {
	c, err := t.col("sort", key)
	if err != nil {
		return nil, err
	}

	idxs := make([]int, t.len)
	for i := range idxs {
		idxs[i] = i
	}
	vals := c.vals
	sort.SliceStable(idxs, func(i, j int) bool {
		a, b := vals[idxs[i]], vals[idxs[j]]
		if a.isNaN() || b.isNaN() {
			return !a.isNaN()
		}
		cmp, _ := Compare(a, b)
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return t.pick(idxs), nil
}
