// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"io"

	ggtable "github.com/aclements/go-gg/table"
)

// Grouping returns t as a go-gg table, ready to hand to a gg.Plot.
// String columns become []string, Int columns []int64, and Float
// columns []float64.
func (t *Table) Grouping() *ggtable.Table {
	b := ggtable.NewBuilder(nil)
	for _, c := range t.cols {
		switch c.kind {
		case String:
			xs := make([]string, len(c.vals))
			for i, v := range c.vals {
				xs[i] = v.s
			}
			b.Add(c.name, xs)
		case Int:
			xs := make([]int64, len(c.vals))
			for i, v := range c.vals {
				xs[i] = v.i
			}
			b.Add(c.name, xs)
		case Float:
			xs := make([]float64, len(c.vals))
			for i, v := range c.vals {
				xs[i] = v.f
			}
			b.Add(c.name, xs)
		}
	}
	return b.Done()
}

// Fprint writes t to w as an aligned text table with a header row.
func Fprint(w io.Writer, t *Table) {
	ggtable.Fprint(w, t.Grouping())
}
