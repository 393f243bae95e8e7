// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table implements small immutable in-memory tables and the
// relational operators the lessons apply to them before plotting:
// Sort, Aggregate, Filter, and Join.
//
// A Table is an ordered set of uniquely named columns of equal
// length. Every column holds values of a single Kind. Tables are
// never modified after they are built; each operator returns a new
// Table that shares nothing with its inputs.
package table

import "fmt"

// Table is an immutable, column-oriented set of rows.
type Table struct {
	cols  []*column
	index map[string]int
	len   int
}

type column struct {
	name string
	kind Kind
	vals []Value
}

func newTable(cols []*column) *Table {
	t := &Table{cols: cols, index: make(map[string]int, len(cols))}
	for i, c := range cols {
		t.index[c.name] = i
	}
	if len(cols) > 0 {
		t.len = len(cols[0].vals)
	}
	return t
}

// Len returns the number of rows in t.
func (t *Table) Len() int {
	return t.len
}

// Columns returns the names of t's columns in order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.name
	}
	return names
}

// Has reports whether t has a column named name.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

func (t *Table) col(op, name string) (*column, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, notFound(op, name)
	}
	return t.cols[i], nil
}

// Kind returns the kind of column name.
func (t *Table) Kind(name string) (Kind, error) {
	c, err := t.col("kind", name)
	if err != nil {
		return 0, err
	}
	return c.kind, nil
}

// Column returns a copy of the values in column name.
func (t *Table) Column(name string) ([]Value, error) {
	c, err := t.col("column", name)
	if err != nil {
		return nil, err
	}
	return append([]Value(nil), c.vals...), nil
}

// Value returns the value of column name in row i.
func (t *Table) Value(name string, i int) (Value, error) {
	c, err := t.col("value", name)
	if err != nil {
		return Value{}, err
	}
	if i < 0 || i >= t.len {
		return Value{}, fmt.Errorf("table: row %d out of range [0,%d)", i, t.len)
	}
	return c.vals[i], nil
}

// Row returns the values of row i in column order.
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.cols))
	for j, c := range t.cols {
		row[j] = c.vals[i]
	}
	return row
}

// Strings returns column name as a []string.
func (t *Table) Strings(name string) ([]string, error) {
	c, err := t.col("strings", name)
	if err != nil {
		return nil, err
	}
	if c.kind != String {
		return nil, mismatch("strings", name)
	}
	out := make([]string, len(c.vals))
	for i, v := range c.vals {
		out[i] = v.s
	}
	return out, nil
}

// Ints returns column name as a []int64.
func (t *Table) Ints(name string) ([]int64, error) {
	c, err := t.col("ints", name)
	if err != nil {
		return nil, err
	}
	if c.kind != Int {
		return nil, mismatch("ints", name)
	}
	out := make([]int64, len(c.vals))
	for i, v := range c.vals {
		out[i] = v.i
	}
	return out, nil
}

// Floats returns numeric column name as a []float64. Int columns are
// converted.
func (t *Table) Floats(name string) ([]float64, error) {
	c, err := t.col("floats", name)
	if err != nil {
		return nil, err
	}
	if !c.kind.Numeric() {
		return nil, mismatch("floats", name)
	}
	out := make([]float64, len(c.vals))
	for i, v := range c.vals {
		out[i] = v.Float()
	}
	return out, nil
}

// Equal reports whether t and u have the same columns, kinds, and
// values in the same order.
func (t *Table) Equal(u *Table) bool {
	if t.len != u.len || len(t.cols) != len(u.cols) {
		return false
	}
	for i, c := range t.cols {
		d := u.cols[i]
		if c.name != d.name || c.kind != d.kind {
			return false
		}
		for j := range c.vals {
			if c.vals[j] != d.vals[j] {
				return false
			}
		}
	}
	return true
}

// pick returns a new table holding rows idxs of t, in that order.
func (t *Table) pick(idxs []int) *Table {
	cols := make([]*column, len(t.cols))
	for i, c := range t.cols {
		vals := make([]Value, len(idxs))
		for j, idx := range idxs {
			vals[j] = c.vals[idx]
		}
		cols[i] = &column{c.name, c.kind, vals}
	}
	return newTable(cols)
}

// A Builder constructs a Table column by column. The zero Builder is
// an empty table ready to use.
//
// Construction errors are sticky: once Add fails, later calls are
// ignored and Done reports the first error.
type Builder struct {
	cols []*column
	err  error
}

// Add appends a column named name. data must be a []string, []int,
// []int64, []float64, or a []Value whose elements all have the same
// kind.
func (b *Builder) Add(name string, data interface{}) *Builder {
	if b.err != nil {
		return b
	}
	for _, c := range b.cols {
		if c.name == name {
			b.err = fmt.Errorf("table: duplicate column %q", name)
			return b
		}
	}
	c, err := makeColumn(name, data)
	if err != nil {
		b.err = err
		return b
	}
	b.cols = append(b.cols, c)
	return b
}

func makeColumn(name string, data interface{}) (*column, error) {
	c := &column{name: name}
	switch data := data.(type) {
	case []string:
		c.kind = String
		c.vals = make([]Value, len(data))
		for i, x := range data {
			c.vals[i] = S(x)
		}
	case []int:
		c.kind = Int
		c.vals = make([]Value, len(data))
		for i, x := range data {
			c.vals[i] = I(int64(x))
		}
	case []int64:
		c.kind = Int
		c.vals = make([]Value, len(data))
		for i, x := range data {
			c.vals[i] = I(x)
		}
	case []float64:
		c.kind = Float
		c.vals = make([]Value, len(data))
		for i, x := range data {
			c.vals[i] = F(x)
		}
	case []Value:
		if len(data) > 0 {
			c.kind = data[0].kind
		}
		for i, v := range data {
			if v.kind != c.kind {
				return nil, fmt.Errorf("table: column %q: row %d is %s, want %s", name, i, v.kind, c.kind)
			}
		}
		c.vals = append([]Value(nil), data...)
	default:
		return nil, fmt.Errorf("table: column %q: unsupported type %T", name, data)
	}
	return c, nil
}

// Done returns the constructed Table. All columns must have the same
// length.
func (b *Builder) Done() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	for i := 1; i < len(b.cols); i++ {
		c, first := b.cols[i], b.cols[0]
		if len(c.vals) != len(first.vals) {
			return nil, fmt.Errorf("table: column %q has %d rows, column %q has %d", c.name, len(c.vals), first.name, len(first.vals))
		}
	}
	cols := b.cols
	b.cols = nil
	return newTable(cols), nil
}

// MustDone is like Done, but panics on error. It is meant for tables
// built from literal data.
func (b *Builder) MustDone() *Table {
	t, err := b.Done()
	if err != nil {
		panic(err)
	}
	return t
}
