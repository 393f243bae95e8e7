// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"math"
	"strconv"
)

// Kind is the type of the values held in a column.
type Kind int

const (
	String Kind = iota
	Int
	Float
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Numeric reports whether values of kind k are numbers.
func (k Kind) Numeric() bool {
	return k == Int || k == Float
}

// Value is a single scalar cell. Only the field selected by kind is
// meaningful. Values are comparable with ==, which makes them usable
// as map keys.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
}

// S returns a string Value.
func S(s string) Value { return Value{kind: String, s: s} }

// I returns an integer Value.
func I(i int64) Value { return Value{kind: Int, i: i} }

// F returns a floating-point Value.
func F(f float64) Value { return Value{kind: Float, f: f} }

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// Str returns v's string. It panics if v is not a String.
func (v Value) Str() string {
	if v.kind != String {
		panic("table: Str of " + v.kind.String() + " value")
	}
	return v.s
}

// Int returns v's integer. It panics if v is not an Int.
func (v Value) Int() int64 {
	if v.kind != Int {
		panic("table: Int of " + v.kind.String() + " value")
	}
	return v.i
}

// Float returns v as a float64, widening Int values. It panics if v
// is a String.
func (v Value) Float() float64 {
	switch v.kind {
	case Int:
		return float64(v.i)
	case Float:
		return v.f
	}
	panic("table: Float of " + v.kind.String() + " value")
}

func (v Value) isNaN() bool {
	return v.kind == Float && math.IsNaN(v.f)
}

func (v Value) String() string {
	switch v.kind {
	case String:
		return v.s
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	return "?"
}

// Compare orders a and b. Strings compare lexically and numbers
// compare numerically, so an Int may be compared with a Float. ok is
// false if a and b are not comparable (a string and a number, or a
// NaN).
func Compare(a, b Value) (c int, ok bool) {
	if a.kind == String || b.kind == String {
		if a.kind != b.kind {
			return 0, false
		}
		switch {
		case a.s < b.s:
			return -1, true
		case a.s > b.s:
			return 1, true
		}
		return 0, true
	}
	if a.kind == Int && b.kind == Int {
		switch {
		case a.i < b.i:
			return -1, true
		case a.i > b.i:
			return 1, true
		}
		return 0, true
	}
	x, y := a.Float(), b.Float()
	switch {
	case x < y:
		return -1, true
	case x > y:
		return 1, true
	case x == y:
		return 0, true
	}
	return 0, false
}

// Equal reports whether a and b are equal under Compare.
func Equal(a, b Value) bool {
	c, ok := Compare(a, b)
	return ok && c == 0
}
