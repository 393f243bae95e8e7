// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import "errors"

var (
	// ErrColumnNotFound is returned when an operation names a
	// column the table does not have.
	ErrColumnNotFound = errors.New("column not found")

	// ErrTypeMismatch is returned when a column's kind cannot be
	// used by an operation, such as reducing a string column.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrOverflow is returned when an Int sum does not fit in an
	// int64.
	ErrOverflow = errors.New("integer overflow")
)

// A ColumnError records a failed operation and the column that
// caused it.
type ColumnError struct {
	Op     string
	Column string
	Err    error
}

func (e *ColumnError) Error() string {
	return e.Op + " " + e.Column + ": " + e.Err.Error()
}

func (e *ColumnError) Unwrap() error { return e.Err }

func notFound(op, col string) error {
	return &ColumnError{op, col, ErrColumnNotFound}
}

func mismatch(op, col string) error {
	return &ColumnError{op, col, ErrTypeMismatch}
}
