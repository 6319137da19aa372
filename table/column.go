// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"fmt"
	"slices"
)

// Kind is the numeric element type of a column.
type Kind int

const (
	// KindInt columns hold int64 values.
	KindInt Kind = iota
	// KindFloat columns hold float64 values.
	KindFloat
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Column is a named, immutable sequence of numeric values.
type Column struct {
	name   string
	kind   Kind
	ints   []int64
	floats []float64
}

// NewIntColumn creates an int64 column. The values are copied.
func NewIntColumn(name string, values ...int64) *Column {
	return &Column{name: name, kind: KindInt, ints: slices.Clone(nonNil(values))}
}

// NewFloatColumn creates a float64 column. The values are copied.
func NewFloatColumn(name string, values ...float64) *Column {
	return &Column{name: name, kind: KindFloat, floats: slices.Clone(nonNil(values))}
}

func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}

// Name returns the column name.
func (c *Column) Name() string {
	return c.name
}

// Kind returns the element type of the column.
func (c *Column) Kind() Kind {
	return c.kind
}

// Len returns the number of values in the column.
func (c *Column) Len() int {
	if c.kind == KindFloat {
		return len(c.floats)
	}
	return len(c.ints)
}

// Int returns the i-th value of an int column. It panics on float columns.
func (c *Column) Int(i int) int64 {
	if c.kind != KindInt {
		panic(fmt.Sprintf("table: Int called on %s column %q", c.kind, c.name))
	}
	return c.ints[i]
}

// Float returns the i-th value as a float64, promoting int values.
func (c *Column) Float(i int) float64 {
	if c.kind == KindInt {
		return float64(c.ints[i])
	}
	return c.floats[i]
}

// Value returns the i-th value as an int64 or float64 depending on the Kind.
func (c *Column) Value(i int) any {
	if c.kind == KindInt {
		return c.ints[i]
	}
	return c.floats[i]
}

// Ints returns a copy of the values of an int column, or nil for float columns.
func (c *Column) Ints() []int64 {
	if c.kind != KindInt {
		return nil
	}
	return slices.Clone(c.ints)
}

// Floats returns a copy of the values as float64, promoting int values.
func (c *Column) Floats() []float64 {
	if c.kind == KindFloat {
		return slices.Clone(c.floats)
	}
	out := make([]float64, len(c.ints))
	for i, v := range c.ints {
		out[i] = float64(v)
	}
	return out
}

// Renamed returns a copy of the column under a new name.
// The values are shared, which is safe because columns are immutable.
func (c *Column) Renamed(name string) *Column {
	return &Column{name: name, kind: c.kind, ints: c.ints, floats: c.floats}
}

// Equal reports whether two columns have the same name, kind and values.
func (c *Column) Equal(other *Column) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.name != other.name || c.kind != other.kind {
		return false
	}
	if c.kind == KindInt {
		return slices.Equal(c.ints, other.ints)
	}
	return slices.Equal(c.floats, other.floats)
}
