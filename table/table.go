// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"fmt"
	"slices"
)

// Table is an ordered collection of equally long columns.
// A Table is never modified after construction.
type Table struct {
	columns []*Column
	index   map[string]int
}

// New builds a table from the given columns, in order.
// Columns must be non-nil, uniquely and non-emptily named, and of equal length.
func New(cols ...*Column) (*Table, error) {
	t := &Table{
		columns: make([]*Column, 0, len(cols)),
		index:   make(map[string]int, len(cols)),
	}
	for _, col := range cols {
		if err := t.checkAppend(col); err != nil {
			return nil, err
		}
		t.index[col.name] = len(t.columns)
		t.columns = append(t.columns, col)
	}
	return t, nil
}

// MustNew is like New but panics on error. Intended for tests and literals.
func MustNew(cols ...*Column) *Table {
	t, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return t
}

// Empty returns a table with zero columns and zero rows.
func Empty() *Table {
	return &Table{index: map[string]int{}}
}

// IsEmpty reports whether the table has no columns.
func (t *Table) IsEmpty() bool {
	return len(t.columns) == 0
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// NumRows returns the shared length of the columns, or 0 for an empty table.
func (t *Table) NumRows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Len()
}

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.name
	}
	return names
}

// Columns returns the columns in order. The slice is a copy.
func (t *Table) Columns() []*Column {
	return slices.Clone(t.columns)
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return t.columns[i], nil
}

// ColumnAt returns the i-th column.
func (t *Table) ColumnAt(i int) *Column {
	return t.columns[i]
}

// WithColumn returns a new table with col appended at the end.
// The receiver is left untouched.
func (t *Table) WithColumn(col *Column) (*Table, error) {
	if err := t.checkAppend(col); err != nil {
		return nil, err
	}
	next := t.clone(len(t.columns) + 1)
	next.index[col.name] = len(next.columns)
	next.columns = append(next.columns, col)
	return next, nil
}

// ReplaceColumn returns a new table in which the column named like col is
// replaced by col, keeping its position.
func (t *Table) ReplaceColumn(col *Column) (*Table, error) {
	if col == nil || col.name == "" {
		return nil, ErrInvalidColumn
	}
	i, ok := t.index[col.name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, col.name)
	}
	if col.Len() != t.NumRows() {
		return nil, fmt.Errorf("%w: column %q has %d values, table has %d rows",
			ErrRaggedColumns, col.name, col.Len(), t.NumRows())
	}
	next := t.clone(len(t.columns))
	next.columns[i] = col
	return next, nil
}

// Equal reports whether both tables have the same columns in the same order.
func (t *Table) Equal(other *Table) bool {
	if other == nil {
		return false
	}
	return slices.EqualFunc(t.columns, other.columns, (*Column).Equal)
}

// clone copies the column list and the index. Columns themselves are shared.
func (t *Table) clone(capacity int) *Table {
	columns := make([]*Column, len(t.columns), capacity)
	copy(columns, t.columns)
	index := make(map[string]int, capacity)
	for k, v := range t.index {
		index[k] = v
	}
	return &Table{columns: columns, index: index}
}

func (t *Table) checkAppend(col *Column) error {
	if col == nil {
		return fmt.Errorf("%w: nil column", ErrInvalidColumn)
	}
	if col.name == "" {
		return fmt.Errorf("%w: empty column name", ErrInvalidColumn)
	}
	if _, exists := t.index[col.name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, col.name)
	}
	if len(t.columns) > 0 && col.Len() != t.NumRows() {
		return fmt.Errorf("%w: column %q has %d values, table has %d rows",
			ErrRaggedColumns, col.name, col.Len(), t.NumRows())
	}
	return nil
}
