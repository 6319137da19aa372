// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package table provides the in-memory tabular structure that virtual columns
are computed over.

A [Table] is an ordered list of named numeric columns that all share the same
length. Columns hold either int64 ([KindInt]) or float64 ([KindFloat]) values.

# Immutability

A [Column] copies its input on construction and never exposes its backing
slice, so it cannot change once built. A [Table] never changes either:
[Table.WithColumn] and [Table.ReplaceColumn] return a new table that shares
the untouched columns with the receiver.

	t, err := table.New(
		table.NewIntColumn("a", 1, 2, 3),
		table.NewIntColumn("b", 10, 20, 30),
	)
	if err != nil {
		// ragged or duplicate columns
	}

	next, err := t.WithColumn(table.NewIntColumn("sum_result", 11, 22, 33))
	// t still has two columns, next has three

# Empty Tables

[Empty] returns a table with zero columns and zero rows. Callers that receive
tables from a fail-quiet operation detect failure with [Table.IsEmpty].
*/
package table
