// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package table

import "errors"

// Sentinel errors for table construction and lookup.
var (
	// ErrColumnNotFound is returned when a column name is not part of a table.
	ErrColumnNotFound = errors.New("column not found")

	// ErrDuplicateColumn is returned when two columns share a name.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrRaggedColumns is returned when columns do not share the same length.
	ErrRaggedColumns = errors.New("columns have unequal lengths")

	// ErrInvalidColumn is returned for nil or unnamed columns.
	ErrInvalidColumn = errors.New("invalid column")
)
