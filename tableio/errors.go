// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package tableio

import "errors"

var (
	// ErrNonNumeric is returned when a value is not a number.
	ErrNonNumeric = errors.New("value is not numeric")

	// ErrMissingField is returned when a JSON object lacks a column of the first object.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidJSON is returned when a line is not a JSON object.
	ErrInvalidJSON = errors.New("line is not a JSON object")

	// ErrUnsupportedFormat is returned for file extensions with no reader or writer.
	ErrUnsupportedFormat = errors.New("unsupported table format")
)
