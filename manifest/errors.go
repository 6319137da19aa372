// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSchema is returned when a document does not match the manifest schema.
	ErrSchema = errors.New("manifest schema validation failed")

	// ErrDuplicateTarget is returned when two entries create the same column.
	ErrDuplicateTarget = errors.New("duplicate target column")
)

// EntryError reports a problem with one manifest entry.
type EntryError struct {
	Index int
	Name  string
	Err   error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	return fmt.Sprintf("column %d (%q): %s", e.Index, e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// formatNumberedErrors wraps ErrSchema with a numbered list of messages.
func formatNumberedErrors(msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	if len(msgs) == 1 {
		return fmt.Errorf("%w: %s", ErrSchema, msgs[0])
	}
	var b strings.Builder
	for i, msg := range msgs {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, msg)
	}
	return fmt.Errorf("%w with %d errors:%s", ErrSchema, len(msgs), b.String())
}
