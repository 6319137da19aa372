// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package exitcode

import "errors"

// Exit statuses.
const (
	OK      = 0
	Failure = 1
	Usage   = 2
)

// CodedError wraps an error with an exit status.
type CodedError struct {
	err  error
	code int
}

// Error implements the error interface.
func (e *CodedError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying error for errors.Is() and errors.As() compatibility.
func (e *CodedError) Unwrap() error {
	return e.err
}

// ExitCode returns the exit status associated with this error.
func (e *CodedError) ExitCode() int {
	return e.code
}

// WithCode wraps an error with an exit status.
// If err is nil, WithCode returns nil.
func WithCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, code: code}
}

// Code extracts the exit status from an error chain.
// It returns OK for nil and Failure when no CodedError is found.
func Code(err error) int {
	if err == nil {
		return OK
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.code
	}

	return Failure
}
