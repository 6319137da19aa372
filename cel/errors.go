// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cel

import "errors"

// Sentinel errors for CEL operations.
var (
	// ErrCompile is returned when a generated expression fails syntax or type checking.
	ErrCompile = errors.New("CEL expression compilation failed")

	// ErrUnsupportedOperator is returned for operators outside +, - and *.
	ErrUnsupportedOperator = errors.New("unsupported operator")

	// ErrOperandMismatch is returned when columns do not match the program they are applied to.
	ErrOperandMismatch = errors.New("operand columns do not match program")

	// ErrEvaluation is returned when evaluating a row fails, for example when
	// the engine's cost limit is exceeded.
	ErrEvaluation = errors.New("CEL expression evaluation failed")

	// ErrInvalidResult is returned when the program yields a value of an unexpected type.
	ErrInvalidResult = errors.New("CEL expression returned invalid result type")
)
