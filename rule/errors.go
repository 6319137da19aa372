// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package rule

import (
	"errors"
	"fmt"
)

// ErrMalformedRule is matched by every error returned from Parse.
var ErrMalformedRule = errors.New("malformed rule")

// Reasons a rule can be malformed.
var (
	// ErrNoOperator is returned when the rule has no +, - or * character.
	ErrNoOperator = errors.New("rule has no operator")

	// ErrMultipleOperators is returned when the rule chains more than one operation.
	ErrMultipleOperators = errors.New("rule has more than one operator")

	// ErrAdjacentOperators is returned for sequences such as "++" or "+-".
	ErrAdjacentOperators = errors.New("rule has adjacent operators")

	// ErrLeadingOperator is returned when the rule starts with its operator.
	ErrLeadingOperator = errors.New("rule starts with an operator")

	// ErrTrailingOperator is returned when the rule ends with its operator.
	ErrTrailingOperator = errors.New("rule ends with an operator")

	// ErrInvalidOperand is returned when an operand is not a valid column name.
	ErrInvalidOperand = errors.New("invalid operand")
)

// ParseError describes why a rule could not be parsed.
type ParseError struct {
	// Rule is the normalized rule text.
	Rule string
	// Offset is the byte offset in Rule where the problem was found, or -1.
	Offset int

	original error
}

// Error implements the error interface for ParseError.
func (pe *ParseError) Error() string {
	if pe.Offset < 0 {
		return fmt.Sprintf("rule %q: %s", pe.Rule, pe.original)
	}
	return fmt.Sprintf("rule %q at offset %d: %s", pe.Rule, pe.Offset, pe.original)
}

// Unwrap returns the underlying error.
func (pe *ParseError) Unwrap() error {
	return pe.original
}

func newParseError(rule string, offset int, reason error) error {
	return &ParseError{
		Rule:     rule,
		Offset:   offset,
		original: fmt.Errorf("%w: %w", ErrMalformedRule, reason),
	}
}
