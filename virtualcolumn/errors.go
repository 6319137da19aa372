// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package virtualcolumn

import (
	"errors"
	"fmt"

	"github.com/toster3d/Recrutitment-task/rule"
)

// Sentinel errors, one per rejection kind.
var (
	// ErrInvalidTargetName is returned when the target name is empty, lacks an
	// underscore, or contains an operator or whitespace character.
	ErrInvalidTargetName = errors.New("invalid target column name")

	// ErrMalformedRule is returned when the rule does not describe exactly one
	// binary operation over two well-formed operands.
	ErrMalformedRule = rule.ErrMalformedRule

	// ErrUnknownColumn is returned when an operand is not a column of the table.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrNameCollision is returned when the target name is an operand or an
	// existing column.
	ErrNameCollision = errors.New("target column name collides")

	// ErrEvaluation is returned when the engine fails to compute a row, for
	// example when its cost limit is exceeded. Integer overflow wraps around
	// and is not an error.
	ErrEvaluation = errors.New("evaluation failed")

	// ErrNilTable is returned when no table is given. It is a calling
	// contract violation rather than a validation failure.
	ErrNilTable = errors.New("table is nil")
)

// Kind identifies the stage that rejected a rule.
type Kind string

const (
	// KindNone is reported for nil errors and errors not produced by the evaluator.
	KindNone Kind = ""
	// KindInvalidTargetName matches ErrInvalidTargetName.
	KindInvalidTargetName Kind = "invalid_target_name"
	// KindMalformedRule matches ErrMalformedRule.
	KindMalformedRule Kind = "malformed_rule"
	// KindUnknownColumn matches ErrUnknownColumn.
	KindUnknownColumn Kind = "unknown_column"
	// KindNameCollision matches ErrNameCollision.
	KindNameCollision Kind = "name_collision"
	// KindEvaluation matches ErrEvaluation.
	KindEvaluation Kind = "evaluation"
)

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidTargetName:
		return ErrInvalidTargetName
	case KindMalformedRule:
		return ErrMalformedRule
	case KindUnknownColumn:
		return ErrUnknownColumn
	case KindNameCollision:
		return ErrNameCollision
	case KindEvaluation:
		return ErrEvaluation
	default:
		return nil
	}
}

// Error reports why a rule was rejected.
type Error struct {
	Kind   Kind
	Rule   string
	Target string
	Err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("virtual column %q from rule %q: %s: %s", e.Target, e.Rule, e.Kind, e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying reason.
func (e *Error) Unwrap() []error {
	if s := e.Kind.sentinel(); s != nil && !errors.Is(e.Err, s) {
		return []error{s, e.Err}
	}
	return []error{e.Err}
}

// KindOf returns the rejection kind carried by err, or KindNone.
func KindOf(err error) Kind {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return KindNone
}

func newError(kind Kind, ruleText, target string, err error) error {
	return &Error{Kind: kind, Rule: ruleText, Target: target, Err: err}
}
