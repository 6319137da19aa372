// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package rule

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/toster3d/Recrutitment-task/validation/column"
)

// Operator is a binary arithmetic operator.
type Operator byte

const (
	// OpAdd adds the right operand to the left one.
	OpAdd Operator = '+'
	// OpSub subtracts the right operand from the left one.
	OpSub Operator = '-'
	// OpMul multiplies both operands.
	OpMul Operator = '*'
)

// ParseOperator returns the Operator for r.
func ParseOperator(r rune) (Operator, bool) {
	switch Operator(r) {
	case OpAdd, OpSub, OpMul:
		return Operator(r), true
	default:
		return 0, false
	}
}

// Symbol returns the operator character.
func (o Operator) Symbol() string {
	return string(rune(o))
}

// String returns the operator character, or a placeholder for unknown values.
func (o Operator) String() string {
	if _, ok := ParseOperator(rune(o)); !ok {
		return fmt.Sprintf("Operator(%d)", byte(o))
	}
	return o.Symbol()
}

// Rule is a parsed <left><op><right> expression.
type Rule struct {
	Left  string
	Op    Operator
	Right string
}

// String returns the canonical form of the rule, without whitespace.
func (r Rule) String() string {
	return r.Left + r.Op.Symbol() + r.Right
}

// Operands returns the left and right column names.
func (r Rule) Operands() []string {
	return []string{r.Left, r.Right}
}

// Normalize trims the rule and drops every whitespace run that touches an
// operator character. Whitespace between two non-operator characters is kept.
// All other bytes, including invalid UTF-8, are copied unchanged.
func Normalize(s string) string {
	s = strings.TrimFunc(s, unicode.IsSpace)

	var b strings.Builder
	b.Grow(len(s))

	var prev rune
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			b.WriteString(s[i : i+size])
			prev = r
			i += size
			continue
		}

		end := i + strings.IndexFunc(s[i:], func(r rune) bool { return !unicode.IsSpace(r) })
		next, _ := utf8.DecodeRuneInString(s[end:])
		if !column.IsOperator(prev) && !column.IsOperator(next) {
			b.WriteString(s[i:end])
		}
		i = end
	}

	return b.String()
}

// Parse normalizes s and splits it into a Rule.
//
// The normalized rule must contain exactly one operator character, neither
// first nor last, and both operands must be valid source column names.
// Errors are *ParseError values matching ErrMalformedRule.
func Parse(s string) (Rule, error) {
	norm := Normalize(s)

	positions := operatorPositions(norm)
	switch {
	case len(positions) == 0:
		return Rule{}, newParseError(norm, -1, ErrNoOperator)
	case len(positions) > 1:
		for i := 1; i < len(positions); i++ {
			if positions[i] == positions[i-1]+1 {
				return Rule{}, newParseError(norm, positions[i-1], ErrAdjacentOperators)
			}
		}
		return Rule{}, newParseError(norm, positions[1], ErrMultipleOperators)
	}

	pos := positions[0]
	if pos == 0 {
		return Rule{}, newParseError(norm, pos, ErrLeadingOperator)
	}
	if pos == len(norm)-1 {
		return Rule{}, newParseError(norm, pos, ErrTrailingOperator)
	}

	left, right := norm[:pos], norm[pos+1:]
	if err := column.ValidateSourceName(left); err != nil {
		return Rule{}, newParseError(norm, 0, fmt.Errorf("%w: %w", ErrInvalidOperand, err))
	}
	if err := column.ValidateSourceName(right); err != nil {
		return Rule{}, newParseError(norm, pos+1, fmt.Errorf("%w: %w", ErrInvalidOperand, err))
	}

	op, _ := ParseOperator(rune(norm[pos]))
	return Rule{Left: left, Op: op, Right: right}, nil
}

// operatorPositions returns the byte offsets of all operator characters.
// Operators are ASCII, so they never occur inside a multi-byte sequence.
func operatorPositions(s string) []int {
	var positions []int
	for i := 0; i < len(s); i++ {
		if column.IsOperator(rune(s[i])) {
			positions = append(positions, i)
		}
	}
	return positions
}
