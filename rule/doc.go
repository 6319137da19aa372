// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package rule parses virtual column rules.

A rule describes exactly one binary arithmetic operation over two columns:

	<left><op><right>

where op is one of +, - or *. Whitespace around the operator and around the
whole rule is ignored, so "a + b", "a+ b" and "  a+b " all parse to the same
[Rule]. Whitespace inside an operand is kept and makes the operand invalid.

# Basic Usage

	r, err := rule.Parse("label_one * label_two")
	if err != nil {
	    // malformed rule
	}
	fmt.Println(r.Left, r.Op, r.Right) // label_one * label_two

# Error Handling

Every failure is a [*ParseError]. It matches [ErrMalformedRule] and the
specific reason with errors.Is:

	_, err := rule.Parse("a+b-c")
	errors.Is(err, rule.ErrMalformedRule)     // true
	errors.Is(err, rule.ErrMultipleOperators) // true

	var perr *rule.ParseError
	if errors.As(err, &perr) {
	    fmt.Println(perr.Offset) // byte offset in the normalized rule
	}

Operand syntax is checked before anything looks at a table, so a rule that
parses is only guaranteed to be well-formed, not to reference real columns.
*/
package rule
