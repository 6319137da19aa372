// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package cel compiles virtual column arithmetic into CEL programs and applies
them to table columns.

A validated rule is reduced to an operator and the kinds of its two operand
columns. The engine renders that as a CEL expression over the variables
"lhs" and "rhs", type-checks it, and evaluates it once per row.

# Basic Usage

	engine := cel.NewEngine()

	prg, err := engine.Compile(rule.OpAdd, table.KindInt, table.KindInt)
	if err != nil {
	    // handle compilation error
	}

	sum, err := prg.Apply("sum_result", a, b)
	// sum is a new int column with a[i] + b[i]

# Numeric Promotion

Operands keep their kind when both are ints or both are floats. When the
kinds differ, the int operand is converted with CEL's double() and the result
is a float column:

	cel.Expression(rule.OpMul, table.KindInt, table.KindFloat) // "double(lhs) * rhs"

# Integer Arithmetic

CEL's int operators fail on overflow. Two int operands are therefore computed
with the functions int_add, int_sub and int_mul, which wrap around like Go's
int64 operators:

	cel.Expression(rule.OpAdd, table.KindInt, table.KindInt) // "int_add(lhs, rhs)"

# Error Handling

Compile wraps [ErrCompile] when the generated expression does not compile.
Row evaluation errors, such as exceeding the cost limit set with
[Engine.WithCostLimit], wrap [ErrEvaluation] and name the failing row.

# Concurrency

The Engine and Program types are safe for concurrent use. Environments are
created lazily, once per pair of operand kinds.
*/
package cel
