// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package virtualcolumn adds derived columns to a table from a textual rule.

A rule such as "label_one + label_two" names two existing columns and one of
the operators +, - or *. [AddVirtualColumn] validates the rule and the target
column name, computes the new column row by row, and returns a new table with
the column appended. The input table is never modified.

# Basic Usage

	t := table.MustNew(
	    table.NewIntColumn("a", 1, 2, 3),
	    table.NewIntColumn("b", 10, 20, 30),
	)

	out := virtualcolumn.AddVirtualColumn(t, "a + b", "sum_result")
	// out has columns a, b, sum_result = [11, 22, 33]

# Failing Quietly

Any validation failure returns an empty table (no columns, no rows) instead of
an error, so callers check the result with [table.Table.IsEmpty]:

	out := virtualcolumn.AddVirtualColumn(t, "a + b", "result")
	if out.IsEmpty() {
	    // "result" has no underscore
	}

# Diagnostics

[Evaluator.Apply] runs the same validation and returns the reason instead of
flattening it:

	ev := virtualcolumn.NewEvaluator()
	_, err := ev.Apply(t, "a+b-c", "new_col")
	virtualcolumn.KindOf(err)                  // KindMalformedRule
	errors.Is(err, virtualcolumn.ErrMalformedRule) // true

# Validation Order

The stages run in a fixed order and stop at the first failure:

 1. whitespace around the operator is removed
 2. the target name must be non-empty, contain an underscore and no
    operator or whitespace characters
 3. the rule must contain exactly one operator, not first or last, and not
    next to another operator
 4. both operands must be well-formed column names
 5. both operands must exist in the table
 6. the target must not be an operand or, unless overwriting is enabled, an
    existing column

Operand syntax is always checked before any column lookup.

# Numeric Types

Columns are int64 or float64. Two int columns give an int column; any float
operand gives a float column. Integer arithmetic wraps around on overflow
like Go int64 arithmetic.
*/
package virtualcolumn
