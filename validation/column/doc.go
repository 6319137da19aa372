// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package column provides validation functions for column names used in
virtual column rules.

Two kinds of names are checked. Source names are the operands of a rule and
must exist in the table being extended. Target names are the names of the
columns a rule creates.

# Source Names

	if err := column.ValidateSourceName("label_one"); err != nil {
		// Handle invalid operand
	}

Valid source names must:
  - Be non-empty
  - Not contain an operator character (+, - or *)
  - Not contain whitespace

# Target Names

Target names follow the source rules and must also contain at least one
underscore, which marks them as snake_case:

	column.ValidateTargetName("sum_result") // nil
	column.ValidateTargetName("result")     // ErrMissingSeparator

# Examples

Valid target names:

	"sum_result"
	"label_three"
	"_x"

Invalid target names:

	""           // empty
	"result"     // no underscore
	"a_b+c"      // operator character
	"new result" // whitespace
*/
package column
