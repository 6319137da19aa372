// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package manifest describes a batch of virtual columns in a YAML file and
applies them to a table in order.

# Format

	columns:
	  - name: sum_result
	    rule: a + b
	  - name: scaled_sum
	    rule: sum_result * c

Each entry names the column to create and the rule computing it. Entries are
applied top to bottom, so a rule may reference a column created by an earlier
entry.

# Validation

Parse checks the document against an embedded JSON Schema. Validate then
checks every entry without a table: the target name, the rule syntax and
duplicate targets. All problems found by Validate are reported together.
Column existence can only be checked by Apply.
*/
package manifest
