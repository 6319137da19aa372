// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package column provides validation functions for column names.
package column

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Operators lists the characters that separate operands in a rule.
const Operators = "+-*"

// Separator is the character every target name must contain.
const Separator = "_"

// Sentinel errors for name validation.
var (
	// ErrEmptyName is returned for an empty name.
	ErrEmptyName = errors.New("column name cannot be empty")

	// ErrOperatorCharacter is returned when a name contains +, - or *.
	ErrOperatorCharacter = errors.New("column name cannot contain operator characters")

	// ErrWhitespace is returned when a name contains whitespace.
	ErrWhitespace = errors.New("column name cannot contain whitespace")

	// ErrMissingSeparator is returned when a target name has no underscore.
	ErrMissingSeparator = errors.New("target column name must contain an underscore")
)

// IsOperator reports whether r is one of the rule operator characters.
func IsOperator(r rune) bool {
	return strings.ContainsRune(Operators, r)
}

// ValidateSourceName validates a column name referenced by a rule.
func ValidateSourceName(name string) error {
	if name == "" {
		return ErrEmptyName
	}

	if strings.ContainsFunc(name, IsOperator) {
		return fmt.Errorf("%w: %q", ErrOperatorCharacter, name)
	}

	if strings.ContainsFunc(name, unicode.IsSpace) {
		return fmt.Errorf("%w: %q", ErrWhitespace, name)
	}

	return nil
}

// ValidateTargetName validates the name of a column to be created.
// It applies the source name rules and requires at least one underscore.
func ValidateTargetName(name string) error {
	if err := ValidateSourceName(name); err != nil {
		return err
	}

	if !strings.Contains(name, Separator) {
		return fmt.Errorf("%w: %q", ErrMissingSeparator, name)
	}

	return nil
}
