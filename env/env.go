// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import (
	"os"
	"strings"
)

// Reader defines an interface for environment variable access
type Reader interface {
	Getenv(key string) string
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// Prefixed reads variables that share a common prefix, such as "VCOL_".
// Values are returned with surrounding whitespace removed.
type Prefixed struct {
	Prefix string
	Reader Reader
}

// Getenv returns the value of Prefix+key.
func (p Prefixed) Getenv(key string) string {
	r := p.Reader
	if r == nil {
		r = &OSReader{}
	}
	return strings.TrimSpace(r.Getenv(p.Prefix + key))
}
