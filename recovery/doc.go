// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package recovery turns panics in a unit of work into errors.
//
// Guard runs a function and, if it panics, logs the panic value with a stack
// trace and returns an error wrapping ErrPanic. This keeps a programming error
// in one batch entry from crashing the whole command without hiding it.
//
// # Basic Usage
//
//	err := recovery.Guard(logger, func() error {
//		out, err = manifest.Apply(ev, in)
//		return err
//	})
//	if errors.Is(err, recovery.ErrPanic) {
//		// a bug, not a rejected rule
//	}
package recovery
