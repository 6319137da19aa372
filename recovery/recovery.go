// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package recovery

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// ErrPanic is wrapped by the error Guard returns after a recovered panic.
var ErrPanic = errors.New("recovered from panic")

// Guard calls fn and returns its error. If fn panics, the panic is logged at
// error level on logger, when non-nil, and returned as an error wrapping
// ErrPanic.
func Guard(logger *slog.Logger, fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if logger != nil {
			logger.Error("recovered from panic",
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
		}
		if rerr, ok := r.(error); ok {
			err = fmt.Errorf("%w: %w", ErrPanic, rerr)
			return
		}
		err = fmt.Errorf("%w: %v", ErrPanic, r)
	}()
	return fn()
}
