// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, so configuration loading can be tested without touching the process
environment.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	value := reader.Getenv("VCOL_LOG_LEVEL")

Prefixed scopes lookups to the variables of one tool:

	vars := env.Prefixed{Prefix: "VCOL_", Reader: &env.OSReader{}}
	level := vars.Getenv("LOG_LEVEL")

# Testing

A generated mock is available in the mocks sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Getenv("VCOL_LOG_LEVEL").Return("debug").AnyTimes()

	cfg, err := config.Load("", mock)
*/
package env
