// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logging provides a pre-configured [log/slog.Logger] factory with
consistent defaults for the vcol library and command.

The evaluator, the manifest runner and the CLI all log through a
[*log/slog.Logger]. This package fixes the timestamp format, the output
destination and the handler configuration in one place.

# Defaults

  - Format: JSON ([FormatJSON]) via [log/slog.JSONHandler]
  - Level: INFO ([log/slog.LevelInfo])
  - Output: [os.Stderr]
  - Timestamps: [time.RFC3339]

Rule rejections are logged at DEBUG, so they stay silent under the default
level.

# Basic Usage

	logger := logging.New()
	logger.Info("table loaded", "rows", 3)

# Configuration Strings

Configuration files and environment variables carry the level and format as
strings. [ParseLevel] and [ParseFormat] translate them:

	level, err := logging.ParseLevel("debug")
	format, err := logging.ParseFormat("text")
	logger := logging.New(logging.WithLevel(level), logging.WithFormat(format))

# Testing

Inject a buffer to capture log output in tests:

	var buf bytes.Buffer
	logger := logging.New(logging.WithOutput(&buf), logging.WithLevel(slog.LevelDebug))
*/
package logging
