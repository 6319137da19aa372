// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package exitcode provides error types carrying a process exit status.

Errors keep their intended exit status while travelling up the call stack, so
a command's main function can translate any returned error into a status in
one place.

# Basic Usage

	// Attach a status to an existing error
	err = exitcode.WithCode(err, exitcode.Usage)

# Extracting Exit Statuses

	code := exitcode.Code(err)
	// Returns the status of the first CodedError in the chain
	// Returns Failure (1) if no CodedError is found
	// Returns OK (0) if err is nil

# Main Function Example

	func main() {
		os.Exit(exitcode.Code(run(os.Args[1:])))
	}
*/
package exitcode
