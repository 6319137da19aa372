// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package tableio reads tables from CSV and JSON Lines and writes them as CSV.
//
// Only numeric data is supported. A column is read as int when every value
// is an integer and as float otherwise; any other value is an error.
package tableio
