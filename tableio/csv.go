// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package tableio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/toster3d/Recrutitment-task/table"
)

// ReadCSV reads a table whose first record holds the column names.
// Input with no records yields table.Empty().
func ReadCSV(r io.Reader) (*table.Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return table.Empty(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cells := make([][]string, len(header))
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		for i, cell := range record {
			cells[i] = append(cells[i], strings.TrimSpace(cell))
		}
	}

	cols := make([]*table.Column, len(header))
	for i, name := range header {
		col, err := inferColumn(strings.TrimSpace(name), cells[i])
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	return table.New(cols...)
}

// inferColumn builds an int column if every cell is an integer, else a float
// column. Row numbers in errors count data rows from 1.
func inferColumn(name string, cells []string) (*table.Column, error) {
	ints := make([]int64, len(cells))
	isInt := true
	for i, cell := range cells {
		v, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			isInt = false
			break
		}
		ints[i] = v
	}
	if isInt {
		return table.NewIntColumn(name, ints...), nil
	}

	floats := make([]float64, len(cells))
	for i, cell := range cells {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q row %d: %q", ErrNonNumeric, name, i+1, cell)
		}
		floats[i] = v
	}
	return table.NewFloatColumn(name, floats...), nil
}

// WriteCSV writes t with a header record. Floats use the shortest
// representation that round-trips. An empty table writes nothing.
func WriteCSV(w io.Writer, t *table.Table) error {
	if t.IsEmpty() {
		return nil
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(t.ColumnNames()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	cols := t.Columns()
	record := make([]string, len(cols))
	for row := range t.NumRows() {
		for i, col := range cols {
			record[i] = formatValue(col, row)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", row+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatValue(col *table.Column, row int) string {
	if col.Kind() == table.KindInt {
		return strconv.FormatInt(col.Int(row), 10)
	}
	return strconv.FormatFloat(col.Float(row), 'g', -1, 64)
}
