// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package tableio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/toster3d/Recrutitment-task/table"
)

// MaxLineSize is the longest JSON Lines record ReadJSONL accepts.
const MaxLineSize = 1 << 20

// ReadJSONL reads one JSON object per line. The keys of the first object, in
// document order, become the columns; keys that first appear later are
// ignored. Blank lines are skipped.
func ReadJSONL(r io.Reader) (*table.Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineSize)

	var names []string
	var values [][]gjson.Result

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !gjson.Valid(line) {
			return nil, fmt.Errorf("%w: line %d", ErrInvalidJSON, lineNo)
		}
		obj := gjson.Parse(line)
		if !obj.IsObject() {
			return nil, fmt.Errorf("%w: line %d", ErrInvalidJSON, lineNo)
		}

		fields := make(map[string]gjson.Result)
		obj.ForEach(func(key, value gjson.Result) bool {
			fields[key.String()] = value
			return true
		})

		if names == nil {
			names = make([]string, 0, len(fields))
			obj.ForEach(func(key, _ gjson.Result) bool {
				names = append(names, key.String())
				return true
			})
			values = make([][]gjson.Result, len(names))
		}

		for i, name := range names {
			v, ok := fields[name]
			if !ok {
				return nil, fmt.Errorf("%w: %q on line %d", ErrMissingField, name, lineNo)
			}
			if v.Type != gjson.Number {
				return nil, fmt.Errorf("%w: column %q line %d: %s", ErrNonNumeric, name, lineNo, v.Raw)
			}
			values[i] = append(values[i], v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read JSON Lines: %w", err)
	}

	cols := make([]*table.Column, len(names))
	for i, name := range names {
		cols[i] = jsonColumn(name, values[i])
	}
	return table.New(cols...)
}

// jsonColumn builds an int column when every number is written as an
// integer that fits in int64, else a float column.
func jsonColumn(name string, vals []gjson.Result) *table.Column {
	ints := make([]int64, len(vals))
	for i, v := range vals {
		n, err := strconv.ParseInt(v.Raw, 10, 64)
		if err != nil {
			return table.NewFloatColumn(name, floats(vals)...)
		}
		ints[i] = n
	}
	return table.NewIntColumn(name, ints...)
}

func floats(vals []gjson.Result) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = v.Float()
	}
	return out
}
