// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/toster3d/Recrutitment-task/rule"
	"github.com/toster3d/Recrutitment-task/table"
	"github.com/toster3d/Recrutitment-task/validation/column"
	"github.com/toster3d/Recrutitment-task/virtualcolumn"
)

const schemaFile = "data/manifest.schema.json"

//go:embed data/manifest.schema.json
var embeddedSchemaFS embed.FS

// Column defines one virtual column.
type Column struct {
	Name string `yaml:"name" json:"name"`
	Rule string `yaml:"rule" json:"rule"`
}

// Manifest is an ordered list of virtual columns.
type Manifest struct {
	Columns []Column `yaml:"columns" json:"columns"`
}

// Load reads and parses the manifest file at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a YAML manifest and validates it against the manifest schema.
func Parse(data []byte) (*Manifest, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	doc, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert manifest to JSON: %w", err)
	}
	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return &m, nil
}

func validateSchema(doc []byte) error {
	schemaData, err := embeddedSchemaFS.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", schemaFile, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return formatNumberedErrors(msgs)
}

// Validate checks every entry's target name and rule syntax, and that no two
// entries create the same column. All problems are returned together as a
// *multierror.Error of *EntryError values.
func (m *Manifest) Validate() error {
	var result *multierror.Error
	seen := make(map[string]int, len(m.Columns))

	for i, c := range m.Columns {
		if err := column.ValidateTargetName(c.Name); err != nil {
			result = multierror.Append(result, &EntryError{Index: i, Name: c.Name, Err: err})
		}
		if _, err := rule.Parse(rule.Normalize(c.Rule)); err != nil {
			result = multierror.Append(result, &EntryError{Index: i, Name: c.Name, Err: err})
		}
		if first, ok := seen[c.Name]; ok {
			result = multierror.Append(result, &EntryError{
				Index: i,
				Name:  c.Name,
				Err:   fmt.Errorf("%w: also defined by column %d", ErrDuplicateTarget, first),
			})
			continue
		}
		seen[c.Name] = i
	}

	return result.ErrorOrNil()
}

// Apply adds every column to t in order and returns the final table. The
// first rejected entry aborts the batch with an *EntryError wrapping the
// evaluator's error. t is never modified.
func (m *Manifest) Apply(ev *virtualcolumn.Evaluator, t *table.Table) (*table.Table, error) {
	if t == nil {
		return nil, virtualcolumn.ErrNilTable
	}
	out := t
	for i, c := range m.Columns {
		next, err := ev.Apply(out, c.Rule, c.Name)
		if err != nil {
			return nil, &EntryError{Index: i, Name: c.Name, Err: err}
		}
		out = next
	}
	return out, nil
}
