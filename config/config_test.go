// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/toster3d/Recrutitment-task/cel"
	"github.com/toster3d/Recrutitment-task/env/mocks"
	"github.com/toster3d/Recrutitment-task/table"
	"github.com/toster3d/Recrutitment-task/virtualcolumn"
)

// mockEnv returns a reader serving vars by their unprefixed name.
func mockEnv(t *testing.T, vars map[string]string) *mocks.MockReader {
	t.Helper()
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)
	for _, key := range []string{EnvLogLevel, EnvLogFormat, EnvAllowOverwrite, EnvMaxRuleLength, EnvCostLimit} {
		reader.EXPECT().Getenv(EnvPrefix + key).Return(vars[key]).AnyTimes()
	}
	return reader
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func notFound(string) (string, error) {
	return "", errors.New("not found")
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := load("", mockEnv(t, nil), notFound)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, virtualcolumn.DefaultMaxRuleLength, cfg.MaxRuleLength)
	assert.False(t, cfg.AllowOverwrite)
	assert.Equal(t, uint64(cel.DefaultCostLimit), cfg.CostLimit)
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
log_level: debug
log_format: text
allow_overwrite: true
max_rule_length: 64
cost_limit: 500
`)

	cfg, err := load(path, mockEnv(t, nil), notFound)
	require.NoError(t, err)
	assert.Equal(t, Config{
		LogLevel:       "debug",
		LogFormat:      "text",
		AllowOverwrite: true,
		MaxRuleLength:  64,
		CostLimit:      500,
	}, *cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := load(writeFile(t, "log_format: text\n"), mockEnv(t, nil), notFound)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, virtualcolumn.DefaultMaxRuleLength, cfg.MaxRuleLength)
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Parallel()

	cfg, err := load(writeFile(t, ""), mockEnv(t, nil), notFound)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoad_SearchedFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "allow_overwrite: true\n")
	search := func(rel string) (string, error) {
		assert.Equal(t, DefaultFile, rel)
		return path, nil
	}

	cfg, err := load("", mockEnv(t, nil), search)
	require.NoError(t, err)
	assert.True(t, cfg.AllowOverwrite)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "log_level: debug\nallow_overwrite: true\n")
	reader := mockEnv(t, map[string]string{
		EnvLogLevel:       "warn",
		EnvAllowOverwrite: "false",
		EnvMaxRuleLength:  "0",
		EnvCostLimit:      "2000",
	})

	cfg, err := load(path, reader, notFound)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.AllowOverwrite)
	assert.Zero(t, cfg.MaxRuleLength)
	assert.Equal(t, uint64(2000), cfg.CostLimit)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		vars    map[string]string
		wantErr error
	}{
		{
			name:    "bad bool in env",
			vars:    map[string]string{EnvAllowOverwrite: "sometimes"},
			wantErr: ErrInvalidEnv,
		},
		{
			name:    "bad int in env",
			vars:    map[string]string{EnvMaxRuleLength: "ten"},
			wantErr: ErrInvalidEnv,
		},
		{
			name:    "negative cost limit in env",
			vars:    map[string]string{EnvCostLimit: "-5"},
			wantErr: ErrInvalidEnv,
		},
		{
			name:    "zero cost limit",
			file:    "cost_limit: 0\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "unknown level",
			vars:    map[string]string{EnvLogLevel: "verbose"},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "unknown format in file",
			file:    "log_format: xml\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "negative rule length",
			file:    "max_rule_length: -1\n",
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := ""
			if tt.file != "" {
				path = writeFile(t, tt.file)
			}
			_, err := load(path, mockEnv(t, tt.vars), notFound)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_FileErrors(t *testing.T) {
	t.Parallel()

	_, err := load(filepath.Join(t.TempDir(), "missing.yaml"), mockEnv(t, nil), notFound)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = load(writeFile(t, "log_colour: red\n"), mockEnv(t, nil), notFound)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Len(t, cfg.LoggingOptions(), 2)
	assert.Len(t, cfg.EvaluatorOptions(nil), 3)

	cfg.AllowOverwrite = true
	ev := virtualcolumn.NewEvaluator(cfg.EvaluatorOptions(nil)...)
	in := table.MustNew(table.NewIntColumn("a", 1, 2), table.NewIntColumn("a_b", 0, 0))

	out, err := ev.Apply(in, "a * a", "a_b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a_b"}, out.ColumnNames())
}
