// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/toster3d/Recrutitment-task/env/mocks"
	"github.com/toster3d/Recrutitment-task/exitcode"
)

type fixture struct {
	dir    string
	input  string
	config string
}

func newFixture(t *testing.T, configYAML string) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:    dir,
		input:  filepath.Join(dir, "input.csv"),
		config: filepath.Join(dir, "config.yaml"),
	}
	require.NoError(t, os.WriteFile(f.input, []byte("a,b,old_total\n1,10,0\n2,20,0\n3,30,0\n"), 0o600))
	require.NoError(t, os.WriteFile(f.config, []byte(configYAML), 0o600))
	return f
}

func emptyEnv(t *testing.T, vars map[string]string) *mocks.MockReader {
	t.Helper()
	reader := mocks.NewMockReader(gomock.NewController(t))
	reader.EXPECT().Getenv(gomock.Any()).DoAndReturn(func(key string) string {
		return vars[key]
	}).AnyTimes()
	return reader
}

func runCLI(t *testing.T, vars map[string]string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr, emptyEnv(t, vars))
	return code, stdout.String(), stderr.String()
}

func TestRun_Rule(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")
	code, stdout, _ := runCLI(t, nil,
		"-config", f.config, "-input", f.input, "-rule", "a + b", "-target", "sum_result")

	assert.Equal(t, exitcode.OK, code)
	assert.Equal(t, "a,b,old_total,sum_result\n1,10,0,11\n2,20,0,22\n3,30,0,33\n", stdout)
}

func TestRun_RejectedRuleWritesEmptyTable(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")
	code, stdout, stderr := runCLI(t, nil,
		"-config", f.config, "-input", f.input, "-rule", "a + b", "-target", "result")

	assert.Equal(t, exitcode.OK, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "writing empty table")
}

func TestRun_StrictRejection(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")
	code, stdout, stderr := runCLI(t, nil,
		"-config", f.config, "-input", f.input, "-rule", "a + z", "-target", "sum_result", "-strict")

	assert.Equal(t, exitcode.Failure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `"kind":"unknown_column"`)
}

func TestRun_Overwrite(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")
	args := []string{"-config", f.config, "-input", f.input, "-rule", "a*b", "-target", "old_total", "-strict"}

	code, _, _ := runCLI(t, nil, args...)
	assert.Equal(t, exitcode.Failure, code)

	code, stdout, _ := runCLI(t, nil, append(args, "-overwrite")...)
	assert.Equal(t, exitcode.OK, code)
	assert.Equal(t, "a,b,old_total\n1,10,10\n2,20,40\n3,30,90\n", stdout)

	code, _, _ = runCLI(t, map[string]string{"VCOL_ALLOW_OVERWRITE": "true"}, args...)
	assert.Equal(t, exitcode.OK, code)
}

func TestRun_ConfigFileSettings(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "log_level: debug\nlog_format: text\nmax_rule_length: 3\n")
	code, stdout, stderr := runCLI(t, nil,
		"-config", f.config, "-input", f.input, "-rule", "a + b", "-target", "sum_result")

	assert.Equal(t, exitcode.OK, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `msg="input table loaded"`)
	assert.Contains(t, stderr, "exceeds maximum of 3")
}

func TestRun_CostLimitFromEnv(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")
	code, stdout, stderr := runCLI(t, map[string]string{"VCOL_COST_LIMIT": "1"},
		"-config", f.config, "-input", f.input, "-rule", "a + b", "-target", "sum_result", "-strict")

	assert.Equal(t, exitcode.Failure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `"kind":"evaluation"`)
}

func TestRun_Manifest(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")
	manifestPath := filepath.Join(f.dir, "columns.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(`
columns:
  - name: sum_result
    rule: a + b
  - name: double_sum
    rule: sum_result + sum_result
`), 0o600))
	output := filepath.Join(f.dir, "out.csv")

	code, stdout, _ := runCLI(t, nil,
		"-config", f.config, "-input", f.input, "-manifest", manifestPath, "-output", output)
	require.Equal(t, exitcode.OK, code)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "a,b,old_total,sum_result,double_sum\n1,10,0,11,22\n2,20,0,22,44\n3,30,0,33,66\n", string(data))
}

func TestRun_InvalidManifestStrict(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")
	manifestPath := filepath.Join(f.dir, "columns.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte("columns:\n  - name: total\n    rule: a+b\n"), 0o600))

	code, _, stderr := runCLI(t, nil,
		"-config", f.config, "-input", f.input, "-manifest", manifestPath, "-strict")
	assert.Equal(t, exitcode.Failure, code)
	assert.Contains(t, stderr, "invalid manifest")
}

func TestRun_ManifestErrorsFailWithoutStrict(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")
	invalid := filepath.Join(f.dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("columns:\n  - name: total\n    rule: a+b\n"), 0o600))

	tests := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{"missing file", filepath.Join(f.dir, "none.yaml"), "failed to read manifest"},
		{"invalid manifest", invalid, "invalid manifest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, stdout, stderr := runCLI(t, nil,
				"-config", f.config, "-input", f.input, "-manifest", tt.manifest)
			assert.Equal(t, exitcode.Failure, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.wantErr)
			assert.NotContains(t, stderr, "writing empty table")
		})
	}
}

func TestRun_ManifestRejectedColumnWritesEmptyTable(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")
	manifestPath := filepath.Join(f.dir, "columns.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte("columns:\n  - name: sum_result\n    rule: a + z\n"), 0o600))

	code, stdout, stderr := runCLI(t, nil,
		"-config", f.config, "-input", f.input, "-manifest", manifestPath)
	assert.Equal(t, exitcode.OK, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "writing empty table")
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")

	tests := []struct {
		name string
		vars map[string]string
		args []string
		want int
	}{
		{"no input", nil, []string{"-rule", "a+b"}, exitcode.Usage},
		{"no rule or manifest", nil, []string{"-input", f.input}, exitcode.Usage},
		{"manifest and rule", nil, []string{"-input", f.input, "-rule", "a+b", "-manifest", "m.yaml"}, exitcode.Usage},
		{"positional argument", nil, []string{"-input", f.input, "-rule", "a+b", "extra"}, exitcode.Usage},
		{"unknown flag", nil, []string{"-input", f.input, "-colour"}, exitcode.Usage},
		{"missing input file", nil, []string{"-config", f.config, "-input", filepath.Join(f.dir, "none.csv"), "-rule", "a+b"}, exitcode.Failure},
		{"bad env", map[string]string{"VCOL_LOG_LEVEL": "loud"}, []string{"-config", f.config, "-input", f.input, "-rule", "a+b"}, exitcode.Failure},
		{"missing config file", nil, []string{"-config", filepath.Join(f.dir, "none.yaml"), "-input", f.input, "-rule", "a+b"}, exitcode.Failure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, _, _ := runCLI(t, tt.vars, tt.args...)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCLI(t, nil, "-version")
	assert.Equal(t, exitcode.OK, code)
	assert.Equal(t, "vcol dev\n", stdout)
}
