// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/toster3d/Recrutitment-task/cel"
	"github.com/toster3d/Recrutitment-task/env"
	"github.com/toster3d/Recrutitment-task/logging"
	"github.com/toster3d/Recrutitment-task/virtualcolumn"
)

// DefaultFile is the config file path searched for relative to the XDG
// config directories.
const DefaultFile = "vcol/config.yaml"

// EnvPrefix is prepended to every environment variable name read by Load.
const EnvPrefix = "VCOL_"

// Environment variable names, without EnvPrefix.
const (
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvAllowOverwrite = "ALLOW_OVERWRITE"
	EnvMaxRuleLength  = "MAX_RULE_LENGTH"
	EnvCostLimit      = "COST_LIMIT"
)

var (
	// ErrInvalidConfig is returned when the resolved configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidEnv is returned when an environment override cannot be parsed.
	ErrInvalidEnv = errors.New("invalid environment variable")
)

// Config holds the settings of the vcol command.
type Config struct {
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"`
	AllowOverwrite bool   `yaml:"allow_overwrite"`
	MaxRuleLength  int    `yaml:"max_rule_length"`
	CostLimit      uint64 `yaml:"cost_limit"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:      "info",
		LogFormat:     logging.FormatJSON.String(),
		MaxRuleLength: virtualcolumn.DefaultMaxRuleLength,
		CostLimit:     cel.DefaultCostLimit,
	}
}

// Load resolves the configuration from defaults, the YAML file at path (or
// the XDG default file when path is empty) and environment overrides read
// through reader.
func Load(path string, reader env.Reader) (*Config, error) {
	return load(path, reader, xdg.SearchConfigFile)
}

func load(path string, reader env.Reader, search func(string) (string, error)) (*Config, error) {
	cfg := Default()

	if path == "" {
		// a missing default file is not an error
		if found, err := search(DefaultFile); err == nil {
			path = found
		}
	}

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.mergeEnv(env.Prefixed{Prefix: EnvPrefix, Reader: reader}); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv(vars env.Reader) error {
	if v := vars.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := vars.Getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	if v := vars.Getenv(EnvAllowOverwrite); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalidEnv, EnvPrefix, EnvAllowOverwrite, v)
		}
		c.AllowOverwrite = b
	}
	if v := vars.Getenv(EnvMaxRuleLength); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalidEnv, EnvPrefix, EnvMaxRuleLength, v)
		}
		c.MaxRuleLength = n
	}
	if v := vars.Getenv(EnvCostLimit); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalidEnv, EnvPrefix, EnvCostLimit, v)
		}
		c.CostLimit = n
	}
	return nil
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MaxRuleLength < 0 {
		return fmt.Errorf("%w: max_rule_length must not be negative, got %d", ErrInvalidConfig, c.MaxRuleLength)
	}
	if c.CostLimit == 0 {
		return fmt.Errorf("%w: cost_limit must be positive", ErrInvalidConfig)
	}
	return nil
}

// LoggingOptions converts the log settings into logging options.
// It assumes c has been validated.
func (c *Config) LoggingOptions() []logging.Option {
	level, _ := logging.ParseLevel(c.LogLevel)
	format, _ := logging.ParseFormat(c.LogFormat)
	return []logging.Option{logging.WithLevel(level), logging.WithFormat(format)}
}

// EvaluatorOptions converts the evaluator settings into virtualcolumn options.
func (c *Config) EvaluatorOptions(logger *slog.Logger) []virtualcolumn.Option {
	opts := []virtualcolumn.Option{
		virtualcolumn.WithOverwrite(c.AllowOverwrite),
		virtualcolumn.WithMaxRuleLength(c.MaxRuleLength),
		virtualcolumn.WithEngine(cel.NewEngine().WithCostLimit(c.CostLimit)),
	}
	if logger != nil {
		opts = append(opts, virtualcolumn.WithLogger(logger))
	}
	return opts
}
