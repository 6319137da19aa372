// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package config loads settings for the vcol command.

Settings are resolved in three layers, each overriding the previous one:

 1. Built-in defaults (see Default).
 2. A YAML file. An explicit path must exist; without one, vcol/config.yaml is
    searched for in the XDG config directories and skipped if absent.
 3. Environment variables with the VCOL_ prefix.

Example file:

	log_level: debug
	log_format: text
	allow_overwrite: true
	max_rule_length: 256
	cost_limit: 1000

Environment variables:

	VCOL_LOG_LEVEL         debug, info, warn or error
	VCOL_LOG_FORMAT        json or text
	VCOL_ALLOW_OVERWRITE   any value accepted by strconv.ParseBool
	VCOL_MAX_RULE_LENGTH   non-negative integer, 0 disables the limit
	VCOL_COST_LIMIT        positive integer, CEL runtime cost limit per row

The resolved Config converts into logging and virtualcolumn options:

	cfg, err := config.Load(path, &env.OSReader{})
	if err != nil {
		return err
	}
	logger := logging.New(cfg.LoggingOptions()...)
	ev := virtualcolumn.NewEvaluator(cfg.EvaluatorOptions(logger)...)
*/
package config
