// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package virtualcolumn

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/toster3d/Recrutitment-task/cel"
	"github.com/toster3d/Recrutitment-task/logging"
	"github.com/toster3d/Recrutitment-task/rule"
	"github.com/toster3d/Recrutitment-task/table"
	"github.com/toster3d/Recrutitment-task/validation/column"
)

// DefaultMaxRuleLength is the longest rule accepted by a default Evaluator.
const DefaultMaxRuleLength = 10000

// Evaluator validates rules and computes virtual columns.
// It holds no per-call state and is safe for concurrent use.
type Evaluator struct {
	logger         *slog.Logger
	engine         *cel.Engine
	allowOverwrite bool
	maxRuleLength  int
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger rejections and results are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(ev *Evaluator) {
		ev.logger = logger
	}
}

// WithOverwrite controls whether a target naming an existing column, other
// than an operand, replaces that column in place. Rejected by default.
func WithOverwrite(allow bool) Option {
	return func(ev *Evaluator) {
		ev.allowOverwrite = allow
	}
}

// WithMaxRuleLength sets the longest accepted rule, in bytes.
// Zero or a negative value disables the limit.
func WithMaxRuleLength(n int) Option {
	return func(ev *Evaluator) {
		ev.maxRuleLength = n
	}
}

// WithEngine sets the CEL engine used to compute columns, for example one
// built with a custom cost limit.
func WithEngine(engine *cel.Engine) Option {
	return func(ev *Evaluator) {
		ev.engine = engine
	}
}

// NewEvaluator creates an Evaluator. By default it logs through
// logging.New, rejects collisions with existing columns and limits rules to
// DefaultMaxRuleLength bytes.
func NewEvaluator(opts ...Option) *Evaluator {
	ev := &Evaluator{
		maxRuleLength: DefaultMaxRuleLength,
	}
	for _, opt := range opts {
		opt(ev)
	}
	if ev.logger == nil {
		ev.logger = logging.New()
	}
	if ev.engine == nil {
		ev.engine = cel.NewEngine()
	}
	return ev
}

var defaultEvaluator = sync.OnceValue(func() *Evaluator { return NewEvaluator() })

// AddVirtualColumn returns a copy of t with a column named target computed
// from ruleText appended at the end, using a shared default Evaluator.
// On any validation failure it returns table.Empty().
func AddVirtualColumn(t *table.Table, ruleText, target string) *table.Table {
	return defaultEvaluator().AddVirtualColumn(t, ruleText, target)
}

// AddVirtualColumn returns a copy of t with a column named target computed
// from ruleText, or table.Empty() if validation fails. It panics if t is nil.
func (ev *Evaluator) AddVirtualColumn(t *table.Table, ruleText, target string) *table.Table {
	if t == nil {
		panic("virtualcolumn: AddVirtualColumn called with a nil table")
	}
	out, err := ev.Apply(t, ruleText, target)
	if err != nil {
		return table.Empty()
	}
	return out
}

// Apply validates ruleText and target against t and returns the extended
// table. Rejections are *Error values; see KindOf.
func (ev *Evaluator) Apply(t *table.Table, ruleText, target string) (*table.Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}

	if ev.maxRuleLength > 0 && len(ruleText) > ev.maxRuleLength {
		return nil, ev.reject(KindMalformedRule, ruleText, target,
			fmt.Errorf("rule length %d exceeds maximum of %d", len(ruleText), ev.maxRuleLength))
	}

	normalized := rule.Normalize(ruleText)

	if err := column.ValidateTargetName(target); err != nil {
		return nil, ev.reject(KindInvalidTargetName, ruleText, target, err)
	}

	r, err := rule.Parse(normalized)
	if err != nil {
		return nil, ev.reject(KindMalformedRule, ruleText, target, err)
	}

	left, err := t.Column(r.Left)
	if err != nil {
		return nil, ev.reject(KindUnknownColumn, ruleText, target, err)
	}
	right, err := t.Column(r.Right)
	if err != nil {
		return nil, ev.reject(KindUnknownColumn, ruleText, target, err)
	}

	if target == r.Left || target == r.Right {
		return nil, ev.reject(KindNameCollision, ruleText, target,
			fmt.Errorf("target %q is an operand of the rule", target))
	}
	replace := t.HasColumn(target)
	if replace && !ev.allowOverwrite {
		return nil, ev.reject(KindNameCollision, ruleText, target,
			fmt.Errorf("column %q already exists", target))
	}

	prg, err := ev.engine.Compile(r.Op, left.Kind(), right.Kind())
	if err != nil {
		return nil, ev.reject(KindEvaluation, ruleText, target, err)
	}
	col, err := prg.Apply(target, left, right)
	if err != nil {
		return nil, ev.reject(KindEvaluation, ruleText, target, err)
	}

	var out *table.Table
	if replace {
		out, err = t.ReplaceColumn(col)
	} else {
		out, err = t.WithColumn(col)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to assemble result table: %w", err)
	}

	ev.logger.Debug("virtual column added",
		"rule", r.String(),
		"target", target,
		"kind", col.Kind().String(),
		"rows", col.Len(),
		"replaced", replace,
	)
	return out, nil
}

func (ev *Evaluator) reject(kind Kind, ruleText, target string, err error) error {
	ev.logger.Debug("virtual column rejected",
		"rule", ruleText,
		"target", target,
		"kind", string(kind),
		"reason", err.Error(),
	)
	return newError(kind, ruleText, target, err)
}
