// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package cel compiles virtual column arithmetic into CEL programs.
package cel

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/toster3d/Recrutitment-task/rule"
	"github.com/toster3d/Recrutitment-task/table"
)

const (
	// LeftVar is the CEL variable bound to the left operand of a row.
	LeftVar = "lhs"

	// RightVar is the CEL variable bound to the right operand of a row.
	RightVar = "rhs"

	// DefaultCostLimit is the default runtime cost limit for a single row evaluation.
	DefaultCostLimit = 1000
)

// Engine compiles operator programs. It is safe for concurrent use.
type Engine struct {
	mu        sync.Mutex
	envs      map[kindPair]*envCache
	costLimit uint64
}

type kindPair struct {
	left, right table.Kind
}

// envCache holds a lazily-initialized CEL environment.
type envCache struct {
	once sync.Once
	env  *cel.Env
	err  error
}

// NewEngine creates an engine with the default cost limit.
func NewEngine() *Engine {
	return &Engine{
		envs:      make(map[kindPair]*envCache),
		costLimit: DefaultCostLimit,
	}
}

// WithCostLimit sets the runtime cost limit applied to every row evaluation.
// It must be called before the first Compile.
func (e *Engine) WithCostLimit(limit uint64) *Engine {
	e.costLimit = limit
	return e
}

// getEnv returns the environment declaring lhs and rhs with the given kinds,
// creating it on first access.
func (e *Engine) getEnv(left, right table.Kind) (*cel.Env, error) {
	key := kindPair{left, right}

	e.mu.Lock()
	cache, ok := e.envs[key]
	if !ok {
		cache = &envCache{}
		e.envs[key] = cache
	}
	e.mu.Unlock()

	cache.once.Do(func() {
		opts := []cel.EnvOption{
			cel.Variable(LeftVar, celType(left)),
			cel.Variable(RightVar, celType(right)),
		}
		if left == table.KindInt && right == table.KindInt {
			opts = append(opts,
				intFunction(rule.OpAdd, func(l, r int64) int64 { return l + r }),
				intFunction(rule.OpSub, func(l, r int64) int64 { return l - r }),
				intFunction(rule.OpMul, func(l, r int64) int64 { return l * r }),
			)
		}
		cache.env, cache.err = cel.NewEnv(opts...)
	})
	return cache.env, cache.err
}

// intFunctionNames maps operators to the CEL functions computing them over
// two ints. CEL's own int operators fail on overflow; these wrap around like
// Go's int64 arithmetic.
var intFunctionNames = map[rule.Operator]string{
	rule.OpAdd: "int_add",
	rule.OpSub: "int_sub",
	rule.OpMul: "int_mul",
}

func intFunction(op rule.Operator, fn func(l, r int64) int64) cel.EnvOption {
	name := intFunctionNames[op]
	return cel.Function(name,
		cel.Overload(name+"_int_int", []*cel.Type{cel.IntType, cel.IntType}, cel.IntType,
			cel.BinaryBinding(func(lhs, rhs ref.Val) ref.Val {
				l, lok := lhs.(types.Int)
				r, rok := rhs.(types.Int)
				if !lok || !rok {
					return types.NewErr("%s: expected int operands, got %s and %s", name, lhs.Type().TypeName(), rhs.Type().TypeName())
				}
				return types.Int(fn(int64(l), int64(r)))
			}),
		),
	)
}

func celType(k table.Kind) *cel.Type {
	if k == table.KindFloat {
		return cel.DoubleType
	}
	return cel.IntType
}

// ResultKind returns the kind of the column produced from operands of the given kinds.
func ResultKind(left, right table.Kind) table.Kind {
	if left == table.KindInt && right == table.KindInt {
		return table.KindInt
	}
	return table.KindFloat
}

// Expression renders the CEL source for op applied to operands of the given kinds.
// Two int operands use the wrapping int functions; otherwise the native
// double operators are used.
func Expression(op rule.Operator, left, right table.Kind) string {
	lhs, rhs := LeftVar, RightVar
	if left == table.KindInt && right == table.KindInt {
		return intFunctionNames[op] + "(" + lhs + ", " + rhs + ")"
	}
	if left != right {
		if left == table.KindInt {
			lhs = "double(" + lhs + ")"
		} else {
			rhs = "double(" + rhs + ")"
		}
	}
	return lhs + " " + op.Symbol() + " " + rhs
}

// Compile builds the program computing op over operands of the given kinds.
//
// Returns ErrUnsupportedOperator for operators outside +, - and *, or an
// error wrapping ErrCompile if the generated expression does not compile.
func (e *Engine) Compile(op rule.Operator, left, right table.Kind) (*Program, error) {
	if _, ok := rule.ParseOperator(rune(op)); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOperator, op)
	}

	env, err := e.getEnv(left, right)
	if err != nil {
		return nil, fmt.Errorf("failed to get CEL environment: %w", err)
	}

	source := Expression(op, left, right)
	program, err := e.compileSource(env, source)
	if err != nil {
		return nil, err
	}

	return &Program{
		source:  source,
		program: program,
		left:    left,
		right:   right,
		result:  ResultKind(left, right),
	}, nil
}

func (e *Engine) compileSource(env *cel.Env, source string) (cel.Program, error) {
	checkedAst, issues := env.Compile(source)
	if issues.Err() != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrCompile, source, issues.Err())
	}

	program, err := env.Program(checkedAst, cel.CostLimit(e.costLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL program for %q: %w", source, err)
	}
	return program, nil
}

// Program is a compiled operator ready to be applied to columns.
type Program struct {
	source  string
	program cel.Program
	left    table.Kind
	right   table.Kind
	result  table.Kind
}

// Source returns the CEL expression the program was compiled from.
func (p *Program) Source() string {
	return p.source
}

// ResultKind returns the kind of the values the program produces.
func (p *Program) ResultKind() table.Kind {
	return p.result
}

// Eval evaluates the program for a single pair of operand values.
// The result is an int64 or a float64 depending on ResultKind.
func (p *Program) Eval(lhs, rhs any) (any, error) {
	return p.eval(map[string]any{LeftVar: lhs, RightVar: rhs})
}

func (p *Program) eval(vars map[string]any) (any, error) {
	out, _, err := p.program.Eval(vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEvaluation, err)
	}

	v := out.Value()
	switch p.result {
	case table.KindInt:
		if _, ok := v.(int64); !ok {
			return nil, fmt.Errorf("%w: expected int64, got %T", ErrInvalidResult, v)
		}
	case table.KindFloat:
		if _, ok := v.(float64); !ok {
			return nil, fmt.Errorf("%w: expected float64, got %T", ErrInvalidResult, v)
		}
	}
	return v, nil
}

// Apply evaluates the program row by row over left and right and returns the
// resulting column under name. Rows are aligned by position.
func (p *Program) Apply(name string, left, right *table.Column) (*table.Column, error) {
	if left.Kind() != p.left || right.Kind() != p.right {
		return nil, fmt.Errorf("%w: program expects (%s, %s), got (%s, %s)",
			ErrOperandMismatch, p.left, p.right, left.Kind(), right.Kind())
	}
	if left.Len() != right.Len() {
		return nil, fmt.Errorf("%w: operand lengths %d and %d differ",
			ErrOperandMismatch, left.Len(), right.Len())
	}

	n := left.Len()
	vars := make(map[string]any, 2)

	if p.result == table.KindInt {
		values := make([]int64, n)
		for i := range n {
			vars[LeftVar], vars[RightVar] = left.Value(i), right.Value(i)
			v, err := p.eval(vars)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			values[i] = v.(int64)
		}
		return table.NewIntColumn(name, values...), nil
	}

	values := make([]float64, n)
	for i := range n {
		vars[LeftVar], vars[RightVar] = left.Value(i), right.Value(i)
		v, err := p.eval(vars)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		values[i] = v.(float64)
	}
	return table.NewFloatColumn(name, values...), nil
}
