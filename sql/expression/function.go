// Copyright 2026 The CrackDB Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package expression

import (
	"fmt"
	"strings"

	"github.com/crackdb/crackdb/sql"
	"github.com/crackdb/crackdb/sql/types"
)

// UnresolvedFunction names a function call by name only; ResolveFunctions
// turns it into a Function by looking the name up in the registry.
type UnresolvedFunction struct {
	Name string
	Args []sql.Expression
}

// NewUnresolvedFunction builds a pending function-call node.
func NewUnresolvedFunction(name string, args ...sql.Expression) *UnresolvedFunction {
	return &UnresolvedFunction{Name: name, Args: args}
}

func (f *UnresolvedFunction) Resolved() bool             { return false }
func (f *UnresolvedFunction) Type() types.DataType       { return types.Unknown }

func (f *UnresolvedFunction) String() string {
	return formatCall(f.Name, f.Args)
}

func (f *UnresolvedFunction) Children() []sql.Expression { return f.Args }

func (f *UnresolvedFunction) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	return &UnresolvedFunction{Name: f.Name, Args: children}, nil
}

func (f *UnresolvedFunction) Eval(ctx *sql.Context, row sql.Row) (sql.Literal, error) {
	return sql.Literal{}, sql.ErrInterpreting.New("unresolved function: " + f.Name)
}

// EvalFunc is the signature a registered, non-aggregator builtin evaluates
// its resolved arguments with.
type EvalFunc func(ctx *sql.Context, args []sql.Literal) (sql.Literal, error)

// Function is a resolved function call: a name, its resolved arguments, the
// declared result type, and the Go closure that evaluates it. Aggregators
// never reach Function directly — PushDownAggregators replaces every
// aggregator call with a FieldRef before ResolveFunctions runs, so Function
// only ever represents a scalar builtin.
type Function struct {
	Name    string
	Args    []sql.Expression
	RetType types.DataType
	Fn      EvalFunc
}

// NewFunction builds a resolved function-call node.
func NewFunction(name string, retType types.DataType, fn EvalFunc, args ...sql.Expression) *Function {
	return &Function{Name: name, Args: args, RetType: retType, Fn: fn}
}

func (f *Function) Resolved() bool {
	for _, a := range f.Args {
		if !a.Resolved() {
			return false
		}
	}
	return true
}

func (f *Function) Type() types.DataType { return f.RetType }

func (f *Function) String() string {
	return formatCall(f.Name, f.Args)
}

func (f *Function) Children() []sql.Expression { return f.Args }

func (f *Function) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	return &Function{Name: f.Name, Args: children, RetType: f.RetType, Fn: f.Fn}, nil
}

func (f *Function) Eval(ctx *sql.Context, row sql.Row) (sql.Literal, error) {
	args := make([]sql.Literal, len(f.Args))
	for i, a := range f.Args {
		v, err := a.Eval(ctx, row)
		if err != nil {
			return sql.Literal{}, err
		}
		args[i] = v
	}
	return f.Fn(ctx, args)
}

func formatCall(name string, args []sql.Expression) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", strings.ToLower(name), strings.Join(parts, ", "))
}
