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

// Package function holds the built-in function and aggregator registry:
// the name-keyed table the ResolveFunctions analyzer rule and the
// PushDownAggregators rule both consult.
package function

import (
	"strings"

	"github.com/crackdb/crackdb/sql"
	"github.com/crackdb/crackdb/sql/expression"
	"github.com/crackdb/crackdb/sql/expression/function/aggregation"
	"github.com/crackdb/crackdb/sql/types"
)

// Aggregator is the method set every built-in aggregator satisfies.
// aggregation.Sum/Avg/Count/Min/Max implement it structurally; this
// package names the shape so PushDownAggregators and
// PruneGroupingsFromAggregators can recognize an aggregator by interface
// rather than a per-type switch.
type Aggregator interface {
	sql.Expression
	// Name is the aggregator's lowercase registry name, used for the
	// finalized column's display form.
	Name() string
	// ResultType is the aggregator's finalized result type, known once its
	// argument is resolved.
	ResultType() types.DataType
	// InitialRow builds the scratch row a new group starts with.
	InitialRow() (sql.Row, error)
	// BufferSchema is the scratch row's schema, merged with the input
	// schema when resolving the update step.
	BufferSchema() sql.Schema
	// Resolve binds the aggregator's buffer expression against
	// merge(inputSchema, BufferSchema()), computed once at physical setup.
	// Must run before Update.
	Resolve(inputSchema sql.Schema) error
	// Update evaluates the buffer expression against input and scratch and
	// returns the next scratch row.
	Update(ctx *sql.Context, input sql.Row, scratch sql.Row) (sql.Row, error)
	// Finalize reduces a finished scratch row to the aggregator's output
	// value.
	Finalize(scratch sql.Row) (sql.Literal, error)
}

// Entry is one registry row: a builder from parsed arguments to a resolved
// expression (a scalar Function, or an Aggregator — both satisfy
// sql.Expression), plus the is_aggregator flag PushDownAggregators and
// PruneGroupingsFromAggregators consult.
type Entry struct {
	Name         string
	IsAggregator bool
	Build        func(args []sql.Expression) (sql.Expression, error)
}

// Registry is a name -> Entry lookup table. The zero value is empty; use
// NewRegistry for the built-in set.
type Registry struct {
	entries map[string]Entry
}

// NewRegistry builds the registry of built-in aggregators. No scalar
// functions are registered.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]Entry)}
	r.registerAggregators()
	return r
}

// Lookup finds an entry by name, case-insensitively.
func (r *Registry) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[strings.ToLower(name)]
	return e, ok
}

// IsAggregator reports whether name identifies a registered aggregator.
func (r *Registry) IsAggregator(name string) bool {
	e, ok := r.Lookup(name)
	return ok && e.IsAggregator
}

// IsAggregatorExpr reports whether e is a resolved call to a registered
// aggregator.
func IsAggregatorExpr(e sql.Expression) bool {
	_, ok := e.(Aggregator)
	return ok
}

func (r *Registry) register(name string, isAgg bool, build func(args []sql.Expression) (sql.Expression, error)) {
	r.entries[name] = Entry{Name: name, IsAggregator: isAgg, Build: build}
}

func (r *Registry) registerAggregators() {
	r.register("sum", true, oneArgAgg(func(a sql.Expression) sql.Expression { return aggregation.NewSum(a) }))
	r.register("avg", true, oneArgAgg(func(a sql.Expression) sql.Expression { return aggregation.NewAvg(a) }))
	r.register("count", true, func(args []sql.Expression) (sql.Expression, error) {
		if len(args) != 1 {
			return nil, sql.ErrUnknown.New("count expects exactly one argument")
		}
		return aggregation.NewCount(args[0]), nil
	})
	r.register("min", true, oneArgAgg(func(a sql.Expression) sql.Expression { return aggregation.NewMin(a) }))
	r.register("max", true, oneArgAgg(func(a sql.Expression) sql.Expression { return aggregation.NewMax(a) }))
}

func oneArgAgg(ctor func(sql.Expression) sql.Expression) func([]sql.Expression) (sql.Expression, error) {
	return func(args []sql.Expression) (sql.Expression, error) {
		if len(args) != 1 {
			return nil, sql.ErrUnknown.New("aggregator expects exactly one argument")
		}
		if _, ok := args[0].(*expression.Wildcard); ok {
			return nil, sql.ErrUnknown.New("aggregator does not accept *")
		}
		return ctor(args[0]), nil
	}
}
