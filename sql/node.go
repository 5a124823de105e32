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

package sql

import "github.com/crackdb/crackdb/sql/types"

// Expression is the tagged expression tree node: Literal, UnresolvedFieldRef,
// FieldRef, Alias, BinaryOp, UnaryOp, UnresolvedFunction, Function, or
// Wildcard. Concrete variants live in sql/expression.
type Expression interface {
	// Resolved reports whether this expression and all its children are
	// free of UnresolvedFieldRef, UnresolvedFunction, Wildcard, and
	// Unknown types.
	Resolved() bool
	// Type is the expression's result type; Unknown until resolved.
	Type() types.DataType
	// String is the expression's display form, used for projection/
	// aggregator column names and for semantic-id computation.
	String() string
	Children() []Expression
	WithChildren(children ...Expression) (Expression, error)
	// Eval interprets the expression against a row.
	Eval(ctx *Context, row Row) (Literal, error)
}

// Node is the logical plan tree node: UnresolvedScan, Scan, Filter,
// Projection, Aggregator, Sort, Limit, or UnresolvedHaving. Concrete
// variants live in sql/plan.
type Node interface {
	// Resolved reports whether this node, its expressions, and all its
	// children are fully resolved.
	Resolved() bool
	Schema() Schema
	String() string
	Children() []Node
	WithChildren(children ...Node) (Node, error)
}

// ExpressionsContainer is implemented by plan nodes that carry expressions
// of their own (Filter's predicate, Projection's/Aggregator's expression
// lists, Sort's options) so that expression-level analyzer rules and the
// push-down rule can reach them without a type switch per node kind.
type ExpressionsContainer interface {
	Node
	Expressions() []Expression
	WithExpressions(exprs ...Expression) (Node, error)
}
