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

// Package aggregation implements the built-in aggregators: sum, avg,
// count, min, max. Each aggregator's per-group state lives in a scratch
// row, and its per-row update step is itself an expression, evaluated
// against the concatenation of the input row and the scratch row and
// written back into the scratch row. This mirrors how the original
// crackdb engine's avg_agg and friends build their update step out of the
// same expression algebra the interpreter already evaluates, rather than
// hand-coding it in Go.
package aggregation

import (
	"fmt"

	"github.com/crackdb/crackdb/sql"
	"github.com/crackdb/crackdb/sql/types"
)

// base holds the bookkeeping every built-in aggregator shares: its name
// and argument expression. inputWidth is learned at Resolve time and used
// to offset buffer field references within the combined row.
type base struct {
	name       string
	arg        sql.Expression
	inputWidth int
}

func newBase(name string, arg sql.Expression) base {
	return base{name: name, arg: arg}
}

func (b *base) Name() string { return b.name }

func (b *base) Resolved() bool {
	return b.arg.Resolved()
}

func (b *base) String() string {
	return fmt.Sprintf("%s(%s)", b.name, b.arg.String())
}

func (b *base) Children() []sql.Expression {
	return []sql.Expression{b.arg}
}

func (b *base) resolve(inputSchema sql.Schema) {
	b.inputWidth = len(inputSchema)
}

// bufferRef builds a resolved reference to buffer slot i of schema,
// valid once resolve has recorded inputWidth.
func (b *base) bufferRef(schema sql.Schema, i int) sql.Expression {
	return &bufferFieldRef{index: b.inputWidth + i, typ: schema[i].Type, name: schema[i].Name}
}

// bufferFieldRef is a resolved field reference scoped to the combined
// input+scratch row the update step evaluates against; it never appears
// in a plan tree, only inside an aggregator's internal update expression.
type bufferFieldRef struct {
	name  string
	index int
	typ   types.DataType
}

func (f *bufferFieldRef) Resolved() bool             { return true }
func (f *bufferFieldRef) Type() types.DataType       { return f.typ }
func (f *bufferFieldRef) String() string             { return f.name }
func (f *bufferFieldRef) Children() []sql.Expression { return nil }

func (f *bufferFieldRef) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrUnknown.New("bufferFieldRef: WithChildren given children")
	}
	return f, nil
}

func (f *bufferFieldRef) Eval(ctx *sql.Context, row sql.Row) (sql.Literal, error) {
	return row.Get(f.index)
}

// runUpdate evaluates updateExpr (already built against the combined
// row's layout) and writes its result into scratch slot.
func runUpdate(ctx *sql.Context, updateExpr sql.Expression, input sql.Row, scratch sql.Row, slot int) (sql.Row, error) {
	combined := sql.NewCombinedRow(input, scratch)
	v, err := updateExpr.Eval(ctx, combined)
	if err != nil {
		return nil, err
	}
	next := scratch.Copy()
	if err := next.Set(slot, v); err != nil {
		return nil, err
	}
	return next, nil
}
