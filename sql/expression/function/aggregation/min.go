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

package aggregation

import (
	"github.com/crackdb/crackdb/sql"
	"github.com/crackdb/crackdb/sql/expression"
	"github.com/crackdb/crackdb/sql/types"
)

// Min reduces its argument by the internal min binary operator. Result
// type matches the argument's type; the scratch row is seeded at the
// argument type's maximum representable value.
type Min struct {
	base
	updateExpr sql.Expression
}

// NewMin builds the min(arg) aggregator.
func NewMin(arg sql.Expression) *Min {
	return &Min{base: newBase("min", arg)}
}

func (m *Min) Type() types.DataType { return m.arg.Type() }

func (m *Min) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrUnknown.New("min: expected exactly one child")
	}
	return NewMin(children[0]), nil
}

func (m *Min) Eval(ctx *sql.Context, row sql.Row) (sql.Literal, error) {
	return sql.Literal{}, sql.ErrInterpreting.New("min() is an aggregator, not a scalar expression")
}

func (m *Min) ResultType() types.DataType { return m.arg.Type() }

func (m *Min) BufferSchema() sql.Schema {
	return sql.NewSchema(sql.FieldInfo{Name: "min_acc", Type: m.arg.Type()})
}

func (m *Min) InitialRow() (sql.Row, error) {
	v, err := types.MaxValue(m.arg.Type())
	if err != nil {
		return nil, err
	}
	return sql.NewRow(sql.NewLiteral(v, m.arg.Type())), nil
}

func (m *Min) Resolve(inputSchema sql.Schema) error {
	m.base.resolve(inputSchema)
	buf := m.BufferSchema()
	m.updateExpr = expression.NewBinaryOp(expression.Min, m.base.bufferRef(buf, 0), m.arg)
	return nil
}

func (m *Min) Update(ctx *sql.Context, input sql.Row, scratch sql.Row) (sql.Row, error) {
	return runUpdate(ctx, m.updateExpr, input, scratch, 0)
}

func (m *Min) Finalize(scratch sql.Row) (sql.Literal, error) {
	return scratch.Get(0)
}
