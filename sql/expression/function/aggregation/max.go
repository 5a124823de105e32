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

// Max reduces its argument by the internal max binary operator. Result
// type matches the argument's type; the scratch row is seeded at the
// argument type's minimum representable value.
type Max struct {
	base
	updateExpr sql.Expression
}

// NewMax builds the max(arg) aggregator.
func NewMax(arg sql.Expression) *Max {
	return &Max{base: newBase("max", arg)}
}

func (m *Max) Type() types.DataType { return m.arg.Type() }

func (m *Max) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrUnknown.New("max: expected exactly one child")
	}
	return NewMax(children[0]), nil
}

func (m *Max) Eval(ctx *sql.Context, row sql.Row) (sql.Literal, error) {
	return sql.Literal{}, sql.ErrInterpreting.New("max() is an aggregator, not a scalar expression")
}

func (m *Max) ResultType() types.DataType { return m.arg.Type() }

func (m *Max) BufferSchema() sql.Schema {
	return sql.NewSchema(sql.FieldInfo{Name: "max_acc", Type: m.arg.Type()})
}

func (m *Max) InitialRow() (sql.Row, error) {
	v, err := types.MinValue(m.arg.Type())
	if err != nil {
		return nil, err
	}
	return sql.NewRow(sql.NewLiteral(v, m.arg.Type())), nil
}

func (m *Max) Resolve(inputSchema sql.Schema) error {
	m.base.resolve(inputSchema)
	buf := m.BufferSchema()
	m.updateExpr = expression.NewBinaryOp(expression.Max, m.base.bufferRef(buf, 0), m.arg)
	return nil
}

func (m *Max) Update(ctx *sql.Context, input sql.Row, scratch sql.Row) (sql.Row, error) {
	return runUpdate(ctx, m.updateExpr, input, scratch, 0)
}

func (m *Max) Finalize(scratch sql.Row) (sql.Literal, error) {
	return scratch.Get(0)
}
