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

// Sum reduces its argument by addition. Result type matches the
// argument's type; the scratch row is a single slot seeded at zero.
type Sum struct {
	base
	updateExpr sql.Expression
}

// NewSum builds the sum(arg) aggregator.
func NewSum(arg sql.Expression) *Sum {
	return &Sum{base: newBase("sum", arg)}
}

func (s *Sum) Type() types.DataType { return s.arg.Type() }

func (s *Sum) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrUnknown.New("sum: expected exactly one child")
	}
	return NewSum(children[0]), nil
}

func (s *Sum) Eval(ctx *sql.Context, row sql.Row) (sql.Literal, error) {
	return sql.Literal{}, sql.ErrInterpreting.New("sum() is an aggregator, not a scalar expression")
}

func (s *Sum) ResultType() types.DataType { return s.arg.Type() }

func (s *Sum) BufferSchema() sql.Schema {
	return sql.NewSchema(sql.FieldInfo{Name: "sum_acc", Type: s.arg.Type()})
}

func (s *Sum) InitialRow() (sql.Row, error) {
	z, err := types.Zero(s.arg.Type())
	if err != nil {
		return nil, err
	}
	return sql.NewRow(sql.NewLiteral(z, s.arg.Type())), nil
}

func (s *Sum) Resolve(inputSchema sql.Schema) error {
	s.base.resolve(inputSchema)
	buf := s.BufferSchema()
	s.updateExpr = expression.NewBinaryOp(expression.Plus, s.base.bufferRef(buf, 0), s.arg)
	return nil
}

func (s *Sum) Update(ctx *sql.Context, input sql.Row, scratch sql.Row) (sql.Row, error) {
	return runUpdate(ctx, s.updateExpr, input, scratch, 0)
}

func (s *Sum) Finalize(scratch sql.Row) (sql.Literal, error) {
	return scratch.Get(0)
}
