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

// Count increments by one for every row it sees; its argument is never
// evaluated, which is why count(*) is accepted: Wildcard resolves
// specially here rather than through Projection's star expansion.
type Count struct {
	base
	updateExpr sql.Expression
}

// NewCount builds the count(arg) aggregator; arg may be a Wildcard.
func NewCount(arg sql.Expression) *Count {
	return &Count{base: newBase("count", arg)}
}

func (c *Count) Resolved() bool {
	if _, ok := c.arg.(*expression.Wildcard); ok {
		return true
	}
	return c.arg.Resolved()
}

func (c *Count) Type() types.DataType { return types.U64 }

func (c *Count) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrUnknown.New("count: expected exactly one child")
	}
	return NewCount(children[0]), nil
}

func (c *Count) Eval(ctx *sql.Context, row sql.Row) (sql.Literal, error) {
	return sql.Literal{}, sql.ErrInterpreting.New("count() is an aggregator, not a scalar expression")
}

func (c *Count) ResultType() types.DataType { return types.U64 }

func (c *Count) BufferSchema() sql.Schema {
	return sql.NewSchema(sql.FieldInfo{Name: "count_acc", Type: types.U64})
}

func (c *Count) InitialRow() (sql.Row, error) {
	return sql.NewRow(sql.NewLiteral(uint64(0), types.U64)), nil
}

func (c *Count) Resolve(inputSchema sql.Schema) error {
	c.base.resolve(inputSchema)
	buf := c.BufferSchema()
	c.updateExpr = expression.NewBinaryOp(expression.Plus, c.base.bufferRef(buf, 0),
		expression.NewLiteral(sql.NewLiteral(uint64(1), types.U64)))
	return nil
}

func (c *Count) Update(ctx *sql.Context, input sql.Row, scratch sql.Row) (sql.Row, error) {
	return runUpdate(ctx, c.updateExpr, input, scratch, 0)
}

func (c *Count) Finalize(scratch sql.Row) (sql.Literal, error) {
	return scratch.Get(0)
}
