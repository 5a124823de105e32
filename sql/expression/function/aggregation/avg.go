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

// Avg reduces its argument to a running sum and count, finalizing to
// their quotient. The running sum is carried as F64 regardless of the
// argument's numeric type.
type Avg struct {
	base
	sumExpr   sql.Expression
	countExpr sql.Expression
}

// NewAvg builds the avg(arg) aggregator.
func NewAvg(arg sql.Expression) *Avg {
	return &Avg{base: newBase("avg", arg)}
}

func (a *Avg) Type() types.DataType { return types.F64 }

func (a *Avg) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrUnknown.New("avg: expected exactly one child")
	}
	return NewAvg(children[0]), nil
}

func (a *Avg) Eval(ctx *sql.Context, row sql.Row) (sql.Literal, error) {
	return sql.Literal{}, sql.ErrInterpreting.New("avg() is an aggregator, not a scalar expression")
}

func (a *Avg) ResultType() types.DataType { return types.F64 }

func (a *Avg) BufferSchema() sql.Schema {
	return sql.NewSchema(
		sql.FieldInfo{Name: "avg_sum", Type: types.F64},
		sql.FieldInfo{Name: "avg_count", Type: types.U64},
	)
}

func (a *Avg) InitialRow() (sql.Row, error) {
	return sql.NewRow(
		sql.NewLiteral(float64(0), types.F64),
		sql.NewLiteral(uint64(0), types.U64),
	), nil
}

func (a *Avg) Resolve(inputSchema sql.Schema) error {
	a.base.resolve(inputSchema)
	buf := a.BufferSchema()
	a.sumExpr = expression.NewBinaryOp(expression.Plus, a.base.bufferRef(buf, 0), castToF64(a.arg))
	a.countExpr = expression.NewBinaryOp(expression.Plus, a.base.bufferRef(buf, 1),
		expression.NewLiteral(sql.NewLiteral(uint64(1), types.U64)))
	return nil
}

func (a *Avg) Update(ctx *sql.Context, input sql.Row, scratch sql.Row) (sql.Row, error) {
	combined := sql.NewCombinedRow(input, scratch)
	sum, err := a.sumExpr.Eval(ctx, combined)
	if err != nil {
		return nil, err
	}
	count, err := a.countExpr.Eval(ctx, combined)
	if err != nil {
		return nil, err
	}
	next := scratch.Copy()
	if err := next.Set(0, sum); err != nil {
		return nil, err
	}
	if err := next.Set(1, count); err != nil {
		return nil, err
	}
	return next, nil
}

func (a *Avg) Finalize(scratch sql.Row) (sql.Literal, error) {
	sum, err := scratch.Get(0)
	if err != nil {
		return sql.Literal{}, err
	}
	count, err := scratch.Get(1)
	if err != nil {
		return sql.Literal{}, err
	}
	c := count.Value().(uint64)
	if c == 0 {
		return sql.NewLiteral(float64(0), types.F64), nil
	}
	return sql.NewLiteral(sum.Value().(float64)/float64(c), types.F64), nil
}

// castToF64 wraps arg so its evaluated value is always carried as F64,
// bridging avg's running sum (always F64) against an argument of any
// numeric tag.
type toF64 struct {
	child sql.Expression
}

func castToF64(e sql.Expression) sql.Expression { return &toF64{child: e} }

func (c *toF64) Resolved() bool             { return c.child.Resolved() }
func (c *toF64) Type() types.DataType       { return types.F64 }
func (c *toF64) String() string             { return c.child.String() }
func (c *toF64) Children() []sql.Expression { return []sql.Expression{c.child} }

func (c *toF64) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrUnknown.New("toF64: expected exactly one child")
	}
	return castToF64(children[0]), nil
}

func (c *toF64) Eval(ctx *sql.Context, row sql.Row) (sql.Literal, error) {
	v, err := c.child.Eval(ctx, row)
	if err != nil {
		return sql.Literal{}, err
	}
	f, err := numericToFloat64(v)
	if err != nil {
		return sql.Literal{}, err
	}
	return sql.NewLiteral(f, types.F64), nil
}

func numericToFloat64(v sql.Literal) (float64, error) {
	switch v.Type() {
	case types.U8:
		return float64(v.Value().(uint8)), nil
	case types.U16:
		return float64(v.Value().(uint16)), nil
	case types.U32:
		return float64(v.Value().(uint32)), nil
	case types.U64:
		return float64(v.Value().(uint64)), nil
	case types.I8:
		return float64(v.Value().(int8)), nil
	case types.I16:
		return float64(v.Value().(int16)), nil
	case types.I32:
		return float64(v.Value().(int32)), nil
	case types.I64:
		return float64(v.Value().(int64)), nil
	case types.F32:
		return float64(v.Value().(float32)), nil
	case types.F64:
		return v.Value().(float64), nil
	default:
		return 0, sql.ErrInterpreting.New("avg() argument is not numeric: " + v.Type().String())
	}
}
