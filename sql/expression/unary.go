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

	"github.com/crackdb/crackdb/sql"
	"github.com/crackdb/crackdb/sql/types"
)

// UnaryOp evaluates NOT (Bool operand) or unary minus (signed/float operand).
type UnaryOp struct {
	Op    UnaryOperator
	Child sql.Expression
}

// NewUnaryOp builds a unary operator node.
func NewUnaryOp(op UnaryOperator, child sql.Expression) *UnaryOp {
	return &UnaryOp{Op: op, Child: child}
}

func (u *UnaryOp) Resolved() bool { return u.Child.Resolved() }

func (u *UnaryOp) Type() types.DataType {
	if u.Op == Not {
		return types.Bool
	}
	return u.Child.Type()
}

func (u *UnaryOp) String() string {
	return fmt.Sprintf("(%s %s)", u.Op.String(), u.Child.String())
}

func (u *UnaryOp) Children() []sql.Expression {
	return []sql.Expression{u.Child}
}

func (u *UnaryOp) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrUnknown.New("UnaryOp: expected exactly one child")
	}
	return &UnaryOp{Op: u.Op, Child: children[0]}, nil
}

func (u *UnaryOp) Eval(ctx *sql.Context, row sql.Row) (sql.Literal, error) {
	v, err := u.Child.Eval(ctx, row)
	if err != nil {
		return sql.Literal{}, err
	}

	if u.Op == Not {
		b, err := v.AsBool()
		if err != nil {
			return sql.Literal{}, err
		}
		return sql.NewLiteral(!b, types.Bool), nil
	}

	if !v.Type().IsSignedOrFloat() {
		return sql.Literal{}, sql.ErrInterpreting.New(fmt.Sprintf(
			"unary - operator not implemented for %s", v.Type()))
	}
	switch v.Type() {
	case types.I8:
		return sql.NewLiteral(-v.Value().(int8), v.Type()), nil
	case types.I16:
		return sql.NewLiteral(-v.Value().(int16), v.Type()), nil
	case types.I32:
		return sql.NewLiteral(-v.Value().(int32), v.Type()), nil
	case types.I64:
		return sql.NewLiteral(-v.Value().(int64), v.Type()), nil
	case types.F32:
		return sql.NewLiteral(-v.Value().(float32), v.Type()), nil
	case types.F64:
		return sql.NewLiteral(-v.Value().(float64), v.Type()), nil
	default:
		return sql.Literal{}, sql.ErrInterpreting.New(fmt.Sprintf(
			"unary - operator not implemented for %s", v.Type()))
	}
}
