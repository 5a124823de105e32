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

// BinaryOp evaluates an operator over two operands. Arithmetic requires
// both operands to share the same numeric tag; the result has that tag
// (integer division truncates, no implicit widening). Comparisons require
// both sides to share tag (or both be String) and produce Bool. Logical
// AND/OR require Bool operands.
type BinaryOp struct {
	Op    BinaryOperator
	Left  sql.Expression
	Right sql.Expression
}

// NewBinaryOp builds a binary operator node.
func NewBinaryOp(op BinaryOperator, left, right sql.Expression) *BinaryOp {
	return &BinaryOp{Op: op, Left: left, Right: right}
}

func (b *BinaryOp) Resolved() bool {
	return b.Left.Resolved() && b.Right.Resolved()
}

func (b *BinaryOp) Type() types.DataType {
	if b.Op.isComparison() || b.Op.isLogical() {
		return types.Bool
	}
	t := b.Left.Type()
	if t == types.Unknown {
		return b.Right.Type()
	}
	return t
}

func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op.String(), b.Right.String())
}

func (b *BinaryOp) Children() []sql.Expression {
	return []sql.Expression{b.Left, b.Right}
}

func (b *BinaryOp) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrUnknown.New("BinaryOp: expected exactly two children")
	}
	return &BinaryOp{Op: b.Op, Left: children[0], Right: children[1]}, nil
}

func (b *BinaryOp) Eval(ctx *sql.Context, row sql.Row) (sql.Literal, error) {
	l, err := b.Left.Eval(ctx, row)
	if err != nil {
		return sql.Literal{}, err
	}
	r, err := b.Right.Eval(ctx, row)
	if err != nil {
		return sql.Literal{}, err
	}

	switch {
	case b.Op.isArithmetic():
		return evalArithmetic(b.Op, l, r)
	case b.Op.isComparison():
		return evalComparison(b.Op, l, r)
	case b.Op.isLogical():
		return evalLogical(b.Op, l, r)
	default:
		return sql.Literal{}, sql.ErrUnknown.New("unrecognized binary operator")
	}
}

func mismatchErr(op BinaryOperator, l, r sql.Literal) error {
	return sql.ErrInterpreting.New(fmt.Sprintf(
		"%s operator not implemented for %s and %s", op, l.Type(), r.Type()))
}

// evalArithmetic dispatches +, -, *, /, max, min over a pair of operands
// sharing the same numeric tag. Integer division truncates; there is no
// implicit widening between tags.
func evalArithmetic(op BinaryOperator, l, r sql.Literal) (sql.Literal, error) {
	if l.Type() != r.Type() || !l.Type().IsNumeric() {
		return sql.Literal{}, mismatchErr(op, l, r)
	}
	t := l.Type()

	switch t {
	case types.U8:
		return arithU8(op, l.Value().(uint8), r.Value().(uint8), t)
	case types.U16:
		return arithU16(op, l.Value().(uint16), r.Value().(uint16), t)
	case types.U32:
		return arithU32(op, l.Value().(uint32), r.Value().(uint32), t)
	case types.U64:
		return arithU64(op, l.Value().(uint64), r.Value().(uint64), t)
	case types.I8:
		return arithI8(op, l.Value().(int8), r.Value().(int8), t)
	case types.I16:
		return arithI16(op, l.Value().(int16), r.Value().(int16), t)
	case types.I32:
		return arithI32(op, l.Value().(int32), r.Value().(int32), t)
	case types.I64:
		return arithI64(op, l.Value().(int64), r.Value().(int64), t)
	case types.F32:
		return arithF32(op, l.Value().(float32), r.Value().(float32), t)
	case types.F64:
		return arithF64(op, l.Value().(float64), r.Value().(float64), t)
	default:
		return sql.Literal{}, mismatchErr(op, l, r)
	}
}

func arithU8(op BinaryOperator, l, r uint8, t types.DataType) (sql.Literal, error) {
	switch op {
	case Plus:
		return sql.NewLiteral(l+r, t), nil
	case Minus:
		return sql.NewLiteral(l-r, t), nil
	case Mult:
		return sql.NewLiteral(l*r, t), nil
	case Div:
		if r == 0 {
			return sql.Literal{}, sql.ErrInterpreting.New("division by zero")
		}
		return sql.NewLiteral(l/r, t), nil
	case Max:
		if l > r {
			return sql.NewLiteral(l, t), nil
		}
		return sql.NewLiteral(r, t), nil
	case Min:
		if l < r {
			return sql.NewLiteral(l, t), nil
		}
		return sql.NewLiteral(r, t), nil
	}
	return sql.Literal{}, mismatchErr(op, sql.NewLiteral(l, t), sql.NewLiteral(r, t))
}

func arithU16(op BinaryOperator, l, r uint16, t types.DataType) (sql.Literal, error) {
	switch op {
	case Plus:
		return sql.NewLiteral(l+r, t), nil
	case Minus:
		return sql.NewLiteral(l-r, t), nil
	case Mult:
		return sql.NewLiteral(l*r, t), nil
	case Div:
		if r == 0 {
			return sql.Literal{}, sql.ErrInterpreting.New("division by zero")
		}
		return sql.NewLiteral(l/r, t), nil
	case Max:
		if l > r {
			return sql.NewLiteral(l, t), nil
		}
		return sql.NewLiteral(r, t), nil
	case Min:
		if l < r {
			return sql.NewLiteral(l, t), nil
		}
		return sql.NewLiteral(r, t), nil
	}
	return sql.Literal{}, mismatchErr(op, sql.NewLiteral(l, t), sql.NewLiteral(r, t))
}

func arithU32(op BinaryOperator, l, r uint32, t types.DataType) (sql.Literal, error) {
	switch op {
	case Plus:
		return sql.NewLiteral(l+r, t), nil
	case Minus:
		return sql.NewLiteral(l-r, t), nil
	case Mult:
		return sql.NewLiteral(l*r, t), nil
	case Div:
		if r == 0 {
			return sql.Literal{}, sql.ErrInterpreting.New("division by zero")
		}
		return sql.NewLiteral(l/r, t), nil
	case Max:
		if l > r {
			return sql.NewLiteral(l, t), nil
		}
		return sql.NewLiteral(r, t), nil
	case Min:
		if l < r {
			return sql.NewLiteral(l, t), nil
		}
		return sql.NewLiteral(r, t), nil
	}
	return sql.Literal{}, mismatchErr(op, sql.NewLiteral(l, t), sql.NewLiteral(r, t))
}

func arithU64(op BinaryOperator, l, r uint64, t types.DataType) (sql.Literal, error) {
	switch op {
	case Plus:
		return sql.NewLiteral(l+r, t), nil
	case Minus:
		return sql.NewLiteral(l-r, t), nil
	case Mult:
		return sql.NewLiteral(l*r, t), nil
	case Div:
		if r == 0 {
			return sql.Literal{}, sql.ErrInterpreting.New("division by zero")
		}
		return sql.NewLiteral(l/r, t), nil
	case Max:
		if l > r {
			return sql.NewLiteral(l, t), nil
		}
		return sql.NewLiteral(r, t), nil
	case Min:
		if l < r {
			return sql.NewLiteral(l, t), nil
		}
		return sql.NewLiteral(r, t), nil
	}
	return sql.Literal{}, mismatchErr(op, sql.NewLiteral(l, t), sql.NewLiteral(r, t))
}

func arithI8(op BinaryOperator, l, r int8, t types.DataType) (sql.Literal, error) {
	switch op {
	case Plus:
		return sql.NewLiteral(l+r, t), nil
	case Minus:
		return sql.NewLiteral(l-r, t), nil
	case Mult:
		return sql.NewLiteral(l*r, t), nil
	case Div:
		if r == 0 {
			return sql.Literal{}, sql.ErrInterpreting.New("division by zero")
		}
		return sql.NewLiteral(l/r, t), nil
	case Max:
		if l > r {
			return sql.NewLiteral(l, t), nil
		}
		return sql.NewLiteral(r, t), nil
	case Min:
		if l < r {
			return sql.NewLiteral(l, t), nil
		}
		return sql.NewLiteral(r, t), nil
	}
	return sql.Literal{}, mismatchErr(op, sql.NewLiteral(l, t), sql.NewLiteral(r, t))
}

func arithI16(op BinaryOperator, l, r int16, t types.DataType) (sql.Literal, error) {
	switch op {
	case Plus:
		return sql.NewLiteral(l+r, t), nil
	case Minus:
		return sql.NewLiteral(l-r, t), nil
	case Mult:
		return sql.NewLiteral(l*r, t), nil
	case Div:
		if r == 0 {
			return sql.Literal{}, sql.ErrInterpreting.New("division by zero")
		}
		return sql.NewLiteral(l/r, t), nil
	case Max:
		if l > r {
			return sql.NewLiteral(l, t), nil
		}
		return sql.NewLiteral(r, t), nil
	case Min:
		if l < r {
			return sql.NewLiteral(l, t), nil
		}
		return sql.NewLiteral(r, t), nil
	}
	return sql.Literal{}, mismatchErr(op, sql.NewLiteral(l, t), sql.NewLiteral(r, t))
}

func arithI32(op BinaryOperator, l, r int32, t types.DataType) (sql.Literal, error) {
	switch op {
	case Plus:
		return sql.NewLiteral(l+r, t), nil
	case Minus:
		return sql.NewLiteral(l-r, t), nil
	case Mult:
		return sql.NewLiteral(l*r, t), nil
	case Div:
		if r == 0 {
			return sql.Literal{}, sql.ErrInterpreting.New("division by zero")
		}
		return sql.NewLiteral(l/r, t), nil
	case Max:
		if l > r {
			return sql.NewLiteral(l, t), nil
		}
		return sql.NewLiteral(r, t), nil
	case Min:
		if l < r {
			return sql.NewLiteral(l, t), nil
		}
		return sql.NewLiteral(r, t), nil
	}
	return sql.Literal{}, mismatchErr(op, sql.NewLiteral(l, t), sql.NewLiteral(r, t))
}

func arithI64(op BinaryOperator, l, r int64, t types.DataType) (sql.Literal, error) {
	switch op {
	case Plus:
		return sql.NewLiteral(l+r, t), nil
	case Minus:
		return sql.NewLiteral(l-r, t), nil
	case Mult:
		return sql.NewLiteral(l*r, t), nil
	case Div:
		if r == 0 {
			return sql.Literal{}, sql.ErrInterpreting.New("division by zero")
		}
		return sql.NewLiteral(l/r, t), nil
	case Max:
		if l > r {
			return sql.NewLiteral(l, t), nil
		}
		return sql.NewLiteral(r, t), nil
	case Min:
		if l < r {
			return sql.NewLiteral(l, t), nil
		}
		return sql.NewLiteral(r, t), nil
	}
	return sql.Literal{}, mismatchErr(op, sql.NewLiteral(l, t), sql.NewLiteral(r, t))
}

func arithF32(op BinaryOperator, l, r float32, t types.DataType) (sql.Literal, error) {
	switch op {
	case Plus:
		return sql.NewLiteral(l+r, t), nil
	case Minus:
		return sql.NewLiteral(l-r, t), nil
	case Mult:
		return sql.NewLiteral(l*r, t), nil
	case Div:
		return sql.NewLiteral(l/r, t), nil
	case Max:
		if l > r {
			return sql.NewLiteral(l, t), nil
		}
		return sql.NewLiteral(r, t), nil
	case Min:
		if l < r {
			return sql.NewLiteral(l, t), nil
		}
		return sql.NewLiteral(r, t), nil
	}
	return sql.Literal{}, mismatchErr(op, sql.NewLiteral(l, t), sql.NewLiteral(r, t))
}

func arithF64(op BinaryOperator, l, r float64, t types.DataType) (sql.Literal, error) {
	switch op {
	case Plus:
		return sql.NewLiteral(l+r, t), nil
	case Minus:
		return sql.NewLiteral(l-r, t), nil
	case Mult:
		return sql.NewLiteral(l*r, t), nil
	case Div:
		return sql.NewLiteral(l/r, t), nil
	case Max:
		if l > r {
			return sql.NewLiteral(l, t), nil
		}
		return sql.NewLiteral(r, t), nil
	case Min:
		if l < r {
			return sql.NewLiteral(l, t), nil
		}
		return sql.NewLiteral(r, t), nil
	}
	return sql.Literal{}, mismatchErr(op, sql.NewLiteral(l, t), sql.NewLiteral(r, t))
}

// evalComparison dispatches >, >=, =, <, <= over operands sharing tag (or
// both String). Integers and strings use total order; floats use Go's
// native float comparison, leaving NaN ordering undefined (documented
// limitation inherited from the value layer).
func evalComparison(op BinaryOperator, l, r sql.Literal) (sql.Literal, error) {
	if l.Type() != r.Type() {
		return sql.Literal{}, mismatchErr(op, l, r)
	}

	var cmp int
	switch l.Type() {
	case types.U8:
		cmp = cmpOrdered(l.Value().(uint8), r.Value().(uint8))
	case types.U16:
		cmp = cmpOrdered(l.Value().(uint16), r.Value().(uint16))
	case types.U32:
		cmp = cmpOrdered(l.Value().(uint32), r.Value().(uint32))
	case types.U64:
		cmp = cmpOrdered(l.Value().(uint64), r.Value().(uint64))
	case types.I8:
		cmp = cmpOrdered(l.Value().(int8), r.Value().(int8))
	case types.I16:
		cmp = cmpOrdered(l.Value().(int16), r.Value().(int16))
	case types.I32:
		cmp = cmpOrdered(l.Value().(int32), r.Value().(int32))
	case types.I64:
		cmp = cmpOrdered(l.Value().(int64), r.Value().(int64))
	case types.F32:
		cmp = cmpOrdered(l.Value().(float32), r.Value().(float32))
	case types.F64:
		cmp = cmpOrdered(l.Value().(float64), r.Value().(float64))
	case types.String:
		cmp = cmpOrdered(l.Value().(string), r.Value().(string))
	case types.Bool:
		lb, rb := l.Value().(bool), r.Value().(bool)
		if lb == rb {
			cmp = 0
		} else if !lb {
			cmp = -1
		} else {
			cmp = 1
		}
	case types.DateTime:
		cmp = cmpOrdered(l.Value().(string), r.Value().(string))
	default:
		return sql.Literal{}, mismatchErr(op, l, r)
	}

	var result bool
	switch op {
	case GT:
		result = cmp > 0
	case GTE:
		result = cmp >= 0
	case Equals:
		result = cmp == 0
	case LT:
		result = cmp < 0
	case LTE:
		result = cmp <= 0
	}
	return sql.NewLiteral(result, types.Bool), nil
}

type ordered interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64 | ~string
}

func cmpOrdered[T ordered](l, r T) int {
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

func evalLogical(op BinaryOperator, l, r sql.Literal) (sql.Literal, error) {
	lb, err := l.AsBool()
	if err != nil {
		return sql.Literal{}, err
	}
	rb, err := r.AsBool()
	if err != nil {
		return sql.Literal{}, err
	}
	if op == And {
		return sql.NewLiteral(lb && rb, types.Bool), nil
	}
	return sql.NewLiteral(lb || rb, types.Bool), nil
}
