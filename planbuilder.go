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

package crackdb

import (
	"strconv"
	"strings"

	"github.com/dolthub/vitess/go/vt/sqlparser"

	"github.com/crackdb/crackdb/sql"
	"github.com/crackdb/crackdb/sql/expression"
	"github.com/crackdb/crackdb/sql/expression/function"
	"github.com/crackdb/crackdb/sql/plan"
	"github.com/crackdb/crackdb/sql/types"
)

// buildLogicalPlan translates a parsed statement into the unresolved
// logical plan tree the analyzer consumes. Only SELECT reaches here; DDL
// and INSERT are handled directly by Engine.execDDLOrDML.
//
// Node order follows the clause evaluation order, not the SELECT list's
// textual order: FROM, WHERE, GROUP BY, HAVING, SELECT list, ORDER BY,
// LIMIT/OFFSET.
func buildLogicalPlan(stmt sqlparser.Statement, registry *function.Registry) (sql.Node, error) {
	sel, ok := stmt.(*sqlparser.Select)
	if !ok {
		return nil, sql.ErrParser.New("only SELECT, CREATE TABLE, and INSERT statements are supported")
	}

	node, err := buildFrom(sel.From)
	if err != nil {
		return nil, err
	}

	if sel.Where != nil && sel.Where.Type == sqlparser.WhereStr {
		pred, err := buildExpr(sel.Where.Expr)
		if err != nil {
			return nil, err
		}
		node = plan.NewFilter(pred, node)
	}

	groupings, err := buildExprList(sel.GroupBy)
	if err != nil {
		return nil, err
	}

	needsAggregator := len(groupings) > 0 || selectNeedsAggregator(sel, registry)
	if needsAggregator {
		node = plan.NewAggregator(nil, groupings, node)
	}

	if sel.Having != nil && sel.Having.Type == sqlparser.HavingStr {
		if !needsAggregator {
			return nil, sql.ErrParser.New("HAVING requires GROUP BY or an aggregate function")
		}
		pred, err := buildExpr(sel.Having.Expr)
		if err != nil {
			return nil, err
		}
		node = plan.NewUnresolvedHaving(pred, node)
	}

	projExprs, err := buildSelectExprs(sel.SelectExprs)
	if err != nil {
		return nil, err
	}
	node = plan.NewProjection(projExprs, node)

	if len(sel.OrderBy) > 0 {
		options, err := buildOrderBy(sel.OrderBy)
		if err != nil {
			return nil, err
		}
		node = plan.NewSort(options, node)
	}

	if sel.Limit != nil {
		offset, count, err := buildLimit(sel.Limit)
		if err != nil {
			return nil, err
		}
		node = plan.NewLimit(offset, count, node)
	}

	return node, nil
}

// buildFrom resolves the single source table of a SELECT; spec.md's
// Non-goals exclude joins, so exactly one table expression is accepted.
func buildFrom(from sqlparser.TableExprs) (sql.Node, error) {
	if len(from) != 1 {
		return nil, sql.ErrParser.New("FROM must name exactly one table")
	}
	aliased, ok := from[0].(*sqlparser.AliasedTableExpr)
	if !ok {
		return nil, sql.ErrParser.New("unsupported FROM clause")
	}
	name, ok := aliased.Expr.(sqlparser.TableName)
	if !ok {
		return nil, sql.ErrParser.New("unsupported FROM clause")
	}
	return plan.NewUnresolvedScan(name.Name.String()), nil
}

// selectNeedsAggregator reports whether the select list, HAVING clause, or
// ORDER BY contains a call to a registered aggregator. GROUP BY alone
// already forces an Aggregator node; this covers the global-aggregation
// case (e.g. "SELECT count(*) FROM t" with no GROUP BY).
func selectNeedsAggregator(sel *sqlparser.Select, registry *function.Registry) bool {
	for _, se := range sel.SelectExprs {
		if ae, ok := se.(*sqlparser.AliasedExpr); ok && exprHasAggregateCall(ae.Expr, registry) {
			return true
		}
	}
	if sel.Having != nil && exprHasAggregateCall(sel.Having.Expr, registry) {
		return true
	}
	for _, o := range sel.OrderBy {
		if exprHasAggregateCall(o.Expr, registry) {
			return true
		}
	}
	return false
}

func exprHasAggregateCall(e sqlparser.Expr, registry *function.Registry) bool {
	switch t := e.(type) {
	case *sqlparser.FuncExpr:
		if registry.IsAggregator(t.Name.String()) {
			return true
		}
		for _, a := range t.Exprs {
			if ae, ok := a.(*sqlparser.AliasedExpr); ok && exprHasAggregateCall(ae.Expr, registry) {
				return true
			}
		}
		return false
	case *sqlparser.AndExpr:
		return exprHasAggregateCall(t.Left, registry) || exprHasAggregateCall(t.Right, registry)
	case *sqlparser.OrExpr:
		return exprHasAggregateCall(t.Left, registry) || exprHasAggregateCall(t.Right, registry)
	case *sqlparser.NotExpr:
		return exprHasAggregateCall(t.Expr, registry)
	case *sqlparser.ComparisonExpr:
		return exprHasAggregateCall(t.Left, registry) || exprHasAggregateCall(t.Right, registry)
	case *sqlparser.BinaryExpr:
		return exprHasAggregateCall(t.Left, registry) || exprHasAggregateCall(t.Right, registry)
	case *sqlparser.UnaryExpr:
		return exprHasAggregateCall(t.Expr, registry)
	case *sqlparser.ParenExpr:
		return exprHasAggregateCall(t.Expr, registry)
	default:
		return false
	}
}

func buildSelectExprs(exprs sqlparser.SelectExprs) ([]sql.Expression, error) {
	out := make([]sql.Expression, 0, len(exprs))
	for _, se := range exprs {
		switch t := se.(type) {
		case *sqlparser.StarExpr:
			out = append(out, expression.NewWildcard())
		case *sqlparser.AliasedExpr:
			e, err := buildExpr(t.Expr)
			if err != nil {
				return nil, err
			}
			if !t.As.IsEmpty() {
				e = expression.NewAlias(t.As.String(), e)
			}
			out = append(out, e)
		default:
			return nil, sql.ErrParser.New("unsupported select expression")
		}
	}
	return out, nil
}

func buildExprList(exprs sqlparser.GroupBy) ([]sql.Expression, error) {
	out := make([]sql.Expression, len(exprs))
	for i, e := range exprs {
		built, err := buildExpr(e)
		if err != nil {
			return nil, err
		}
		out[i] = built
	}
	return out, nil
}

func buildOrderBy(orderBy sqlparser.OrderBy) ([]plan.SortOption, error) {
	options := make([]plan.SortOption, len(orderBy))
	for i, o := range orderBy {
		e, err := buildExpr(o.Expr)
		if err != nil {
			return nil, err
		}
		options[i] = plan.SortOption{Expr: e, Descending: strings.EqualFold(o.Direction, sqlparser.DescScr)}
	}
	return options, nil
}

func buildLimit(l *sqlparser.Limit) (int, *int, error) {
	offset := 0
	if l.Offset != nil {
		n, err := sqlValInt(l.Offset)
		if err != nil {
			return 0, nil, err
		}
		offset = n
	}
	if l.Rowcount == nil {
		return offset, nil, nil
	}
	n, err := sqlValInt(l.Rowcount)
	if err != nil {
		return 0, nil, err
	}
	return offset, &n, nil
}

func sqlValInt(e sqlparser.Expr) (int, error) {
	v, ok := e.(*sqlparser.SQLVal)
	if !ok || v.Type != sqlparser.IntVal {
		return 0, sql.ErrParser.New("LIMIT/OFFSET requires an integer literal")
	}
	n, err := strconv.Atoi(string(v.Val))
	if err != nil {
		return 0, sql.ErrParser.New(err.Error())
	}
	return n, nil
}

// buildExpr translates a single vitess expression node into an unresolved
// sql.Expression.
func buildExpr(e sqlparser.Expr) (sql.Expression, error) {
	switch t := e.(type) {
	case *sqlparser.ColName:
		return expression.NewUnresolvedFieldRef(t.Name.String()), nil

	case *sqlparser.SQLVal:
		return literalExprFromSQLVal(t)

	case *sqlparser.NullVal:
		return expression.NewLiteral(sql.NullLiteral()), nil

	case *sqlparser.AndExpr:
		return buildBinaryExpr(expression.And, t.Left, t.Right)
	case *sqlparser.OrExpr:
		return buildBinaryExpr(expression.Or, t.Left, t.Right)

	case *sqlparser.NotExpr:
		child, err := buildExpr(t.Expr)
		if err != nil {
			return nil, err
		}
		return expression.NewUnaryOp(expression.Not, child), nil

	case *sqlparser.ComparisonExpr:
		return buildComparisonExpr(t)

	case *sqlparser.BinaryExpr:
		op, ok := arithmeticOperator(t.Operator)
		if !ok {
			return nil, sql.ErrParser.New("unsupported binary operator: " + t.Operator)
		}
		return buildBinaryExpr(op, t.Left, t.Right)

	case *sqlparser.UnaryExpr:
		if t.Operator == "+" {
			return buildExpr(t.Expr)
		}
		if t.Operator != "-" {
			return nil, sql.ErrParser.New("unsupported unary operator: " + t.Operator)
		}
		child, err := buildExpr(t.Expr)
		if err != nil {
			return nil, err
		}
		return expression.NewUnaryOp(expression.Neg, child), nil

	case *sqlparser.ParenExpr:
		return buildExpr(t.Expr)

	case *sqlparser.FuncExpr:
		return buildFuncExpr(t)

	default:
		return nil, sql.ErrParser.New("unsupported expression")
	}
}

func buildBinaryExpr(op expression.BinaryOperator, left, right sqlparser.Expr) (sql.Expression, error) {
	l, err := buildExpr(left)
	if err != nil {
		return nil, err
	}
	r, err := buildExpr(right)
	if err != nil {
		return nil, err
	}
	return expression.NewBinaryOp(op, l, r), nil
}

func buildComparisonExpr(c *sqlparser.ComparisonExpr) (sql.Expression, error) {
	switch c.Operator {
	case sqlparser.EqualStr:
		return buildBinaryExpr(expression.Equals, c.Left, c.Right)
	case sqlparser.LessThanStr:
		return buildBinaryExpr(expression.LT, c.Left, c.Right)
	case sqlparser.GreaterThanStr:
		return buildBinaryExpr(expression.GT, c.Left, c.Right)
	case sqlparser.LessEqualStr:
		return buildBinaryExpr(expression.LTE, c.Left, c.Right)
	case sqlparser.GreaterEqualStr:
		return buildBinaryExpr(expression.GTE, c.Left, c.Right)
	case sqlparser.NotEqualStr:
		eq, err := buildBinaryExpr(expression.Equals, c.Left, c.Right)
		if err != nil {
			return nil, err
		}
		return expression.NewUnaryOp(expression.Not, eq), nil
	default:
		return nil, sql.ErrParser.New("unsupported comparison operator: " + c.Operator)
	}
}

func arithmeticOperator(op string) (expression.BinaryOperator, bool) {
	switch op {
	case sqlparser.PlusStr:
		return expression.Plus, true
	case sqlparser.MinusStr:
		return expression.Minus, true
	case sqlparser.MultStr:
		return expression.Mult, true
	case sqlparser.DivStr:
		return expression.Div, true
	default:
		return 0, false
	}
}

func buildFuncExpr(f *sqlparser.FuncExpr) (sql.Expression, error) {
	name := f.Name.String()
	args := make([]sql.Expression, 0, len(f.Exprs))
	for _, a := range f.Exprs {
		switch ae := a.(type) {
		case *sqlparser.StarExpr:
			args = append(args, expression.NewWildcard())
		case *sqlparser.AliasedExpr:
			built, err := buildExpr(ae.Expr)
			if err != nil {
				return nil, err
			}
			args = append(args, built)
		default:
			return nil, sql.ErrParser.New("unsupported argument to " + name)
		}
	}
	return expression.NewUnresolvedFunction(name, args...), nil
}

func literalExprFromSQLVal(v *sqlparser.SQLVal) (sql.Expression, error) {
	lit, err := sqlValLiteral(v)
	if err != nil {
		return nil, err
	}
	return expression.NewLiteral(lit), nil
}

func sqlValLiteral(v *sqlparser.SQLVal) (sql.Literal, error) {
	switch v.Type {
	case sqlparser.StrVal:
		return sql.NewUnresolvedString(string(v.Val)), nil
	case sqlparser.IntVal, sqlparser.FloatVal:
		return sql.NewUnresolvedNumber(string(v.Val)), nil
	default:
		return sql.Literal{}, sql.ErrParser.New("unsupported literal kind")
	}
}

// literalFromSQLVal evaluates an INSERT value expression — a literal,
// optionally unary-minus-negated, or NULL — and coerces it to the target
// column type. INSERT values are always literals per spec §6, so this
// works directly off the raw literal text rather than through buildExpr/
// UnaryOp (whose Neg case requires an already-typed numeric operand,
// which an unresolved literal isn't yet).
func literalFromSQLVal(e sqlparser.Expr, target types.DataType) (sql.Literal, error) {
	var lit sql.Literal

	switch v := e.(type) {
	case *sqlparser.NullVal:
		return sql.NullLiteral(), nil

	case *sqlparser.SQLVal:
		var err error
		lit, err = sqlValLiteral(v)
		if err != nil {
			return sql.Literal{}, err
		}

	case *sqlparser.UnaryExpr:
		if v.Operator != "-" {
			return sql.Literal{}, sql.ErrParser.New("unsupported INSERT value")
		}
		sv, ok := v.Expr.(*sqlparser.SQLVal)
		if !ok || (sv.Type != sqlparser.IntVal && sv.Type != sqlparser.FloatVal) {
			return sql.Literal{}, sql.ErrParser.New("unsupported INSERT value")
		}
		lit = sql.NewUnresolvedNumber("-" + string(sv.Val))

	default:
		return sql.Literal{}, sql.ErrParser.New("unsupported INSERT value")
	}

	casted, _, err := lit.CastOrMaintainPrecision(target)
	if err != nil {
		return sql.Literal{}, err
	}
	return casted, nil
}
