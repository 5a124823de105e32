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

package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crackdb/crackdb/sql"
	"github.com/crackdb/crackdb/sql/expression"
	"github.com/crackdb/crackdb/sql/expression/function"
	"github.com/crackdb/crackdb/sql/plan"
	"github.com/crackdb/crackdb/sql/transform"
	"github.com/crackdb/crackdb/sql/types"
	"github.com/crackdb/crackdb/storage"
)

func ordersSchema() sql.Schema {
	return sql.NewSchema(
		sql.FieldInfo{Name: "id", Type: types.I32},
		sql.FieldInfo{Name: "amount", Type: types.F64},
		sql.FieldInfo{Name: "userId", Type: types.String},
	)
}

func newTestAnalyzer() (*Analyzer, *sql.Catalog) {
	catalog := sql.NewCatalog(nil)
	catalog.AddTable("orders", storage.NewMemoryTable("orders", ordersSchema()))
	return NewAnalyzer(catalog, function.NewRegistry()), catalog
}

func TestRuleResolvePlan(t *testing.T) {
	a, _ := newTestAnalyzer()
	ctx := sql.NewEmptyContext()

	node, identity, err := applyResolvePlan(a, ctx, plan.NewUnresolvedScan("orders"))
	require.NoError(t, err)
	require.Equal(t, transform.NewTree, identity)

	scan, ok := node.(*plan.Scan)
	require.True(t, ok)
	require.Equal(t, "orders", scan.TableName)
	require.Equal(t, ordersSchema(), scan.Sch)
}

func TestRuleResolvePlanTableNotFound(t *testing.T) {
	a, _ := newTestAnalyzer()
	ctx := sql.NewEmptyContext()

	_, _, err := applyResolvePlan(a, ctx, plan.NewUnresolvedScan("nope"))
	require.ErrorIs(t, err, sql.ErrTableNotFound)
}

func TestRuleExpandStars(t *testing.T) {
	a, _ := newTestAnalyzer()
	ctx := sql.NewEmptyContext()

	scan := plan.NewScan("orders", ordersSchema())
	proj := plan.NewProjection([]sql.Expression{expression.NewWildcard()}, scan)

	node, identity, err := applyExpandStars(a, ctx, proj)
	require.NoError(t, err)
	require.Equal(t, transform.NewTree, identity)

	p := node.(*plan.Projection)
	require.Len(t, p.Exprs, 3)
	require.Equal(t, "id", p.Exprs[0].String())
}

func TestRuleResolveExpr(t *testing.T) {
	a, _ := newTestAnalyzer()
	ctx := sql.NewEmptyContext()

	scan := plan.NewScan("orders", ordersSchema())
	pred := expression.NewBinaryOp(expression.GT,
		expression.NewUnresolvedFieldRef("id"),
		expression.NewLiteral(sql.NewUnresolvedNumber("1")))
	filter := plan.NewFilter(pred, scan)

	node, identity, err := applyResolveExpr(a, ctx, filter)
	require.NoError(t, err)
	require.Equal(t, transform.NewTree, identity)

	f := node.(*plan.Filter)
	bop := f.Pred.(*expression.BinaryOp)
	fr := bop.Left.(*expression.FieldRef)
	require.Equal(t, 0, fr.Index)
	require.Equal(t, types.I32, fr.Typ)
}

func TestRuleResolveLiteralTypes(t *testing.T) {
	a, _ := newTestAnalyzer()
	ctx := sql.NewEmptyContext()

	scan := plan.NewScan("orders", ordersSchema())
	pred := expression.NewBinaryOp(expression.GT,
		expression.NewFieldRef("id", 0, types.I32),
		expression.NewLiteral(sql.NewUnresolvedNumber("1")))
	filter := plan.NewFilter(pred, scan)

	node, identity, err := applyResolveLiteralTypes(a, ctx, filter)
	require.NoError(t, err)
	require.Equal(t, transform.NewTree, identity)

	f := node.(*plan.Filter)
	bop := f.Pred.(*expression.BinaryOp)
	lit := bop.Right.(*expression.Literal)
	require.Equal(t, types.I32, lit.Type())
	require.Equal(t, int32(1), lit.Val.Value())
}

func TestRuleResolveFunctionsUnrecognized(t *testing.T) {
	a, _ := newTestAnalyzer()
	ctx := sql.NewEmptyContext()

	scan := plan.NewScan("orders", ordersSchema())
	proj := plan.NewProjection([]sql.Expression{
		expression.NewUnresolvedFunction("nosuchfn", expression.NewFieldRef("id", 0, types.I32)),
	}, scan)

	_, _, err := applyResolveFunctions(a, ctx, proj)
	require.Error(t, err)
}

func TestPushDownAggregatorsIntoExistingAggregator(t *testing.T) {
	a, _ := newTestAnalyzer()
	ctx := sql.NewEmptyContext()

	scan := plan.NewScan("orders", ordersSchema())
	groupings := []sql.Expression{expression.NewFieldRef("userId", 2, types.String)}
	agg := plan.NewAggregator(nil, groupings, scan)
	proj := plan.NewProjection([]sql.Expression{
		expression.NewUnresolvedFunction("sum", expression.NewFieldRef("amount", 1, types.F64)),
		expression.NewFieldRef("userId", 0, types.String),
	}, agg)

	node, identity, err := applyPushDownAggregators(a, ctx, proj)
	require.NoError(t, err)
	require.Equal(t, transform.NewTree, identity)

	p := node.(*plan.Projection)
	innerAgg := p.Child.(*plan.Aggregator)
	require.Len(t, innerAgg.Aggregators, 1)
	require.Equal(t, "sum(amount)", innerAgg.Aggregators[0].String())

	fr := p.Exprs[0].(*expression.FieldRef)
	require.Equal(t, 1, fr.Index) // after the one grouping column
}

func TestPushDownAggregatorsWithoutAggregatorContextErrors(t *testing.T) {
	a, _ := newTestAnalyzer()
	ctx := sql.NewEmptyContext()

	scan := plan.NewScan("orders", ordersSchema())
	proj := plan.NewProjection([]sql.Expression{
		expression.NewUnresolvedFunction("sum", expression.NewFieldRef("amount", 1, types.F64)),
	}, scan)

	_, _, err := applyPushDownAggregators(a, ctx, proj)
	require.Error(t, err)
}

func TestPruneGroupingsFromAggregators(t *testing.T) {
	a, _ := newTestAnalyzer()
	ctx := sql.NewEmptyContext()

	scan := plan.NewScan("orders", ordersSchema())
	groupings := []sql.Expression{expression.NewFieldRef("userId", 2, types.String)}
	// A stray non-aggregate expression masquerading in Aggregators.
	stray := expression.NewFieldRef("userId", 2, types.String)
	agg := plan.NewAggregator([]sql.Expression{stray}, groupings, scan)

	node, identity, err := applyPruneGroupings(a, ctx, agg)
	require.NoError(t, err)
	require.Equal(t, transform.NewTree, identity)

	pruned := node.(*plan.Aggregator)
	require.Empty(t, pruned.Aggregators)
}

func TestAnalyzerEndToEndGroupBy(t *testing.T) {
	a, _ := newTestAnalyzer()
	ctx := sql.NewEmptyContext()

	// SELECT sum(amount), userId FROM orders GROUP BY userId
	unresolvedScan := plan.NewUnresolvedScan("orders")
	agg := plan.NewAggregator(nil, []sql.Expression{expression.NewUnresolvedFieldRef("userId")}, unresolvedScan)
	proj := plan.NewProjection([]sql.Expression{
		expression.NewUnresolvedFunction("sum", expression.NewUnresolvedFieldRef("amount")),
		expression.NewUnresolvedFieldRef("userId"),
	}, agg)

	resolved, err := a.Analyze(ctx, proj)
	require.NoError(t, err)
	require.True(t, resolved.Resolved())

	sch := resolved.Schema()
	require.Equal(t, "sum(amount)", sch[0].Name)
	require.Equal(t, "userId", sch[1].Name)
	require.Equal(t, types.F64, sch[0].Type)
}
