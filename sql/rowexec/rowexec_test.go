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

package rowexec

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crackdb/crackdb/sql"
	"github.com/crackdb/crackdb/sql/expression"
	"github.com/crackdb/crackdb/sql/expression/function"
	"github.com/crackdb/crackdb/sql/expression/function/aggregation"
	"github.com/crackdb/crackdb/sql/plan"
	"github.com/crackdb/crackdb/sql/types"
	"github.com/crackdb/crackdb/storage"
)

func ordersTable(t *testing.T) sql.Table {
	t.Helper()
	sch := sql.NewSchema(
		sql.FieldInfo{Name: "id", Type: types.I32},
		sql.FieldInfo{Name: "amount", Type: types.F64},
		sql.FieldInfo{Name: "userId", Type: types.String},
	)
	tbl := storage.NewMemoryTable("orders", sch)
	ctx := sql.NewEmptyContext()
	require.NoError(t, tbl.Insert(ctx, []sql.Row{
		sql.NewRow(sql.NewLiteral(int32(1), types.I32), sql.NewLiteral(30.0, types.F64), sql.NewLiteral("101", types.String)),
		sql.NewRow(sql.NewLiteral(int32(2), types.I32), sql.NewLiteral(26.0, types.F64), sql.NewLiteral("101", types.String)),
		sql.NewRow(sql.NewLiteral(int32(3), types.I32), sql.NewLiteral(42.0, types.F64), sql.NewLiteral("102", types.String)),
	}))
	return tbl
}

func drain(t *testing.T, ctx *sql.Context, op Operator) []sql.Row {
	t.Helper()
	require.NoError(t, op.Open(ctx))
	var rows []sql.Row
	for {
		row, err := op.Next(ctx)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		rows = append(rows, row)
	}
	require.NoError(t, op.Close(ctx))
	return rows
}

func TestScanOperator(t *testing.T) {
	ctx := sql.NewEmptyContext()
	op := newScanOperator(ordersTable(t))
	rows := drain(t, ctx, op)
	require.Len(t, rows, 3)
}

func TestFilterOperator(t *testing.T) {
	ctx := sql.NewEmptyContext()
	scan := newScanOperator(ordersTable(t))
	pred := expression.NewBinaryOp(expression.GT,
		expression.NewFieldRef("id", 0, types.I32),
		expression.NewLiteral(sql.NewLiteral(int32(1), types.I32)))
	op := newFilterOperator(pred, scan)

	rows := drain(t, ctx, op)
	require.Len(t, rows, 2)
}

func TestProjectionOperator(t *testing.T) {
	ctx := sql.NewEmptyContext()
	scan := newScanOperator(ordersTable(t))
	exprs := []sql.Expression{expression.NewFieldRef("userId", 2, types.String)}
	sch := sql.NewSchema(sql.FieldInfo{Name: "userId", Type: types.String})
	op := newProjectionOperator(exprs, sch, scan)

	rows := drain(t, ctx, op)
	require.Len(t, rows, 3)
	v, err := rows[0].Get(0)
	require.NoError(t, err)
	require.Equal(t, "101", v.Value())
}

func TestLimitOperator(t *testing.T) {
	ctx := sql.NewEmptyContext()
	scan := newScanOperator(ordersTable(t))
	count := 1
	op := newLimitOperator(1, &count, scan)

	rows := drain(t, ctx, op)
	require.Len(t, rows, 1)
	v, err := rows[0].Get(0)
	require.NoError(t, err)
	require.Equal(t, int32(2), v.Value())
}

func TestSortOperator(t *testing.T) {
	ctx := sql.NewEmptyContext()
	scan := newScanOperator(ordersTable(t))
	options := []plan.SortOption{
		{Expr: expression.NewFieldRef("amount", 1, types.F64), Descending: true},
	}
	op := newSortOperator(options, scan)

	rows := drain(t, ctx, op)
	require.Len(t, rows, 3)
	v, err := rows[0].Get(1)
	require.NoError(t, err)
	require.Equal(t, 42.0, v.Value())
}

func TestHashAggregatorGroupBy(t *testing.T) {
	ctx := sql.NewEmptyContext()
	scan := newScanOperator(ordersTable(t))

	groupings := []sql.Expression{expression.NewFieldRef("userId", 2, types.String)}
	sch := sql.NewSchema(
		sql.FieldInfo{Name: "userId", Type: types.String},
		sql.FieldInfo{Name: "sum(amount)", Type: types.F64},
	)

	aggOp := newHashAggregatorOperator(
		[]function.Aggregator{aggregation.NewSum(expression.NewFieldRef("amount", 1, types.F64))},
		groupings, sch, scan)
	rows := drain(t, ctx, aggOp)
	require.Len(t, rows, 2)

	byUser := map[string]float64{}
	for _, r := range rows {
		u, _ := r.Get(0)
		s, _ := r.Get(1)
		byUser[u.Value().(string)] = s.Value().(float64)
	}
	require.Equal(t, 56.0, byUser["101"])
	require.Equal(t, 42.0, byUser["102"])
}

// TestKeyValsEqualDisambiguatesHashBucket exercises the equality check
// hashAggregatorOperator.pull relies on to resolve a grouping-key hash
// bucket to the right group: a matching digest is only a lookup hint,
// never proof two keys are the same.
func TestKeyValsEqualDisambiguatesHashBucket(t *testing.T) {
	a := []sql.Literal{sql.NewLiteral("101", types.String)}
	b := []sql.Literal{sql.NewLiteral("101", types.String)}
	c := []sql.Literal{sql.NewLiteral("102", types.String)}

	require.True(t, keyValsEqual(a, b))
	require.False(t, keyValsEqual(a, c))
	require.False(t, keyValsEqual(a, []sql.Literal{}))
}

func TestBuildScanAndFilterAndProjection(t *testing.T) {
	ctx := sql.NewEmptyContext()
	catalog := sql.NewCatalog(nil)
	catalog.AddTable("orders", ordersTable(t))

	scanNode := plan.NewScan("orders", ordersTable(t).Schema())
	pred := expression.NewBinaryOp(expression.GT,
		expression.NewFieldRef("id", 0, types.I32),
		expression.NewLiteral(sql.NewLiteral(int32(1), types.I32)))
	filterNode := plan.NewFilter(pred, scanNode)
	projNode := plan.NewProjection([]sql.Expression{
		expression.NewFieldRef("userId", 2, types.String),
	}, filterNode)

	op, err := Build(ctx, catalog, projNode)
	require.NoError(t, err)
	rows := drain(t, ctx, op)
	require.Len(t, rows, 2)
}

func TestBuildUnsupportedNode(t *testing.T) {
	ctx := sql.NewEmptyContext()
	_, err := Build(ctx, sql.NewCatalog(nil), plan.NewUnresolvedScan("orders"))
	require.Error(t, err)
}
