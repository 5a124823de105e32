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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crackdb/crackdb/sql"
)

// setupOrders builds the orders(id Int32, amount Float64, userId String,
// dateTime DateTime) table and rows used by spec.md §8's scenarios.
func setupOrders(t *testing.T) (*Engine, *sql.Context) {
	t.Helper()
	e := NewDefault()
	ctx := sql.NewEmptyContext()

	rs, err := e.Query(ctx, "CREATE TABLE orders(id int, amount double, userId varchar(255), dateTime datetime)")
	require.NoError(t, err)
	require.Empty(t, rs.Schema)
	require.Empty(t, rs.Rows)

	_, err = e.Query(ctx, "INSERT INTO orders VALUES "+
		"(1, 30.0, '101', 't1'), (2, 26.0, '101', 't2'), (3, 42.0, '102', 't3')")
	require.NoError(t, err)

	return e, ctx
}

func rowValues(t *testing.T, row sql.Row) []any {
	t.Helper()
	vals := make([]any, row.Len())
	for i := 0; i < row.Len(); i++ {
		v, err := row.Get(i)
		require.NoError(t, err)
		vals[i] = v.Value()
	}
	return vals
}

func allRowValues(t *testing.T, rs *ResultSet) [][]any {
	t.Helper()
	out := make([][]any, len(rs.Rows))
	for i, row := range rs.Rows {
		out[i] = rowValues(t, row)
	}
	return out
}

func TestQuery_FilterOnly(t *testing.T) {
	e, ctx := setupOrders(t)

	rs, err := e.Query(ctx, "SELECT * FROM orders WHERE id > 1")
	require.NoError(t, err)
	require.Len(t, rs.Rows, 2)

	var ids []int32
	for _, row := range rs.Rows {
		v, err := row.Get(0)
		require.NoError(t, err)
		ids = append(ids, v.Value().(int32))
	}
	require.ElementsMatch(t, []int32{2, 3}, ids)
}

func TestQuery_ProjectionWithAlias(t *testing.T) {
	e, ctx := setupOrders(t)

	rs, err := e.Query(ctx, "SELECT id, amount*1.5 AS amount, userId FROM orders WHERE amount < 50 ORDER BY id")
	require.NoError(t, err)
	require.Equal(t, "amount", rs.Schema[1].Name)

	var amounts []float64
	for _, row := range rs.Rows {
		v, err := row.Get(1)
		require.NoError(t, err)
		amounts = append(amounts, v.Value().(float64))
	}
	require.Equal(t, []float64{45.0, 39.0, 63.0}, amounts)
}

func TestQuery_GroupBySum(t *testing.T) {
	e, ctx := setupOrders(t)

	rs, err := e.Query(ctx, "SELECT sum(amount), userId FROM orders GROUP BY userId ORDER BY userId")
	require.NoError(t, err)
	require.Equal(t, [][]any{
		{56.0, "101"},
		{42.0, "102"},
	}, allRowValues(t, rs))
}

func TestQuery_GroupByWithArithmeticOverAggregate(t *testing.T) {
	e, ctx := setupOrders(t)

	rs, err := e.Query(ctx, "SELECT sum(amount)-20.0 AS amount, userId FROM orders GROUP BY userId ORDER BY userId")
	require.NoError(t, err)
	require.Equal(t, [][]any{
		{36.0, "101"},
		{22.0, "102"},
	}, allRowValues(t, rs))
}

func TestQuery_MultipleAggregators(t *testing.T) {
	e, ctx := setupOrders(t)

	rs, err := e.Query(ctx, "SELECT avg(amount), max(amount), min(amount), count(*), userId FROM orders GROUP BY userId ORDER BY userId")
	require.NoError(t, err)
	require.Equal(t, [][]any{
		{28.0, 30.0, 26.0, uint64(2), "101"},
		{42.0, 42.0, 42.0, uint64(1), "102"},
	}, allRowValues(t, rs))
}

func TestQuery_HavingAndOrderByAggregate(t *testing.T) {
	e, ctx := setupOrders(t)

	rs, err := e.Query(ctx, "SELECT sum(amount) AS amount, count(*) AS c, userId FROM orders "+
		"GROUP BY userId HAVING avg(amount) < 30.0 ORDER BY max(amount)")
	require.NoError(t, err)
	require.Equal(t, [][]any{
		{56.0, uint64(2), "101"},
	}, allRowValues(t, rs))
}

func TestQuery_OrderByLimitOffset(t *testing.T) {
	e, ctx := setupOrders(t)

	rs, err := e.Query(ctx, "SELECT * FROM orders ORDER BY userId LIMIT 1 OFFSET 1")
	require.NoError(t, err)
	require.Len(t, rs.Rows, 1)

	v, err := rs.Rows[0].Get(0)
	require.NoError(t, err)
	require.Equal(t, int32(3), v.Value())
}

func TestQuery_TableNotFound(t *testing.T) {
	e := NewDefault()
	ctx := sql.NewEmptyContext()

	_, err := e.Query(ctx, "SELECT * FROM nosuchtable")
	require.Error(t, err)
}
