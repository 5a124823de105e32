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

package storage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crackdb/crackdb/sql"
	"github.com/crackdb/crackdb/sql/types"
)

func TestMemoryTableInsertAndScan(t *testing.T) {
	sch := sql.NewSchema(sql.FieldInfo{Name: "id", Type: types.I32})
	tbl := NewMemoryTable("nums", sch)
	ctx := sql.NewEmptyContext()

	require.NoError(t, tbl.Insert(ctx, []sql.Row{
		sql.NewRow(sql.NewLiteral(int32(1), types.I32)),
		sql.NewRow(sql.NewLiteral(int32(2), types.I32)),
	}))

	iter, err := tbl.Scan(ctx)
	require.NoError(t, err)
	var got []int32
	for {
		row, err := iter.Next(ctx)
		if err != nil {
			break
		}
		v, err := row.Get(0)
		require.NoError(t, err)
		got = append(got, v.Value().(int32))
	}
	require.Equal(t, []int32{1, 2}, got)
	require.NoError(t, iter.Close(ctx))
}

func TestMemoryTableScanIsSnapshot(t *testing.T) {
	sch := sql.NewSchema(sql.FieldInfo{Name: "id", Type: types.I32})
	tbl := NewMemoryTable("nums", sch)
	ctx := sql.NewEmptyContext()
	require.NoError(t, tbl.Insert(ctx, []sql.Row{sql.NewRow(sql.NewLiteral(int32(1), types.I32))}))

	iter, err := tbl.Scan(ctx)
	require.NoError(t, err)

	require.NoError(t, tbl.Insert(ctx, []sql.Row{sql.NewRow(sql.NewLiteral(int32(2), types.I32))}))

	var count int
	for {
		_, err := iter.Next(ctx)
		if err != nil {
			break
		}
		count++
	}
	require.Equal(t, 1, count)
}

func TestMemoryTableSchemaAndName(t *testing.T) {
	sch := sql.NewSchema(sql.FieldInfo{Name: "id", Type: types.I32})
	tbl := NewMemoryTable("nums", sch)
	require.Equal(t, "nums", tbl.Name())
	require.Equal(t, sch, tbl.Schema())
}
