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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crackdb/crackdb/sql"
	"github.com/crackdb/crackdb/sql/types"
)

func writeCSV(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestOpenCSVTableInfersSchema(t *testing.T) {
	path := writeCSV(t, "id,amount,label,active\n2,10.5,hello,true\n3,20,world,false\n")

	tbl, err := OpenCSVTable(path)
	require.NoError(t, err)

	sch := tbl.Schema()
	require.Equal(t, types.I64, sch[0].Type)
	require.Equal(t, types.F64, sch[1].Type)
	require.Equal(t, types.String, sch[2].Type)
	require.Equal(t, types.Bool, sch[3].Type)
}

func TestCSVTableScanProducesTypedRows(t *testing.T) {
	path := writeCSV(t, "id,amount\n2,10.5\n3,20.25\n")
	tbl, err := OpenCSVTable(path)
	require.NoError(t, err)

	ctx := sql.NewEmptyContext()
	iter, err := tbl.Scan(ctx)
	require.NoError(t, err)

	row, err := iter.Next(ctx)
	require.NoError(t, err)
	id, err := row.Get(0)
	require.NoError(t, err)
	require.Equal(t, int64(2), id.Value())
	amount, err := row.Get(1)
	require.NoError(t, err)
	require.Equal(t, 10.5, amount.Value())

	_, err = iter.Next(ctx)
	require.NoError(t, err)

	_, err = iter.Next(ctx)
	require.Error(t, err)
	require.NoError(t, iter.Close(ctx))
}

func TestCSVTableScanSkipsHeaderEachTime(t *testing.T) {
	path := writeCSV(t, "id\n2\n3\n")
	tbl, err := OpenCSVTable(path)
	require.NoError(t, err)

	ctx := sql.NewEmptyContext()
	for i := 0; i < 2; i++ {
		iter, err := tbl.Scan(ctx)
		require.NoError(t, err)
		var rows []sql.Row
		for {
			row, err := iter.Next(ctx)
			if err != nil {
				break
			}
			rows = append(rows, row)
		}
		require.Len(t, rows, 2)
		require.NoError(t, iter.Close(ctx))
	}
}

func TestCSVTableInsertIsReadOnly(t *testing.T) {
	path := writeCSV(t, "id\n2\n")
	tbl, err := OpenCSVTable(path)
	require.NoError(t, err)

	err = tbl.Insert(sql.NewEmptyContext(), nil)
	require.ErrorIs(t, err, sql.ErrStorageEngine)
}

func TestWidenMixedBoolAndIntGoesToString(t *testing.T) {
	// "2" and "3" classify as kindInt (strconv.ParseBool rejects them),
	// while "true"/"false" classify as kindBool; mixing forces String.
	path := writeCSV(t, "flag\n2\ntrue\n")
	tbl, err := OpenCSVTable(path)
	require.NoError(t, err)
	require.Equal(t, types.String, tbl.Schema()[0].Type)
}

func TestWidenIntThenFloatBecomesFloat(t *testing.T) {
	path := writeCSV(t, "value\n2\n3.5\n")
	tbl, err := OpenCSVTable(path)
	require.NoError(t, err)
	require.Equal(t, types.F64, tbl.Schema()[0].Type)
}

func TestInferSchemaOnlySamplesUpToMax(t *testing.T) {
	// First maxInferenceSamples rows are all integers; an 11th row with a
	// non-numeric value must not affect the inferred type since sampling
	// stops after maxInferenceSamples.
	contents := "n\n"
	for i := 0; i < maxInferenceSamples; i++ {
		contents += "5\n"
	}
	contents += "notanumber\n"
	path := writeCSV(t, contents)

	tbl, err := OpenCSVTable(path)
	require.NoError(t, err)
	require.Equal(t, types.I64, tbl.Schema()[0].Type)
}

func TestOpenCSVTableMissingFile(t *testing.T) {
	_, err := OpenCSVTable(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, sql.ErrStorageEngine)
}
