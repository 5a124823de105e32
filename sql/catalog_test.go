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

package sql

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crackdb/crackdb/sql/types"
)

type fakeTable struct {
	name string
	sch  Schema
}

func (f *fakeTable) Name() string                        { return f.name }
func (f *fakeTable) Schema() Schema                       { return f.sch }
func (f *fakeTable) Insert(ctx *Context, rows []Row) error { return nil }
func (f *fakeTable) Scan(ctx *Context) (RowIter, error)    { return RowsToRowIter(), nil }

func TestCatalogAddAndLookup(t *testing.T) {
	c := NewCatalog(nil)
	ctx := NewEmptyContext()

	_, err := c.Table(ctx, "missing")
	require.ErrorIs(t, err, ErrTableNotFound)

	tbl := &fakeTable{name: "orders", sch: NewSchema(FieldInfo{Name: "id", Type: types.I32})}
	c.AddTable("orders", tbl)

	got, err := c.Table(ctx, "orders")
	require.NoError(t, err)
	require.Same(t, tbl, got)
}

func TestCatalogLazyCSV(t *testing.T) {
	ctx := NewEmptyContext()
	var opened []string
	c := NewCatalog(func(path string) (Table, error) {
		opened = append(opened, path)
		return &fakeTable{name: path}, nil
	})

	got, err := c.Table(ctx, "data.csv")
	require.NoError(t, err)
	require.Equal(t, "data.csv", got.Name())
	require.Equal(t, []string{"data.csv"}, opened)

	// Second lookup hits the installed table, csvOpen is not called again.
	_, err = c.Table(ctx, "data.csv")
	require.NoError(t, err)
	require.Len(t, opened, 1)
}

func TestCatalogNoCSVFactory(t *testing.T) {
	c := NewCatalog(nil)
	ctx := NewEmptyContext()

	_, err := c.Table(ctx, "missing.csv")
	require.ErrorIs(t, err, ErrTableNotFound)
}
