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
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crackdb/crackdb/sql/types"
)

func TestSimpleRow(t *testing.T) {
	row := NewRow(NewLiteral(int32(1), types.I32), NewLiteral("a", types.String))
	require.Equal(t, 2, row.Len())

	v, err := row.Get(0)
	require.NoError(t, err)
	require.Equal(t, int32(1), v.Value())

	require.NoError(t, row.Set(1, NewLiteral("b", types.String)))
	v, err = row.Get(1)
	require.NoError(t, err)
	require.Equal(t, "b", v.Value())

	_, err = row.Get(5)
	require.Error(t, err)

	cp := row.Copy()
	require.NoError(t, cp.Set(0, NewLiteral(int32(9), types.I32)))
	orig, _ := row.Get(0)
	require.Equal(t, int32(1), orig.Value())
}

func TestCombinedRow(t *testing.T) {
	left := NewRow(NewLiteral(int32(1), types.I32))
	right := NewRow(NewLiteral("a", types.String), NewLiteral(true, types.Bool))
	combined := NewCombinedRow(left, right)

	require.Equal(t, 3, combined.Len())
	v, err := combined.Get(0)
	require.NoError(t, err)
	require.Equal(t, int32(1), v.Value())

	v, err = combined.Get(2)
	require.NoError(t, err)
	require.Equal(t, true, v.Value())

	require.Error(t, combined.Set(0, NullLiteral()))

	flat := combined.Copy()
	require.Equal(t, 3, flat.Len())
}

func TestRowsToRowIter(t *testing.T) {
	ctx := NewEmptyContext()
	r1 := NewRow(NewLiteral(int32(1), types.I32))
	r2 := NewRow(NewLiteral(int32(2), types.I32))
	iter := RowsToRowIter(r1, r2)

	got, err := iter.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, r1, got)

	got, err = iter.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, r2, got)

	_, err = iter.Next(ctx)
	require.Equal(t, io.EOF, err)
	require.NoError(t, iter.Close(ctx))
}
