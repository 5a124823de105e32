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

func TestLiteralCastOrMaintainPrecision(t *testing.T) {
	t.Run("integer target widens on overflow", func(t *testing.T) {
		lit := NewUnresolvedNumber("200")
		casted, changed, err := lit.CastOrMaintainPrecision(types.I8)
		require.NoError(t, err)
		require.True(t, changed)
		require.Equal(t, types.I64, casted.Type())
		require.Equal(t, int64(200), casted.Value())
	})

	t.Run("float-looking text against integer target promotes to F64", func(t *testing.T) {
		lit := NewUnresolvedNumber("1.5")
		casted, changed, err := lit.CastOrMaintainPrecision(types.I32)
		require.NoError(t, err)
		require.True(t, changed)
		require.Equal(t, types.F64, casted.Type())
		require.Equal(t, 1.5, casted.Value())
	})

	t.Run("integer-looking float text casts to target float width", func(t *testing.T) {
		lit := NewUnresolvedNumber("2.0")
		casted, changed, err := lit.CastOrMaintainPrecision(types.F32)
		require.NoError(t, err)
		require.True(t, changed)
		require.Equal(t, types.F32, casted.Type())
		require.Equal(t, float32(2.0), casted.Value())
	})

	t.Run("unresolved string against String target", func(t *testing.T) {
		lit := NewUnresolvedString("hello")
		casted, changed, err := lit.CastOrMaintainPrecision(types.String)
		require.NoError(t, err)
		require.True(t, changed)
		require.Equal(t, types.String, casted.Type())
		require.Equal(t, "hello", casted.Value())
	})

	t.Run("unresolved string against DateTime target", func(t *testing.T) {
		lit := NewUnresolvedString("2024-01-01")
		casted, changed, err := lit.CastOrMaintainPrecision(types.DateTime)
		require.NoError(t, err)
		require.True(t, changed)
		require.Equal(t, types.DateTime, casted.Type())
	})

	t.Run("already-resolved literal passes through unchanged", func(t *testing.T) {
		lit := NewLiteral(int32(5), types.I32)
		casted, changed, err := lit.CastOrMaintainPrecision(types.I64)
		require.NoError(t, err)
		require.False(t, changed)
		require.Equal(t, lit, casted)
	})

	t.Run("unresolved number against incompatible target yields no match", func(t *testing.T) {
		lit := NewUnresolvedNumber("5")
		_, changed, err := lit.CastOrMaintainPrecision(types.String)
		require.NoError(t, err)
		require.False(t, changed)
	})
}

func TestLiteralEqualAndString(t *testing.T) {
	a := NewLiteral(int32(5), types.I32)
	b := NewLiteral(int32(5), types.I32)
	c := NewLiteral(int32(6), types.I32)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.Equal(t, "5", a.String())

	require.True(t, NullLiteral().IsNull())
	require.Equal(t, "null", NullLiteral().String())

	n := NewUnresolvedNumber("3.14")
	require.True(t, n.IsUnresolved())
	require.Equal(t, "3.14", n.String())
}

func TestLiteralAsBool(t *testing.T) {
	b, err := NewLiteral(true, types.Bool).AsBool()
	require.NoError(t, err)
	require.True(t, b)

	_, err = NewLiteral(int32(1), types.I32).AsBool()
	require.Error(t, err)
}
