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

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromSQLName(t *testing.T) {
	tests := []struct {
		name string
		want DataType
	}{
		{"int", I32},
		{"INTEGER", I32},
		{"bigint", I64},
		{"bigint unsigned", U64},
		{"tinyint unsigned", U8},
		{"double", F64},
		{"float", F32},
		{"varchar", String},
		{"varchar(255)", Unknown}, // FromSQLName expects the bare keyword
		{"text", String},
		{"boolean", Bool},
		{"datetime", DateTime},
		{"timestamp", DateTime},
		{"nonsense", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FromSQLName(tt.name))
		})
	}
}

func TestLooksLikeFloat(t *testing.T) {
	require.True(t, LooksLikeFloat("1.5"))
	require.False(t, LooksLikeFloat("1.0"))
	require.False(t, LooksLikeFloat("1.00"))
	require.False(t, LooksLikeFloat("100"))
}

func TestParseInteger(t *testing.T) {
	typ, v, err := ParseInteger(I32, "42")
	require.NoError(t, err)
	require.Equal(t, I32, typ)
	require.Equal(t, int32(42), v)

	typ, v, err = ParseInteger(I8, "200")
	require.NoError(t, err)
	require.Equal(t, I64, typ)
	require.Equal(t, int64(200), v)

	typ, v, err = ParseInteger(U8, "255")
	require.NoError(t, err)
	require.Equal(t, U8, typ)
	require.Equal(t, uint8(255), v)

	_, _, err = ParseInteger(I32, "not a number")
	require.Error(t, err)
}

func TestZeroMaxMinValue(t *testing.T) {
	z, err := Zero(I32)
	require.NoError(t, err)
	require.Equal(t, int32(0), z)

	max, err := MaxValue(U8)
	require.NoError(t, err)
	require.Equal(t, uint8(255), max)

	min, err := MinValue(I8)
	require.NoError(t, err)
	require.Equal(t, int8(-128), min)

	_, err = Zero(String)
	require.Error(t, err)
}

func TestIsCategories(t *testing.T) {
	require.True(t, I32.IsInteger())
	require.False(t, F64.IsInteger())
	require.True(t, F64.IsNumeric())
	require.True(t, I32.IsNumeric())
	require.False(t, String.IsNumeric())
	require.True(t, I32.IsSignedOrFloat())
	require.False(t, U32.IsSignedOrFloat())
	require.True(t, F32.IsSignedOrFloat())
}
