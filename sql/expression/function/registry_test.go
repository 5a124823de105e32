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

package function

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crackdb/crackdb/sql"
	"github.com/crackdb/crackdb/sql/expression"
	"github.com/crackdb/crackdb/sql/types"
)

func TestRegistryLookupBuiltinAggregators(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"sum", "avg", "count", "min", "max", "SUM"} {
		entry, ok := r.Lookup(name)
		require.True(t, ok, name)
		require.True(t, entry.IsAggregator)
	}

	_, ok := r.Lookup("nosuchfn")
	require.False(t, ok)
}

func TestIsAggregator(t *testing.T) {
	r := NewRegistry()
	require.True(t, r.IsAggregator("sum"))
	require.False(t, r.IsAggregator("nosuchfn"))
}

func TestBuildRejectsWildcardExceptCount(t *testing.T) {
	r := NewRegistry()

	sumEntry, _ := r.Lookup("sum")
	_, err := sumEntry.Build([]sql.Expression{expression.NewWildcard()})
	require.Error(t, err)

	countEntry, _ := r.Lookup("count")
	expr, err := countEntry.Build([]sql.Expression{expression.NewWildcard()})
	require.NoError(t, err)
	require.True(t, IsAggregatorExpr(expr))
}

func TestBuildArityChecks(t *testing.T) {
	r := NewRegistry()
	sumEntry, _ := r.Lookup("sum")

	_, err := sumEntry.Build(nil)
	require.Error(t, err)

	arg := expression.NewFieldRef("amount", 0, types.F64)
	_, err = sumEntry.Build([]sql.Expression{arg, arg})
	require.Error(t, err)
}

func TestIsAggregatorExprDistinguishesScalars(t *testing.T) {
	arg := expression.NewFieldRef("amount", 0, types.F64)
	r := NewRegistry()
	sumEntry, _ := r.Lookup("sum")
	aggExpr, err := sumEntry.Build([]sql.Expression{arg})
	require.NoError(t, err)
	require.True(t, IsAggregatorExpr(aggExpr))

	require.False(t, IsAggregatorExpr(arg))
}
