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
	"github.com/crackdb/crackdb/sql"
	"github.com/crackdb/crackdb/sql/expression"
	"github.com/crackdb/crackdb/sql/transform"
)

// ruleResolveFunctions turns remaining UnresolvedFunction calls into
// Function nodes via the registry. By this stage PushDownAggregators has
// already replaced every aggregate call with a FieldRef, so anything still
// an UnresolvedFunction here names a scalar builtin. The built-in registry
// currently has none, so in practice any survivor fails with an
// unrecognized-function error; that's expected rather than a bug in this
// rule, which only does the lookup-and-rebuild.
var ruleResolveFunctions = Rule{Name: "ResolveFunctions", Apply: applyResolveFunctions}

func applyResolveFunctions(a *Analyzer, ctx *sql.Context, node sql.Node) (sql.Node, transform.TreeIdentity, error) {
	return transform.BottomUp(node, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		return rewriteNodeExpressions(n, func(_ sql.Schema, sub sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
			uf, ok := sub.(*expression.UnresolvedFunction)
			if !ok {
				return sub, transform.SameTree, nil
			}
			entry, ok := a.Registry.Lookup(uf.Name)
			if !ok {
				return nil, transform.SameTree, sql.ErrUnknown.New("Unrecognized function " + uf.Name)
			}
			resolved, err := entry.Build(uf.Args)
			if err != nil {
				return nil, transform.SameTree, err
			}
			return resolved, transform.NewTree, nil
		})
	})
}
