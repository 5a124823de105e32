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
	"github.com/crackdb/crackdb/sql/types"
)

// ruleResolveExpr turns UnresolvedFieldRef(name) into FieldRef{name, index,
// type} using the contextual schema of each expression-bearing node's
// single child. A FieldRef whose type is still Unknown but whose index now
// points at a typed field is refreshed. Names that match nothing are left
// unresolved for a later iteration (the expression may still be rewritten
// by a sibling rule first).
var ruleResolveExpr = Rule{Name: "ResolveExpr", Apply: applyResolveExpr}

func applyResolveExpr(a *Analyzer, ctx *sql.Context, node sql.Node) (sql.Node, transform.TreeIdentity, error) {
	return transform.BottomUp(node, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		return rewriteNodeExpressions(n, func(schema sql.Schema, sub sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
			switch v := sub.(type) {
			case *expression.UnresolvedFieldRef:
				idx := schema.IndexOf(v.Name)
				if idx < 0 {
					return sub, transform.SameTree, nil
				}
				return expression.NewFieldRef(v.Name, idx, schema[idx].Type), transform.NewTree, nil
			case *expression.FieldRef:
				if v.Typ == types.Unknown && v.Index >= 0 && v.Index < len(schema) {
					return expression.NewFieldRef(v.Name, v.Index, schema[v.Index].Type), transform.NewTree, nil
				}
				return sub, transform.SameTree, nil
			default:
				return sub, transform.SameTree, nil
			}
		})
	})
}

// rewriteNodeExpressions applies f (given the single child's schema) to
// every expression of n, bottom-up, rebuilding n via WithExpressions only
// if f changed something. Nodes that aren't an ExpressionsContainer with
// exactly one child are left untouched.
func rewriteNodeExpressions(n sql.Node, f func(schema sql.Schema, sub sql.Expression) (sql.Expression, transform.TreeIdentity, error)) (sql.Node, transform.TreeIdentity, error) {
	ec, ok := n.(sql.ExpressionsContainer)
	if !ok {
		return n, transform.SameTree, nil
	}
	children := n.Children()
	if len(children) != 1 {
		return n, transform.SameTree, nil
	}
	schema := children[0].Schema()

	exprs := ec.Expressions()
	newExprs := make([]sql.Expression, len(exprs))
	changed := false
	for i, e := range exprs {
		rewritten, same, err := transform.BottomUp(e, func(sub sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
			return f(schema, sub)
		})
		if err != nil {
			return nil, transform.SameTree, err
		}
		newExprs[i] = rewritten
		if same == transform.NewTree {
			changed = true
		}
	}
	if !changed {
		return n, transform.SameTree, nil
	}
	newNode, err := ec.WithExpressions(newExprs...)
	if err != nil {
		return nil, transform.SameTree, err
	}
	return newNode, transform.NewTree, nil
}
