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
	"github.com/crackdb/crackdb/sql/plan"
	"github.com/crackdb/crackdb/sql/transform"
)

// ruleExpandStars rewrites a Projection's "*" into one FieldRef per column
// of its child's (by-then-resolved) schema. It is not one of the named
// optimizer rules but must run before anything tries to resolve or push
// down a Projection's expressions, since Wildcard is a 1-to-N list rewrite
// the other rules' single-expression visitors cannot express.
var ruleExpandStars = Rule{Name: "ExpandStars", Apply: applyExpandStars}

func applyExpandStars(a *Analyzer, ctx *sql.Context, node sql.Node) (sql.Node, transform.TreeIdentity, error) {
	return transform.BottomUp(node, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		p, ok := n.(*plan.Projection)
		if !ok {
			return n, transform.SameTree, nil
		}
		if !hasWildcard(p.Exprs) {
			return n, transform.SameTree, nil
		}
		if !p.Child.Resolved() {
			// Scan not resolved yet on this schema; retry next iteration.
			return n, transform.SameTree, nil
		}

		schema := p.Child.Schema()
		newExprs := make([]sql.Expression, 0, len(p.Exprs)+len(schema))
		for _, e := range p.Exprs {
			if _, ok := e.(*expression.Wildcard); ok {
				for i, f := range schema {
					newExprs = append(newExprs, expression.NewFieldRef(f.Name, i, f.Type))
				}
				continue
			}
			newExprs = append(newExprs, e)
		}
		return plan.NewProjection(newExprs, p.Child), transform.NewTree, nil
	})
}

func hasWildcard(exprs []sql.Expression) bool {
	for _, e := range exprs {
		if _, ok := e.(*expression.Wildcard); ok {
			return true
		}
	}
	return false
}
