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

// ruleResolveLiteralTypes coerces an unresolved literal operand of a
// BinaryOp to match its sibling's known type, via Literal.
// CastOrMaintainPrecision. Only fires when exactly one side is Unknown; if
// the cast can't produce a matching type (e.g. the known side isn't
// numeric or string-ish), the node is left for a parse error further
// downstream or for ResolveExpr/ResolveFunctions to make progress first.
var ruleResolveLiteralTypes = Rule{Name: "ResolveLiteralTypes", Apply: applyResolveLiteralTypes}

func applyResolveLiteralTypes(a *Analyzer, ctx *sql.Context, node sql.Node) (sql.Node, transform.TreeIdentity, error) {
	return transform.BottomUp(node, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		return rewriteNodeExpressions(n, func(_ sql.Schema, sub sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
			b, ok := sub.(*expression.BinaryOp)
			if !ok {
				return sub, transform.SameTree, nil
			}
			lt, rt := b.Left.Type(), b.Right.Type()

			switch {
			case lt != types.Unknown && rt == types.Unknown:
				newRight, changed, err := coerceToType(b.Right, lt)
				if err != nil || !changed {
					return sub, transform.SameTree, err
				}
				rebuilt, err := b.WithChildren(b.Left, newRight)
				if err != nil {
					return sub, transform.SameTree, err
				}
				return rebuilt, transform.NewTree, nil

			case rt != types.Unknown && lt == types.Unknown:
				newLeft, changed, err := coerceToType(b.Left, rt)
				if err != nil || !changed {
					return sub, transform.SameTree, err
				}
				rebuilt, err := b.WithChildren(newLeft, b.Right)
				if err != nil {
					return sub, transform.SameTree, err
				}
				return rebuilt, transform.NewTree, nil

			default:
				return sub, transform.SameTree, nil
			}
		})
	})
}

func coerceToType(e sql.Expression, target types.DataType) (sql.Expression, bool, error) {
	lit, ok := e.(*expression.Literal)
	if !ok {
		return e, false, nil
	}
	coerced, changed, err := lit.Val.CastOrMaintainPrecision(target)
	if err != nil {
		return nil, false, err
	}
	if !changed {
		return e, false, nil
	}
	return expression.NewLiteral(coerced), true, nil
}
