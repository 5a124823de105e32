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

// rulePushDownAggregators scans the expressions of nodes that project or
// propagate (Projection, Sort, UnresolvedHaving) for aggregator calls,
// keyed by semantic id so two occurrences of the same aggregate share one
// pushed column. Each aggregate is resolved against its child's own
// addressable outputs if already present there, or else pushed into the
// nearest descendant Aggregator node. UnresolvedHaving always becomes
// Filter. When a push grew an intervening node's exposed schema and the
// current node doesn't itself re-project, the result is wrapped in a
// Projection reproducing the pre-push-down schema so the extra column
// stays invisible above this point.
var rulePushDownAggregators = Rule{Name: "PushDownAggregators", Apply: applyPushDownAggregators}

func applyPushDownAggregators(a *Analyzer, ctx *sql.Context, node sql.Node) (sql.Node, transform.TreeIdentity, error) {
	return transform.BottomUp(node, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		switch t := n.(type) {
		case *plan.Projection:
			return pushDownRelay(a, n, t.Exprs, t.Child, false, func(exprs []sql.Expression, child sql.Node) sql.Node {
				return plan.NewProjection(exprs, child)
			})

		case *plan.Sort:
			exprs := make([]sql.Expression, len(t.Options))
			for i, o := range t.Options {
				exprs[i] = o.Expr
			}
			return pushDownRelay(a, n, exprs, t.Child, true, func(newExprs []sql.Expression, child sql.Node) sql.Node {
				options := make([]plan.SortOption, len(t.Options))
				for i, e := range newExprs {
					options[i] = plan.SortOption{Expr: e, Descending: t.Options[i].Descending}
				}
				return plan.NewSort(options, child)
			})

		case *plan.UnresolvedHaving:
			result, _, err := pushDownRelayForce(a, []sql.Expression{t.Pred}, t.Child, func(newExprs []sql.Expression, child sql.Node) sql.Node {
				return plan.NewFilter(newExprs[0], child)
			})
			if err != nil {
				return n, transform.SameTree, err
			}
			return result, transform.NewTree, nil

		default:
			return n, transform.SameTree, nil
		}
	})
}

// pushDownRelay resolves every aggregate call reachable from exprs,
// rebuilding via rebuild only if something changed. passThrough marks
// nodes (Sort) whose own schema is just their child's, so a grown child
// schema must be hidden behind a wrapping Projection.
func pushDownRelay(a *Analyzer, original sql.Node, exprs []sql.Expression, child sql.Node, passThrough bool, rebuild func([]sql.Expression, sql.Node) sql.Node) (sql.Node, transform.TreeIdentity, error) {
	newExprs, newChild, changed, childGrew, err := resolveAggregates(a, exprs, child)
	if err != nil {
		return original, transform.SameTree, err
	}
	if !changed {
		return original, transform.SameTree, nil
	}

	result := rebuild(newExprs, newChild)
	if passThrough && childGrew {
		result = wrapPrePushDownSchema(child.Schema(), result)
	}
	return result, transform.NewTree, nil
}

// pushDownRelayForce behaves like pushDownRelay but always rebuilds
// (UnresolvedHaving must become Filter even when its predicate has no
// aggregate calls to push).
func pushDownRelayForce(a *Analyzer, exprs []sql.Expression, child sql.Node, rebuild func([]sql.Expression, sql.Node) sql.Node) (sql.Node, transform.TreeIdentity, error) {
	newExprs, newChild, _, childGrew, err := resolveAggregates(a, exprs, child)
	if err != nil {
		return nil, transform.SameTree, err
	}
	result := rebuild(newExprs, newChild)
	if childGrew {
		result = wrapPrePushDownSchema(child.Schema(), result)
	}
	return result, transform.NewTree, nil
}

func wrapPrePushDownSchema(oldSchema sql.Schema, child sql.Node) sql.Node {
	exprs := make([]sql.Expression, len(oldSchema))
	for i, f := range oldSchema {
		exprs[i] = expression.NewFieldRef(f.Name, i, f.Type)
	}
	return plan.NewProjection(exprs, child)
}

func resolveAggregates(a *Analyzer, exprs []sql.Expression, child sql.Node) ([]sql.Expression, sql.Node, bool, bool, error) {
	collected := map[string]sql.Expression{}
	currentChild := child
	changed := false
	childGrew := false

	newExprs := make([]sql.Expression, len(exprs))
	for i, e := range exprs {
		rewritten, same, err := transform.TopDown(e, func(sub sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
			uf, ok := sub.(*expression.UnresolvedFunction)
			if !ok || !a.Registry.IsAggregator(uf.Name) {
				return sub, transform.SameTree, nil
			}
			semID := expression.SemanticID(uf)
			if fr, ok := collected[semID]; ok {
				return fr, transform.NewTree, nil
			}
			newChild, fieldRef, grew, err := pushAggregator(a, currentChild, uf)
			if err != nil {
				return sub, transform.SameTree, err
			}
			currentChild = newChild
			collected[semID] = fieldRef
			if grew {
				childGrew = true
			}
			return fieldRef, transform.NewTree, nil
		})
		if err != nil {
			return nil, nil, false, false, err
		}
		newExprs[i] = rewritten
		if same == transform.NewTree {
			changed = true
		}
	}
	if currentChild != child {
		changed = true
	}
	return newExprs, currentChild, changed, childGrew, nil
}

// pushAggregator resolves uf against node's own addressable outputs, or
// pushes it into the nearest descendant Aggregator, rebuilding every node
// on the path down to it. Returns the (possibly rebuilt) node, a FieldRef
// usable by the caller to reference the aggregate's value, and whether
// node's own exposed schema grew as a result.
func pushAggregator(a *Analyzer, node sql.Node, uf *expression.UnresolvedFunction) (sql.Node, sql.Expression, bool, error) {
	semID := expression.SemanticID(uf)

	switch t := node.(type) {
	case *plan.Aggregator:
		combined := append(append([]sql.Expression(nil), t.Groupings...), t.Aggregators...)
		if idx, ok := matchSemanticID(combined, semID); ok {
			e := combined[idx]
			return t, expression.NewFieldRef(expression.DisplayName(e), idx, e.Type()), false, nil
		}
		built, err := a.buildAggregator(uf)
		if err != nil {
			return nil, nil, false, err
		}
		newAgg, idx := t.AppendAggregator(built)
		return newAgg, expression.NewFieldRef(built.String(), idx, built.Type()), true, nil

	case *plan.Projection:
		if idx, ok := matchSemanticID(t.Exprs, semID); ok {
			e := t.Exprs[idx]
			return t, expression.NewFieldRef(expression.DisplayName(e), idx, e.Type()), false, nil
		}
		newChild, fieldRef, _, err := pushAggregator(a, t.Child, uf)
		if err != nil {
			return nil, nil, false, err
		}
		newIdx := len(t.Exprs)
		newExprs := append(append([]sql.Expression(nil), t.Exprs...), fieldRef)
		return plan.NewProjection(newExprs, newChild), expression.NewFieldRef(expression.DisplayName(fieldRef), newIdx, fieldRef.Type()), true, nil

	case *plan.Filter:
		newChild, fieldRef, grew, err := pushAggregator(a, t.Child, uf)
		if err != nil {
			return nil, nil, false, err
		}
		return plan.NewFilter(t.Pred, newChild), fieldRef, grew, nil

	case *plan.Limit:
		newChild, fieldRef, grew, err := pushAggregator(a, t.Child, uf)
		if err != nil {
			return nil, nil, false, err
		}
		return plan.NewLimit(t.Offset, t.Count, newChild), fieldRef, grew, nil

	case *plan.Sort:
		newChild, fieldRef, grew, err := pushAggregator(a, t.Child, uf)
		if err != nil {
			return nil, nil, false, err
		}
		rebuilt, err := t.WithChildren(newChild)
		if err != nil {
			return nil, nil, false, err
		}
		return rebuilt, fieldRef, grew, nil

	default:
		return nil, nil, false, sql.ErrUnknown.New("aggregate function used outside an aggregation context: " + semID)
	}
}

func matchSemanticID(exprs []sql.Expression, semID string) (int, bool) {
	for i, e := range exprs {
		if expression.SemanticID(e) == semID {
			return i, true
		}
	}
	return -1, false
}

func (a *Analyzer) buildAggregator(uf *expression.UnresolvedFunction) (sql.Expression, error) {
	entry, ok := a.Registry.Lookup(uf.Name)
	if !ok {
		return nil, sql.ErrUnknown.New("Unrecognized function " + uf.Name)
	}
	return entry.Build(uf.Args)
}
