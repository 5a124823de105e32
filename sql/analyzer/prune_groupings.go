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
	"github.com/crackdb/crackdb/sql/expression/function"
	"github.com/crackdb/crackdb/sql/plan"
	"github.com/crackdb/crackdb/sql/transform"
)

// rulePruneGroupingsFromAggregators drops any Aggregator.Aggregators entry
// that isn't actually a resolved aggregate call. PushDownAggregators only
// ever appends real aggregate calls there, but a grouping column pulled in
// through PushDownAggregators' FieldRef plumbing (or a plain passthrough
// left over from an earlier rewrite) can end up looking like a stray
// non-aggregate expression; this rule is the final sweep that keeps the
// Aggregators list honest before the plan reaches rowexec.
var rulePruneGroupingsFromAggregators = Rule{Name: "PruneGroupingsFromAggregators", Apply: applyPruneGroupings}

func applyPruneGroupings(a *Analyzer, ctx *sql.Context, node sql.Node) (sql.Node, transform.TreeIdentity, error) {
	return transform.BottomUp(node, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		agg, ok := n.(*plan.Aggregator)
		if !ok {
			return n, transform.SameTree, nil
		}

		kept := make([]sql.Expression, 0, len(agg.Aggregators))
		changed := false
		for _, e := range agg.Aggregators {
			if function.IsAggregatorExpr(e) {
				kept = append(kept, e)
				continue
			}
			changed = true
		}
		if !changed {
			return n, transform.SameTree, nil
		}
		return plan.NewAggregator(kept, agg.Groupings, agg.Child), transform.NewTree, nil
	})
}
