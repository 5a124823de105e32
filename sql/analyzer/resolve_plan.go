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
	"github.com/crackdb/crackdb/sql/plan"
	"github.com/crackdb/crackdb/sql/transform"
)

// ruleResolvePlan rewrites UnresolvedScan{table} into Scan{table, schema}
// by consulting the catalog. Every other node is left untouched.
var ruleResolvePlan = Rule{Name: "ResolvePlan", Apply: applyResolvePlan}

func applyResolvePlan(a *Analyzer, ctx *sql.Context, node sql.Node) (sql.Node, transform.TreeIdentity, error) {
	return transform.BottomUp(node, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		u, ok := n.(*plan.UnresolvedScan)
		if !ok {
			return n, transform.SameTree, nil
		}
		table, err := a.Catalog.Table(ctx, u.Table)
		if err != nil {
			return nil, transform.SameTree, err
		}
		return plan.NewScan(table.Name(), table.Schema()), transform.NewTree, nil
	})
}
