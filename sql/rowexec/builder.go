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

package rowexec

import (
	"github.com/crackdb/crackdb/sql"
	"github.com/crackdb/crackdb/sql/expression/function"
	"github.com/crackdb/crackdb/sql/plan"
)

// Build translates a fully resolved logical plan into the Operator tree
// that executes it. node must carry no UnresolvedScan, UnresolvedFieldRef,
// UnresolvedFunction, UnresolvedHaving, or Unknown type anywhere in it.
func Build(ctx *sql.Context, catalog *sql.Catalog, node sql.Node) (Operator, error) {
	switch n := node.(type) {
	case *plan.Scan:
		table, err := catalog.Table(ctx, n.TableName)
		if err != nil {
			return nil, err
		}
		return newScanOperator(table), nil

	case *plan.Filter:
		child, err := Build(ctx, catalog, n.Child)
		if err != nil {
			return nil, err
		}
		return newFilterOperator(n.Pred, child), nil

	case *plan.Projection:
		child, err := Build(ctx, catalog, n.Child)
		if err != nil {
			return nil, err
		}
		return newProjectionOperator(n.Exprs, n.Schema(), child), nil

	case *plan.Sort:
		child, err := Build(ctx, catalog, n.Child)
		if err != nil {
			return nil, err
		}
		return newSortOperator(n.Options, child), nil

	case *plan.Limit:
		child, err := Build(ctx, catalog, n.Child)
		if err != nil {
			return nil, err
		}
		return newLimitOperator(n.Offset, n.Count, child), nil

	case *plan.Aggregator:
		child, err := Build(ctx, catalog, n.Child)
		if err != nil {
			return nil, err
		}
		aggs := make([]function.Aggregator, len(n.Aggregators))
		for i, e := range n.Aggregators {
			agg, ok := e.(function.Aggregator)
			if !ok {
				return nil, sql.ErrUnknown.New("Aggregator: expression is not a resolved aggregator: " + e.String())
			}
			aggs[i] = agg
		}
		return newHashAggregatorOperator(aggs, n.Groupings, n.Schema(), child), nil

	default:
		return nil, sql.ErrUnknown.New("rowexec: unsupported plan node " + node.String())
	}
}
