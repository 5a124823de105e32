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

// Package analyzer implements the rule-based optimizer: a sequence of
// stages, each a list of rules applied in order to a fixpoint, rewriting
// an unresolved logical plan into one sql/rowexec can execute.
package analyzer

import (
	"strconv"

	"github.com/crackdb/crackdb/sql"
	"github.com/crackdb/crackdb/sql/expression/function"
	"github.com/crackdb/crackdb/sql/transform"
)

// maxIterations guards a stage's fixpoint loop against an analyzer rule
// bug that never converges.
const maxIterations = 100

// Rule rewrites a plan node, reporting whether it changed anything.
type Rule struct {
	Name  string
	Apply func(a *Analyzer, ctx *sql.Context, node sql.Node) (sql.Node, transform.TreeIdentity, error)
}

// Analyzer holds the catalog and function registry every rule consults,
// and the stage list rules run in.
type Analyzer struct {
	Catalog  *sql.Catalog
	Registry *function.Registry
	stages   [][]Rule
}

// NewAnalyzer builds the analyzer with the standard stage list: plan
// resolution and aggregator push-down, then expression resolution, then
// the final aggregator-list cleanup.
func NewAnalyzer(catalog *sql.Catalog, registry *function.Registry) *Analyzer {
	return &Analyzer{
		Catalog:  catalog,
		Registry: registry,
		stages: [][]Rule{
			{ruleResolvePlan, ruleExpandStars, rulePushDownAggregators},
			{ruleResolveExpr, ruleResolveLiteralTypes, ruleResolveFunctions},
			{rulePruneGroupingsFromAggregators},
		},
	}
}

// Analyze runs every stage over node in order, iterating each stage's
// rules to a fixpoint before moving to the next stage.
func (a *Analyzer) Analyze(ctx *sql.Context, node sql.Node) (sql.Node, error) {
	span, ctx := ctx.Span("analyzer.Analyze")
	defer span.Finish()

	current := node
	for _, stage := range a.stages {
		next, err := a.runStage(ctx, stage, current)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

func (a *Analyzer) runStage(ctx *sql.Context, rules []Rule, node sql.Node) (sql.Node, error) {
	current := node
	for i := 0; i < maxIterations; i++ {
		changed := false
		for _, rule := range rules {
			next, same, err := rule.Apply(a, ctx, current)
			if err != nil {
				return nil, err
			}
			if same == transform.NewTree {
				ctx.Logger().WithField("rule", rule.Name).Debug("analyzer rule rewrote plan")
				current = next
				changed = true
			}
		}
		if !changed {
			return current, nil
		}
	}
	return nil, sql.ErrUnknown.New("analyzer stage did not converge after " + strconv.Itoa(maxIterations) + " iterations")
}
