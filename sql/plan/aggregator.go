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

package plan

import (
	"strings"

	"github.com/crackdb/crackdb/sql"
	"github.com/crackdb/crackdb/sql/expression"
)

// Aggregator groups child rows by Groupings and reduces each group through
// Aggregators. Its schema is groupings followed by aggregators, in that
// order, each field named by the expression's display form.
type Aggregator struct {
	Aggregators []sql.Expression
	Groupings   []sql.Expression
	Child       sql.Node
}

// NewAggregator builds an Aggregator node.
func NewAggregator(aggregators, groupings []sql.Expression, child sql.Node) *Aggregator {
	return &Aggregator{Aggregators: aggregators, Groupings: groupings, Child: child}
}

func (a *Aggregator) Resolved() bool {
	if !a.Child.Resolved() {
		return false
	}
	for _, e := range a.Groupings {
		if !e.Resolved() {
			return false
		}
	}
	for _, e := range a.Aggregators {
		if !e.Resolved() {
			return false
		}
	}
	return true
}

func (a *Aggregator) Schema() sql.Schema {
	fields := make(sql.Schema, 0, len(a.Groupings)+len(a.Aggregators))
	for _, e := range a.Groupings {
		fields = append(fields, sql.FieldInfo{Name: expression.DisplayName(e), Type: e.Type()})
	}
	for _, e := range a.Aggregators {
		fields = append(fields, sql.FieldInfo{Name: expression.DisplayName(e), Type: e.Type()})
	}
	return fields
}

func (a *Aggregator) String() string {
	aggs := make([]string, len(a.Aggregators))
	for i, e := range a.Aggregators {
		aggs[i] = e.String()
	}
	groupings := make([]string, len(a.Groupings))
	for i, e := range a.Groupings {
		groupings[i] = e.String()
	}
	return "Aggregator(aggregators=[" + strings.Join(aggs, ", ") + "], groupings=[" + strings.Join(groupings, ", ") + "])"
}

func (a *Aggregator) Children() []sql.Node { return []sql.Node{a.Child} }

func (a *Aggregator) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1 {
		return nil, sql.ErrUnknown.New("Aggregator: expected exactly one child")
	}
	return &Aggregator{Aggregators: a.Aggregators, Groupings: a.Groupings, Child: children[0]}, nil
}

// Expressions returns aggregators followed by groupings so WithExpressions
// can round-trip the same split.
func (a *Aggregator) Expressions() []sql.Expression {
	out := make([]sql.Expression, 0, len(a.Aggregators)+len(a.Groupings))
	out = append(out, a.Aggregators...)
	out = append(out, a.Groupings...)
	return out
}

func (a *Aggregator) WithExpressions(exprs ...sql.Expression) (sql.Node, error) {
	if len(exprs) != len(a.Aggregators)+len(a.Groupings) {
		return nil, sql.ErrUnknown.New("Aggregator: expression count mismatch")
	}
	return &Aggregator{
		Aggregators: append([]sql.Expression(nil), exprs[:len(a.Aggregators)]...),
		Groupings:   append([]sql.Expression(nil), exprs[len(a.Aggregators):]...),
		Child:       a.Child,
	}, nil
}

// AppendAggregator returns a copy of a with agg appended to Aggregators,
// plus the index of the newly appended column within a.Schema() /
// a new aggregator's schema (groupings come first).
func (a *Aggregator) AppendAggregator(agg sql.Expression) (*Aggregator, int) {
	next := &Aggregator{
		Aggregators: append(append([]sql.Expression(nil), a.Aggregators...), agg),
		Groupings:   a.Groupings,
		Child:       a.Child,
	}
	return next, len(a.Groupings) + len(a.Aggregators)
}
