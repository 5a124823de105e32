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
	"fmt"

	"github.com/crackdb/crackdb/sql"
)

// Filter preserves its child's schema, skipping rows whose predicate
// evaluates false.
type Filter struct {
	Pred  sql.Expression
	Child sql.Node
}

// NewFilter builds a Filter node.
func NewFilter(pred sql.Expression, child sql.Node) *Filter {
	return &Filter{Pred: pred, Child: child}
}

func (f *Filter) Resolved() bool     { return f.Pred.Resolved() && f.Child.Resolved() }
func (f *Filter) Schema() sql.Schema { return f.Child.Schema() }
func (f *Filter) String() string     { return fmt.Sprintf("Filter(%s)", f.Pred.String()) }
func (f *Filter) Children() []sql.Node { return []sql.Node{f.Child} }

func (f *Filter) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1 {
		return nil, sql.ErrUnknown.New("Filter: expected exactly one child")
	}
	return &Filter{Pred: f.Pred, Child: children[0]}, nil
}

func (f *Filter) Expressions() []sql.Expression { return []sql.Expression{f.Pred} }

func (f *Filter) WithExpressions(exprs ...sql.Expression) (sql.Node, error) {
	if len(exprs) != 1 {
		return nil, sql.ErrUnknown.New("Filter: expected exactly one expression")
	}
	return &Filter{Pred: exprs[0], Child: f.Child}, nil
}

// UnresolvedHaving is the HAVING clause before PushDownAggregators
// converts it into a Filter. It is distinct from Filter so the push-down
// rule can distinguish a HAVING predicate (which may reference
// aggregators not yet present in the child's schema) from an ordinary
// WHERE predicate.
type UnresolvedHaving struct {
	Pred  sql.Expression
	Child sql.Node
}

// NewUnresolvedHaving builds a pending HAVING clause.
func NewUnresolvedHaving(pred sql.Expression, child sql.Node) *UnresolvedHaving {
	return &UnresolvedHaving{Pred: pred, Child: child}
}

func (h *UnresolvedHaving) Resolved() bool     { return false }
func (h *UnresolvedHaving) Schema() sql.Schema { return h.Child.Schema() }
func (h *UnresolvedHaving) String() string     { return fmt.Sprintf("UnresolvedHaving(%s)", h.Pred.String()) }
func (h *UnresolvedHaving) Children() []sql.Node { return []sql.Node{h.Child} }

func (h *UnresolvedHaving) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1 {
		return nil, sql.ErrUnknown.New("UnresolvedHaving: expected exactly one child")
	}
	return &UnresolvedHaving{Pred: h.Pred, Child: children[0]}, nil
}

func (h *UnresolvedHaving) Expressions() []sql.Expression { return []sql.Expression{h.Pred} }

func (h *UnresolvedHaving) WithExpressions(exprs ...sql.Expression) (sql.Node, error) {
	if len(exprs) != 1 {
		return nil, sql.ErrUnknown.New("UnresolvedHaving: expected exactly one expression")
	}
	return &UnresolvedHaving{Pred: exprs[0], Child: h.Child}, nil
}
