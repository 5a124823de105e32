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
)

// SortOption pairs a sort key expression with its direction.
type SortOption struct {
	Expr       sql.Expression
	Descending bool
}

func (o SortOption) String() string {
	if o.Descending {
		return o.Expr.String() + " DESC"
	}
	return o.Expr.String() + " ASC"
}

// Sort preserves its child's schema, draining the child into a buffer and
// emitting rows in the order given by Options (lexicographic: later
// options break ties left by earlier ones).
type Sort struct {
	Options []SortOption
	Child   sql.Node
}

// NewSort builds a Sort node.
func NewSort(options []SortOption, child sql.Node) *Sort {
	return &Sort{Options: options, Child: child}
}

func (s *Sort) Resolved() bool {
	if !s.Child.Resolved() {
		return false
	}
	for _, o := range s.Options {
		if !o.Expr.Resolved() {
			return false
		}
	}
	return true
}

func (s *Sort) Schema() sql.Schema { return s.Child.Schema() }

func (s *Sort) String() string {
	parts := make([]string, len(s.Options))
	for i, o := range s.Options {
		parts[i] = o.String()
	}
	return "Sort(" + strings.Join(parts, ", ") + ")"
}

func (s *Sort) Children() []sql.Node { return []sql.Node{s.Child} }

func (s *Sort) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1 {
		return nil, sql.ErrUnknown.New("Sort: expected exactly one child")
	}
	return &Sort{Options: s.Options, Child: children[0]}, nil
}

func (s *Sort) Expressions() []sql.Expression {
	out := make([]sql.Expression, len(s.Options))
	for i, o := range s.Options {
		out[i] = o.Expr
	}
	return out
}

func (s *Sort) WithExpressions(exprs ...sql.Expression) (sql.Node, error) {
	if len(exprs) != len(s.Options) {
		return nil, sql.ErrUnknown.New("Sort: expression count mismatch")
	}
	options := make([]SortOption, len(s.Options))
	for i, e := range exprs {
		options[i] = SortOption{Expr: e, Descending: s.Options[i].Descending}
	}
	return &Sort{Options: options, Child: s.Child}, nil
}
