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

package expression

import (
	"github.com/crackdb/crackdb/sql"
	"github.com/crackdb/crackdb/sql/types"
)

// Alias renames its child's display form without changing its value; it is
// the only node the push-down rule's semantic id computation ignores (two
// expressions differing only in an Alias share a semantic id).
type Alias struct {
	Name  string
	Child sql.Expression
}

// NewAlias builds an "expr AS name" node.
func NewAlias(name string, child sql.Expression) *Alias {
	return &Alias{Name: name, Child: child}
}

func (a *Alias) Resolved() bool       { return a.Child.Resolved() }
func (a *Alias) Type() types.DataType { return a.Child.Type() }
func (a *Alias) String() string       { return a.Name }

func (a *Alias) Children() []sql.Expression {
	return []sql.Expression{a.Child}
}

func (a *Alias) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrUnknown.New("Alias: expected exactly one child")
	}
	return &Alias{Name: a.Name, Child: children[0]}, nil
}

func (a *Alias) Eval(ctx *sql.Context, row sql.Row) (sql.Literal, error) {
	return a.Child.Eval(ctx, row)
}

// SemanticID returns the display form of the expression an optimizer rule
// should key on when deciding whether two expressions are "the same
// column" modulo aliasing: the display form of the expression with its
// outermost Alias, if any, peeled off.
func SemanticID(e sql.Expression) string {
	if a, ok := e.(*Alias); ok {
		return SemanticID(a.Child)
	}
	return e.String()
}

// DisplayName returns the name a schema field should use for e: the
// Alias's name if e is aliased, else e's own display form.
func DisplayName(e sql.Expression) string {
	if a, ok := e.(*Alias); ok {
		return a.Name
	}
	return e.String()
}
