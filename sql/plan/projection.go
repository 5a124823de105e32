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

// Projection evaluates a list of expressions per child row. Its schema has
// one field per expression: name is the expression's display form (the
// Alias name, if aliased), type is the expression's type.
type Projection struct {
	Exprs []sql.Expression
	Child sql.Node
}

// NewProjection builds a Projection node.
func NewProjection(exprs []sql.Expression, child sql.Node) *Projection {
	return &Projection{Exprs: exprs, Child: child}
}

func (p *Projection) Resolved() bool {
	if !p.Child.Resolved() {
		return false
	}
	for _, e := range p.Exprs {
		if !e.Resolved() {
			return false
		}
	}
	return true
}

func (p *Projection) Schema() sql.Schema {
	fields := make(sql.Schema, len(p.Exprs))
	for i, e := range p.Exprs {
		fields[i] = sql.FieldInfo{Name: expression.DisplayName(e), Type: e.Type()}
	}
	return fields
}

func (p *Projection) String() string {
	parts := make([]string, len(p.Exprs))
	for i, e := range p.Exprs {
		parts[i] = e.String()
	}
	return "Projection(" + strings.Join(parts, ", ") + ")"
}

func (p *Projection) Children() []sql.Node { return []sql.Node{p.Child} }

func (p *Projection) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1 {
		return nil, sql.ErrUnknown.New("Projection: expected exactly one child")
	}
	return &Projection{Exprs: p.Exprs, Child: children[0]}, nil
}

func (p *Projection) Expressions() []sql.Expression { return p.Exprs }

func (p *Projection) WithExpressions(exprs ...sql.Expression) (sql.Node, error) {
	return &Projection{Exprs: exprs, Child: p.Child}, nil
}
