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

// UnresolvedFieldRef names a column by name only; ResolveExpr turns it into
// a FieldRef against a plan node's contextual schema.
type UnresolvedFieldRef struct {
	Name string
}

// NewUnresolvedFieldRef builds a column reference pending resolution.
func NewUnresolvedFieldRef(name string) *UnresolvedFieldRef {
	return &UnresolvedFieldRef{Name: name}
}

func (f *UnresolvedFieldRef) Resolved() bool { return false }
func (f *UnresolvedFieldRef) Type() types.DataType { return types.Unknown }
func (f *UnresolvedFieldRef) String() string       { return f.Name }
func (f *UnresolvedFieldRef) Children() []sql.Expression { return nil }

func (f *UnresolvedFieldRef) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrUnknown.New("UnresolvedFieldRef: WithChildren given children")
	}
	return f, nil
}

func (f *UnresolvedFieldRef) Eval(ctx *sql.Context, row sql.Row) (sql.Literal, error) {
	return sql.Literal{}, sql.ErrInterpreting.New("unresolved field reference: " + f.Name)
}

// FieldRef is a resolved column reference: a concrete index into a row plus
// its declared type. Only FieldRef with Type != Unknown refers to data at
// execution time.
type FieldRef struct {
	Name  string
	Index int
	Typ   types.DataType
}

// NewFieldRef builds a resolved column reference.
func NewFieldRef(name string, index int, t types.DataType) *FieldRef {
	return &FieldRef{Name: name, Index: index, Typ: t}
}

func (f *FieldRef) Resolved() bool       { return f.Typ != types.Unknown }
func (f *FieldRef) Type() types.DataType { return f.Typ }
func (f *FieldRef) String() string       { return f.Name }
func (f *FieldRef) Children() []sql.Expression { return nil }

func (f *FieldRef) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrUnknown.New("FieldRef: WithChildren given children")
	}
	return f, nil
}

func (f *FieldRef) Eval(ctx *sql.Context, row sql.Row) (sql.Literal, error) {
	return row.Get(f.Index)
}

// Wildcard stands for "*" in a projection list; ExpandStars rewrites a
// Projection's expression list to one FieldRef per source column before any
// other resolution rule runs. A Wildcard reaching the interpreter is a
// contract violation.
type Wildcard struct{}

// NewWildcard builds the "*" expression node.
func NewWildcard() *Wildcard { return &Wildcard{} }

func (w *Wildcard) Resolved() bool             { return false }
func (w *Wildcard) Type() types.DataType       { return types.Unknown }
func (w *Wildcard) String() string             { return "*" }
func (w *Wildcard) Children() []sql.Expression { return nil }

func (w *Wildcard) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrUnknown.New("Wildcard: WithChildren given children")
	}
	return w, nil
}

func (w *Wildcard) Eval(ctx *sql.Context, row sql.Row) (sql.Literal, error) {
	return sql.Literal{}, sql.ErrInterpreting.New("wildcard reached the interpreter")
}
