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

// Literal wraps a sql.Literal as a leaf expression node.
type Literal struct {
	Val sql.Literal
}

// NewLiteral builds a literal expression node.
func NewLiteral(v sql.Literal) *Literal {
	return &Literal{Val: v}
}

func (l *Literal) Resolved() bool {
	return !l.Val.IsUnresolved()
}

func (l *Literal) Type() types.DataType {
	return l.Val.Type()
}

func (l *Literal) String() string {
	return l.Val.String()
}

func (l *Literal) Children() []sql.Expression {
	return nil
}

func (l *Literal) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrUnknown.New("Literal: WithChildren given children")
	}
	return l, nil
}

func (l *Literal) Eval(ctx *sql.Context, row sql.Row) (sql.Literal, error) {
	return l.Val, nil
}
