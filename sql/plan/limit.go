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

// Limit streams child rows, skipping the first Offset and passing at most
// *Count rows; Count == nil means All (no cap).
type Limit struct {
	Offset int
	Count  *int
	Child  sql.Node
}

// NewLimit builds a Limit node. count == nil means unbounded.
func NewLimit(offset int, count *int, child sql.Node) *Limit {
	return &Limit{Offset: offset, Count: count, Child: child}
}

func (l *Limit) Resolved() bool     { return l.Child.Resolved() }
func (l *Limit) Schema() sql.Schema { return l.Child.Schema() }

func (l *Limit) String() string {
	if l.Count == nil {
		return fmt.Sprintf("Limit(offset=%d, count=All)", l.Offset)
	}
	return fmt.Sprintf("Limit(offset=%d, count=%d)", l.Offset, *l.Count)
}

func (l *Limit) Children() []sql.Node { return []sql.Node{l.Child} }

func (l *Limit) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1 {
		return nil, sql.ErrUnknown.New("Limit: expected exactly one child")
	}
	return &Limit{Offset: l.Offset, Count: l.Count, Child: children[0]}, nil
}
