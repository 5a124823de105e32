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

// Package plan holds the logical plan tree node variants: UnresolvedScan,
// Scan, Filter, Projection, Aggregator, Sort, Limit, UnresolvedHaving.
package plan

import (
	"fmt"

	"github.com/crackdb/crackdb/sql"
)

// UnresolvedScan names a table by name only; ResolvePlan turns it into a
// Scan by consulting the catalog.
type UnresolvedScan struct {
	Table string
}

// NewUnresolvedScan builds a pending table scan.
func NewUnresolvedScan(table string) *UnresolvedScan {
	return &UnresolvedScan{Table: table}
}

func (s *UnresolvedScan) Resolved() bool  { return false }
func (s *UnresolvedScan) Schema() sql.Schema { return nil }
func (s *UnresolvedScan) String() string  { return fmt.Sprintf("UnresolvedScan(%s)", s.Table) }
func (s *UnresolvedScan) Children() []sql.Node { return nil }

func (s *UnresolvedScan) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 0 {
		return nil, sql.ErrUnknown.New("UnresolvedScan: WithChildren given children")
	}
	return s, nil
}

// Scan is a resolved table reference: a name plus the schema the catalog
// reported for it at resolution time.
type Scan struct {
	TableName string
	Sch       sql.Schema
}

// NewScan builds a resolved table scan.
func NewScan(table string, schema sql.Schema) *Scan {
	return &Scan{TableName: table, Sch: schema}
}

func (s *Scan) Resolved() bool     { return true }
func (s *Scan) Schema() sql.Schema { return s.Sch }
func (s *Scan) String() string     { return fmt.Sprintf("Scan(%s)", s.TableName) }
func (s *Scan) Children() []sql.Node { return nil }

func (s *Scan) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 0 {
		return nil, sql.ErrUnknown.New("Scan: WithChildren given children")
	}
	return s, nil
}
