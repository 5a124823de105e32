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

package rowexec

import (
	"github.com/crackdb/crackdb/sql"
)

// scanOperator drives a sql.Table's own RowIter. The snapshot-under-lock
// (in-memory) or open-file-plus-header (CSV) setup work happens inside
// Table.Scan itself; this operator just owns the resulting RowIter for
// its lifetime.
type scanOperator struct {
	table sql.Table
	sch   sql.Schema
	iter  sql.RowIter
}

func newScanOperator(table sql.Table) *scanOperator {
	return &scanOperator{table: table, sch: table.Schema()}
}

func (s *scanOperator) Schema() sql.Schema { return s.sch }

func (s *scanOperator) Open(ctx *sql.Context) error {
	iter, err := s.table.Scan(ctx)
	if err != nil {
		return err
	}
	s.iter = iter
	return nil
}

func (s *scanOperator) Next(ctx *sql.Context) (sql.Row, error) {
	return s.iter.Next(ctx)
}

func (s *scanOperator) Close(ctx *sql.Context) error {
	if s.iter == nil {
		return nil
	}
	return s.iter.Close(ctx)
}
