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

// Package storage holds the two sql.Table implementations named in
// spec.md §3: an append-only in-memory table and a read-only CSV-backed
// table.
package storage

import (
	"sync"

	"github.com/crackdb/crackdb/sql"
)

// MemoryTable is an append-only in-memory table guarded by a
// read/write lock narrowly scoped to each operation: Insert takes the
// write lock for the duration of the append, Scan takes the read lock
// just long enough to clone a snapshot.
type MemoryTable struct {
	mu   sync.RWMutex
	name string
	sch  sql.Schema
	rows []sql.Row
}

// NewMemoryTable builds an empty in-memory table with the given schema.
func NewMemoryTable(name string, sch sql.Schema) *MemoryTable {
	return &MemoryTable{name: name, sch: sch}
}

func (t *MemoryTable) Name() string     { return t.name }
func (t *MemoryTable) Schema() sql.Schema { return t.sch }

// Insert appends rows under the write lock.
func (t *MemoryTable) Insert(ctx *sql.Context, rows []sql.Row) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, rows...)
	return nil
}

// Scan takes a point-in-time copy of the table's rows under the read
// lock, then releases it before returning — a later writer never stalls
// behind an in-flight scan.
func (t *MemoryTable) Scan(ctx *sql.Context) (sql.RowIter, error) {
	t.mu.RLock()
	snapshot := make([]sql.Row, len(t.rows))
	copy(snapshot, t.rows)
	t.mu.RUnlock()
	return sql.RowsToRowIter(snapshot...), nil
}
