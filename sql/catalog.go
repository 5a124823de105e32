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

package sql

import (
	"strings"
	"sync"
)

// Table is the storage capability the engine builds scans, inserts, and
// schema lookups against. The two implementations (storage.MemoryTable,
// storage.CSVTable) live outside this package to avoid a storage->sql->
// storage import cycle.
type Table interface {
	Name() string
	Schema() Schema
	// Insert appends rows in bulk. A read-only table (CSV) returns
	// ErrStorageEngine.
	Insert(ctx *Context, rows []Row) error
	// Scan opens a fresh, independent iteration over the table's rows.
	// For an in-memory table this takes a snapshot under the table's read
	// lock and releases it before returning; for a CSV table this opens
	// the file and consumes the header row.
	Scan(ctx *Context) (RowIter, error)
}

// CSVTableFactory lazily constructs a read-only CSV-backed table for a
// path, used by Catalog on a lookup miss whose name ends in ".csv".
type CSVTableFactory func(path string) (Table, error)

// Catalog is a process-wide name->table mapping protected by a
// multi-reader/single-writer lock. A lookup miss on a name ending in
// ".csv" (case-insensitive) lazily constructs and installs a CSV-backed
// table before retrying.
type Catalog struct {
	mu      sync.RWMutex
	tables  map[string]Table
	csvOpen CSVTableFactory
}

// NewCatalog builds an empty catalog. csvOpen may be nil if the caller
// never intends to query ad-hoc CSV paths.
func NewCatalog(csvOpen CSVTableFactory) *Catalog {
	return &Catalog{
		tables:  make(map[string]Table),
		csvOpen: csvOpen,
	}
}

// AddTable installs a table under name, taking the write lock for the
// duration of the insert only.
func (c *Catalog) AddTable(name string, t Table) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables[name] = t
}

// Table looks up a table by name, taking the read lock for the lifetime of
// a single lookup. On a miss for a ".csv"-suffixed name it constructs and
// installs the CSV table, then retries.
func (c *Catalog) Table(ctx *Context, name string) (Table, error) {
	if t, ok := c.lookup(name); ok {
		return t, nil
	}

	if strings.HasSuffix(strings.ToLower(name), ".csv") {
		if c.csvOpen == nil {
			return nil, ErrTableNotFound.New(name)
		}
		t, err := c.csvOpen(name)
		if err != nil {
			return nil, err
		}
		c.AddTable(name, t)
		return c.Table(ctx, name)
	}

	return nil, ErrTableNotFound.New(name)
}

func (c *Catalog) lookup(name string) (Table, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tables[name]
	return t, ok
}
