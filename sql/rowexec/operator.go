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

// Package rowexec builds and runs the physical pull-iterator pipeline: a
// tree of Operators translated from a fully resolved logical plan, each
// one synchronous, single-threaded, and pulled row by row from the
// driver.
package rowexec

import (
	"github.com/crackdb/crackdb/sql"
)

// Operator is a physical pull iterator. Open acquires whatever a step
// needs to start serving rows (a table snapshot, an open file, a sorted
// buffer); Next yields io.EOF once exhausted; Close releases anything
// Open acquired. Callers must call Open before the first Next and Close
// exactly once when done, even on error.
type Operator interface {
	Schema() sql.Schema
	Open(ctx *sql.Context) error
	Next(ctx *sql.Context) (sql.Row, error)
	Close(ctx *sql.Context) error
}
