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

// Package crackdb is the driver: it parses a single SQL statement, builds
// an unresolved logical plan, runs it through the analyzer, compiles the
// resolved plan into a physical operator tree, and runs that tree to
// completion. See spec §4.J/§6.
package crackdb

import (
	"github.com/dolthub/vitess/go/vt/sqlparser"

	"github.com/crackdb/crackdb/sql"
	"github.com/crackdb/crackdb/sql/analyzer"
	"github.com/crackdb/crackdb/sql/expression/function"
	"github.com/crackdb/crackdb/sql/rowexec"
	"github.com/crackdb/crackdb/sql/types"
	"github.com/crackdb/crackdb/storage"
)

// Config holds the construction-time options for a new Engine.
type Config struct {
	// CSVOpen lazily constructs a table for an ad-hoc ".csv"-suffixed
	// source name. New does not read this field: ad-hoc CSV sources are
	// governed solely by the factory the catalog passed to New was built
	// with (see sql.NewCatalog).
	CSVOpen sql.CSVTableFactory
}

// Engine ties together the three pieces a query passes through: the
// catalog a Scan resolves against, the registry ResolveFunctions and
// PushDownAggregators consult, and the analyzer itself.
type Engine struct {
	Catalog  *sql.Catalog
	Registry *function.Registry
	Analyzer *analyzer.Analyzer
}

// New builds an Engine around an explicit catalog.
func New(catalog *sql.Catalog, cfg Config) *Engine {
	registry := function.NewRegistry()
	return &Engine{
		Catalog:  catalog,
		Registry: registry,
		Analyzer: analyzer.NewAnalyzer(catalog, registry),
	}
}

// NewDefault builds an Engine with a fresh, empty catalog wired for
// ad-hoc CSV sources via storage.OpenCSVTable.
func NewDefault() *Engine {
	catalog := sql.NewCatalog(func(path string) (sql.Table, error) {
		return storage.OpenCSVTable(path)
	})
	return New(catalog, Config{})
}

// Query runs a single SQL statement to completion and returns its fully
// materialized result. Per spec §4.G/§7, any error aborts the whole
// statement — no partial results are ever returned.
func (e *Engine) Query(ctx *sql.Context, sqlText string) (*ResultSet, error) {
	span, ctx := ctx.Span("crackdb.Query")
	defer span.Finish()

	stmt, err := sqlparser.Parse(sqlText)
	if err != nil {
		return nil, sql.ErrParser.New(err.Error())
	}

	if rs, handled, err := e.execDDLOrDML(ctx, stmt); handled {
		return rs, err
	}

	node, err := buildLogicalPlan(stmt, e.Registry)
	if err != nil {
		return nil, err
	}

	resolved, err := e.Analyzer.Analyze(ctx, node)
	if err != nil {
		return nil, err
	}

	op, err := rowexec.Build(ctx, e.Catalog, resolved)
	if err != nil {
		return nil, err
	}
	if err := op.Open(ctx); err != nil {
		return nil, err
	}

	return collectResultSet(ctx, resolved.Schema(), op)
}

// execDDLOrDML handles the two statement kinds that never reach the
// logical-plan pipeline: CREATE TABLE and INSERT. handled is false for
// every other statement kind, signaling the caller to fall through to
// the SELECT path.
func (e *Engine) execDDLOrDML(ctx *sql.Context, stmt sqlparser.Statement) (*ResultSet, bool, error) {
	switch s := stmt.(type) {
	case *sqlparser.DDL:
		rs, err := e.execCreateTable(s)
		return rs, true, err

	case *sqlparser.Insert:
		return nil, true, e.execInsert(ctx, s)

	default:
		return nil, false, nil
	}
}

// execCreateTable installs a new empty table into the catalog. On
// success it returns the empty ResultSet: no schema rows, per spec §6 —
// CREATE TABLE reports success by its absence of error, not by echoing
// the table it just declared.
func (e *Engine) execCreateTable(s *sqlparser.DDL) (*ResultSet, error) {
	if s.Action != sqlparser.CreateStr {
		return nil, sql.ErrParser.New("only CREATE TABLE is supported")
	}
	table, err := buildCreateTable(s)
	if err != nil {
		return nil, err
	}
	e.Catalog.AddTable(table.Name(), table)
	return &ResultSet{}, nil
}

func (e *Engine) execInsert(ctx *sql.Context, ins *sqlparser.Insert) error {
	name := ins.Table.Name.String()
	table, err := e.Catalog.Table(ctx, name)
	if err != nil {
		return err
	}
	if len(ins.Columns) != 0 {
		return sql.ErrParser.New("INSERT column list is not supported; values must be positional")
	}

	values, ok := ins.Rows.(sqlparser.Values)
	if !ok {
		return sql.ErrParser.New("INSERT requires a VALUES clause")
	}

	sch := table.Schema()
	rows := make([]sql.Row, len(values))
	for i, tuple := range values {
		if len(tuple) != len(sch) {
			return sql.ErrParser.New("INSERT row arity does not match table schema")
		}
		row := make(sql.SimpleRow, len(tuple))
		for j, v := range tuple {
			lit, err := literalFromSQLVal(v, sch[j].Type)
			if err != nil {
				return err
			}
			row[j] = lit
		}
		rows[i] = row
	}
	return table.Insert(ctx, rows)
}

func buildCreateTable(ddl *sqlparser.DDL) (sql.Table, error) {
	spec := ddl.TableSpec
	if spec == nil {
		return nil, sql.ErrParser.New("CREATE TABLE requires a column list")
	}
	name := ddl.NewName.Name.String()
	sch := make(sql.Schema, len(spec.Columns))
	for i, col := range spec.Columns {
		sch[i] = sql.FieldInfo{Name: col.Name.String(), Type: columnType(col)}
	}
	return storage.NewMemoryTable(name, sch), nil
}

func columnType(col *sqlparser.ColumnDefinition) types.DataType {
	return types.FromSQLName(col.Type.Type)
}
