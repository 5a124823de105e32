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

package storage

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/crackdb/crackdb/sql"
	"github.com/crackdb/crackdb/sql/types"
)

// maxInferenceSamples bounds how many rows past the header schema
// inference reads before settling on a type per column, per spec.md §3.
const maxInferenceSamples = 10

// CSVTable is a read-only table backed by a CSV file. Its schema is
// inferred once, at open time, from the header row's names and up to
// maxInferenceSamples subsequent rows' values.
type CSVTable struct {
	path string
	sch  sql.Schema
}

// OpenCSVTable infers path's schema and returns a CSVTable over it. The
// file used for inference is closed before returning; every Scan opens
// its own independent handle.
func OpenCSVTable(path string) (*CSVTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, sql.ErrStorageEngine.New(err.Error())
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, sql.ErrStorageEngine.New(err.Error())
	}

	sch, err := inferSchema(r, header)
	if err != nil {
		return nil, err
	}
	return &CSVTable{path: path, sch: sch}, nil
}

func (t *CSVTable) Name() string       { return t.path }
func (t *CSVTable) Schema() sql.Schema { return t.sch }

// Insert is a contract violation: a CSV table is read-only.
func (t *CSVTable) Insert(ctx *sql.Context, rows []sql.Row) error {
	return sql.ErrStorageEngine.New("cannot insert into a read-only CSV table: " + t.path)
}

// Scan opens its own file handle and consumes the header row, so a scan
// in progress is unaffected by another scan started concurrently.
func (t *CSVTable) Scan(ctx *sql.Context) (sql.RowIter, error) {
	f, err := os.Open(t.path)
	if err != nil {
		return nil, sql.ErrStorageEngine.New(err.Error())
	}
	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil {
		f.Close()
		return nil, sql.ErrStorageEngine.New(err.Error())
	}
	return &csvRowIter{f: f, r: r, sch: t.sch}, nil
}

type csvRowIter struct {
	f   *os.File
	r   *csv.Reader
	sch sql.Schema
}

func (it *csvRowIter) Next(ctx *sql.Context) (sql.Row, error) {
	record, err := it.r.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, sql.ErrStorageEngine.New(err.Error())
	}
	if len(record) != len(it.sch) {
		return nil, sql.ErrStorageEngine.New("csv record arity does not match inferred schema")
	}
	row := make(sql.SimpleRow, len(record))
	for i, cell := range record {
		v, err := parseCell(cell, it.sch[i].Type)
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}

func (it *csvRowIter) Close(ctx *sql.Context) error {
	return it.f.Close()
}

func parseCell(cell string, t types.DataType) (sql.Literal, error) {
	switch t {
	case types.Bool:
		b, err := strconv.ParseBool(cell)
		if err != nil {
			return sql.Literal{}, sql.ErrStorageEngine.New(err.Error())
		}
		return sql.NewLiteral(b, types.Bool), nil
	case types.I64:
		i, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return sql.Literal{}, sql.ErrStorageEngine.New(err.Error())
		}
		return sql.NewLiteral(i, types.I64), nil
	case types.F64:
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return sql.Literal{}, sql.ErrStorageEngine.New(err.Error())
		}
		return sql.NewLiteral(f, types.F64), nil
	default:
		return sql.NewLiteral(cell, types.String), nil
	}
}

// cellKind is the per-cell narrowest type a sampled value fits, ordered
// Bool/Int < Float < String per spec.md §3's generality lattice. Bool and
// Int share the bottom tier but aren't substitutable for each other: a
// column mixing both widens straight to String since neither narrows the
// other.
type cellKind int

const (
	kindBool cellKind = iota
	kindInt
	kindFloat
	kindString
)

func classifyCell(cell string) cellKind {
	if _, err := strconv.ParseBool(cell); err == nil {
		return kindBool
	}
	if _, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return kindInt
	}
	if _, err := strconv.ParseFloat(cell, 64); err == nil {
		return kindFloat
	}
	return kindString
}

func widen(a, b cellKind) cellKind {
	if a == b {
		return a
	}
	if (a == kindBool && b == kindInt) || (a == kindInt && b == kindBool) {
		return kindString
	}
	if a > b {
		return a
	}
	return b
}

func inferSchema(r *csv.Reader, header []string) (sql.Schema, error) {
	kinds := make([]cellKind, len(header))
	seen := make([]bool, len(header))

	for i := 0; i < maxInferenceSamples; i++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, sql.ErrStorageEngine.New(err.Error())
		}
		if len(record) != len(header) {
			return nil, sql.ErrStorageEngine.New("csv record arity does not match header")
		}
		for j, cell := range record {
			k := classifyCell(cell)
			if !seen[j] {
				kinds[j] = k
				seen[j] = true
			} else {
				kinds[j] = widen(kinds[j], k)
			}
		}
	}

	fields := make(sql.Schema, len(header))
	for i, name := range header {
		var t types.DataType
		if !seen[i] {
			t = types.String
		} else {
			switch kinds[i] {
			case kindBool:
				t = types.Bool
			case kindInt:
				t = types.I64
			case kindFloat:
				t = types.F64
			default:
				t = types.String
			}
		}
		fields[i] = sql.FieldInfo{Name: name, Type: t}
	}
	return fields, nil
}
