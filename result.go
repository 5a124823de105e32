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

package crackdb

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/crackdb/crackdb/sql"
	"github.com/crackdb/crackdb/sql/rowexec"
)

// ResultSet is a fully materialized query result: a schema plus every row
// the physical plan produced. Query returns one of these rather than a
// live RowIter so a caller never has to worry about forgetting to drain
// or Close the underlying operator tree.
type ResultSet struct {
	Schema sql.Schema
	Rows   []sql.Row
}

// collectResultSet drains op into a ResultSet, closing it (even on
// error) once exhausted.
func collectResultSet(ctx *sql.Context, sch sql.Schema, op rowexec.Operator) (*ResultSet, error) {
	var rows []sql.Row
	for {
		row, err := op.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			_ = op.Close(ctx)
			return nil, err
		}
		rows = append(rows, row)
	}
	if err := op.Close(ctx); err != nil {
		return nil, err
	}
	return &ResultSet{Schema: sch, Rows: rows}, nil
}

// String renders the result set as a bordered debug table, one row of
// literal display forms per output row.
func (r *ResultSet) String() string {
	var b strings.Builder
	table := tablewriter.NewWriter(&b)

	header := make([]string, len(r.Schema))
	for i, f := range r.Schema {
		header[i] = f.Name
	}
	table.SetHeader(header)

	for _, row := range r.Rows {
		cells := make([]string, row.Len())
		for i := 0; i < row.Len(); i++ {
			v, err := row.Get(i)
			if err != nil {
				cells[i] = "?"
				continue
			}
			cells[i] = v.String()
		}
		table.Append(cells)
	}

	table.Render()
	return b.String()
}
