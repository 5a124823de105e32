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

import "io"

// Row is an ordered sequence of Literal with indexed access. SimpleRow is
// the owning, mutable implementation; CombinedRow is a read-only
// concatenation view used to evaluate an expression over input_row ⊕
// scratch_row without copying either.
type Row interface {
	Len() int
	Get(i int) (Literal, error)
	// Set overwrites the value at position i. CombinedRow rejects every
	// call; only a SimpleRow may be mutated in place.
	Set(i int, v Literal) error
	// Copy returns an independent SimpleRow with the same values.
	Copy() SimpleRow
}

// SimpleRow is a finite ordered sequence of Literal that owns its values.
type SimpleRow []Literal

// NewRow builds a SimpleRow from a fixed argument list.
func NewRow(vals ...Literal) SimpleRow {
	return SimpleRow(vals)
}

// Len reports the number of values in the row.
func (r SimpleRow) Len() int {
	return len(r)
}

// Get returns the value at position i. An out-of-bounds index is a
// contract violation surfaced as Unknown("index out of bound"), never
// panics.
func (r SimpleRow) Get(i int) (Literal, error) {
	if i < 0 || i >= len(r) {
		return Literal{}, errUnknown("index out of bound")
	}
	return r[i], nil
}

// Set overwrites the value at position i.
func (r SimpleRow) Set(i int, v Literal) error {
	if i < 0 || i >= len(r) {
		return errUnknown("index out of bound")
	}
	r[i] = v
	return nil
}

// Copy returns an independent SimpleRow with the same values.
func (r SimpleRow) Copy() SimpleRow {
	out := make(SimpleRow, len(r))
	copy(out, r)
	return out
}

// CombinedRow is a transient, read-only view over two rows (left then
// right), used to evaluate an expression over input_row ⊕ scratch_row
// without copying. Updates on a CombinedRow are a contract violation.
type CombinedRow struct {
	Left  Row
	Right Row
}

// NewCombinedRow builds a read-only view concatenating left then right.
func NewCombinedRow(left, right Row) CombinedRow {
	return CombinedRow{Left: left, Right: right}
}

func (c CombinedRow) Len() int {
	return c.Left.Len() + c.Right.Len()
}

func (c CombinedRow) Get(i int) (Literal, error) {
	if i < c.Left.Len() {
		return c.Left.Get(i)
	}
	return c.Right.Get(i - c.Left.Len())
}

// Set always fails: CombinedRow is read-only by contract.
func (c CombinedRow) Set(i int, v Literal) error {
	return errUnknown("cannot update a combined row")
}

// Copy flattens the view into an independent SimpleRow.
func (c CombinedRow) Copy() SimpleRow {
	out := make(SimpleRow, 0, c.Len())
	for i := 0; i < c.Left.Len(); i++ {
		v, _ := c.Left.Get(i)
		out = append(out, v)
	}
	for i := 0; i < c.Right.Len(); i++ {
		v, _ := c.Right.Get(i)
		out = append(out, v)
	}
	return out
}

// RowIter is the pull-based iterator contract shared by physical operators
// and table scans: Next yields io.EOF once exhausted, and Close releases
// any resources (open files, locks) the iterator is holding.
type RowIter interface {
	Next(ctx *Context) (Row, error)
	Close(ctx *Context) error
}

// sliceRowIter adapts a fixed slice of rows to RowIter, used by
// RowsToRowIter and by in-memory table snapshots.
type sliceRowIter struct {
	rows []Row
	pos  int
}

// RowsToRowIter builds a RowIter that serves the given rows in order and
// then io.EOF forever after.
func RowsToRowIter(rows ...Row) RowIter {
	return &sliceRowIter{rows: rows}
}

func (it *sliceRowIter) Next(ctx *Context) (Row, error) {
	if it.pos >= len(it.rows) {
		return nil, io.EOF
	}
	r := it.rows[it.pos]
	it.pos++
	return r, nil
}

func (it *sliceRowIter) Close(ctx *Context) error {
	return nil
}
