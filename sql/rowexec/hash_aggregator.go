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
	"io"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/crackdb/crackdb/sql"
	"github.com/crackdb/crackdb/sql/expression/function"
)

// group holds one grouping key's finalized grouping values and its
// aggregators' running scratch rows.
type group struct {
	keyVals []sql.Literal
	scratch []sql.Row
}

// hashAggregatorOperator pulls its entire child on the first Next,
// building a grouping-key -> scratch-rows mapping, then finalizes each
// group and serves the results. Groupings may be empty (global
// aggregation): every row then shares the single empty key, producing at
// most one output row.
type hashAggregatorOperator struct {
	aggregators []function.Aggregator
	groupings   []sql.Expression
	sch         sql.Schema
	child       Operator

	pulled bool
	rows   []sql.Row
	pos    int
}

func newHashAggregatorOperator(aggregators []function.Aggregator, groupings []sql.Expression, sch sql.Schema, child Operator) *hashAggregatorOperator {
	return &hashAggregatorOperator{aggregators: aggregators, groupings: groupings, sch: sch, child: child}
}

func (h *hashAggregatorOperator) Schema() sql.Schema { return h.sch }

func (h *hashAggregatorOperator) Open(ctx *sql.Context) error {
	if err := h.child.Open(ctx); err != nil {
		return err
	}
	inputSchema := h.child.Schema()
	for _, agg := range h.aggregators {
		if err := agg.Resolve(inputSchema); err != nil {
			return err
		}
	}
	return nil
}

// pull drains the child, builds the grouping map, and finalizes every
// group into h.rows. It runs lazily on the first Next so a caller that
// never calls Next doesn't pay for a full child scan.
func (h *hashAggregatorOperator) pull(ctx *sql.Context) error {
	// buckets maps a grouping key's xxhash digest to every group seen so
	// far with that digest; keyValsEqual disambiguates a hash collision
	// from a genuine repeat of the same key.
	buckets := map[uint64][]*group{}
	var order []*group

	for {
		row, err := h.child.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		keyVals := make([]sql.Literal, len(h.groupings))
		for i, g := range h.groupings {
			v, err := g.Eval(ctx, row)
			if err != nil {
				return err
			}
			keyVals[i] = v
		}
		hash := hashGroupKey(keyVals)

		var g *group
		for _, candidate := range buckets[hash] {
			if keyValsEqual(candidate.keyVals, keyVals) {
				g = candidate
				break
			}
		}
		if g == nil {
			scratch := make([]sql.Row, len(h.aggregators))
			for i, agg := range h.aggregators {
				init, err := agg.InitialRow()
				if err != nil {
					return err
				}
				scratch[i] = init
			}
			g = &group{keyVals: keyVals, scratch: scratch}
			buckets[hash] = append(buckets[hash], g)
			order = append(order, g)
		}
		for i, agg := range h.aggregators {
			next, err := agg.Update(ctx, row, g.scratch[i])
			if err != nil {
				return err
			}
			g.scratch[i] = next
		}
	}

	h.rows = make([]sql.Row, 0, len(order))
	for _, g := range order {
		out := make(sql.SimpleRow, 0, len(h.groupings)+len(h.aggregators))
		out = append(out, g.keyVals...)
		for i, agg := range h.aggregators {
			v, err := agg.Finalize(g.scratch[i])
			if err != nil {
				return err
			}
			out = append(out, v)
		}
		h.rows = append(h.rows, out)
	}
	h.pulled = true
	return nil
}

// keyValsEqual reports whether two grouping-key tuples hold the same
// literal in every position.
func keyValsEqual(a, b []sql.Literal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func (h *hashAggregatorOperator) Next(ctx *sql.Context) (sql.Row, error) {
	if !h.pulled {
		if err := h.pull(ctx); err != nil {
			return nil, err
		}
	}
	if h.pos >= len(h.rows) {
		return nil, io.EOF
	}
	row := h.rows[h.pos]
	h.pos++
	return row, nil
}

func (h *hashAggregatorOperator) Close(ctx *sql.Context) error {
	return h.child.Close(ctx)
}

// hashGroupKey renders a grouping key as an xxhash digest of a
// type-tagged display string, so literals of different types hash
// differently even when their display text coincides (e.g. int 1 vs
// float 1.0). A digest match is only a bucket lookup hint, not proof of
// equality — callers must still compare the actual keyVals.
func hashGroupKey(vals []sql.Literal) uint64 {
	var b strings.Builder
	for i, v := range vals {
		if i > 0 {
			b.WriteByte('\x1f')
		}
		b.WriteString(strconv.Itoa(int(v.Type())))
		b.WriteByte(':')
		b.WriteString(v.String())
	}
	return xxhash.Sum64String(b.String())
}
