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
	"sort"

	"github.com/crackdb/crackdb/sql"
	"github.com/crackdb/crackdb/sql/expression"
	"github.com/crackdb/crackdb/sql/plan"
)

// sortOperator drains the entire child into a buffer on Open, sorts it
// with a stable comparator built lexicographically from Options, then
// serves the buffer in order.
type sortOperator struct {
	options []plan.SortOption
	child   Operator
	buf     []sql.Row
	pos     int
}

func newSortOperator(options []plan.SortOption, child Operator) *sortOperator {
	return &sortOperator{options: options, child: child}
}

func (s *sortOperator) Schema() sql.Schema { return s.child.Schema() }

func (s *sortOperator) Open(ctx *sql.Context) error {
	if err := s.child.Open(ctx); err != nil {
		return err
	}
	for {
		row, err := s.child.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		s.buf = append(s.buf, row)
	}

	var sortErr error
	sort.SliceStable(s.buf, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		less, err := s.less(ctx, s.buf[i], s.buf[j])
		if err != nil {
			sortErr = err
			return false
		}
		return less
	})
	return sortErr
}

// less applies the sort options in order: the first option that
// distinguishes the two rows decides, ascending via the interpreter's own
// comparison operator, descending by negating that comparison's result.
func (s *sortOperator) less(ctx *sql.Context, a, b sql.Row) (bool, error) {
	for _, opt := range s.options {
		va, err := opt.Expr.Eval(ctx, a)
		if err != nil {
			return false, err
		}
		vb, err := opt.Expr.Eval(ctx, b)
		if err != nil {
			return false, err
		}
		cmp, err := compareLiterals(ctx, va, vb)
		if err != nil {
			return false, err
		}
		if opt.Descending {
			cmp = -cmp
		}
		if cmp != 0 {
			return cmp < 0, nil
		}
	}
	return false, nil
}

// compareLiterals orders null before any non-null value (the interpreter
// itself has no opinion on null ordering) and otherwise defers to the
// BinaryOp interpreter's own < and = dispatch.
func compareLiterals(ctx *sql.Context, a, b sql.Literal) (int, error) {
	if a.IsNull() && b.IsNull() {
		return 0, nil
	}
	if a.IsNull() {
		return -1, nil
	}
	if b.IsNull() {
		return 1, nil
	}

	la, lb := expression.NewLiteral(a), expression.NewLiteral(b)
	eq, err := expression.NewBinaryOp(expression.Equals, la, lb).Eval(ctx, nil)
	if err != nil {
		return 0, err
	}
	if isEq, _ := eq.AsBool(); isEq {
		return 0, nil
	}
	lt, err := expression.NewBinaryOp(expression.LT, la, lb).Eval(ctx, nil)
	if err != nil {
		return 0, err
	}
	if isLt, _ := lt.AsBool(); isLt {
		return -1, nil
	}
	return 1, nil
}

func (s *sortOperator) Next(ctx *sql.Context) (sql.Row, error) {
	if s.pos >= len(s.buf) {
		return nil, io.EOF
	}
	row := s.buf[s.pos]
	s.pos++
	return row, nil
}

func (s *sortOperator) Close(ctx *sql.Context) error {
	return s.child.Close(ctx)
}
