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

	"github.com/crackdb/crackdb/sql"
)

// limitOperator streams child rows, skipping the first Offset and passing
// at most Count (or all, if Count is nil).
type limitOperator struct {
	offset  int
	count   *int
	child   Operator
	skipped int
	emitted int
}

func newLimitOperator(offset int, count *int, child Operator) *limitOperator {
	return &limitOperator{offset: offset, count: count, child: child}
}

func (l *limitOperator) Schema() sql.Schema { return l.child.Schema() }

func (l *limitOperator) Open(ctx *sql.Context) error {
	return l.child.Open(ctx)
}

func (l *limitOperator) Next(ctx *sql.Context) (sql.Row, error) {
	if l.count != nil && l.emitted >= *l.count {
		return nil, io.EOF
	}
	for l.skipped < l.offset {
		if _, err := l.child.Next(ctx); err != nil {
			return nil, err
		}
		l.skipped++
	}
	row, err := l.child.Next(ctx)
	if err != nil {
		return nil, err
	}
	l.emitted++
	return row, nil
}

func (l *limitOperator) Close(ctx *sql.Context) error {
	return l.child.Close(ctx)
}
