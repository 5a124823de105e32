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
	"github.com/crackdb/crackdb/sql"
)

// filterOperator pulls from Child, evaluating Pred against each row and
// skipping on false.
type filterOperator struct {
	pred  sql.Expression
	child Operator
}

func newFilterOperator(pred sql.Expression, child Operator) *filterOperator {
	return &filterOperator{pred: pred, child: child}
}

func (f *filterOperator) Schema() sql.Schema { return f.child.Schema() }

func (f *filterOperator) Open(ctx *sql.Context) error {
	return f.child.Open(ctx)
}

func (f *filterOperator) Next(ctx *sql.Context) (sql.Row, error) {
	for {
		row, err := f.child.Next(ctx)
		if err != nil {
			return nil, err
		}
		val, err := f.pred.Eval(ctx, row)
		if err != nil {
			return nil, err
		}
		keep, err := val.AsBool()
		if err != nil {
			return nil, err
		}
		if keep {
			return row, nil
		}
	}
}

func (f *filterOperator) Close(ctx *sql.Context) error {
	return f.child.Close(ctx)
}
