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

// projectionOperator evaluates Exprs against each child row, emitting a
// new row of the same width as Exprs.
type projectionOperator struct {
	exprs []sql.Expression
	sch   sql.Schema
	child Operator
}

func newProjectionOperator(exprs []sql.Expression, sch sql.Schema, child Operator) *projectionOperator {
	return &projectionOperator{exprs: exprs, sch: sch, child: child}
}

func (p *projectionOperator) Schema() sql.Schema { return p.sch }

func (p *projectionOperator) Open(ctx *sql.Context) error {
	return p.child.Open(ctx)
}

func (p *projectionOperator) Next(ctx *sql.Context) (sql.Row, error) {
	row, err := p.child.Next(ctx)
	if err != nil {
		return nil, err
	}
	out := make(sql.SimpleRow, len(p.exprs))
	for i, e := range p.exprs {
		v, err := e.Eval(ctx, row)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (p *projectionOperator) Close(ctx *sql.Context) error {
	return p.child.Close(ctx)
}
