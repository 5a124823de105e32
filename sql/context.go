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

import (
	"context"

	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
)

// Context carries the ambient state threaded through every RowIter.Next,
// catalog lookup, and analyzer rule: a cancellation-capable context.Context,
// a session id, and the logger/tracer the rest of the engine reports
// through.
type Context struct {
	context.Context
	id     string
	logger *logrus.Entry
}

// NewContext wraps a context.Context with a fresh session id and the
// package-level logger.
func NewContext(ctx context.Context) *Context {
	return &Context{
		Context: ctx,
		id:      uuid.NewString(),
		logger:  logrus.StandardLogger().WithField("session", ""),
	}
}

// NewEmptyContext is a convenience constructor for tests and one-shot
// queries that don't need a caller-supplied context.Context.
func NewEmptyContext() *Context {
	return NewContext(context.Background())
}

// ID returns the session id, used to correlate log lines for a single
// query's compilation and execution.
func (c *Context) ID() string {
	return c.id
}

// Logger returns the structured logger scoped to this session.
func (c *Context) Logger() *logrus.Entry {
	return c.logger.WithField("session", c.id)
}

// Span opens a tracing span around a stage of compilation or execution,
// following the teacher's ctx.Span(name) convention. Callers must Finish
// the returned span.
func (c *Context) Span(name string) (opentracing.Span, *Context) {
	span, goCtx := opentracing.StartSpanFromContext(c.Context, name)
	return span, &Context{Context: goCtx, id: c.id, logger: c.logger}
}
