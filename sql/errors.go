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
	goerrors "gopkg.in/src-d/go-errors.v1"
)

// Error kinds, one per taxonomy entry in the spec (Parser | TableNotFound |
// Interpreting | StorageEngine | Unknown). All are user-visible, carry a
// message, and are fatal to the current statement.
var (
	ErrParser        = goerrors.NewKind("parse error: %s")
	ErrTableNotFound = goerrors.NewKind("table not found: %s")
	ErrInterpreting  = goerrors.NewKind("%s")
	ErrStorageEngine = goerrors.NewKind("%s")
	ErrUnknown       = goerrors.NewKind("%s")
)

// errUnknown wraps any contract violation or gap with a plain message.
func errUnknown(msg string) error {
	return ErrUnknown.New(msg)
}
