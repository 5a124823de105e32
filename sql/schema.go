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

import "github.com/crackdb/crackdb/sql/types"

// FieldInfo names one column of a Schema.
type FieldInfo struct {
	Name string
	Type types.DataType
}

// Schema is an ordered sequence of fields. Duplicate names are permitted
// (if discouraged); lookups return the first match.
type Schema []FieldInfo

// NewSchema builds a Schema from field infos.
func NewSchema(fields ...FieldInfo) Schema {
	return Schema(fields)
}

// IndexOf returns the position of the first field with the given name, or
// -1 if none matches.
func (s Schema) IndexOf(name string) int {
	for i, f := range s {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Equal reports whether two schemas have element-wise equal field
// sequences.
func (s Schema) Equal(o Schema) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Concat returns a new schema with o's fields appended to s's.
func (s Schema) Concat(o Schema) Schema {
	out := make(Schema, 0, len(s)+len(o))
	out = append(out, s...)
	out = append(out, o...)
	return out
}

// Copy returns an independent copy of the schema.
func (s Schema) Copy() Schema {
	out := make(Schema, len(s))
	copy(out, s)
	return out
}
