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
	"fmt"
	"strconv"

	"github.com/crackdb/crackdb/sql/types"
)

// literalTag discriminates the few cases a Literal can hold that aren't a
// concrete DataType: the two unresolved payloads and the null marker.
type literalTag int

const (
	tagResolved literalTag = iota
	tagUnresolvedNumber
	tagUnresolvedString
	tagNull
)

// Literal is a tagged value: either a fully-typed payload matching one
// types.DataType, or one of the two unresolved payloads, or null. After the
// optimizer finishes, no unresolved literal survives in a plan reachable
// from sql/rowexec.
type Literal struct {
	tag  literalTag
	typ  types.DataType
	val  any
	text string
}

// NewLiteral wraps an already-typed Go value. Valid combinations of t and
// the Go type of v are the engine's own business; callers within this
// module never mix them up.
func NewLiteral(v any, t types.DataType) Literal {
	return Literal{tag: tagResolved, typ: t, val: v}
}

// NewUnresolvedNumber wraps the literal text of a numeric constant before
// its target type is known.
func NewUnresolvedNumber(text string) Literal {
	return Literal{tag: tagUnresolvedNumber, typ: types.Unknown, text: text}
}

// NewUnresolvedString wraps the literal text of a string constant before its
// target type is known (String vs DateTime).
func NewUnresolvedString(text string) Literal {
	return Literal{tag: tagUnresolvedString, typ: types.Unknown, text: text}
}

// NullLiteral is the SQL NULL value. Its DataType is Unknown.
func NullLiteral() Literal {
	return Literal{tag: tagNull, typ: types.Unknown}
}

func (l Literal) IsUnresolved() bool {
	return l.tag == tagUnresolvedNumber || l.tag == tagUnresolvedString
}

func (l Literal) IsNull() bool {
	return l.tag == tagNull
}

// Type returns the literal's DataType. Unresolved and null literals report
// Unknown.
func (l Literal) Type() types.DataType {
	return l.typ
}

// Value returns the underlying Go value. Only meaningful for resolved,
// non-null literals.
func (l Literal) Value() any {
	return l.val
}

// Text returns the raw source text of an unresolved literal.
func (l Literal) Text() string {
	return l.text
}

// String renders the literal's display form, used both for user-facing
// projection column names and for the optimizer's semantic-id computation.
func (l Literal) String() string {
	switch l.tag {
	case tagUnresolvedNumber, tagUnresolvedString:
		return l.text
	case tagNull:
		return "null"
	default:
		return fmt.Sprintf("%v", l.val)
	}
}

// Equal implements component-wise equality within the same tag; across
// tags, inequality follows from the discriminant alone.
func (l Literal) Equal(o Literal) bool {
	if l.tag != o.tag {
		return false
	}
	switch l.tag {
	case tagUnresolvedNumber, tagUnresolvedString:
		return l.text == o.text
	case tagNull:
		return true
	default:
		if l.typ != o.typ {
			return false
		}
		return l.val == o.val
	}
}

// Hash is intentionally conservative: it hashes only the tag discriminant,
// never the payload. Collisions within a tag (including all floats of the
// same tag) are expected and resolved by Equal. NaN handling is undefined,
// matching the value layer's documented limitation.
func (l Literal) Hash() uint64 {
	return uint64(l.tag)<<8 | uint64(l.typ)
}

// AsBool returns the boolean payload or an interpreting error.
func (l Literal) AsBool() (bool, error) {
	if l.typ != types.Bool {
		return false, ErrInterpreting.New(fmt.Sprintf("cannot convert %s to bool", l.typ))
	}
	b, _ := l.val.(bool)
	return b, nil
}

// CastOrMaintainPrecision maps an unresolved literal into the narrowest type
// that both satisfies target and never loses precision. See spec §4.A.
// Already-typed and null literals pass through unchanged.
func (l Literal) CastOrMaintainPrecision(target types.DataType) (Literal, bool, error) {
	switch l.tag {
	case tagUnresolvedNumber:
		if target.IsInteger() && types.LooksLikeFloat(l.text) {
			f, err := strconv.ParseFloat(l.text, 64)
			if err != nil {
				return Literal{}, false, ErrParser.New(err.Error())
			}
			return NewLiteral(f, types.F64), true, nil
		}
		if target == types.F32 || target == types.F64 {
			f, err := strconv.ParseFloat(l.text, 64)
			if err != nil {
				return Literal{}, false, ErrParser.New(err.Error())
			}
			if target == types.F32 {
				return NewLiteral(float32(f), types.F32), true, nil
			}
			return NewLiteral(f, types.F64), true, nil
		}
		if !target.IsInteger() {
			return Literal{}, false, nil
		}
		resultType, v, err := types.ParseInteger(target, l.text)
		if err != nil {
			return Literal{}, false, ErrParser.New(err.Error())
		}
		return NewLiteral(v, resultType), true, nil
	case tagUnresolvedString:
		switch target {
		case types.String:
			return NewLiteral(l.text, types.String), true, nil
		case types.DateTime:
			return NewLiteral(l.text, types.DateTime), true, nil
		default:
			return Literal{}, false, nil
		}
	default:
		return l, false, nil
	}
}
