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

// Package types defines the closed set of data types the engine understands.
package types

import (
	"fmt"
	"strconv"
	"strings"
)

// DataType is the closed set of value types the engine understands. Unknown
// is the inference-pending type; every rule in sql/analyzer must eliminate
// it before a plan reaches sql/rowexec.
type DataType int

const (
	Unknown DataType = iota
	U8
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	F32
	F64
	String
	Bool
	DateTime
)

func (t DataType) String() string {
	switch t {
	case U8:
		return "U8"
	case U16:
		return "U16"
	case U32:
		return "U32"
	case U64:
		return "U64"
	case I8:
		return "I8"
	case I16:
		return "I16"
	case I32:
		return "I32"
	case I64:
		return "I64"
	case F32:
		return "F32"
	case F64:
		return "F64"
	case String:
		return "String"
	case Bool:
		return "Bool"
	case DateTime:
		return "DateTime"
	default:
		return "Unknown"
	}
}

// IsInteger reports whether t is one of the signed or unsigned integer types.
func (t DataType) IsInteger() bool {
	switch t {
	case U8, U16, U32, U64, I8, I16, I32, I64:
		return true
	default:
		return false
	}
}

// IsSignedOrFloat reports whether t supports unary negation.
func (t DataType) IsSignedOrFloat() bool {
	switch t {
	case I8, I16, I32, I64, F32, F64:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether t is any integer or float type.
func (t DataType) IsNumeric() bool {
	switch t {
	case F32, F64:
		return true
	default:
		return t.IsInteger()
	}
}

// errUnsupported is used for the "should never happen" branches of the
// per-type helpers below, which are only ever called with numeric types.
func errUnsupported(op string, t DataType) error {
	return fmt.Errorf("%s not supported for %s", op, t)
}

// FromSQLName maps a CREATE TABLE column type keyword to a DataType.
// Unrecognized keywords map to Unknown; the caller decides whether that is
// an error.
func FromSQLName(name string) DataType {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "u8", "uint8", "tinyint unsigned":
		return U8
	case "u16", "uint16", "smallint unsigned":
		return U16
	case "u32", "uint32", "int unsigned":
		return U32
	case "u64", "uint64", "bigint unsigned":
		return U64
	case "i8", "int8", "tinyint":
		return I8
	case "i16", "int16", "smallint":
		return I16
	case "i32", "int32", "int", "integer":
		return I32
	case "i64", "int64", "bigint":
		return I64
	case "f32", "float32", "float":
		return F32
	case "f64", "float64", "double":
		return F64
	case "string", "varchar", "text", "char":
		return String
	case "bool", "boolean":
		return Bool
	case "datetime", "timestamp":
		return DateTime
	default:
		return Unknown
	}
}

// LooksLikeFloat reports whether text, as parsed from an unresolved numeric
// literal, contains a decimal point with a nonzero fractional part once
// trailing zeros are trimmed. This is the "looks like float" test of
// cast_or_maintain_precision rule 1.
func LooksLikeFloat(text string) bool {
	dot := strings.IndexByte(text, '.')
	if dot < 0 {
		return false
	}
	frac := strings.TrimRight(text[dot+1:], "0")
	return frac != ""
}

// ParseInteger parses text into the narrowest carrier that satisfies target,
// widening to I64/U64 on overflow of target's natural width. An error is
// returned when text is not a base-10 integer of target's signedness, when
// the 64-bit carrier itself overflows, or when target is not an integer
// type.
func ParseInteger(target DataType, text string) (DataType, any, error) {
	switch target {
	case U8, U16, U32, U64:
		u, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return Unknown, nil, err
		}
		switch target {
		case U8:
			if u <= 0xFF {
				return U8, uint8(u), nil
			}
		case U16:
			if u <= 0xFFFF {
				return U16, uint16(u), nil
			}
		case U32:
			if u <= 0xFFFFFFFF {
				return U32, uint32(u), nil
			}
		}
		return U64, u, nil
	case I8, I16, I32, I64:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Unknown, nil, err
		}
		switch target {
		case I8:
			if i >= -128 && i <= 127 {
				return I8, int8(i), nil
			}
		case I16:
			if i >= -32768 && i <= 32767 {
				return I16, int16(i), nil
			}
		case I32:
			if i >= -2147483648 && i <= 2147483647 {
				return I32, int32(i), nil
			}
		}
		return I64, i, nil
	default:
		return Unknown, nil, errUnsupported("ParseInteger", target)
	}
}

// Zero returns the additive identity for a numeric type, used as the initial
// scratch value of the sum aggregator.
func Zero(t DataType) (any, error) {
	switch t {
	case U8:
		return uint8(0), nil
	case U16:
		return uint16(0), nil
	case U32:
		return uint32(0), nil
	case U64:
		return uint64(0), nil
	case I8:
		return int8(0), nil
	case I16:
		return int16(0), nil
	case I32:
		return int32(0), nil
	case I64:
		return int64(0), nil
	case F32:
		return float32(0), nil
	case F64:
		return float64(0), nil
	default:
		return nil, errUnsupported("Zero", t)
	}
}

// MaxValue returns the maximum representable value for a numeric type, used
// to seed the min aggregator's scratch row.
func MaxValue(t DataType) (any, error) {
	switch t {
	case U8:
		return uint8(1<<8 - 1), nil
	case U16:
		return uint16(1<<16 - 1), nil
	case U32:
		return uint32(1<<32 - 1), nil
	case U64:
		return uint64(1<<64 - 1), nil
	case I8:
		return int8(1<<7 - 1), nil
	case I16:
		return int16(1<<15 - 1), nil
	case I32:
		return int32(1<<31 - 1), nil
	case I64:
		return int64(1<<63 - 1), nil
	case F32:
		return float32(3.40282346638528859811704183484516925440e+38), nil
	case F64:
		return float64(1.797693134862315708145274237317043567981e+308), nil
	default:
		return nil, errUnsupported("MaxValue", t)
	}
}

// MinValue returns the minimum representable value for a numeric type, used
// to seed the max aggregator's scratch row.
func MinValue(t DataType) (any, error) {
	switch t {
	case U8, U16, U32, U64:
		return Zero(t)
	case I8:
		return int8(-1 << 7), nil
	case I16:
		return int16(-1 << 15), nil
	case I32:
		return int32(-1 << 31), nil
	case I64:
		return int64(-1 << 63), nil
	case F32:
		return float32(-3.40282346638528859811704183484516925440e+38), nil
	case F64:
		return float64(-1.797693134862315708145274237317043567981e+308), nil
	default:
		return nil, errUnsupported("MinValue", t)
	}
}
