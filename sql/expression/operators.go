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

package expression

// BinaryOperator is the closed set of binary operators the interpreter
// knows how to dispatch. Max and Min are internal-only: nothing in the SQL
// grammar produces them, but the min/max aggregators' buffer expressions
// do (see sql/expression/function/aggregation).
type BinaryOperator int

const (
	Plus BinaryOperator = iota
	Minus
	Mult
	Div
	Max
	Min
	GT
	GTE
	Equals
	LT
	LTE
	And
	Or
)

func (op BinaryOperator) String() string {
	switch op {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Mult:
		return "*"
	case Div:
		return "/"
	case Max:
		return "max"
	case Min:
		return "min"
	case GT:
		return ">"
	case GTE:
		return ">="
	case Equals:
		return "="
	case LT:
		return "<"
	case LTE:
		return "<="
	case And:
		return "AND"
	case Or:
		return "OR"
	default:
		return "?"
	}
}

func (op BinaryOperator) isArithmetic() bool {
	switch op {
	case Plus, Minus, Mult, Div, Max, Min:
		return true
	default:
		return false
	}
}

func (op BinaryOperator) isComparison() bool {
	switch op {
	case GT, GTE, Equals, LT, LTE:
		return true
	default:
		return false
	}
}

func (op BinaryOperator) isLogical() bool {
	return op == And || op == Or
}

// UnaryOperator is the closed set of unary operators.
type UnaryOperator int

const (
	Not UnaryOperator = iota
	Neg
)

func (op UnaryOperator) String() string {
	if op == Not {
		return "NOT"
	}
	return "-"
}
