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

// Package transform holds the tree-rewrite primitives shared by the
// expression and logical-plan algebras: a bottom-up and a top-down
// traversal, each parameterized by a visitor that reports whether it
// changed the node. Both traversals preserve structural identity ("no
// change => return SameTree") so the optimizer's fixpoint loop has a
// reliable termination signal.
package transform

// TreeIdentity reports whether a transformation actually produced a new
// tree. SameTree lets the optimizer stop iterating a rule; NewTree tells it
// to run the stage again.
type TreeIdentity bool

const (
	SameTree TreeIdentity = true
	NewTree  TreeIdentity = false
)

// Rewritable is satisfied by any tree node that can report its children and
// reconstruct itself with new ones. sql.Expression and sql.Node both
// implement Rewritable[sql.Expression] and Rewritable[sql.Node]
// respectively.
type Rewritable[T any] interface {
	Children() []T
	WithChildren(children ...T) (T, error)
}

// VisitFunc is called once per node during a traversal. Returning
// (_, SameTree, nil) leaves the node untouched; returning (replacement,
// NewTree, nil) substitutes it.
type VisitFunc[T any] func(node T) (T, TreeIdentity, error)

// BottomUp recurses into children first, reconstructing the node if any
// child changed, then calls f on the (possibly rebuilt) node. If f reports
// a change, that result replaces the node; otherwise the rebuilt node (if
// any child changed) is kept.
func BottomUp[T Rewritable[T]](node T, f VisitFunc[T]) (T, TreeIdentity, error) {
	children := node.Children()
	if len(children) == 0 {
		return f(node)
	}

	newChildren := make([]T, len(children))
	identity := SameTree
	for i, c := range children {
		newChild, same, err := BottomUp(c, f)
		if err != nil {
			var zero T
			return zero, SameTree, err
		}
		newChildren[i] = newChild
		if same == NewTree {
			identity = NewTree
		}
	}

	current := node
	if identity == NewTree {
		rebuilt, err := node.WithChildren(newChildren...)
		if err != nil {
			var zero T
			return zero, SameTree, err
		}
		current = rebuilt
	}

	result, same, err := f(current)
	if err != nil {
		var zero T
		return zero, SameTree, err
	}
	if same == NewTree {
		return result, NewTree, nil
	}
	return current, identity, nil
}

// TopDown calls f on self first. If f replaces the node, TopDown recurses
// into the replacement's children; otherwise it recurses into the original
// children.
func TopDown[T Rewritable[T]](node T, f VisitFunc[T]) (T, TreeIdentity, error) {
	current, same, err := f(node)
	if err != nil {
		var zero T
		return zero, SameTree, err
	}

	children := current.Children()
	if len(children) == 0 {
		return current, same, nil
	}

	newChildren := make([]T, len(children))
	childIdentity := SameTree
	for i, c := range children {
		newChild, childSame, err := TopDown(c, f)
		if err != nil {
			var zero T
			return zero, SameTree, err
		}
		newChildren[i] = newChild
		if childSame == NewTree {
			childIdentity = NewTree
		}
	}

	if childIdentity == SameTree {
		return current, same, nil
	}
	rebuilt, err := current.WithChildren(newChildren...)
	if err != nil {
		var zero T
		return zero, SameTree, err
	}
	return rebuilt, NewTree, nil
}

// Inspect walks node and its descendants top-down, calling f on each one.
// f returns false to stop descending into that node's children.
func Inspect[T Rewritable[T]](node T, f func(T) bool) {
	if !f(node) {
		return
	}
	for _, c := range node.Children() {
		Inspect(c, f)
	}
}
