// Copyright 2022 Sogang University
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

package rbtree

// Node is a read-only view of a node in a tree, meant for inspecting the
// tree's shape.  A Node stays valid until the tree is next modified.
type Node[T any] struct {
	tree  *Tree[T]
	index uint32
}

// Root returns a view of the root node.  The view is nil for an empty tree.
func (t *Tree[T]) Root() Node[T] {
	return Node[T]{tree: t, index: t.root}
}

// IsNil reports whether the view refers to an absent node.
func (n Node[T]) IsNil() bool {
	return n.tree == nil || n.index == none
}

// Value returns the value held by n, or the zero value for an absent node.
func (n Node[T]) Value() (_ T) {
	if n.IsNil() {
		return
	}
	return n.tree.arena.nodes[n.index].value
}

// Color returns the color of n.  Absent nodes are black.
func (n Node[T]) Color() Color {
	if n.IsNil() {
		return Black
	}
	return n.tree.arena.nodes[n.index].color
}

// Left returns a view of the left child of n.
func (n Node[T]) Left() Node[T] {
	return n.link(func(x *node[T]) uint32 { return x.child[left] })
}

// Right returns a view of the right child of n.
func (n Node[T]) Right() Node[T] {
	return n.link(func(x *node[T]) uint32 { return x.child[right] })
}

// Parent returns a view of the parent of n, which is nil for the root.
func (n Node[T]) Parent() Node[T] {
	return n.link(func(x *node[T]) uint32 { return x.parent })
}

func (n Node[T]) link(follow func(*node[T]) uint32) Node[T] {
	if n.IsNil() {
		return n
	}
	return Node[T]{tree: n.tree, index: follow(&n.tree.arena.nodes[n.index])}
}
