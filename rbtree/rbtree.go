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

// Package rbtree implements an in-memory ordered set backed by a red-black
// tree.
//
// Insert, Remove and Has run in O(log n).  Range extraction visits only the
// nodes inside the requested bounds plus one root-to-leaf path, so it runs
// in O(log n + k) for k results.  It is not meant for persistent storage
// solutions.
//
// Nodes are kept in a per-tree arena and linked by index rather than by
// pointer; the parent link is an index like any other, so the tree holds no
// pointer cycles and a whole tree is released by dropping its arena.
//
// Tree values are not safe for concurrent use.  Readers running alongside a
// writer on the same tree must be serialized by the caller; independent
// trees, including clones, may be used from different goroutines.
package rbtree

import "cmp"

// DefaultCapacity is the number of node slots reserved by New.
const DefaultCapacity = 16

// ItemIterator allows callers of Ascend* and Descend to iterate in-order over
// portions of the tree.  When this function returns false, iteration will
// stop and the associated method will immediately return.
type ItemIterator[T any] func(T) bool

// Tree is an ordered set of distinct values.
//
// The zero value is not usable; create trees with New or NewFunc.
type Tree[T any] struct {
	compare func(a, b T) int
	arena   arena[T]
	root    uint32
	length  int
}

// New creates an empty tree ordered by the natural order of T.
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc creates an empty tree ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when
// a > b.  It must describe a strict weak ordering; values that compare equal
// are treated as the same element.
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	if compare == nil {
		panic("rbtree: nil compare function")
	}
	return &Tree[T]{
		compare: compare,
		arena:   newArena[T](DefaultCapacity),
	}
}

// Len returns the number of values currently in the tree.
func (t *Tree[T]) Len() int {
	return t.length
}

// Has returns true if the given value is in the tree.
func (t *Tree[T]) Has(value T) bool {
	return t.find(value) != none
}

// Clear removes all values from the tree.  The arena keeps its capacity so
// the tree can be refilled without growing again.
func (t *Tree[T]) Clear() {
	t.arena.reset()
	t.root, t.length = none, 0
}

// Clone returns a deep copy of t.  The copy shares no nodes with t, so
// mutating either tree never affects the other.  Values themselves are
// copied by assignment.
func (t *Tree[T]) Clone() *Tree[T] {
	c := &Tree[T]{
		compare: t.compare,
		arena:   newArena[T](t.length),
	}
	c.copyNodes(t)
	c.check()
	return c
}

// CopyFrom replaces the contents of t with a deep copy of src, including its
// ordering.  Copying a tree onto itself does nothing.
func (t *Tree[T]) CopyFrom(src *Tree[T]) {
	if t == src {
		return
	}
	t.Clear()
	t.compare = src.compare
	t.copyNodes(src)
	t.check()
}

// copyNodes copies the nodes of src into the empty tree t in pre-order:
// each node is allocated before its left subtree, which comes before its
// right subtree.
func (t *Tree[T]) copyNodes(src *Tree[T]) {
	type frame struct {
		from   uint32
		parent uint32
		side   direction
	}

	from := src.arena.nodes
	stack := make([]frame, 0, 64)
	stack = append(stack, frame{from: src.root, parent: none})
	for 0 < len(stack) {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.from == none {
			continue
		}

		i := t.arena.alloc(from[f.from].value)
		nodes := t.arena.nodes
		nodes[i].color = from[f.from].color
		nodes[i].parent = f.parent
		if f.parent == none {
			t.root = i
		} else {
			nodes[f.parent].child[f.side] = i
		}

		stack = append(stack,
			frame{from: from[f.from].child[right], parent: i, side: right},
			frame{from: from[f.from].child[left], parent: i, side: left})
	}
	t.length = src.length
}

// find returns the index of the node holding value, or none.
func (t *Tree[T]) find(value T) uint32 {
	nodes := t.arena.nodes
	for i := t.root; i != none; {
		switch c := t.compare(value, nodes[i].value); {
		case c < 0:
			i = nodes[i].child[left]
		case 0 < c:
			i = nodes[i].child[right]
		default:
			return i
		}
	}
	return none
}

// colorOf reports the color of i, where the absent node is black.
func (t *Tree[T]) colorOf(i uint32) Color {
	if i == none {
		return Black
	}
	return t.arena.nodes[i].color
}

// sideOf reports which child of its parent i is.  i must not be the root.
func (t *Tree[T]) sideOf(i uint32) direction {
	nodes := t.arena.nodes
	p := nodes[i].parent
	ensure(p != none, "side of the root")
	if nodes[p].child[left] == i {
		return left
	}
	ensure(nodes[p].child[right] == i, "child is not linked from its parent")
	return right
}

// extreme returns the last node reached from i by following d.
func (t *Tree[T]) extreme(i uint32, d direction) uint32 {
	if i == none {
		return none
	}
	nodes := t.arena.nodes
	for nodes[i].child[d] != none {
		i = nodes[i].child[d]
	}
	return i
}

// replaceChild makes to take the place of from under parent p, or at the
// root when p is absent.
func (t *Tree[T]) replaceChild(p, from, to uint32) {
	if p == none {
		t.root = to
		return
	}
	nodes := t.arena.nodes
	if nodes[p].child[left] == from {
		nodes[p].child[left] = to
	} else {
		nodes[p].child[right] = to
	}
}

// rotate turns the subtree rooted at x in direction d: the child of x on the
// opposite side becomes the subtree root and x becomes its d child.
// Rotating left lifts the right child; rotating right lifts the left child.
func (t *Tree[T]) rotate(x uint32, d direction) {
	nodes := t.arena.nodes
	o := d.opposite()
	y := nodes[x].child[o]
	ensure(y != none, "rotation without a pivot child")

	inner := nodes[y].child[d]
	nodes[x].child[o] = inner
	if inner != none {
		nodes[inner].parent = x
	}

	p := nodes[x].parent
	nodes[y].parent = p
	t.replaceChild(p, x, y)

	nodes[y].child[d] = x
	nodes[x].parent = y
}

// check verifies the whole tree after a mutation in debug builds.
func (t *Tree[T]) check() {
	if !debug {
		return
	}
	if err := t.Verify(); err != nil {
		panic("rbtree: " + err.Error())
	}
}

func ensure(cond bool, msg string) {
	if !cond {
		panic("rbtree: internal assertion failed: " + msg)
	}
}
