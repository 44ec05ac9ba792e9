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

// step returns the in-order neighbour of i in direction d: the successor
// for right, the predecessor for left.
func (t *Tree[T]) step(i uint32, d direction) uint32 {
	nodes := t.arena.nodes
	if nodes[i].child[d] != none {
		return t.extreme(nodes[i].child[d], d.opposite())
	}
	p := nodes[i].parent
	for p != none && nodes[p].child[d] == i {
		i, p = p, nodes[p].parent
	}
	return p
}

// lowerBound returns the node holding the smallest value >= pivot, or none.
func (t *Tree[T]) lowerBound(pivot T) uint32 {
	nodes := t.arena.nodes
	found := none
	for i := t.root; i != none; {
		if t.compare(nodes[i].value, pivot) < 0 {
			i = nodes[i].child[right]
		} else {
			found = i
			i = nodes[i].child[left]
		}
	}
	return found
}

// Ascend calls the iterator for every value in the tree within the range
// [first, last], until iterator returns false.  The tree must not be modified
// while an iteration is in progress.
func (t *Tree[T]) Ascend(iterator ItemIterator[T]) {
	for i := t.extreme(t.root, left); i != none; i = t.step(i, right) {
		if !iterator(t.arena.nodes[i].value) {
			return
		}
	}
}

// Descend calls the iterator for every value in the tree within the range
// [last, first], until iterator returns false.
func (t *Tree[T]) Descend(iterator ItemIterator[T]) {
	for i := t.extreme(t.root, right); i != none; i = t.step(i, left) {
		if !iterator(t.arena.nodes[i].value) {
			return
		}
	}
}

// AscendRange calls the iterator for every value in the tree within the
// closed range [low, high], until iterator returns false.  Nothing is visited
// when low > high.
func (t *Tree[T]) AscendRange(low, high T, iterator ItemIterator[T]) {
	if 0 < t.compare(low, high) {
		return
	}
	for i := t.lowerBound(low); i != none; i = t.step(i, right) {
		value := t.arena.nodes[i].value
		if 0 < t.compare(value, high) || !iterator(value) {
			return
		}
	}
}

// Range returns the values within [low, high] in ascending order.  The
// result is empty, never nil, when nothing matches or when low > high.
func (t *Tree[T]) Range(low, high T) []T {
	out := make([]T, 0)
	t.AscendRange(low, high, func(value T) bool {
		out = append(out, value)
		return true
	})
	return out
}

// Dump returns every value in the tree in ascending order.  The result is
// empty, never nil, for an empty tree.
func (t *Tree[T]) Dump() []T {
	out := make([]T, 0, t.length)
	t.Ascend(func(value T) bool {
		out = append(out, value)
		return true
	})
	return out
}

// Min returns the smallest value in the tree, or (zeroValue, false) if the
// tree is empty.
func (t *Tree[T]) Min() (_ T, _ bool) {
	if i := t.extreme(t.root, left); i != none {
		return t.arena.nodes[i].value, true
	}
	return
}

// Max returns the largest value in the tree, or (zeroValue, false) if the
// tree is empty.
func (t *Tree[T]) Max() (_ T, _ bool) {
	if i := t.extreme(t.root, right); i != none {
		return t.arena.nodes[i].value, true
	}
	return
}
