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

// Remove deletes value from the tree.  It returns false and leaves the tree
// unchanged if value is not present.
func (t *Tree[T]) Remove(value T) bool {
	target := t.find(value)
	if target == none {
		return false
	}

	// A target with two children keeps its slot and takes the value of its
	// in-order successor, which has no left child and is unlinked instead.
	nodes := t.arena.nodes
	removed := target
	if nodes[target].child[left] != none && nodes[target].child[right] != none {
		removed = t.extreme(nodes[target].child[right], left)
		nodes[target].value = nodes[removed].value
	}

	child := nodes[removed].child[left]
	if child == none {
		child = nodes[removed].child[right]
	}
	parent := nodes[removed].parent
	side := left
	if parent != none {
		side = t.sideOf(removed)
		nodes[parent].child[side] = child
	} else {
		t.root = child
	}
	if child != none {
		nodes[child].parent = parent
	}

	if nodes[removed].color == Black {
		t.removeFixup(child, parent, side)
	}
	t.arena.release(removed)
	t.length--

	t.check()
	return true
}

// removeFixup restores black-height after a black node was unlinked from
// parent's side child slot.  x is the node now in that slot and may be
// absent; the defect is tracked by position so an absent x still gets the
// full treatment.
func (t *Tree[T]) removeFixup(x, parent uint32, side direction) {
	nodes := t.arena.nodes
	for x != t.root && t.colorOf(x) == Black {
		ensure(parent != none, "double black without a parent")
		far := side.opposite()

		sibling := nodes[parent].child[far]
		if t.colorOf(sibling) == Red {
			nodes[sibling].color = Black
			nodes[parent].color = Red
			t.rotate(parent, side)
			sibling = nodes[parent].child[far]
		}
		// The sibling subtree holds at least one more black node than x.
		ensure(sibling != none, "double black without a sibling")

		if t.colorOf(nodes[sibling].child[left]) == Black && t.colorOf(nodes[sibling].child[right]) == Black {
			nodes[sibling].color = Red
			x = parent
			parent = nodes[x].parent
			if parent != none {
				side = t.sideOf(x)
			}
			continue
		}

		if t.colorOf(nodes[sibling].child[far]) == Black {
			near := nodes[sibling].child[side]
			nodes[near].color = Black
			nodes[sibling].color = Red
			t.rotate(sibling, far)
			sibling = nodes[parent].child[far]
		}
		nodes[sibling].color = nodes[parent].color
		nodes[parent].color = Black
		nodes[nodes[sibling].child[far]].color = Black
		t.rotate(parent, side)
		x = t.root
	}
	if x != none {
		nodes[x].color = Black
	}
}
