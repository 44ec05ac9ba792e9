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

// Insert adds value to the tree.  It returns false and leaves the tree
// unchanged if an equal value is already present.
func (t *Tree[T]) Insert(value T) bool {
	parent, side := none, left
	nodes := t.arena.nodes
	for i := t.root; i != none; {
		c := t.compare(value, nodes[i].value)
		if c == 0 {
			return false
		}
		parent = i
		if c < 0 {
			side = left
		} else {
			side = right
		}
		i = nodes[i].child[side]
	}

	z := t.arena.alloc(value)
	nodes = t.arena.nodes
	nodes[z].parent = parent
	if parent == none {
		t.root = z
	} else {
		nodes[parent].child[side] = z
	}
	t.length++

	t.insertFixup(z)
	t.check()
	return true
}

// insertFixup restores the red-black invariants after z was attached as a
// red leaf.  The only possible violation is a red z under a red parent.
func (t *Tree[T]) insertFixup(z uint32) {
	nodes := t.arena.nodes
	for {
		p := nodes[z].parent
		if p == none || nodes[p].color == Black {
			break
		}
		// A red parent is never the root, so the grandparent exists.
		g := nodes[p].parent
		ensure(g != none, "red root")

		d := t.sideOf(p)
		uncle := nodes[g].child[d.opposite()]
		if t.colorOf(uncle) == Red {
			nodes[p].color = Black
			nodes[uncle].color = Black
			nodes[g].color = Red
			z = g
			continue
		}

		if z == nodes[p].child[d.opposite()] {
			// z is the inner grandchild: straighten the zig-zag first.
			t.rotate(p, d)
			p = z
		}
		nodes[p].color = Black
		nodes[g].color = Red
		t.rotate(g, d.opposite())
		break
	}
	nodes[t.root].color = Black
}
