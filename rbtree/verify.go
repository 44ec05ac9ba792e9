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

import (
	"errors"
	"fmt"
)

// Errors reported by Verify.
var (
	ErrOrder        = errors.New("values out of order")
	ErrRootColor    = errors.New("root is not black")
	ErrRedViolation = errors.New("red node with a red child")
	ErrBlackHeight  = errors.New("unequal black height")
	ErrParentLink   = errors.New("inconsistent parent link")
	ErrCount        = errors.New("length does not match node count")
)

// Verify checks the structural invariants of the tree: strict ordering with
// no duplicates, a black root, no red node with a red child, equal black
// height on every path, consistent parent links, and a length matching the
// number of reachable nodes.  It returns nil for a well-formed tree, or an
// error wrapping one of the Err* values above.
func (t *Tree[T]) Verify() error {
	nodes := t.arena.nodes
	if t.root == none {
		if t.length != 0 {
			return fmt.Errorf("%w: empty tree with length %d", ErrCount, t.length)
		}
		return nil
	}
	if nodes[t.root].parent != none {
		return fmt.Errorf("%w: root has parent %d", ErrParentLink, nodes[t.root].parent)
	}
	if nodes[t.root].color != Black {
		return ErrRootColor
	}

	v := verifier[T]{tree: t, budget: len(nodes)}
	if _, err := v.walk(t.root, none, none); err != nil {
		return err
	}
	if v.count != t.length {
		return fmt.Errorf("%w: length %d, reachable %d", ErrCount, t.length, v.count)
	}
	if live := t.arena.live(); live != v.count {
		return fmt.Errorf("%w: %d slots in use, reachable %d", ErrCount, live, v.count)
	}
	return nil
}

type verifier[T any] struct {
	tree   *Tree[T]
	count  int
	budget int
}

// walk checks the subtree at i, whose values must lie strictly between the
// values of the nodes lo and hi when those are present.  It returns the
// black height of the subtree, counting the absent leaves as black.
func (v *verifier[T]) walk(i, lo, hi uint32) (int, error) {
	if i == none {
		return 1, nil
	}
	if v.count++; v.budget < v.count {
		return 0, fmt.Errorf("%w: cycle through node %d", ErrParentLink, i)
	}

	t := v.tree
	n := &t.arena.nodes[i]
	if lo != none && t.compare(t.arena.nodes[lo].value, n.value) >= 0 {
		return 0, fmt.Errorf("%w: node %d not above its lower bound", ErrOrder, i)
	}
	if hi != none && t.compare(n.value, t.arena.nodes[hi].value) >= 0 {
		return 0, fmt.Errorf("%w: node %d not below its upper bound", ErrOrder, i)
	}

	for _, c := range n.child {
		if c == none {
			continue
		}
		if t.arena.nodes[c].parent != i {
			return 0, fmt.Errorf("%w: node %d does not point back to %d", ErrParentLink, c, i)
		}
		if n.color == Red && t.arena.nodes[c].color == Red {
			return 0, fmt.Errorf("%w: nodes %d and %d", ErrRedViolation, i, c)
		}
	}

	lh, err := v.walk(n.child[left], lo, i)
	if err != nil {
		return 0, err
	}
	rh, err := v.walk(n.child[right], i, hi)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: node %d has %d on the left and %d on the right", ErrBlackHeight, i, lh, rh)
	}
	if n.color == Black {
		lh++
	}
	return lh, nil
}

// Height returns the number of nodes on the longest path from the root to a
// leaf, or 0 for an empty tree.
func (t *Tree[T]) Height() int {
	type frame struct {
		index uint32
		depth int
	}

	height := 0
	nodes := t.arena.nodes
	stack := []frame{{t.root, 1}}
	for 0 < len(stack) {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.index == none {
			continue
		}
		if height < f.depth {
			height = f.depth
		}
		for _, c := range nodes[f.index].child {
			stack = append(stack, frame{c, f.depth + 1})
		}
	}
	return height
}
