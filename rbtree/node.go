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

// Color is the color tag of a node.
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "invalid"
	}
}

// direction selects a child slot.  Every rebalancing case is written once
// against a direction and its opposite, which yields the mirror case.
type direction uint8

const (
	left direction = iota
	right
)

func (d direction) opposite() direction {
	return 1 - d
}

// none is the reserved index of the absent node.  Slot 0 of every arena
// is never handed out, so zeroed links read as absent.
const none uint32 = 0

type node[T any] struct {
	value  T
	child  [2]uint32
	parent uint32
	color  Color
}

// arena stores the nodes of a single tree.  Released slots are kept on a
// free list and handed out again before the arena grows.
type arena[T any] struct {
	nodes []node[T]
	free  []uint32
}

func newArena[T any](capacity int) arena[T] {
	return arena[T]{nodes: make([]node[T], 1, capacity+1)}
}

// alloc returns the index of a fresh red node holding value.
// The backing slice may move, so callers must re-read a.nodes afterwards.
func (a *arena[T]) alloc(value T) uint32 {
	if len(a.nodes) == 0 {
		a.nodes = append(a.nodes, node[T]{})
	}
	if index := len(a.free) - 1; 0 <= index {
		i := a.free[index]
		a.free = a.free[:index]
		a.nodes[i] = node[T]{value: value, color: Red}
		return i
	}
	ensure(uint64(len(a.nodes)) < 1<<32, "arena index overflow")
	a.nodes = append(a.nodes, node[T]{value: value, color: Red})
	return uint32(len(a.nodes) - 1)
}

// release returns the slot i to the free list.  The slot is zeroed so the
// arena does not keep the value reachable.
func (a *arena[T]) release(i uint32) {
	ensure(i != none, "release of the absent node")
	a.nodes[i] = node[T]{}
	a.free = append(a.free, i)
}

// reset drops every slot at once.
func (a *arena[T]) reset() {
	clear(a.nodes)
	if len(a.nodes) != 0 {
		a.nodes = a.nodes[:1]
	}
	a.free = a.free[:0]
}

// live returns the number of slots currently in use.
func (a *arena[T]) live() int {
	if len(a.nodes) == 0 {
		return 0
	}
	return len(a.nodes) - 1 - len(a.free)
}
