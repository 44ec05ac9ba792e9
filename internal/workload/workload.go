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

// Package workload provides primitives for producing the value sequences fed
// to an ordered set: random permutations, ascending and descending runs,
// removal samples, and values given on the command line.
package workload

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
)

// Order is the order in which generated values are produced.
type Order int32

const (
	PERM Order = iota
	ASCENDING
	DESCENDING
)

// ErrInvalidOrder is returned by ParseOrder for unknown order names.
var ErrInvalidOrder = errors.New("invalid order")

// ParseOrder maps the names "perm", "asc" and "desc" to an Order.
func ParseOrder(name string) (Order, error) {
	switch name {
	case "perm":
		return PERM, nil
	case "asc":
		return ASCENDING, nil
	case "desc":
		return DESCENDING, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOrder, name)
	}
}

func (o Order) String() string {
	switch o {
	case PERM:
		return "perm"
	case ASCENDING:
		return "asc"
	case DESCENDING:
		return "desc"
	default:
		return "Order(" + strconv.Itoa(int(o)) + ")"
	}
}

// Generate returns the n values in the range [0, n) in the given order.
func Generate(n int, order Order, rng *rand.Rand) []int {
	switch order {
	case PERM:
		return rng.Perm(n)
	case ASCENDING:
		out := make([]int, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, i)
		}
		return out
	case DESCENDING:
		out := make([]int, 0, n)
		for i := n - 1; 0 <= i; i-- {
			out = append(out, i)
		}
		return out
	default:
		panic("invalid order")
	}
}

// Sample picks k distinct elements of values at random.  It returns all of
// values, shuffled, when k exceeds len(values).  values is not modified.
func Sample(values []int, k int, rng *rand.Rand) []int {
	if k < 0 {
		k = 0
	}
	if len(values) < k {
		k = len(values)
	}
	out := make([]int, 0, k)
	for _, i := range rng.Perm(len(values))[:k] {
		out = append(out, values[i])
	}
	return out
}

// Parse converts decimal arguments to values.
func Parse(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("parse value %q: %w", arg, err)
		}
		values = append(values, v)
	}
	return values, nil
}
