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
	"math/rand"
	"testing"
)

const benchmarkTreeSize = 10000

func BenchmarkInsert(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		tr := New[int]()
		for _, v := range insertP {
			tr.Insert(v)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func BenchmarkRemoveInsert(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	tr := New[int]()
	for _, v := range insertP {
		tr.Insert(v)
	}
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tr.Remove(insertP[i%benchmarkTreeSize])
		tr.Insert(insertP[i%benchmarkTreeSize])
	}
}

func BenchmarkHas(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	searchP := rand.Perm(benchmarkTreeSize)
	tr := New[int]()
	for _, v := range insertP {
		tr.Insert(v)
	}
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tr.Has(searchP[i%benchmarkTreeSize])
	}
}

func BenchmarkRange(b *testing.B) {
	b.StopTimer()
	tr := New[int]()
	for _, v := range rand.Perm(benchmarkTreeSize) {
		tr.Insert(v)
	}
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		low := i % benchmarkTreeSize
		if got := tr.Range(low, low+99); len(got) == 0 {
			b.Fatalf("empty range at %d", low)
		}
	}
}

func BenchmarkClone(b *testing.B) {
	b.StopTimer()
	tr := New[int]()
	for _, v := range rand.Perm(benchmarkTreeSize) {
		tr.Insert(v)
	}
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tr.Clone()
	}
}
