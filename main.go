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

// Package main implements the orderedset command.  It fills an ordered set
// with a generated or given workload, removes a random sample of it, checks
// the red-black invariants after each phase and reports the result.
//
// Usage:
//
//	orderedset [flags] [value ...]
//
// Values given as arguments replace the generated workload.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/9rum/orderedset/internal/workload"
	"github.com/9rum/orderedset/rbtree"
	"github.com/golang/glog"
)

type config struct {
	n        int
	order    string
	seed     int64
	remove   int
	useRange bool
	low      int
	high     int
	dump     bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.n, "n", 1000, "The number of generated values")
	flag.StringVar(&cfg.order, "order", "perm", "The insertion order of generated values: perm, asc or desc")
	flag.Int64Var(&cfg.seed, "seed", 1, "The seed of the random source")
	flag.IntVar(&cfg.remove, "remove", 0, "The number of values to remove after insertion")
	flag.BoolVar(&cfg.useRange, "range", false, "Print the values within [low, high]")
	flag.IntVar(&cfg.low, "low", 0, "The lower bound of the range query")
	flag.IntVar(&cfg.high, "high", 0, "The upper bound of the range query")
	flag.BoolVar(&cfg.dump, "dump", false, "Print all values in ascending order")
	flag.Parse()
	defer glog.Flush()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if err := run(cfg, flag.Args(), out); err != nil {
		out.Flush()
		glog.Fatalf("failed to run: %v", err)
	}
}

func run(cfg config, args []string, out io.Writer) error {
	rng := rand.New(rand.NewSource(cfg.seed))

	values, err := workload.Parse(args)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		if cfg.n < 0 {
			return fmt.Errorf("invalid value count %d", cfg.n)
		}
		order, err := workload.ParseOrder(cfg.order)
		if err != nil {
			return err
		}
		values = workload.Generate(cfg.n, order, rng)
		glog.V(1).Infof("generated %d values in %v order", cfg.n, order)
	}

	set := rbtree.New[int]()
	inserted := 0
	for _, v := range values {
		if set.Insert(v) {
			inserted++
		}
	}
	if err := set.Verify(); err != nil {
		return fmt.Errorf("verify after insertion: %w", err)
	}
	glog.Infof("inserted %d of %d values, height %d", inserted, len(values), set.Height())

	if 0 < cfg.remove {
		removed := 0
		for _, v := range workload.Sample(set.Dump(), cfg.remove, rng) {
			if set.Remove(v) {
				removed++
			}
		}
		if err := set.Verify(); err != nil {
			return fmt.Errorf("verify after removal: %w", err)
		}
		glog.Infof("removed %d values, height %d", removed, set.Height())
	}

	fmt.Fprintf(out, "size: %d\n", set.Len())
	if first, ok := set.Min(); ok {
		last, _ := set.Max()
		fmt.Fprintf(out, "min: %d\nmax: %d\n", first, last)
	}
	if cfg.useRange {
		if cfg.high < cfg.low {
			glog.Warningf("empty range: low %d is greater than high %d", cfg.low, cfg.high)
		}
		fmt.Fprintf(out, "range: %v\n", set.Range(cfg.low, cfg.high))
	}
	if cfg.dump {
		fmt.Fprintf(out, "dump: %v\n", set.Dump())
	}
	return nil
}
