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

package main

import (
	"bytes"
	"testing"

	"github.com/9rum/orderedset/internal/workload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunArgs(t *testing.T) {
	var out bytes.Buffer
	cfg := config{useRange: true, low: 10, high: 25, dump: true}
	err := run(cfg, []string{"10", "20", "30", "15", "25", "5", "20"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "size: 6\nmin: 5\nmax: 30\nrange: [10 15 20 25]\ndump: [5 10 15 20 25 30]\n", out.String())
}

func TestRunGenerated(t *testing.T) {
	for _, order := range []string{"perm", "asc", "desc"} {
		var out bytes.Buffer
		cfg := config{n: 500, order: order, seed: 7, remove: 200}
		require.NoError(t, run(cfg, nil, &out), order)
		assert.Contains(t, out.String(), "size: 300\n", order)
	}
}

func TestRunEmpty(t *testing.T) {
	var out bytes.Buffer
	cfg := config{n: 0, order: "asc", useRange: true, low: 5, high: 1, dump: true}
	require.NoError(t, run(cfg, nil, &out))
	assert.Equal(t, "size: 0\nrange: []\ndump: []\n", out.String())
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	err := run(config{order: "sideways"}, nil, &out)
	assert.ErrorIs(t, err, workload.ErrInvalidOrder)

	err = run(config{order: "perm"}, []string{"1", "x"}, &out)
	assert.Error(t, err)
	assert.Empty(t, out.String())

	err = run(config{n: -5, order: "asc"}, nil, &out)
	assert.ErrorContains(t, err, "invalid value count -5")
	assert.Empty(t, out.String())
}
