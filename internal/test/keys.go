// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

// Package test provides deterministic key sets for tests and benchmarks.
package test

import (
	"math/rand"
)

// SparseKeys returns n distinct pseudo random keys below 1<<bits, in the
// order they were generated. The same seed always yields the same keys.
func SparseKeys(seed int64, n int, bits uint) []uint64 {
	r := rand.New(rand.NewSource(seed))
	seen := make(map[uint64]struct{}, n)
	keys := make([]uint64, 0, n)

	mask := ^uint64(0)
	if bits < 64 {
		mask = uint64(1)<<bits - 1
		if uint64(n) > mask+1 {
			panic("test: more keys requested than the key space holds")
		}
	}
	for len(keys) < n {
		k := r.Uint64() & mask
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// SequentialKeys returns n consecutive keys starting at start.
func SequentialKeys(start uint64, n int) []uint64 {
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = start + uint64(i)
	}
	return keys
}

// PowerKeys returns 1<<i for every i in 0..63, the keys that each need
// one more bit than the previous.
func PowerKeys() []uint64 {
	keys := make([]uint64, 64)
	for i := range keys {
		keys[i] = uint64(1) << uint(i)
	}
	return keys
}
