// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

// Package radix implements a sparse, height-adaptive radix tree keyed by
// fixed-width unsigned integers.
//
// The tree is only as tall as the largest stored key requires: it grows a
// new root level when a wider key arrives and collapses levels again when
// the keys that needed them are deleted. Next to the trie, every entry is
// threaded on a list in insertion order.
//
// A Tree is not safe for concurrent use.
package radix

import (
	"io"
	"iter"

	"golang.org/x/exp/constraints"
)

// Kind - radix tree node type.
type Kind uint8

// Types of node.
const (
	Entry Kind = iota
	Inner
)

func (k Kind) String() string {
	switch k {
	case Entry:
		return "entry"
	case Inner:
		return "inner"
	}
	return "unknown"
}

// Callback - callback function that is passed in Each and Walk.
// Returning false stops the traversal.
type Callback[K constraints.Unsigned, V any] func(key K, value V) bool

// Tree - delineate radix tree entity.
type Tree[K constraints.Unsigned, V any] interface {
	// Insert stores value under key unless key is already present.
	// It returns the value actually held for key and whether it was
	// already there. Duplicate inserts never overwrite.
	Insert(key K, value V) (actual V, loaded bool, err error)
	Find(key K) (value V, ok bool)
	// Delete removes key and returns the value it held.
	Delete(key K) (value V, ok bool)

	// Each visits entries in insertion order.
	Each(cb Callback[K, V])
	All() iter.Seq2[K, V]
	Iterator() *Iterator[K, V]

	// Walk visits entries depth-first in ascending key order.
	Walk(cb Callback[K, V])
	Dump(w io.Writer) error

	Size() int
	Height() int
	Stats() Stats

	// Clear drops every entry and leaves an empty, usable tree.
	Clear()
	// Destroy releases every node. The tree is unusable afterwards.
	Destroy()
}

// Stats - node counts of a tree.
type Stats struct {
	Inner   int
	Entries int
	Height  int
}

// New - creates a new instance of radix tree.
func New[K constraints.Unsigned, V any](opts ...Option) (Tree[K, V], error) {
	t, err := newTree[K, V](opts...)
	if err != nil {
		return nil, err
	}
	return t, nil
}
