// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package radix

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

type tree[K constraints.Unsigned, V any] struct {
	root uint32
	size int

	// Insertion order list.
	head uint32
	tail uint32

	arena     *arena[K, V]
	maxIndex  []K
	digitBits int
	mask      K

	log       *zap.Logger
	format    Formatter
	destroyed bool
}

func newTree[K constraints.Unsigned, V any](opts ...Option) (*tree[K, V], error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	fanout := 1 << uint(cfg.digitBits)
	t := &tree[K, V]{
		arena:     newArena[K, V](fanout, cfg.maxNodes, cfg.maxEntries),
		maxIndex:  maxIndexTable[K](cfg.digitBits),
		digitBits: cfg.digitBits,
		mask:      K(fanout - 1),
		log:       cfg.logger,
		format:    cfg.format,
	}

	if t.root, err = t.arena.allocNode(nilIndex, 0, 0); err != nil {
		return nil, err
	}
	return t, nil
}

// Returns the slot key selects in a node at height h.
func (t *tree[K, V]) digit(key K, h int) int {
	return int((key >> uint(h*t.digitBits)) & t.mask)
}

// locate walks down to the height 0 node that would hold key.
// It returns that node and the slot, or ok == false if the path ends early.
func (t *tree[K, V]) locate(key K) (idx uint32, slot int, ok bool) {
	if t.root == nilIndex {
		return nilIndex, 0, false
	}

	idx = t.root
	n := t.arena.node(idx)
	// A key wider than the root's range cannot be stored.
	if key > t.maxIndex[n.height] {
		return nilIndex, 0, false
	}

	for n.height > 0 {
		idx = n.children[t.digit(key, n.height)]
		if idx == nilIndex {
			return nilIndex, 0, false
		}
		n = t.arena.node(idx)
	}

	slot = t.digit(key, 0)
	if n.children[slot] == nilIndex {
		return nilIndex, 0, false
	}
	return idx, slot, true
}

// Returns the value stored under key.
func (t *tree[K, V]) Find(key K) (V, bool) {
	idx, slot, ok := t.locate(key)
	if !ok {
		var zero V
		return zero, false
	}
	return t.arena.entry(t.arena.node(idx).children[slot]).value, true
}

// Inserts value under key. The tree first grows until key fits, then the
// path down to height 0 is created as needed.
//
// If any allocation fails, every node created by this call is freed again,
// the height is restored and ErrNoSpace is returned.
func (t *tree[K, V]) Insert(key K, value V) (V, bool, error) {
	var zero V
	if t.destroyed {
		return zero, false, ErrDestroyed
	}

	if err := t.grow(key); err != nil {
		t.shrinkTree()
		return zero, false, t.rolledBack(key, err)
	}

	idx := t.root
	n := t.arena.node(idx)
	for n.height > 0 {
		slot := t.digit(key, n.height)
		next := n.children[slot]
		if next == nilIndex {
			var err error
			if next, err = t.arena.allocNode(idx, n.height-1, slot); err != nil {
				t.rollback(idx)
				return zero, false, t.rolledBack(key, err)
			}
			n.attach(slot, next)
		}
		idx = next
		n = t.arena.node(idx)
	}

	slot := t.digit(key, 0)
	if e := n.children[slot]; e != nilIndex {
		// Set once: a present key keeps its value and its place in order.
		return t.arena.entry(e).value, true, nil
	}

	e, err := t.arena.allocEntry(key, value)
	if err != nil {
		t.rollback(idx)
		return zero, false, t.rolledBack(key, err)
	}
	n.attach(slot, e)
	t.pushBack(e)
	t.size++

	return value, false, nil
}

// rollback frees the part of the path created by a failed insert, starting
// from the deepest node that was attached, and undoes any height growth.
func (t *tree[K, V]) rollback(idx uint32) {
	t.shrinkNode(idx)
	t.shrinkTree()
}

func (t *tree[K, V]) rolledBack(key K, err error) error {
	t.log.Debug("insert rolled back",
		zap.Uint64("key", uint64(key)),
		zap.Int("height", t.Height()),
		zap.Error(err))
	return fmt.Errorf("insert %#x: %w", uint64(key), err)
}

// Deletes key and returns its value. Nodes left empty are freed on the
// way up and the root is collapsed while it only wraps slot 0.
func (t *tree[K, V]) Delete(key K) (V, bool) {
	idx, slot, ok := t.locate(key)
	if !ok {
		var zero V
		return zero, false
	}

	e := t.arena.node(idx).detach(slot)
	value := t.arena.entry(e).value
	t.unlink(e)
	t.arena.freeEntry(e)
	t.size--

	t.shrinkNode(idx)
	t.shrinkTree()
	return value, true
}

func (t *tree[K, V]) Size() int {
	return t.size
}

// Height of the root. An empty tree has height 0.
func (t *tree[K, V]) Height() int {
	if t.root == nilIndex {
		return 0
	}
	return t.arena.node(t.root).height
}

func (t *tree[K, V]) Stats() Stats {
	if t.destroyed {
		return Stats{}
	}
	return Stats{
		Inner:   t.arena.liveNodes,
		Entries: t.arena.liveEntries,
		Height:  t.Height(),
	}
}
