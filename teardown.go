// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package radix

import (
	"go.uber.org/zap"
)

// release frees every node and entry, breadth first. Queued nodes are
// chained through their link field, so once a node is queued its parent
// is gone and arena.parent will refuse to read it.
func (t *tree[K, V]) release() (nodes, entries int) {
	if t.root == nilIndex {
		return 0, 0
	}

	head, tail := nilIndex, nilIndex
	enqueue := func(idx uint32) {
		n := t.arena.node(idx)
		n.phase = phaseQueued
		n.link = nilIndex
		if tail == nilIndex {
			head = idx
		} else {
			t.arena.node(tail).link = idx
		}
		tail = idx
	}

	enqueue(t.root)
	for head != nilIndex {
		idx := head
		n := t.arena.node(idx)
		head = n.link
		if head == nilIndex {
			tail = nilIndex
		}

		for slot, child := range n.children {
			if child == nilIndex {
				continue
			}
			if n.height > 0 {
				enqueue(child)
			} else {
				t.arena.freeEntry(child)
				entries++
			}
			n.children[slot] = nilIndex
		}
		n.count = 0

		t.arena.freeNode(idx)
		nodes++
	}

	t.root = nilIndex
	t.head, t.tail = nilIndex, nilIndex
	t.size = 0
	return nodes, entries
}

// Clear frees all nodes and entries and installs a fresh empty root.
func (t *tree[K, V]) Clear() {
	if t.destroyed {
		return
	}

	nodes, entries := t.release()
	t.log.Debug("clear", zap.Int("nodes", nodes), zap.Int("entries", entries))

	// Every node was just returned to the arena, so this cannot hit a limit.
	root, err := t.arena.allocNode(nilIndex, 0, 0)
	if err != nil {
		panic(err)
	}
	t.root = root
}

// Destroy frees all nodes and entries and drops the arena.
func (t *tree[K, V]) Destroy() {
	if t.destroyed {
		return
	}

	nodes, entries := t.release()
	t.log.Debug("destroy", zap.Int("nodes", nodes), zap.Int("entries", entries))

	t.arena = newArena[K, V](0, 0, 0)
	t.destroyed = true
}
