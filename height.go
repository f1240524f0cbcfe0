// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package radix

import (
	"math/bits"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Returns the width of K in bits.
func keyBits[K constraints.Unsigned]() int {
	return bits.Len64(uint64(^K(0)))
}

// maxIndexTable returns, for every height h a tree of K keys can reach,
// the largest key that h+1 digits can express.
// With 6 bit digits: 63, 4095, 262143, ...
func maxIndexTable[K constraints.Unsigned](digitBits int) []K {
	width := keyBits[K]()
	levels := (width + digitBits - 1) / digitBits

	table := make([]K, levels)
	for h := range table {
		used := (h + 1) * digitBits
		if used >= width {
			table[h] = ^K(0)
		} else {
			table[h] = K(1)<<uint(used) - 1
		}
	}
	return table
}

// Returns the smallest height able to hold key.
func (t *tree[K, V]) heightFor(key K) int {
	h := 0
	for key > t.maxIndex[h] {
		h++
	}
	return h
}

// grow adds root levels until key is representable. An empty root is
// simply raised, a populated one is pushed down into slot 0 of a new root.
// On failure the levels added so far stay in place; shrinkTree removes them.
func (t *tree[K, V]) grow(key K) error {
	for {
		root := t.arena.node(t.root)
		if key <= t.maxIndex[root.height] {
			return nil
		}

		if root.count == 0 {
			to := t.heightFor(key)
			t.log.Debug("raise empty root", zap.Int("from", root.height), zap.Int("to", to))
			root.height = to
			return nil
		}

		idx, err := t.arena.allocNode(nilIndex, root.height+1, 0)
		if err != nil {
			return err
		}
		t.arena.node(idx).attach(0, t.root)
		t.arena.setParent(t.root, idx, 0)
		t.root = idx
		t.log.Debug("grow height", zap.Int("height", root.height+1))
	}
}

// shrinkNode walks up from idx freeing every node left without children.
// The root is never freed here.
func (t *tree[K, V]) shrinkNode(idx uint32) {
	for {
		n := t.arena.node(idx)
		parent := t.arena.parent(idx)
		if n.count != 0 || parent == nilIndex {
			return
		}
		t.arena.node(parent).detach(n.offset)
		t.arena.freeNode(idx)
		idx = parent
	}
}

// shrinkTree collapses the root while it only wraps a child in slot 0,
// and resets an empty root to height 0.
func (t *tree[K, V]) shrinkTree() {
	for {
		root := t.arena.node(t.root)
		if root.count == 0 {
			if root.height != 0 {
				t.log.Debug("reset empty root", zap.Int("from", root.height))
				root.height = 0
			}
			return
		}
		if root.height == 0 || root.count != 1 || root.children[0] == nilIndex {
			return
		}

		child := root.detach(0)
		t.arena.freeNode(t.root)
		t.arena.setParent(child, nilIndex, 0)
		t.root = child
		t.log.Debug("collapse root", zap.Int("height", t.arena.node(child).height))
	}
}
