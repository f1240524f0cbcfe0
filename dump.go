// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package radix

import (
	"fmt"
	"io"
)

// Walk visits every entry depth-first in ascending slot order, that is in
// ascending key order. Keys are rebuilt from the digits along the path.
func (t *tree[K, V]) Walk(cb Callback[K, V]) {
	if t.root == nilIndex {
		return
	}
	t.walkHelper(t.root, 0, cb)
}

// Recursive helper for Walk. Depth is bounded by the height of the tree.
func (t *tree[K, V]) walkHelper(idx uint32, prefix K, cb Callback[K, V]) bool {
	n := t.arena.node(idx)
	for slot, child := range n.children {
		if child == nilIndex {
			continue
		}

		key := prefix<<uint(t.digitBits) | K(slot)
		if n.height > 0 {
			if !t.walkHelper(child, key, cb) {
				return false
			}
			continue
		}

		if !cb(key, t.arena.entry(child).value) {
			return false
		}
	}
	return true
}

// Dump writes one "key<TAB>value" line per entry in key order.
func (t *tree[K, V]) Dump(w io.Writer) error {
	var err error
	t.Walk(func(key K, value V) bool {
		_, err = fmt.Fprintf(w, "%#x\t%s\n", uint64(key), t.format(value))
		return err == nil
	})
	return err
}
