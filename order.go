// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package radix

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// pushBack appends entry e to the insertion order list.
func (t *tree[K, V]) pushBack(e uint32) {
	ent := t.arena.entry(e)
	ent.prev = t.tail
	ent.next = nilIndex
	if t.tail == nilIndex {
		t.head = e
	} else {
		t.arena.entry(t.tail).next = e
	}
	t.tail = e
}

// unlink removes entry e from the insertion order list.
func (t *tree[K, V]) unlink(e uint32) {
	ent := t.arena.entry(e)
	if ent.prev == nilIndex {
		t.head = ent.next
	} else {
		t.arena.entry(ent.prev).next = ent.next
	}
	if ent.next == nilIndex {
		t.tail = ent.prev
	} else {
		t.arena.entry(ent.next).prev = ent.prev
	}
	ent.prev, ent.next = nilIndex, nilIndex
}

// Each calls cb for every entry in the order the keys were first inserted.
func (t *tree[K, V]) Each(cb Callback[K, V]) {
	for e := t.head; e != nilIndex; {
		ent := t.arena.entry(e)
		e = ent.next
		if !cb(ent.key, ent.value) {
			return
		}
	}
}

// All returns the entries in insertion order as a range-over-func sequence.
func (t *tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.Each(yield)
	}
}

func (t *tree[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{tree: t}
}

// Iterator walks entries in insertion order. It may be restarted with Reset.
// The tree must not be modified while an iterator is in use.
type Iterator[K constraints.Unsigned, V any] struct {
	tree    *tree[K, V]
	cur     uint32
	started bool

	key   K
	value V
}

// Next advances to the next entry and reports whether there is one.
func (it *Iterator[K, V]) Next() bool {
	if !it.started {
		it.started = true
		it.cur = it.tree.head
	} else if it.cur != nilIndex {
		it.cur = it.tree.arena.entry(it.cur).next
	}

	if it.cur == nilIndex {
		var (
			key   K
			value V
		)
		it.key, it.value = key, value
		return false
	}

	ent := it.tree.arena.entry(it.cur)
	it.key, it.value = ent.key, ent.value
	return true
}

func (it *Iterator[K, V]) Key() K {
	return it.key
}

func (it *Iterator[K, V]) Value() V {
	return it.value
}

// Reset rewinds the iterator to the first entry.
func (it *Iterator[K, V]) Reset() {
	it.started = false
	it.cur = nilIndex
}
