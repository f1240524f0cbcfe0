// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package radix

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Index 0 of both arenas is never handed out, so it marks an empty slot.
const nilIndex uint32 = 0

// phase tells how an inner node's link field is to be read.
type phase uint8

const (
	// Attached to the tree: link is the parent (nilIndex for the root).
	phaseLive phase = iota
	// Waiting in the teardown queue: link is the next queued node.
	phaseQueued
	// On the free list: link is the next free node.
	phaseFree
)

// Inner node with a fixed number of child slots. At height 0 the slots
// hold entry indices, above that they hold inner node indices.
type innerNode struct {
	height   int
	offset   int
	count    int
	phase    phase
	link     uint32
	children []uint32
}

// Entry node holding one key/value pair. prev and next thread it on the
// insertion order list; a free entry is chained through next.
type entryNode[K constraints.Unsigned, V any] struct {
	key   K
	value V
	prev  uint32
	next  uint32
}

func (n *innerNode) attach(slot int, child uint32) {
	n.children[slot] = child
	n.count++
}

func (n *innerNode) detach(slot int) uint32 {
	child := n.children[slot]
	if child != nilIndex {
		n.children[slot] = nilIndex
		n.count--
	}
	return child
}

func (n *innerNode) reset() {
	for i := range n.children {
		n.children[i] = nilIndex
	}
	n.count = 0
	n.height = 0
	n.offset = 0
}

// arena owns every node of one tree. Nodes are addressed by index and
// freed indices are reused before the arena grows.
type arena[K constraints.Unsigned, V any] struct {
	nodes   []*innerNode
	entries []*entryNode[K, V]

	freeNodes   uint32
	freeEntries uint32

	liveNodes   int
	liveEntries int
	maxNodes    int
	maxEntries  int
	fanout      int
}

func newArena[K constraints.Unsigned, V any](fanout, maxNodes, maxEntries int) *arena[K, V] {
	return &arena[K, V]{
		nodes:      []*innerNode{nil},
		entries:    []*entryNode[K, V]{nil},
		maxNodes:   maxNodes,
		maxEntries: maxEntries,
		fanout:     fanout,
	}
}

func (a *arena[K, V]) node(idx uint32) *innerNode {
	return a.nodes[idx]
}

func (a *arena[K, V]) entry(idx uint32) *entryNode[K, V] {
	return a.entries[idx]
}

// Returns the parent of a node that is attached to the tree.
func (a *arena[K, V]) parent(idx uint32) uint32 {
	n := a.nodes[idx]
	if n.phase != phaseLive {
		panic(fmt.Sprintf("radix: parent of node %d read in phase %d", idx, n.phase))
	}
	return n.link
}

func (a *arena[K, V]) setParent(idx, parent uint32, offset int) {
	n := a.nodes[idx]
	n.link = parent
	n.offset = offset
}

// allocNode returns a live, empty inner node or ErrNoSpace. Nothing is
// linked into the tree here.
func (a *arena[K, V]) allocNode(parent uint32, height, offset int) (uint32, error) {
	if a.maxNodes > 0 && a.liveNodes >= a.maxNodes {
		return nilIndex, fmt.Errorf("%w: %s limit %d reached", ErrNoSpace, Inner, a.maxNodes)
	}

	var idx uint32
	if a.freeNodes != nilIndex {
		idx = a.freeNodes
		a.freeNodes = a.nodes[idx].link
	} else {
		if uint64(len(a.nodes)) >= math.MaxUint32 {
			return nilIndex, fmt.Errorf("%w: %s index space exhausted", ErrNoSpace, Inner)
		}
		idx = uint32(len(a.nodes))
		a.nodes = append(a.nodes, &innerNode{children: make([]uint32, a.fanout)})
	}

	n := a.nodes[idx]
	n.phase = phaseLive
	n.link = parent
	n.height = height
	n.offset = offset
	a.liveNodes++
	return idx, nil
}

func (a *arena[K, V]) freeNode(idx uint32) {
	n := a.nodes[idx]
	n.reset()
	n.phase = phaseFree
	n.link = a.freeNodes
	a.freeNodes = idx
	a.liveNodes--
}

// allocEntry returns a detached entry holding key and value, or ErrNoSpace.
func (a *arena[K, V]) allocEntry(key K, value V) (uint32, error) {
	if a.maxEntries > 0 && a.liveEntries >= a.maxEntries {
		return nilIndex, fmt.Errorf("%w: %s limit %d reached", ErrNoSpace, Entry, a.maxEntries)
	}

	var idx uint32
	if a.freeEntries != nilIndex {
		idx = a.freeEntries
		a.freeEntries = a.entries[idx].next
	} else {
		if uint64(len(a.entries)) >= math.MaxUint32 {
			return nilIndex, fmt.Errorf("%w: %s index space exhausted", ErrNoSpace, Entry)
		}
		idx = uint32(len(a.entries))
		a.entries = append(a.entries, &entryNode[K, V]{})
	}

	*a.entries[idx] = entryNode[K, V]{key: key, value: value}
	a.liveEntries++
	return idx, nil
}

// freeEntry drops the entry's value so the tree keeps no reference to it.
func (a *arena[K, V]) freeEntry(idx uint32) {
	*a.entries[idx] = entryNode[K, V]{next: a.freeEntries}
	a.freeEntries = idx
	a.liveEntries--
}
