// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package radix

import (
	"fmt"
	"testing"

	"github.com/k33nice/radix/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Enumeration follows insertion order, not key order.
func TestEachInsertionOrder(t *testing.T) {
	tr := newTestTree(t)
	keys := test.SparseKeys(3, 300, 40)
	for _, k := range keys {
		mustInsert(t, tr, k, fmt.Sprint(k))
	}

	assert.Equal(t, keys, orderKeys(tr))
}

func TestEachStopsEarly(t *testing.T) {
	tr := newTestTree(t)
	for _, k := range []uint64{4, 2, 8} {
		mustInsert(t, tr, k, fmt.Sprint(k))
	}

	var seen []uint64
	tr.Each(func(key uint64, _ string) bool {
		seen = append(seen, key)
		return len(seen) < 2
	})
	assert.Equal(t, []uint64{4, 2}, seen)
}

func TestAllRangeOverFunc(t *testing.T) {
	tr := newTestTree(t)
	for _, k := range []uint64{70, 1, 5000} {
		mustInsert(t, tr, k, fmt.Sprint(k))
	}

	var keys []uint64
	var values []string
	for k, v := range tr.All() {
		keys = append(keys, k)
		values = append(values, v)
		if k == 1 {
			break
		}
	}
	assert.Equal(t, []uint64{70, 1}, keys)
	assert.Equal(t, []string{"70", "1"}, values)
}

func TestIteratorRestartable(t *testing.T) {
	tr := newTestTree(t)
	for _, k := range []uint64{5, 1, 9, 3} {
		mustInsert(t, tr, k, fmt.Sprint(k))
	}
	tr.Delete(9)

	it := tr.Iterator()
	collect := func() []uint64 {
		var keys []uint64
		for it.Next() {
			require.Equal(t, fmt.Sprint(it.Key()), it.Value())
			keys = append(keys, it.Key())
		}
		return keys
	}

	assert.Equal(t, []uint64{5, 1, 3}, collect())
	assert.False(t, it.Next())
	assert.Equal(t, uint64(0), it.Key())
	assert.Equal(t, "", it.Value())

	it.Reset()
	assert.Equal(t, []uint64{5, 1, 3}, collect())
}

func TestIteratorEmptyTree(t *testing.T) {
	tr := newTestTree(t)
	it := tr.Iterator()
	assert.False(t, it.Next())
}

// Unlinking the head, tail and a middle entry keeps both directions consistent.
func TestUnlinkPositions(t *testing.T) {
	tr := newTestTree(t)
	for _, k := range []uint64{1, 2, 3, 4, 5} {
		mustInsert(t, tr, k, fmt.Sprint(k))
	}

	tr.Delete(1)
	tr.Delete(5)
	tr.Delete(3)
	assert.Equal(t, []uint64{2, 4}, orderKeys(tr))
	checkInvariants(t, tr)

	tr.Delete(2)
	tr.Delete(4)
	assert.Nil(t, orderKeys(tr))
	assert.Equal(t, nilIndex, tr.head)
	assert.Equal(t, nilIndex, tr.tail)
}
