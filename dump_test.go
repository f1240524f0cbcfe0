// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package radix

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/k33nice/radix/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Walk visits keys in ascending order and rebuilds them from the path.
func TestWalkAscending(t *testing.T) {
	tr := newTestTree(t)
	keys := test.SparseKeys(5, 500, 64)
	for _, k := range keys {
		mustInsert(t, tr, k, fmt.Sprint(k))
	}

	var walked []uint64
	tr.Walk(func(key uint64, value string) bool {
		require.Equal(t, fmt.Sprint(key), value)
		walked = append(walked, key)
		return true
	})

	sorted := append([]uint64(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	assert.Equal(t, sorted, walked)
}

func TestWalkStopsEarly(t *testing.T) {
	tr := newTestTree(t)
	for _, k := range []uint64{1 << 30, 7, 4096} {
		mustInsert(t, tr, k, "v")
	}

	var walked []uint64
	tr.Walk(func(key uint64, _ string) bool {
		walked = append(walked, key)
		return false
	})
	assert.Equal(t, []uint64{7}, walked)
}

func TestDump(t *testing.T) {
	tr := newTestTree(t)
	mustInsert(t, tr, 4096, "c")
	mustInsert(t, tr, 5, "b")
	mustInsert(t, tr, 1, "a")

	var buf bytes.Buffer
	require.NoError(t, tr.Dump(&buf))
	assert.Equal(t, "0x1\ta\n0x5\tb\n0x1000\tc\n", buf.String())
}

func TestDumpFormatter(t *testing.T) {
	tr := newTestTree(t, WithFormatter(func(value interface{}) string {
		return strings.ToUpper(value.(string))
	}))
	mustInsert(t, tr, 0, "zero")

	var buf bytes.Buffer
	require.NoError(t, tr.Dump(&buf))
	assert.Equal(t, "0x0\tZERO\n", buf.String())
}

type failingWriter struct {
	writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("disk full")
}

func TestDumpWriteError(t *testing.T) {
	tr := newTestTree(t)
	mustInsert(t, tr, 1, "a")
	mustInsert(t, tr, 2, "b")

	w := &failingWriter{}
	assert.EqualError(t, tr.Dump(w), "disk full")
	assert.Equal(t, 1, w.writes)
}

func TestDumpEmpty(t *testing.T) {
	tr := newTestTree(t)

	var buf bytes.Buffer
	require.NoError(t, tr.Dump(&buf))
	assert.Empty(t, buf.String())
}
