package chaintable_test

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dsdays/collections/chaintable"
)

func TestResizePreservesData(t *testing.T) {
	tab := newStringTable(t, chaintable.WithCapacity(2), chaintable.WithLoadFactor(0.75))

	// Capacity after each insertion of key1..key4: the table grows
	// before key3 (2 >= 1.5) and before key4 (3 >= 3).
	wantCap := []int{2, 2, 4, 8}
	for i := range 4 {
		put(t, tab, fmt.Sprint("key", i+1), fmt.Sprint("value", i+1))
		qt.Assert(t, qt.Equals(tab.Len(), i+1))
		qt.Assert(t, qt.Equals(tab.Cap(), wantCap[i]), qt.Commentf("after key%d", i+1))
	}
	for i := range 4 {
		v, ok := tab.Get(fmt.Sprint("key", i+1))
		qt.Assert(t, qt.IsTrue(ok))
		qt.Assert(t, qt.Equals(v, fmt.Sprint("value", i+1)))
	}
}

func TestUpdateDoesNotGrow(t *testing.T) {
	tab := newStringTable(t, chaintable.WithCapacity(2), chaintable.WithLoadFactor(0.5))
	put(t, tab, "a", "1")
	qt.Assert(t, qt.Equals(tab.Cap(), 2))

	// The table is at its load limit, but replacing a value
	// doesn't add an entry so no resize is needed.
	put(t, tab, "a", "2")
	qt.Assert(t, qt.Equals(tab.Cap(), 2))

	put(t, tab, "b", "3")
	qt.Assert(t, qt.Equals(tab.Cap(), 4))
}

func TestResizeRehashesIntoNewBuckets(t *testing.T) {
	tab, err := chaintable.New[int, int](identityHasher{}, chaintable.WithCapacity(2), chaintable.WithLoadFactor(1))
	qt.Assert(t, qt.IsNil(err))

	put(t, tab, 3, 30)
	put(t, tab, 1, 10)
	// Both keys share bucket 1 of 2.
	qt.Assert(t, qt.DeepEquals(tab.Keys(), []int{3, 1}))

	put(t, tab, 2, 20)
	qt.Assert(t, qt.Equals(tab.Cap(), 4))
	qt.Assert(t, qt.DeepEquals(tab.Keys(), []int{1, 2, 3}))
	qt.Assert(t, qt.DeepEquals(tab.Values(), []int{10, 20, 30}))
}

func TestResizeKeepsChainOrder(t *testing.T) {
	tab, err := chaintable.New[int, int](identityHasher{}, chaintable.WithCapacity(1), chaintable.WithLoadFactor(3))
	qt.Assert(t, qt.IsNil(err))

	// All in bucket 0 of 1; after growing to 2, the odd and even
	// keys each keep their relative order.
	for _, k := range []int{5, 2, 3} {
		put(t, tab, k, k)
	}
	put(t, tab, 4, 4)
	qt.Assert(t, qt.Equals(tab.Cap(), 2))
	qt.Assert(t, qt.DeepEquals(tab.Keys(), []int{2, 4, 5, 3}))
}

func TestResizeLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tab := newStringTable(t,
		chaintable.WithCapacity(1),
		chaintable.WithLoadFactor(1),
		chaintable.WithLogger(zap.New(core)),
	)
	put(t, tab, "a", "1")
	put(t, tab, "b", "2")

	entries := logs.FilterMessage("resized table").All()
	qt.Assert(t, qt.HasLen(entries, 1))
	qt.Assert(t, qt.Equals(entries[0].Level, zapcore.DebugLevel))
	qt.Assert(t, qt.DeepEquals(entries[0].ContextMap(), map[string]any{
		"old_capacity": int64(1),
		"new_capacity": int64(2),
		"count":        int64(1),
	}))
}
