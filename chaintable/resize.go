package chaintable

import (
	"math"

	"go.uber.org/zap"
)

// atLoadLimit reports whether adding one more key requires the
// table to grow first.
func (t *Table[K, V]) atLoadLimit() bool {
	return float64(t.count) >= float64(t.capacity)*t.loadFactor
}

// grow doubles the number of buckets and rehashes every entry.
// It counts as a single structural change, however many entries move.
func (t *Table[K, V]) grow() {
	if t.capacity > math.MaxInt/2 {
		panic("chaintable: capacity overflow")
	}
	old := t.buckets
	oldCap := t.capacity
	t.capacity *= 2
	t.buckets = make([][]entry[K, V], t.capacity)
	t.rehash(old)
	t.modCount++
	t.logger.Debug("resized table",
		zap.Int("old_capacity", oldCap),
		zap.Int("new_capacity", t.capacity),
		zap.Int("count", t.count),
	)
}

// rehash moves the entries of old into t.buckets, visiting old
// buckets in index order and each chain in insertion order.
// It leaves count and modCount alone.
func (t *Table[K, V]) rehash(old [][]entry[K, V]) {
	for _, b := range old {
		for _, e := range b {
			i := t.index(e.key, t.capacity)
			t.buckets[i] = append(t.buckets[i], e)
		}
	}
}
