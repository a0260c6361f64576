package chaintable

import "iter"

// Iterator walks the entries of a table in bucket order and, within
// each bucket, in insertion order. It is fail-fast: if the table is
// structurally changed after the iterator was created, the next call
// to Next returns false and Err reports a [*ConcurrentModificationError].
//
// An Iterator cannot be restarted; call [Table.Iter] again instead.
type Iterator[K, V any] struct {
	t        *Table[K, V]
	expected uint64

	// bucket and pos address the next entry to visit.
	bucket int
	pos    int

	key  K
	val  V
	err  error
	done bool
}

// Iter returns an iterator over the entries of t.
func (t *Table[K, V]) Iter() *Iterator[K, V] {
	it := &Iterator[K, V]{t: t}
	if t != nil {
		it.expected = t.modCount
	}
	return it
}

// Next advances to the next entry and reports whether there is one.
func (it *Iterator[K, V]) Next() bool {
	if it.done {
		return false
	}
	if it.t == nil {
		return it.stop(nil)
	}
	if it.t.modCount != it.expected {
		return it.stop(&ConcurrentModificationError{
			Expected: it.expected,
			Actual:   it.t.modCount,
		})
	}
	for it.bucket < len(it.t.buckets) {
		b := it.t.buckets[it.bucket]
		if it.pos < len(b) {
			it.key, it.val = b[it.pos].key, b[it.pos].val
			it.pos++
			return true
		}
		it.bucket++
		it.pos = 0
	}
	return it.stop(nil)
}

func (it *Iterator[K, V]) stop(err error) bool {
	it.done = true
	it.err = err
	it.key, it.val = *new(K), *new(V)
	return false
}

// Key returns the key of the current entry.
func (it *Iterator[K, V]) Key() K {
	return it.key
}

// Value returns the value of the current entry as it was when
// Next moved to it.
func (it *Iterator[K, V]) Value() V {
	return it.val
}

// Err returns the error that stopped the iteration, if any.
func (it *Iterator[K, V]) Err() error {
	return it.err
}

// All returns an iterator over (key, value) pairs in the same order
// as [Table.Iter].
//
// Since an iter.Seq2 cannot return an error, a structural change to
// the table during the loop makes the iteration panic with a
// [*ConcurrentModificationError].
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := t.Iter()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
		if err := it.Err(); err != nil {
			panic(err)
		}
	}
}
