// Package chaintable implements a resizable hash table that resolves
// collisions by separate chaining.
//
// Each bucket holds a chain of entries in insertion order. When an
// insertion of a new key finds the table holding at least
// capacity*loadFactor entries, the bucket array is doubled and every
// entry is rehashed before the new one is added.
//
// Iteration is fail-fast: inserting a new key, removing a key,
// clearing or resizing the table while an [Iterator] is live causes
// the iterator to stop with an error matching [ErrConcurrentModification].
// Replacing the value of an existing key is not a structural change
// and does not disturb iterators.
//
// A Table is not safe for concurrent use; see the synctable package
// for a locked wrapper.
package chaintable

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Table is a hash table from keys K to values V. Key identity is
// decided by the table's [Hasher], not by ==.
//
// Just as with map[K]V, a nil *Table is a valid empty table for
// read-only operations.
type Table[K, V any] struct {
	hasher     Hasher[K]
	loadFactor float64
	logger     *zap.Logger

	// nilable records whether K has a nil value, in which case
	// nil keys are rejected by Put and never found by lookups.
	nilable bool

	// buckets always has length capacity.
	buckets  [][]entry[K, V]
	capacity int
	count    int

	// modCount is incremented on every structural change:
	// insertion of a new key, removal, clear and resize.
	modCount uint64
}

// entry is an association in a bucket chain.
type entry[K, V any] struct {
	key K
	val V
}

// New returns a new empty table that uses h to hash and compare keys.
// It returns an error wrapping [ErrInvalidArgument] if h is nil or
// if the capacity or load factor given by opts is out of range.
func New[K, V any](h Hasher[K], opts ...Option) (*Table[K, V], error) {
	if h == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "chaintable: nil hasher")
	}
	c, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Table[K, V]{
		hasher:     h,
		loadFactor: c.loadFactor,
		logger:     c.logger,
		nilable:    isNilable(reflect.TypeFor[K]()),
		buckets:    make([][]entry[K, V], c.capacity),
		capacity:   c.capacity,
	}, nil
}

func isNilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}

func (t *Table[K, V]) isNil(k K) bool {
	return t.nilable && reflect.ValueOf(&k).Elem().IsNil()
}

// Len returns the number of entries in the table.
func (t *Table[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the table holds no entries.
func (t *Table[K, V]) IsEmpty() bool {
	return t.Len() == 0
}

// Cap returns the current number of buckets.
func (t *Table[K, V]) Cap() int {
	if t == nil {
		return 0
	}
	return t.capacity
}

// LoadFactor returns the growth threshold the table was created with.
func (t *Table[K, V]) LoadFactor() float64 {
	if t == nil {
		return 0
	}
	return t.loadFactor
}

// index returns the bucket that k belongs to in a table of n buckets.
func (t *Table[K, V]) index(k K, n int) int {
	return int((t.hasher.Hash(k) & math.MaxInt64) % uint64(n))
}

// find returns the bucket index for k and the position of k
// within that bucket, or -1 if k is not present.
func (t *Table[K, V]) find(k K) (int, int) {
	bi := t.index(k, t.capacity)
	b := t.buckets[bi]
	for i := range b {
		if t.hasher.Equal(k, b[i].key) {
			return bi, i
		}
	}
	return bi, -1
}

// Get returns the value stored for k and reports whether it was present.
// A nil key is never present.
func (t *Table[K, V]) Get(k K) (V, bool) {
	if t == nil || t.isNil(k) {
		return *new(V), false
	}
	bi, i := t.find(k)
	if i < 0 {
		return *new(V), false
	}
	return t.buckets[bi][i].val, true
}

// ContainsKey reports whether the table holds an entry for k.
func (t *Table[K, V]) ContainsKey(k K) bool {
	_, ok := t.Get(k)
	return ok
}

// Put sets the value for k to v. If k was already present, its value
// is replaced in place and the previous value is returned with
// replaced set to true; this is not a structural change. Otherwise a
// new entry is appended to the end of k's bucket, growing the table
// first if it is at its load limit.
//
// Put returns an error wrapping [ErrInvalidArgument] if k is nil.
func (t *Table[K, V]) Put(k K, v V) (old V, replaced bool, err error) {
	if t == nil {
		panic("(*Table).Put called on nil *Table")
	}
	if t.isNil(k) {
		return old, false, errors.Wrap(ErrInvalidArgument, "chaintable: put with nil key")
	}
	bi, i := t.find(k)
	if i >= 0 {
		e := &t.buckets[bi][i]
		old, e.val = e.val, v
		return old, true, nil
	}
	if t.atLoadLimit() {
		t.grow()
		bi = t.index(k, t.capacity)
	}
	t.buckets[bi] = append(t.buckets[bi], entry[K, V]{key: k, val: v})
	t.count++
	t.modCount++
	return old, false, nil
}

// Remove deletes the entry for k, if present, returning its value and
// reporting whether it was found. The remaining entries of the bucket
// keep their relative order.
func (t *Table[K, V]) Remove(k K) (V, bool) {
	if t == nil || t.isNil(k) {
		return *new(V), false
	}
	bi, i := t.find(k)
	if i < 0 {
		return *new(V), false
	}
	old := t.buckets[bi][i].val
	t.buckets[bi] = slices.Delete(t.buckets[bi], i, i+1)
	t.count--
	t.modCount++
	return old, true
}

// Clear removes all entries. The capacity is unchanged.
func (t *Table[K, V]) Clear() {
	if t == nil {
		return
	}
	dropped := t.count
	t.buckets = make([][]entry[K, V], t.capacity)
	t.count = 0
	t.modCount++
	t.logger.Debug("cleared table",
		zap.Int("capacity", t.capacity),
		zap.Int("dropped", dropped),
	)
}

// Keys returns a snapshot of all keys, ordered by bucket and then by
// insertion order within each bucket.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, t.Len())
	if t == nil {
		return keys
	}
	for _, b := range t.buckets {
		for i := range b {
			keys = append(keys, b[i].key)
		}
	}
	return keys
}

// Values returns a snapshot of all values, in the same order as [Table.Keys].
func (t *Table[K, V]) Values() []V {
	vals := make([]V, 0, t.Len())
	if t == nil {
		return vals
	}
	for _, b := range t.buckets {
		for i := range b {
			vals = append(vals, b[i].val)
		}
	}
	return vals
}

// String formats the table like a map, in iteration order.
func (t *Table[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	if t != nil {
		n := 0
		for _, b := range t.buckets {
			for i := range b {
				if n > 0 {
					sb.WriteByte(' ')
				}
				fmt.Fprintf(&sb, "%v:%v", b[i].key, b[i].val)
				n++
			}
		}
	}
	sb.WriteByte('}')
	return sb.String()
}
