// Package synctable provides a hash table that may be used by
// several goroutines at once. It wraps a [chaintable.Table] with
// a read-write mutex.
package synctable

import (
	"sync"

	"github.com/dsdays/collections/chaintable"
)

// Table is a [chaintable.Table] guarded by a lock. Methods on a
// Table may be called concurrently.
//
// Because every mutation takes the write lock and Range holds the
// read lock for the whole walk, iterations over a Table never see a
// concurrent modification.
type Table[K, V any] struct {
	// mu guards t.
	mu sync.RWMutex
	t  *chaintable.Table[K, V]
}

// New returns a new empty Table. The arguments are as for [chaintable.New].
func New[K, V any](h chaintable.Hasher[K], opts ...chaintable.Option) (*Table[K, V], error) {
	t, err := chaintable.New[K, V](h, opts...)
	if err != nil {
		return nil, err
	}
	return &Table[K, V]{t: t}, nil
}

// Put is like [chaintable.Table.Put].
func (t *Table[K, V]) Put(k K, v V) (old V, replaced bool, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.t.Put(k, v)
}

// Get is like [chaintable.Table.Get].
func (t *Table[K, V]) Get(k K) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.t.Get(k)
}

// ContainsKey is like [chaintable.Table.ContainsKey].
func (t *Table[K, V]) ContainsKey(k K) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.t.ContainsKey(k)
}

// Remove is like [chaintable.Table.Remove].
func (t *Table[K, V]) Remove(k K) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.t.Remove(k)
}

// Keys returns a snapshot of the keys.
func (t *Table[K, V]) Keys() []K {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.t.Keys()
}

// Values returns a snapshot of the values.
func (t *Table[K, V]) Values() []V {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.t.Values()
}

func (t *Table[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.t.Len()
}

func (t *Table[K, V]) IsEmpty() bool {
	return t.Len() == 0
}

func (t *Table[K, V]) Cap() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.t.Cap()
}

func (t *Table[K, V]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.t.Clear()
}

// Range calls f for each entry in iteration order until f returns
// false. The read lock is held throughout, so f must not call
// methods that modify t.
func (t *Table[K, V]) Range(f func(K, V) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for k, v := range t.t.All() {
		if !f(k, v) {
			return
		}
	}
}

// Do calls f with the underlying table while holding the write lock,
// so that a sequence of operations happens atomically. The table
// must not be retained after f returns.
func (t *Table[K, V]) Do(f func(*chaintable.Table[K, V])) {
	t.mu.Lock()
	defer t.mu.Unlock()
	f(t.t)
}
