package chaintable

import "hash/maphash"

// A Hasher defines a hash function and an equivalence relation over
// keys of type K.
//
// Equal must be consistent with Hash: if Equal(x, y) is true then
// Hash(x) == Hash(y). Hash must be deterministic for the lifetime
// of a table; it need not be collision resistant.
//
// See the hashers package for implementations over common key types.
type Hasher[K any] interface {
	Hash(K) uint64
	Equal(x, y K) bool
}

var comparableSeed = maphash.MakeSeed()

// ComparableHasher is an implementation of [Hasher] for comparable types.
// Its Equal(x, y) method is consistent with x == y.
//
// All ComparableHasher values in a process share one seed,
// so the zero value is ready to use.
type ComparableHasher[K comparable] struct {
	_ [0]func(K) // disallow comparison, and conversion between ComparableHasher[X] and ComparableHasher[Y]
}

func (ComparableHasher[K]) Hash(k K) uint64   { return maphash.Comparable(comparableSeed, k) }
func (ComparableHasher[K]) Equal(x, y K) bool { return x == y }
