// Package hashers provides implementations of chaintable.Hasher for
// common key types.
//
// None of these hashers aim for resistance to deliberate collisions
// except [Bytes] when constructed with secret keys.
package hashers

import (
	"bytes"
	"encoding/binary"
	"hash/maphash"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"golang.org/x/exp/constraints"
)

// String hashes string keys with xxhash.
type String struct{}

func (String) Hash(s string) uint64   { return xxhash.Sum64String(s) }
func (String) Equal(x, y string) bool { return x == y }

// Integer hashes integer keys by running xxhash over their
// 64-bit little-endian encoding.
type Integer[T constraints.Integer] struct {
	_ [0]func(T)
}

func (Integer[T]) Hash(k T) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(k))
	return xxhash.Sum64(buf[:])
}

func (Integer[T]) Equal(x, y T) bool { return x == y }

// Bytes hashes byte-slice keys with SipHash-2-4. Keys are equal
// when they hold the same bytes.
//
// The zero value uses an all-zero SipHash key.
type Bytes struct {
	k0, k1 uint64
}

// NewBytes returns a Bytes hasher using the 128-bit SipHash key (k0, k1).
func NewBytes(k0, k1 uint64) Bytes {
	return Bytes{k0: k0, k1: k1}
}

func (h Bytes) Hash(b []byte) uint64 { return siphash.Hash(h.k0, h.k1, b) }
func (Bytes) Equal(x, y []byte) bool { return bytes.Equal(x, y) }

var sliceSeed = maphash.MakeSeed()

// Slice hashes slices of comparable elements by content.
type Slice[T comparable] struct {
	_ [0]func(T)
}

func (Slice[T]) Hash(s []T) uint64 {
	var h maphash.Hash
	h.SetSeed(sliceSeed)
	for _, v := range s {
		maphash.WriteComparable(&h, v)
	}
	return h.Sum64()
}

func (Slice[T]) Equal(x, y []T) bool { return slices.Equal(x, y) }

// Func adapts a pair of functions to a hasher.
type Func[K any] struct {
	hash  func(K) uint64
	equal func(x, y K) bool
}

// NewFunc returns a hasher that calls hash and equal.
// The two functions must be consistent with each other.
// It panics if either is nil.
func NewFunc[K any](hash func(K) uint64, equal func(x, y K) bool) Func[K] {
	if hash == nil || equal == nil {
		panic("hashers: NewFunc called with nil function")
	}
	return Func[K]{hash: hash, equal: equal}
}

func (h Func[K]) Hash(k K) uint64   { return h.hash(k) }
func (h Func[K]) Equal(x, y K) bool { return h.equal(x, y) }

// Maphash builds a hasher from a function that writes the
// identifying parts of a key to a [maphash.Hash]. It suits
// composite keys that are not comparable.
type Maphash[K any] struct {
	seed  maphash.Seed
	write func(*maphash.Hash, K)
	equal func(x, y K) bool
}

// NewMaphash returns a hasher that seeds a fresh [maphash.Hash]
// for every key and passes it to write. The seed is chosen once,
// so a given key always hashes the same way. It panics if either
// function is nil.
func NewMaphash[K any](write func(*maphash.Hash, K), equal func(x, y K) bool) Maphash[K] {
	if write == nil || equal == nil {
		panic("hashers: NewMaphash called with nil function")
	}
	return Maphash[K]{
		seed:  maphash.MakeSeed(),
		write: write,
		equal: equal,
	}
}

func (h Maphash[K]) Hash(k K) uint64 {
	var mh maphash.Hash
	mh.SetSeed(h.seed)
	h.write(&mh, k)
	return mh.Sum64()
}

func (h Maphash[K]) Equal(x, y K) bool { return h.equal(x, y) }
