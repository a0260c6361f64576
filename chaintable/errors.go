package chaintable

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned (wrapped) when a table is
	// constructed with a bad capacity, load factor or hasher, and
	// when Put is called with a nil key.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConcurrentModification is matched by the error reported when
	// a table is structurally changed while it is being iterated.
	ErrConcurrentModification = errors.New("concurrent modification")
)

// ConcurrentModificationError reports that a table's modification
// counter moved on while an iteration was in progress.
type ConcurrentModificationError struct {
	Expected uint64
	Actual   uint64
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("chaintable: %v during iteration (modification count %d, want %d)", ErrConcurrentModification, e.Actual, e.Expected)
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}
