// Package mutation - operator interfaces and sentinel errors.
package mutation

import (
	"errors"

	"github.com/katalvlaran/lvlsearch/permutation"
)

// ErrNonPositiveWindow is returned by window-limited constructors when the
// window is not at least 1.
var ErrNonPositiveWindow = errors.New("mutation: window must be positive")

// ErrIteratorExhausted is returned by Iterator.NextMutant when no neighbors
// remain, or after Rollback has ended the enumeration.
var ErrIteratorExhausted = errors.New("mutation: iterator exhausted")

// Operator is a randomized mutation over permutations.
type Operator interface {
	// Mutate transforms p in place. Candidates shorter than two elements are
	// left unchanged.
	Mutate(p permutation.Permutation)

	// Split returns an operator with identical configuration and an
	// independent random stream, sharing no mutable state with the receiver.
	Split() Operator
}

// UndoableOperator is an Operator whose most recent mutation can be reverted.
// Undo is only meaningful immediately after Mutate on the same candidate.
type UndoableOperator interface {
	Operator
	Undo(p permutation.Permutation)
}

// IterableOperator is an Operator whose neighborhood can be enumerated
// systematically.
type IterableOperator interface {
	Operator

	// Iterator returns an iterator over all distinct single-move neighbors
	// of p. The iterator mutates p in place as it walks the neighborhood.
	Iterator(p permutation.Permutation) Iterator
}

// Iterator walks the neighborhood of one candidate.
//
// Protocol:
//
//   - HasNext reports whether another neighbor remains; it never changes the
//     candidate.
//   - NextMutant transforms the candidate into the next neighbor and returns
//     ErrIteratorExhausted when none remain.
//   - SetSavepoint marks the current candidate; the latest call wins.
//   - Rollback restores the savepoint (or the original candidate when none
//     was set), is idempotent, may be called after exhaustion, and
//     permanently ends the enumeration.
type Iterator interface {
	HasNext() bool
	NextMutant() error
	SetSavepoint()
	Rollback()
}
