// Package crossover - operator interface and sentinel errors.
package crossover

import (
	"errors"

	"github.com/katalvlaran/lvlsearch/permutation"
)

// ErrLengthMismatch is returned by Cross when the parents differ in length.
var ErrLengthMismatch = errors.New("crossover: parents differ in length")

// ErrRateOutOfRange is returned by parameterized constructors when the rate
// is not strictly between 0 and 1.
var ErrRateOutOfRange = errors.New("crossover: rate must be in (0,1)")

// Operator recombines two parent permutations in place; after Cross each
// argument holds one child.
type Operator interface {
	// Cross transforms p1 and p2 into their two children. Parents shorter
	// than two elements are left unchanged.
	Cross(p1, p2 permutation.Permutation) error

	// Split returns an operator with identical configuration and an
	// independent random stream, sharing no mutable state with the receiver.
	Split() Operator
}
