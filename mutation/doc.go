// Package mutation implements randomized neighborhood operators over
// permutations: adjacent swap, swap, insertion, reversal, block move, block
// interchange, scramble, and rotation, plus window-limited variants that
// bound how far apart the touched indexes may be.
//
// Operator contracts:
//
//   - Mutate changes a candidate of length >= 2 in place; shorter candidates
//     are left untouched.
//   - Undoable operators restore the pre-mutation candidate when Undo is
//     called immediately after Mutate on the same candidate.
//   - Split returns an operator with identical configuration and an
//     independent random stream, safe to hand to another goroutine.
//   - Iterable operators enumerate every distinct single-move neighbor of a
//     candidate exactly once via Iterator, with savepoint/rollback support.
//
// Randomness is always explicit: constructors take a *rnd.Stream (nil means
// the deterministic default stream).
package mutation
