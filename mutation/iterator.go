// Package mutation - neighborhood iterators.
//
// The iterators walk a candidate's neighborhood in place: each NextMutant
// reverts the previously applied move and applies the next one, so the
// candidate always differs from the original by exactly one move. Rollback
// restores the savepoint (default: the original) and permanently ends the
// enumeration, which keeps the candidate's state unambiguous afterwards.
package mutation

import "github.com/katalvlaran/lvlsearch/permutation"

// pairwiseIterator enumerates pairs i < j with j-i <= window, applying a
// self-inverse transform (swap or reversal) for each.
type pairwiseIterator struct {
	p            permutation.Permutation
	apply        func(permutation.Permutation, int, int)
	window       int
	nextI, nextJ int
	exhausted    bool
	curI, curJ   int
	active       bool
	saveI, saveJ int
	savedActive  bool
	done         bool
}

func newPairwiseIterator(p permutation.Permutation, window int, apply func(permutation.Permutation, int, int)) *pairwiseIterator {
	var it = &pairwiseIterator{p: p, apply: apply, window: window}
	if p.Length() < 2 {
		it.exhausted = true
		return it
	}
	it.nextI, it.nextJ = 0, 1
	return it
}

func (it *pairwiseIterator) HasNext() bool { return !it.done && !it.exhausted }

func (it *pairwiseIterator) NextMutant() error {
	if it.done || it.exhausted {
		return ErrIteratorExhausted
	}
	if it.active {
		// The transform is self-inverse; reapplying reverts to the original.
		it.apply(it.p, it.curI, it.curJ)
	}
	it.curI, it.curJ = it.nextI, it.nextJ
	it.apply(it.p, it.curI, it.curJ)
	it.active = true
	it.advance()
	return nil
}

func (it *pairwiseIterator) advance() {
	var n = it.p.Length()
	var i, j = it.nextI, it.nextJ + 1
	if j >= n || j-i > it.window {
		i++
		j = i + 1
	}
	if j >= n {
		it.exhausted = true
		return
	}
	it.nextI, it.nextJ = i, j
}

func (it *pairwiseIterator) SetSavepoint() {
	it.savedActive = it.active
	it.saveI, it.saveJ = it.curI, it.curJ
}

func (it *pairwiseIterator) Rollback() {
	if it.done {
		return
	}
	if it.active {
		it.apply(it.p, it.curI, it.curJ)
		it.active = false
	}
	if it.savedActive {
		it.apply(it.p, it.saveI, it.saveJ)
	}
	it.done = true
}

// insertionIterator enumerates ordered moves (i->j), i != j, |i-j| <= window.
// Moves with j == i-1 are skipped: moving element i one step left produces
// the same neighbor as moving element i-1 one step right, which the j == i+1
// form already covers.
type insertionIterator struct {
	p            permutation.Permutation
	window       int
	nextI, nextJ int
	exhausted    bool
	curI, curJ   int
	active       bool
	saveI, saveJ int
	savedActive  bool
	done         bool
}

func newInsertionIterator(p permutation.Permutation, window int) *insertionIterator {
	var it = &insertionIterator{p: p, window: window}
	if p.Length() < 2 {
		it.exhausted = true
		return it
	}
	// A window of n-1 already admits every move; clamping here keeps the
	// i+window bound arithmetic inside the int range for the unlimited case.
	if it.window > p.Length()-1 {
		it.window = p.Length() - 1
	}
	it.nextI, it.nextJ = 0, 1
	return it
}

func (it *insertionIterator) HasNext() bool { return !it.done && !it.exhausted }

func (it *insertionIterator) NextMutant() error {
	if it.done || it.exhausted {
		return ErrIteratorExhausted
	}
	if it.active {
		// Moving the element back inverts the previous move.
		it.p.RemoveAndInsert(it.curJ, it.curI)
	}
	it.curI, it.curJ = it.nextI, it.nextJ
	it.p.RemoveAndInsert(it.curI, it.curJ)
	it.active = true
	it.advance()
	return nil
}

func (it *insertionIterator) advance() {
	var n = it.p.Length()
	var i, j = it.nextI, it.nextJ
	for {
		j++
		var hi = i + it.window
		if hi > n-1 {
			hi = n - 1
		}
		if j > hi {
			i++
			if i > n-1 {
				it.exhausted = true
				return
			}
			j = i - it.window
			if j < 0 {
				j = 0
			}
			// Compensate the increment at the top of the loop.
			j--
			continue
		}
		if j == i || j == i-1 {
			continue
		}
		it.nextI, it.nextJ = i, j
		return
	}
}

func (it *insertionIterator) SetSavepoint() {
	it.savedActive = it.active
	it.saveI, it.saveJ = it.curI, it.curJ
}

func (it *insertionIterator) Rollback() {
	if it.done {
		return
	}
	if it.active {
		it.p.RemoveAndInsert(it.curJ, it.curI)
		it.active = false
	}
	if it.savedActive {
		it.p.RemoveAndInsert(it.saveI, it.saveJ)
	}
	it.done = true
}

// rotationIterator enumerates the n-1 non-identity rotations by rotating one
// step per NextMutant, tracking the net rotation for rollback.
type rotationIterator struct {
	p    permutation.Permutation
	c    int
	save int
	done bool
}

func newRotationIterator(p permutation.Permutation) *rotationIterator {
	return &rotationIterator{p: p}
}

func (it *rotationIterator) HasNext() bool {
	return !it.done && it.c < it.p.Length()-1
}

func (it *rotationIterator) NextMutant() error {
	if it.done || it.c >= it.p.Length()-1 {
		return ErrIteratorExhausted
	}
	it.p.Rotate(1)
	it.c++
	return nil
}

func (it *rotationIterator) SetSavepoint() { it.save = it.c }

func (it *rotationIterator) Rollback() {
	if it.done {
		return
	}
	it.p.Rotate(it.save - it.c)
	it.done = true
}
