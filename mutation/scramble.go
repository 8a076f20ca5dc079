// Package mutation - scramble operators.
package mutation

import (
	"github.com/katalvlaran/lvlsearch/permutation"
	"github.com/katalvlaran/lvlsearch/rnd"
)

// Scramble randomizes the order of a random sub-range, guaranteeing the
// range changes whenever the candidate has at least two elements. The
// window-limited variant bounds the range span.
//
// Scramble is not undoable; see UndoableScramble for the variant that is.
type Scramble struct {
	s      *rnd.Stream
	window int
}

// NewScramble returns an unconstrained scramble operator. A nil stream
// selects the deterministic default stream.
func NewScramble(s *rnd.Stream) *Scramble {
	return &Scramble{s: streamOrDefault(s), window: unlimited}
}

// NewWindowLimitedScramble returns a scramble operator whose range endpoints
// always satisfy |i-j| <= window.
func NewWindowLimitedScramble(window int, s *rnd.Stream) (*Scramble, error) {
	if window <= 0 {
		return nil, ErrNonPositiveWindow
	}
	return &Scramble{s: streamOrDefault(s), window: window}, nil
}

// Mutate scrambles a random sub-range of p.
func (m *Scramble) Mutate(p permutation.Permutation) {
	if p.Length() < 2 {
		return
	}
	var i, j = pairIdx(m.s, p.Length(), m.window)
	p.ScrambleRange(i, j, m.s)
}

// Split returns an identically configured operator with an independent
// random stream.
func (m *Scramble) Split() Operator {
	return &Scramble{s: m.s.Split(), window: m.window}
}

// UndoableScramble is Scramble with one level of undo. The pre-scramble
// sub-range is saved verbatim before each mutation, trading a range-sized
// copy per Mutate for reversibility.
type UndoableScramble struct {
	s      *rnd.Stream
	window int
	start  int
	saved  []int
}

// NewUndoableScramble returns an unconstrained undoable scramble operator.
// A nil stream selects the deterministic default stream.
func NewUndoableScramble(s *rnd.Stream) *UndoableScramble {
	return &UndoableScramble{s: streamOrDefault(s), window: unlimited}
}

// NewWindowLimitedUndoableScramble returns an undoable scramble operator
// whose range endpoints always satisfy |i-j| <= window.
func NewWindowLimitedUndoableScramble(window int, s *rnd.Stream) (*UndoableScramble, error) {
	if window <= 0 {
		return nil, ErrNonPositiveWindow
	}
	return &UndoableScramble{s: streamOrDefault(s), window: window}, nil
}

// Mutate scrambles a random sub-range of p, saving the prior contents.
func (m *UndoableScramble) Mutate(p permutation.Permutation) {
	if p.Length() < 2 {
		return
	}
	var i, j = pairIdx(m.s, p.Length(), m.window)
	if i > j {
		i, j = j, i
	}
	m.start = i
	m.saved = append(m.saved[:0], p[i:j+1]...)
	p.ScrambleRange(i, j, m.s)
}

// Undo restores the sub-range saved by the most recent Mutate.
func (m *UndoableScramble) Undo(p permutation.Permutation) {
	if p.Length() < 2 || len(m.saved) == 0 {
		return
	}
	copy(p[m.start:m.start+len(m.saved)], m.saved)
}

// Split returns an identically configured operator with an independent
// random stream and its own undo slot.
func (m *UndoableScramble) Split() Operator {
	return &UndoableScramble{s: m.s.Split(), window: m.window}
}
