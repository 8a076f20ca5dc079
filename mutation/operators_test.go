// Package mutation_test exercises every operator through shared harnesses:
// mutation changes candidates of length >= 2 and preserves validity, undo
// restores the pre-mutation candidate, and split yields an independent twin.
package mutation_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlsearch/mutation"
	"github.com/katalvlaran/lvlsearch/permutation"
	"github.com/katalvlaran/lvlsearch/rnd"
)

// mutateTester verifies the core Mutate contract across candidate lengths
// 0..6: short candidates are untouched, longer ones always change, stay the
// same length, and remain valid permutations.
func mutateTester(t *testing.T, name string, m mutation.Operator) {
	t.Helper()
	var s = rnd.New(101)
	var n int
	for n = 0; n <= 6; n++ {
		var trial int
		for trial = 0; trial < 20; trial++ {
			var p = permutation.Random(n, s)
			var before = p.Copy()
			m.Mutate(p)
			if p.Length() != n {
				t.Fatalf("%s: n=%d: length changed to %d", name, n, p.Length())
			}
			if err := p.Validate(); err != nil {
				t.Fatalf("%s: n=%d: invalid after mutate: %v", name, n, err)
			}
			if n < 2 {
				if !p.Equal(before) {
					t.Fatalf("%s: n=%d: short candidate changed", name, n)
				}
				continue
			}
			if p.Equal(before) {
				t.Fatalf("%s: n=%d trial=%d: mutate left candidate unchanged", name, n, trial)
			}
		}
	}
}

// undoTester verifies mutate-then-undo restores the candidate exactly, for
// every length 0..6 and repeated mutations on the same candidate.
func undoTester(t *testing.T, name string, m mutation.UndoableOperator) {
	t.Helper()
	var s = rnd.New(103)
	var n int
	for n = 0; n <= 6; n++ {
		var trial int
		for trial = 0; trial < 20; trial++ {
			var p = permutation.Random(n, s)
			var before = p.Copy()
			m.Mutate(p)
			m.Undo(p)
			if !p.Equal(before) {
				t.Fatalf("%s: n=%d trial=%d: undo failed:\nwant %v\ngot  %v", name, n, trial, before, p)
			}
		}
	}
}

// splitTester verifies a split operator works on its own and leaves the
// original functional, with both producing valid mutations.
func splitTester(t *testing.T, name string, m mutation.Operator) {
	t.Helper()
	var c = m.Split()
	if c == nil {
		t.Fatalf("%s: split returned nil", name)
	}
	var p = permutation.New(6)
	var q = permutation.New(6)
	m.Mutate(p)
	c.Mutate(q)
	if err := p.Validate(); err != nil {
		t.Fatalf("%s: original broken after split: %v", name, err)
	}
	if err := q.Validate(); err != nil {
		t.Fatalf("%s: split produced invalid candidate: %v", name, err)
	}
	if p.Equal(permutation.New(6)) || q.Equal(permutation.New(6)) {
		t.Fatalf("%s: an operator failed to mutate after split", name)
	}
}

func TestAdjacentSwap(t *testing.T) {
	mutateTester(t, "adjacent swap", mutation.NewAdjacentSwap(rnd.New(1)))
	undoTester(t, "adjacent swap", mutation.NewAdjacentSwap(rnd.New(2)))
	splitTester(t, "adjacent swap", mutation.NewAdjacentSwap(rnd.New(3)))
}

func TestSwap(t *testing.T) {
	mutateTester(t, "swap", mutation.NewSwap(rnd.New(1)))
	undoTester(t, "swap", mutation.NewSwap(rnd.New(2)))
	splitTester(t, "swap", mutation.NewSwap(rnd.New(3)))
}

func TestReversal(t *testing.T) {
	mutateTester(t, "reversal", mutation.NewReversal(rnd.New(1)))
	undoTester(t, "reversal", mutation.NewReversal(rnd.New(2)))
	splitTester(t, "reversal", mutation.NewReversal(rnd.New(3)))
}

func TestInsertion(t *testing.T) {
	mutateTester(t, "insertion", mutation.NewInsertion(rnd.New(1)))
	undoTester(t, "insertion", mutation.NewInsertion(rnd.New(2)))
	splitTester(t, "insertion", mutation.NewInsertion(rnd.New(3)))
}

func TestBlockMove(t *testing.T) {
	mutateTester(t, "block move", mutation.NewBlockMove(rnd.New(1)))
	undoTester(t, "block move", mutation.NewBlockMove(rnd.New(2)))
	splitTester(t, "block move", mutation.NewBlockMove(rnd.New(3)))
}

func TestBlockInterchange(t *testing.T) {
	mutateTester(t, "block interchange", mutation.NewBlockInterchange(rnd.New(1)))
	undoTester(t, "block interchange", mutation.NewBlockInterchange(rnd.New(2)))
	splitTester(t, "block interchange", mutation.NewBlockInterchange(rnd.New(3)))
}

func TestScramble(t *testing.T) {
	mutateTester(t, "scramble", mutation.NewScramble(rnd.New(1)))
	splitTester(t, "scramble", mutation.NewScramble(rnd.New(3)))
}

func TestUndoableScramble(t *testing.T) {
	mutateTester(t, "undoable scramble", mutation.NewUndoableScramble(rnd.New(1)))
	undoTester(t, "undoable scramble", mutation.NewUndoableScramble(rnd.New(2)))
	splitTester(t, "undoable scramble", mutation.NewUndoableScramble(rnd.New(3)))
}

func TestRotation(t *testing.T) {
	mutateTester(t, "rotation", mutation.NewRotation(rnd.New(1)))
	undoTester(t, "rotation", mutation.NewRotation(rnd.New(2)))
	splitTester(t, "rotation", mutation.NewRotation(rnd.New(3)))
}

// TestRotation_UniformNonIdentity checks every rotation amount 1..n-1 occurs
// and the identity rotation never does.
func TestRotation_UniformNonIdentity(t *testing.T) {
	var m = mutation.NewRotation(rnd.New(7))
	var seen = make(map[int]bool)
	var trial int
	for trial = 0; trial < 500; trial++ {
		var p = permutation.New(5)
		m.Mutate(p)
		if p.Equal(permutation.New(5)) {
			t.Fatal("identity rotation produced")
		}
		// Recover the rotation amount from where element 0 landed.
		var r int
		for r = 0; r < 5; r++ {
			if p[r] == 0 {
				break
			}
		}
		seen[(5-r)%5] = true
	}
	var r int
	for r = 1; r <= 4; r++ {
		if !seen[r] {
			t.Fatalf("rotation amount %d never produced", r)
		}
	}
}

// TestWindowConstructors_RejectNonPositive locks the construction-time window
// validation across every window-limited variant.
func TestWindowConstructors_RejectNonPositive(t *testing.T) {
	var cases = []struct {
		name string
		err  error
	}{
		{"swap", func() error { var _, err = mutation.NewWindowLimitedSwap(0, nil); return err }()},
		{"reversal", func() error { var _, err = mutation.NewWindowLimitedReversal(0, nil); return err }()},
		{"insertion", func() error { var _, err = mutation.NewWindowLimitedInsertion(-1, nil); return err }()},
		{"block move", func() error { var _, err = mutation.NewWindowLimitedBlockMove(0, nil); return err }()},
		{"scramble", func() error { var _, err = mutation.NewWindowLimitedScramble(-3, nil); return err }()},
		{"undoable scramble", func() error { var _, err = mutation.NewWindowLimitedUndoableScramble(0, nil); return err }()},
	}
	for _, c := range cases {
		if !errors.Is(c.err, mutation.ErrNonPositiveWindow) {
			t.Fatalf("%s: want ErrNonPositiveWindow, got %v", c.name, c.err)
		}
	}
}
