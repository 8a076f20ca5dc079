// Package crossover_test exercises the crossover family: children stay valid
// permutations, degenerate rates behave as documented, and configuration is
// validated eagerly.
package crossover_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlsearch/crossover"
	"github.com/katalvlaran/lvlsearch/permutation"
	"github.com/katalvlaran/lvlsearch/rnd"
)

// validityTester crosses random parents of lengths 0..8 and checks both
// children remain valid permutations of unchanged length.
func validityTester(t *testing.T, name string, op crossover.Operator) {
	t.Helper()
	var s = rnd.New(301)
	var n int
	for n = 0; n <= 8; n++ {
		var trial int
		for trial = 0; trial < 25; trial++ {
			var p1 = permutation.Random(n, s)
			var p2 = permutation.Random(n, s)
			if err := op.Cross(p1, p2); err != nil {
				t.Fatalf("%s: n=%d: cross failed: %v", name, n, err)
			}
			if p1.Length() != n || p2.Length() != n {
				t.Fatalf("%s: n=%d: child length changed", name, n)
			}
			if err := p1.Validate(); err != nil {
				t.Fatalf("%s: n=%d: child 1 invalid: %v", name, n, err)
			}
			if err := p2.Validate(); err != nil {
				t.Fatalf("%s: n=%d: child 2 invalid: %v", name, n, err)
			}
		}
	}
}

func TestOX_ChildrenValid(t *testing.T)   { validityTester(t, "OX", crossover.NewOX(rnd.New(1))) }
func TestNWOX_ChildrenValid(t *testing.T) { validityTester(t, "NWOX", crossover.NewNWOX(rnd.New(2))) }
func TestUOBX_ChildrenValid(t *testing.T) { validityTester(t, "UOBX", crossover.NewUOBX(rnd.New(3))) }
func TestOX2_ChildrenValid(t *testing.T)  { validityTester(t, "OX2", crossover.NewOX2(rnd.New(4))) }

// TestIdenticalParents_FixedPoint checks that crossing a permutation with an
// identical copy reproduces it exactly for NWOX, UOBX, and OX2.
func TestIdenticalParents_FixedPoint(t *testing.T) {
	var ops = []struct {
		name string
		op   crossover.Operator
	}{
		{"NWOX", crossover.NewNWOX(rnd.New(11))},
		{"UOBX", crossover.NewUOBX(rnd.New(12))},
		{"OX2", crossover.NewOX2(rnd.New(13))},
	}
	var s = rnd.New(14)
	for _, c := range ops {
		var trial int
		for trial = 0; trial < 50; trial++ {
			var p = permutation.Random(10, s)
			var p1 = p.Copy()
			var p2 = p.Copy()
			if err := c.op.Cross(p1, p2); err != nil {
				t.Fatalf("%s: %v", c.name, err)
			}
			if !p1.Equal(p) || !p2.Equal(p) {
				t.Fatalf("%s: identical parents not a fixed point:\nparent %v\nchild1 %v\nchild2 %v", c.name, p, p1, p2)
			}
		}
	}
}

// TestCross_LengthMismatch checks the shared parent-length contract.
func TestCross_LengthMismatch(t *testing.T) {
	var ops = []struct {
		name string
		op   crossover.Operator
	}{
		{"OX", crossover.NewOX(nil)},
		{"NWOX", crossover.NewNWOX(nil)},
		{"UOBX", crossover.NewUOBX(nil)},
		{"OX2", crossover.NewOX2(nil)},
	}
	for _, c := range ops {
		var err = c.op.Cross(permutation.New(5), permutation.New(4))
		if !errors.Is(err, crossover.ErrLengthMismatch) {
			t.Fatalf("%s: want ErrLengthMismatch, got %v", c.name, err)
		}
	}
}

// TestRateValidation checks the exclusive (0,1) bounds for UOBX and OX2.
func TestRateValidation(t *testing.T) {
	var rates = []float64{0, 1, -0.25, 1.5}
	for _, u := range rates {
		if _, err := crossover.NewUOBXWithRate(u, nil); !errors.Is(err, crossover.ErrRateOutOfRange) {
			t.Fatalf("UOBX accepted rate %v: %v", u, err)
		}
		if _, err := crossover.NewOX2WithRate(u, nil); !errors.Is(err, crossover.ErrRateOutOfRange) {
			t.Fatalf("OX2 accepted rate %v: %v", u, err)
		}
	}
	if _, err := crossover.NewUOBXWithRate(0.5, nil); err != nil {
		t.Fatalf("UOBX rejected valid rate: %v", err)
	}
	if _, err := crossover.NewOX2WithRate(0.5, nil); err != nil {
		t.Fatalf("OX2 rejected valid rate: %v", err)
	}
}

// TestUOBX_RateExtremes checks the documented degenerations: a rate near 0
// swaps the parents, a rate near 1 reproduces them.
func TestUOBX_RateExtremes(t *testing.T) {
	var s = rnd.New(21)
	var swap, err = crossover.NewUOBXWithRate(1e-12, rnd.New(22))
	if err != nil {
		t.Fatal(err)
	}
	var keep, err2 = crossover.NewUOBXWithRate(1-1e-12, rnd.New(23))
	if err2 != nil {
		t.Fatal(err2)
	}
	var trial int
	for trial = 0; trial < 20; trial++ {
		var a = permutation.Random(9, s)
		var b = permutation.Random(9, s)
		var p1 = a.Copy()
		var p2 = b.Copy()
		if err = swap.Cross(p1, p2); err != nil {
			t.Fatal(err)
		}
		if !p1.Equal(b) || !p2.Equal(a) {
			t.Fatalf("near-zero rate did not swap parents")
		}
		p1, p2 = a.Copy(), b.Copy()
		if err = keep.Cross(p1, p2); err != nil {
			t.Fatal(err)
		}
		if !p1.Equal(a) || !p2.Equal(b) {
			t.Fatalf("near-one rate did not reproduce parents")
		}
	}
}

// TestOX2_RateExtremes checks the mirrored degenerations: a rate near 0
// reproduces the parents, a rate near 1 swaps them.
func TestOX2_RateExtremes(t *testing.T) {
	var s = rnd.New(31)
	var keep, err = crossover.NewOX2WithRate(1e-12, rnd.New(32))
	if err != nil {
		t.Fatal(err)
	}
	var swap, err2 = crossover.NewOX2WithRate(1-1e-12, rnd.New(33))
	if err2 != nil {
		t.Fatal(err2)
	}
	var trial int
	for trial = 0; trial < 20; trial++ {
		var a = permutation.Random(9, s)
		var b = permutation.Random(9, s)
		var p1 = a.Copy()
		var p2 = b.Copy()
		if err = keep.Cross(p1, p2); err != nil {
			t.Fatal(err)
		}
		if !p1.Equal(a) || !p2.Equal(b) {
			t.Fatalf("near-zero rate did not reproduce parents")
		}
		p1, p2 = a.Copy(), b.Copy()
		if err = swap.Cross(p1, p2); err != nil {
			t.Fatal(err)
		}
		if !p1.Equal(b) || !p2.Equal(a) {
			t.Fatalf("near-one rate did not swap parents")
		}
	}
}

// TestCross_Determinism locks identical children for identical seeds.
func TestCross_Determinism(t *testing.T) {
	var a1 = crossover.NewOX(rnd.New(55))
	var a2 = crossover.NewOX(rnd.New(55))
	var s1 = rnd.New(56)
	var s2 = rnd.New(56)
	var trial int
	for trial = 0; trial < 30; trial++ {
		var p1 = permutation.Random(10, s1)
		var p2 = permutation.Random(10, s1)
		var q1 = permutation.Random(10, s2)
		var q2 = permutation.Random(10, s2)
		if err := a1.Cross(p1, p2); err != nil {
			t.Fatal(err)
		}
		if err := a2.Cross(q1, q2); err != nil {
			t.Fatal(err)
		}
		if !p1.Equal(q1) || !p2.Equal(q2) {
			t.Fatalf("trial %d: same seed produced different children", trial)
		}
	}
}

// TestCross_Split checks split operators work independently of the original.
func TestCross_Split(t *testing.T) {
	var ops = []struct {
		name string
		op   crossover.Operator
	}{
		{"OX", crossover.NewOX(rnd.New(61))},
		{"NWOX", crossover.NewNWOX(rnd.New(62))},
		{"UOBX", crossover.NewUOBX(rnd.New(63))},
		{"OX2", crossover.NewOX2(rnd.New(64))},
	}
	var s = rnd.New(65)
	for _, c := range ops {
		var child = c.op.Split()
		if child == nil {
			t.Fatalf("%s: split returned nil", c.name)
		}
		var p1 = permutation.Random(8, s)
		var p2 = permutation.Random(8, s)
		if err := child.Cross(p1, p2); err != nil {
			t.Fatalf("%s: split cross failed: %v", c.name, err)
		}
		if err := p1.Validate(); err != nil {
			t.Fatalf("%s: split child invalid: %v", c.name, err)
		}
		if err := c.op.Cross(p1, p2); err != nil {
			t.Fatalf("%s: original cross failed after split: %v", c.name, err)
		}
	}
}
