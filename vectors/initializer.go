package vectors

import (
	"github.com/katalvlaran/lvlsearch/rnd"
)

// Initializer generates and re-randomizes vectors with elements drawn
// uniformly from [a,b). An optional clamp box tightens the vectors it
// produces so later mutation stays inside [min,max].
type Initializer[T Numeric] struct {
	a, b     T
	bounded  bool
	min, max T
	s        *rnd.Stream
}

// NewInitializer returns an initializer drawing uniformly from [a,b).
// Requires a < b. A nil stream falls back to the default-seeded stream.
func NewInitializer[T Numeric](a, b T, s *rnd.Stream) (*Initializer[T], error) {
	if a >= b {
		return nil, ErrInvalidBounds
	}
	if s == nil {
		s = rnd.New(0)
	}
	return &Initializer[T]{a: a, b: b, s: s}, nil
}

// NewBoundedInitializer returns an initializer drawing uniformly from
// [a,b) whose vectors clamp every write into [min,max].
// Requires a < b and min <= max.
func NewBoundedInitializer[T Numeric](a, b, min, max T, s *rnd.Stream) (*Initializer[T], error) {
	if a >= b || min > max {
		return nil, ErrInvalidBounds
	}
	if s == nil {
		s = rnd.New(0)
	}
	return &Initializer[T]{a: a, b: b, bounded: true, min: min, max: max, s: s}, nil
}

// NewVector returns a freshly initialized vector of length n.
func (in *Initializer[T]) NewVector(n int) *Vector[T] {
	var v *Vector[T]
	if in.bounded {
		v, _ = NewBounded[T](n, in.min, in.max)
	} else {
		v = New[T](n)
	}
	in.Initialize(v)
	return v
}

// Initialize re-randomizes every element of v in place. Writes pass
// through v's own clamp box when v is bounded.
func (in *Initializer[T]) Initialize(v *Vector[T]) {
	var i int
	for i = 0; i < v.Length(); i++ {
		v.Set(i, in.draw())
	}
}

// Split returns an identically configured initializer with an
// independently seeded stream.
func (in *Initializer[T]) Split() *Initializer[T] {
	var c = *in
	c.s = in.s.Split()
	return &c
}

// draw samples uniformly from [a,b). Integer element types floor the
// variate, which keeps every lattice point in [a,b) equally likely.
func (in *Initializer[T]) draw() T {
	switch any(in.a).(type) {
	case float32, float64:
		return in.a + T(in.s.Float64()*float64(in.b-in.a))
	default:
		return in.a + T(in.s.Intn(int(in.b-in.a)))
	}
}
