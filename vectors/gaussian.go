package vectors

import (
	"errors"

	"github.com/katalvlaran/lvlsearch/rnd"
)

// ErrSigmaNotPositive is returned when a Gaussian mutation is configured
// with sigma <= 0.
var ErrSigmaNotPositive = errors.New("vectors: sigma must be positive")

// Operator mutates a real-valued vector in place.
type Operator interface {
	// Mutate perturbs v in place.
	Mutate(v *Vector[float64])

	// Split returns an identically configured operator with an
	// independently seeded stream, safe for a parallel worker.
	Split() Operator
}

// UndoableOperator is an Operator whose latest mutation can be reverted.
type UndoableOperator interface {
	Operator

	// Undo restores v to its state before the most recent Mutate.
	Undo(v *Vector[float64])
}

// GaussianMutation perturbs every coordinate by an independent N(0,sigma)
// variate, clamping into [min,max] when a box is configured.
type GaussianMutation struct {
	sigma    float64
	bounded  bool
	min, max float64
	s        *rnd.Stream
}

// NewGaussianMutation returns an unbounded Gaussian mutation. Requires
// sigma > 0. A nil stream falls back to the default-seeded stream.
func NewGaussianMutation(sigma float64, s *rnd.Stream) (*GaussianMutation, error) {
	if sigma <= 0 {
		return nil, ErrSigmaNotPositive
	}
	if s == nil {
		s = rnd.New(0)
	}
	return &GaussianMutation{sigma: sigma, s: s}, nil
}

// NewBoundedGaussianMutation returns a Gaussian mutation clamping every
// mutated coordinate into [min,max]. Requires sigma > 0 and min <= max.
func NewBoundedGaussianMutation(sigma, min, max float64, s *rnd.Stream) (*GaussianMutation, error) {
	if sigma <= 0 {
		return nil, ErrSigmaNotPositive
	}
	if min > max {
		return nil, ErrInvalidBounds
	}
	if s == nil {
		s = rnd.New(0)
	}
	return &GaussianMutation{sigma: sigma, bounded: true, min: min, max: max, s: s}, nil
}

// Mutate adds an independent N(0,sigma) variate to every coordinate.
func (m *GaussianMutation) Mutate(v *Vector[float64]) {
	var i int
	for i = 0; i < v.Length(); i++ {
		v.Set(i, m.clamp(v.Get(i)+m.sigma*m.s.NormFloat64()))
	}
}

// Split returns an identically configured mutation with an independently
// seeded stream.
func (m *GaussianMutation) Split() Operator {
	var c = *m
	c.s = m.s.Split()
	return &c
}

func (m *GaussianMutation) clamp(value float64) float64 {
	if !m.bounded {
		return value
	}
	if value < m.min {
		return m.min
	}
	if value > m.max {
		return m.max
	}
	return value
}

// UndoableGaussianMutation is a GaussianMutation that records the
// pre-mutation coordinates so the latest Mutate can be reverted. The
// operator keeps a single undo slot; a second Mutate overwrites it.
type UndoableGaussianMutation struct {
	GaussianMutation
	saved []float64
}

// NewUndoableGaussianMutation returns an unbounded undoable Gaussian
// mutation. Requires sigma > 0.
func NewUndoableGaussianMutation(sigma float64, s *rnd.Stream) (*UndoableGaussianMutation, error) {
	var m, err = NewGaussianMutation(sigma, s)
	if err != nil {
		return nil, err
	}
	return &UndoableGaussianMutation{GaussianMutation: *m}, nil
}

// NewUndoableBoundedGaussianMutation returns a bounded undoable Gaussian
// mutation. Requires sigma > 0 and min <= max.
func NewUndoableBoundedGaussianMutation(sigma, min, max float64, s *rnd.Stream) (*UndoableGaussianMutation, error) {
	var m, err = NewBoundedGaussianMutation(sigma, min, max, s)
	if err != nil {
		return nil, err
	}
	return &UndoableGaussianMutation{GaussianMutation: *m}, nil
}

// Mutate saves the current coordinates, then perturbs v.
func (m *UndoableGaussianMutation) Mutate(v *Vector[float64]) {
	if cap(m.saved) < v.Length() {
		m.saved = make([]float64, v.Length())
	}
	m.saved = m.saved[:v.Length()]
	var i int
	for i = 0; i < v.Length(); i++ {
		m.saved[i] = v.Get(i)
	}
	m.GaussianMutation.Mutate(v)
}

// Undo restores v to its coordinates before the most recent Mutate.
// Calling Undo before any Mutate is a no-op.
func (m *UndoableGaussianMutation) Undo(v *Vector[float64]) {
	var i int
	for i = 0; i < len(m.saved) && i < v.Length(); i++ {
		v.Set(i, m.saved[i])
	}
}

// Split returns an identically configured mutation with an independently
// seeded stream and its own undo slot.
func (m *UndoableGaussianMutation) Split() Operator {
	var c = UndoableGaussianMutation{GaussianMutation: m.GaussianMutation}
	c.s = m.s.Split()
	return &c
}
