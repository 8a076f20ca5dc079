package vectors

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrInvalidBounds is returned when a bound pair is not ordered min <= max,
// or an initialization interval [a,b) is empty.
var ErrInvalidBounds = errors.New("vectors: invalid bounds")

// Numeric constrains vector elements to the built-in numeric types.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Vector is a fixed-length sequence of numeric values. A vector may carry
// a [min,max] bound pair; bounded vectors clamp every Set into the box.
type Vector[T Numeric] struct {
	values   []T
	bounded  bool
	min, max T
}

// New returns a zero-valued unbounded vector of length n. Requires n >= 0.
func New[T Numeric](n int) *Vector[T] {
	return &Vector[T]{values: make([]T, n)}
}

// NewBounded returns a vector of length n whose every element is clamped
// into [min,max]. Elements start at min if zero lies outside the box.
func NewBounded[T Numeric](n int, min, max T) (*Vector[T], error) {
	if min > max {
		return nil, ErrInvalidBounds
	}
	var v = &Vector[T]{values: make([]T, n), bounded: true, min: min, max: max}
	var i int
	for i = 0; i < n; i++ {
		v.values[i] = v.clamp(0)
	}
	return v, nil
}

// From copies values into a new unbounded vector.
func From[T Numeric](values []T) *Vector[T] {
	var v = &Vector[T]{values: make([]T, len(values))}
	copy(v.values, values)
	return v
}

// Length returns the number of elements.
func (v *Vector[T]) Length() int { return len(v.values) }

// Get returns the element at index i.
func (v *Vector[T]) Get(i int) T { return v.values[i] }

// Set writes value at index i, clamped into the bound box if one is set.
func (v *Vector[T]) Set(i int, value T) { v.values[i] = v.clamp(value) }

// Bounded reports whether the vector clamps writes, and into which box.
func (v *Vector[T]) Bounded() (min, max T, ok bool) {
	return v.min, v.max, v.bounded
}

// Copy returns an independent deep copy, bounds included.
func (v *Vector[T]) Copy() *Vector[T] {
	var w = &Vector[T]{
		values:  make([]T, len(v.values)),
		bounded: v.bounded,
		min:     v.min,
		max:     v.max,
	}
	copy(w.values, v.values)
	return w
}

// Equal reports whether v and w hold identical values. Bounds do not
// participate in equality.
func (v *Vector[T]) Equal(w *Vector[T]) bool {
	if w == nil || len(v.values) != len(w.values) {
		return false
	}
	var i int
	for i = range v.values {
		if v.values[i] != w.values[i] {
			return false
		}
	}
	return true
}

func (v *Vector[T]) clamp(value T) T {
	if !v.bounded {
		return value
	}
	if value < v.min {
		return v.min
	}
	if value > v.max {
		return v.max
	}
	return value
}
