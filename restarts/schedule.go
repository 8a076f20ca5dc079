// Package restarts - restart schedules.
package restarts

import (
	"errors"
	"math"
)

// ErrNonPositiveLength is returned by schedule constructors when a run
// length or unit is not at least 1.
var ErrNonPositiveLength = errors.New("restarts: run length must be positive")

// Schedule yields the run length for each successive restart of one search
// instance. Schedules are stateful and not goroutine-safe; Split derives an
// independent schedule restarted from the beginning.
type Schedule interface {
	NextRunLength() int
	Split() Schedule
}

// Constant is a schedule with a fixed run length for every restart.
type Constant struct {
	r int
}

// NewConstant returns a constant schedule with run length r >= 1.
func NewConstant(r int) (*Constant, error) {
	if r < 1 {
		return nil, ErrNonPositiveLength
	}
	return &Constant{r: r}, nil
}

// NewConstants returns count independent constant schedules, one per
// parallel worker. Requires count >= 1 and r >= 1.
func NewConstants(count, r int) ([]Schedule, error) {
	if count < 1 || r < 1 {
		return nil, ErrNonPositiveLength
	}
	var out = make([]Schedule, count)
	var i int
	for i = 0; i < count; i++ {
		out[i] = &Constant{r: r}
	}
	return out, nil
}

// NextRunLength returns the fixed run length.
func (c *Constant) NextRunLength() int { return c.r }

// Split returns an independent schedule with the same run length.
func (c *Constant) Split() Schedule { return &Constant{r: c.r} }

// valInitialLength is the first run length of VariableAnnealingLength.
const valInitialLength = 1000

// VariableAnnealingLength doubles the run length on every restart, starting
// at 1000, so early restarts explore cheaply while later ones anneal long.
// The length saturates instead of overflowing.
type VariableAnnealingLength struct {
	next int
}

// NewVariableAnnealingLength returns a doubling schedule starting at 1000.
func NewVariableAnnealingLength() *VariableAnnealingLength {
	return &VariableAnnealingLength{next: valInitialLength}
}

// NextRunLength returns the current length and doubles for the next restart.
func (v *VariableAnnealingLength) NextRunLength() int {
	var r = v.next
	if v.next <= math.MaxInt/2 {
		v.next *= 2
	}
	return r
}

// Split returns an independent schedule restarted from the initial length.
func (v *VariableAnnealingLength) Split() Schedule {
	return NewVariableAnnealingLength()
}

// Luby scales the Luby restart sequence (1,1,2,1,1,2,4,...) by a unit run
// length. The sequence is the classic universal strategy: it revisits short
// runs often while still growing unboundedly.
type Luby struct {
	unit int
	step int
}

// NewLuby returns a Luby schedule with the given unit length, unit >= 1.
func NewLuby(unit int) (*Luby, error) {
	if unit < 1 {
		return nil, ErrNonPositiveLength
	}
	return &Luby{unit: unit, step: 1}, nil
}

// NextRunLength returns unit times the next Luby term.
func (l *Luby) NextRunLength() int {
	var r = l.unit * lubyTerm(l.step)
	l.step++
	return r
}

// Split returns an independent schedule restarted from the beginning.
func (l *Luby) Split() Schedule { return &Luby{unit: l.unit, step: 1} }

// lubyTerm computes the i-th term (1-based) of the Luby sequence: the term
// is 2^(k-1) when i == 2^k - 1, otherwise the sequence recurses on the
// remainder of the last complete block.
func lubyTerm(i int) int {
	for {
		var k = 1
		for (1<<k)-1 < i {
			k++
		}
		if (1<<k)-1 == i {
			return 1 << (k - 1)
		}
		i -= (1 << (k - 1)) - 1
	}
}
