// Package search - the solution/cost pair.
package search

import "reflect"

// SolutionCostPair couples a solution with the cost it was evaluated at,
// tagged with whether the cost is integer valued and whether it is known to
// be the problem's optimum.
//
// Ordering and equality serve different purposes and are intentionally not
// consistent with each other: Compare orders by cost alone, Equal also
// requires matching cost type, optimality flag, and solution.
type SolutionCostPair[T Copyable[T]] struct {
	solution     T
	cost         int
	costD        float64
	intCost      bool
	knownOptimal bool
}

// NewIntCost returns a pair with an exact integer cost.
func NewIntCost[T Copyable[T]](solution T, cost int, knownOptimal bool) *SolutionCostPair[T] {
	return &SolutionCostPair[T]{
		solution:     solution,
		cost:         cost,
		costD:        float64(cost),
		intCost:      true,
		knownOptimal: knownOptimal,
	}
}

// NewFloatCost returns a pair with a real-valued cost. Cost() truncates for
// such pairs; use CostDouble.
func NewFloatCost[T Copyable[T]](solution T, cost float64, knownOptimal bool) *SolutionCostPair[T] {
	return &SolutionCostPair[T]{
		solution:     solution,
		cost:         int(cost),
		costD:        cost,
		knownOptimal: knownOptimal,
	}
}

// Solution returns the stored solution.
func (p *SolutionCostPair[T]) Solution() T { return p.solution }

// Cost returns the integer cost. Defined only for integer-cost pairs; for
// real-valued pairs it is the truncated CostDouble.
func (p *SolutionCostPair[T]) Cost() int { return p.cost }

// CostDouble returns the cost as a float64.
func (p *SolutionCostPair[T]) CostDouble() float64 { return p.costD }

// ContainsIntCost reports whether the cost is integer valued.
func (p *SolutionCostPair[T]) ContainsIntCost() bool { return p.intCost }

// ContainsKnownOptimal reports whether the cost is a known optimum.
func (p *SolutionCostPair[T]) ContainsKnownOptimal() bool { return p.knownOptimal }

// Compare orders pairs by cost: negative when p costs less than o, zero when
// equal, positive otherwise. When both pairs carry integer costs the result
// is the exact signed cost difference; otherwise it is the sign of the
// float64 comparison.
func (p *SolutionCostPair[T]) Compare(o *SolutionCostPair[T]) int {
	if p.intCost && o.intCost {
		return p.cost - o.cost
	}
	if p.costD < o.costD {
		return -1
	}
	if p.costD > o.costD {
		return 1
	}
	return 0
}

// Equal reports whether p and o agree on cost, cost type, the known-optimal
// flag, and the solution itself.
func (p *SolutionCostPair[T]) Equal(o *SolutionCostPair[T]) bool {
	if o == nil {
		return false
	}
	if p.intCost != o.intCost || p.knownOptimal != o.knownOptimal {
		return false
	}
	if p.intCost {
		if p.cost != o.cost {
			return false
		}
	} else if p.costD != o.costD {
		return false
	}
	return solutionsEqual(p.solution, o.solution)
}

// solutionsEqual prefers a candidate's own Equal method and falls back to
// deep equality for types without one.
func solutionsEqual[T any](a, b T) bool {
	if e, ok := any(a).(interface{ Equal(T) bool }); ok {
		return e.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
