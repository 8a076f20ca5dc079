// Package search - shared interfaces and sentinel errors.
package search

import (
	"context"
	"errors"
)

// ErrNonPositiveRunLength is returned by Optimize and Reoptimize when the
// requested run length is not at least 1.
var ErrNonPositiveRunLength = errors.New("search: run length must be positive")

// Copyable is a candidate type that can produce independent deep copies of
// itself.
type Copyable[T any] interface {
	Copy() T
}

// Problem defines a minimization cost model over candidates.
type Problem[T Copyable[T]] interface {
	// CostDouble evaluates a candidate. Lower is better.
	CostDouble(candidate T) float64
}

// OptimizationProblem is a Problem that knows a lower bound on its cost,
// letting a search detect when a candidate cannot be improved on.
type OptimizationProblem[T Copyable[T]] interface {
	Problem[T]

	// MinCost returns a lower bound on the cost of any candidate.
	MinCost() float64

	// IsMinCost reports whether cost matches the known optimum.
	IsMinCost(cost float64) bool
}

// IntegerCostProblem is a Problem whose costs are integer valued.
type IntegerCostProblem[T Copyable[T]] interface {
	Problem[T]

	// Cost evaluates a candidate with exact integer cost. Lower is better.
	Cost(candidate T) int
}

// Metaheuristic is a run-length-driven optimizer. Implementations report
// progress through a ProgressTracker and support splitting for parallel use.
type Metaheuristic[T Copyable[T]] interface {
	// Optimize runs the search for runLength iterations (the unit is
	// implementation defined) and returns the best solution this run found,
	// or nil if the tracker halted the search before it did any work.
	// The context cancels the run cooperatively; a canceled run returns the
	// best-so-far without error.
	Optimize(ctx context.Context, runLength int) (*SolutionCostPair[T], error)

	// ProgressTracker returns the tracker this search reports to.
	ProgressTracker() *ProgressTracker[T]

	// SetProgressTracker replaces the tracker. A nil tracker is ignored.
	SetProgressTracker(t *ProgressTracker[T])

	// TotalRunLength reports the accumulated run length across every run of
	// this instance.
	TotalRunLength() int

	// Problem returns the problem this search minimizes.
	Problem() Problem[T]

	// Split returns an identically configured search with independent
	// mutable state, safe to run on another goroutine. Whether the split
	// shares the tracker is implementation defined; callers that require
	// sharing set it explicitly.
	Split() Metaheuristic[T]
}

// ReoptimizableMetaheuristic is a Metaheuristic that can continue from its
// previous final state instead of restarting from scratch.
type ReoptimizableMetaheuristic[T Copyable[T]] interface {
	Metaheuristic[T]

	// Reoptimize behaves like Optimize but resumes from the state the
	// previous run ended in.
	Reoptimize(ctx context.Context, runLength int) (*SolutionCostPair[T], error)
}
