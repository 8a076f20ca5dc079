// Package restarts implements restart schedules and the sequential
// multistart wrappers that re-run a metaheuristic according to one.
//
// A Schedule yields the run length for each successive restart: Constant
// repeats a fixed length, VariableAnnealingLength doubles from 1000, and
// Luby follows the Luby sequence scaled by a unit length.
//
// Multistarter and ReoptimizableMultistarter wrap a single search and drive
// it through a schedule, keeping the best result across restarts and
// stopping early when the shared tracker halts or records a known optimum.
// Both satisfy the search interfaces, so they compose: a multistarter can
// itself be restarted, split, or run in parallel.
package restarts
