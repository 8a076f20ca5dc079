// Package search defines the contracts shared by every optimizer in the
// module: candidate copying, cost models, the solution/cost pair, the
// thread-safe ProgressTracker, and the Metaheuristic interfaces that the
// restart and parallel layers compose.
//
// The conventions here mirror the rest of the module: explicit errors with
// sentinel values, context-aware blocking operations, and Split for handing
// independent clones to other goroutines.
package search
