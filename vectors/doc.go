// Package vectors - fixed-length real and integer vectors with bounded
// initialization and Gaussian mutation.
//
// The package mirrors the permutation tooling for the continuous and
// integer-lattice side of the library: a Vector[T] candidate type, a
// uniform-range Initializer, and Gaussian mutation over float64 vectors
// with an undoable variant.
//
// Goals:
//   - Safety: constructors validate bound ordering and sigma eagerly;
//     bounded vectors clamp every write, so a candidate can never leave
//     its feasible box.
//   - Determinism: all randomized components draw from an explicit
//     *rnd.Stream and Split into independently seeded clones.
//   - Performance: mutation and initialization are O(n) per call with a
//     single reusable undo buffer.
package vectors
