// Package permutation implements the candidate representation shared by all
// permutation operators: a sequence containing each integer 0..n-1 exactly
// once, plus the structural primitives (swap, reverse, remove-and-insert,
// block moves, rotation, scramble) that mutation and crossover are built from.
//
// All primitives mutate the receiver in place and preserve the permutation
// property. Operators that need randomness take a *rnd.Stream explicitly;
// nothing in this package owns a hidden random source.
package permutation
