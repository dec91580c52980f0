// Package quantum groups the quantum chemistry models behind the particle in
// a box and atomic orbital demos.
//
// Subpackages are pure functions over float64 values: they hold no state
// between calls and draw randomness only from the *rand.Rand they are given,
// so a seeded generator reproduces a figure exactly.
package quantum
