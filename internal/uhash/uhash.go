// Package uhash implements the Carter–Wegman universal hash family
// h(x) = (a*x + b) mod p used by both levels of the FKS structure.
package uhash

import "math/rand/v2"

// Prime is the modulus shared by every hash function in the process.
// It is the Mersenne prime 2^31-1, which bounds a and every valid key
// below 2^31. The product a*x is therefore below 2^62 and always fits in
// a uint64 before the modulus is applied — the correctness-critical width
// requirement of the family (a*x can approach Prime²).
const Prime uint64 = 1<<31 - 1

// Params identifies one member of the family: h(x) = (A*x + B) mod Prime.
// The zero value is not a usable hash function; obtain Params via Draw or
// Identity.
type Params struct {
	A, B uint64
}

// Identity returns the parameters used for single-key tables, where no
// randomized search is needed: h(x) = x mod Prime.
func Identity() Params {
	return Params{A: 1, B: 0}
}

// Draw samples a fresh family member: A uniform in [1, Prime-1], B uniform
// in [0, Prime-1]. A is never zero, so the hash cannot collapse to the
// constant B.
func Draw(rng *rand.Rand) Params {
	return Params{
		A: 1 + rng.Uint64N(Prime-1),
		B: rng.Uint64N(Prime),
	}
}

// Hash computes (A*key + B) mod Prime. key must lie in [0, Prime).
func (p Params) Hash(key int64) uint64 {
	return (p.A*uint64(key) + p.B) % Prime
}

// Fold maps a full-range hash into a table of size t.
//
// The fold is modular rather than multiply-shift (FastRange): the FKS
// success-probability bound for k²-sized tables is stated for the modular
// family, and every table here is small enough that the modulo cost is
// irrelevant.
func Fold(h uint64, t int) int {
	return int(h % uint64(t))
}
