// Package secondary builds the per-bucket collision-free tables of the FKS
// structure.
//
// For a bucket holding k keys the table has k² slots. Squaring the size is
// what makes the randomized search cheap: by the universal-hashing
// collision bound, a freshly drawn hash function is injective on the
// bucket with probability above 1/2, so the expected number of draws is
// below 2. The search is still bounded — after maxAttempts draws without
// success Build reports ErrRetryLimit rather than looping on bad luck.
package secondary

import (
	"math/rand/v2"

	fkserrors "github.com/SamSunny4/fkshash/errors"
	"github.com/SamSunny4/fkshash/internal/uhash"
)

// DefaultMaxAttempts bounds the randomized parameter search per rebuild.
//
// With per-attempt success probability > 1/2, the chance of exhausting 100
// attempts on a well-formed bucket is below 2^-100. Exhaustion in practice
// means the attempt budget was lowered aggressively or the key set is
// degenerate.
const DefaultMaxAttempts = 100

// Slot is one cell of a secondary table. Occupancy is tracked explicitly
// rather than with an in-band sentinel key, so every value in the key
// universe is storable.
type Slot struct {
	Key      int64
	Occupied bool
}

// Table is a bucket's secondary table: a fixed slot array plus the hash
// parameters that are injective on the bucket's key set. Tables are
// disposable — each rebuild produces a fresh one. The zero value is the
// empty table.
type Table struct {
	Slots  []Slot
	Params uhash.Params
}

// Size returns the number of slots.
func (t *Table) Size() int { return len(t.Slots) }

// Lookup reports whether key is present: one hash, one comparison.
// Lookup against the empty table is always false.
func (t *Table) Lookup(key int64) bool {
	if len(t.Slots) == 0 {
		return false
	}
	s := t.Slots[uhash.Fold(t.Params.Hash(key), len(t.Slots))]
	return s.Occupied && s.Key == key
}

// Solver performs collision-free table construction. The scratch buffers
// are reused across rebuilds so the per-attempt collision check allocates
// nothing.
type Solver struct {
	maxAttempts int

	folded []int    // folded slot of each key for the current attempt
	seen   []uint32 // seen[slot] == gen marks the slot taken this attempt
	gen    uint32

	attempts uint64 // total parameter draws across all builds
}

// NewSolver returns a solver with the given attempt budget per build.
// Budgets below 1 select DefaultMaxAttempts.
func NewSolver(maxAttempts int) *Solver {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Solver{maxAttempts: maxAttempts}
}

// MaxAttempts returns the per-build attempt budget.
func (s *Solver) MaxAttempts() int { return s.maxAttempts }

// Attempts returns the total number of parameter draws performed so far.
func (s *Solver) Attempts() uint64 { return s.attempts }

// Build derives a fresh collision-free table for keys, drawing randomness
// from rng. Empty and single-key buckets never consume randomness: k=0
// yields the empty table and k=1 a one-slot table with identity-like
// parameters. For k ≥ 2 Build performs up to MaxAttempts draws and returns
// ErrRetryLimit if none of them is injective on keys.
func (s *Solver) Build(keys []int64, rng *rand.Rand) (Table, error) {
	if len(keys) == 0 {
		return Table{}, nil
	}
	if len(keys) == 1 {
		return Table{
			Slots:  []Slot{{Key: keys[0], Occupied: true}},
			Params: uhash.Identity(),
		}, nil
	}

	size := len(keys) * len(keys)
	s.reset(len(keys), size)

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		params := uhash.Draw(rng)
		s.attempts++
		if !s.collisionFree(keys, params, size) {
			continue
		}
		slots := make([]Slot, size)
		for i, key := range keys {
			slots[s.folded[i]] = Slot{Key: key, Occupied: true}
		}
		return Table{Slots: slots, Params: params}, nil
	}
	return Table{}, fkserrors.ErrRetryLimit
}

// reset sizes the scratch buffers for a k-key, size-slot build.
func (s *Solver) reset(k, size int) {
	if cap(s.folded) < k {
		s.folded = make([]int, k)
	}
	s.folded = s.folded[:k]
	if len(s.seen) < size {
		s.seen = make([]uint32, size)
		s.gen = 0
	}
}

// collisionFree folds every key through params into [0, size) and reports
// whether all folded values are pairwise distinct, early-exiting on the
// first duplicate. Generation marking keeps the check O(k) with no
// clearing between attempts; on the rare uint32 wrap-around the marker
// array is cleared to restore the invariant.
func (s *Solver) collisionFree(keys []int64, params uhash.Params, size int) bool {
	s.gen++
	if s.gen == 0 {
		clear(s.seen)
		s.gen = 1
	}
	for i, key := range keys {
		slot := uhash.Fold(params.Hash(key), size)
		if s.seen[slot] == s.gen {
			return false
		}
		s.seen[slot] = s.gen
		s.folded[i] = slot
	}
	return true
}
