package fkshash

import (
	"fmt"
	"math/rand/v2"

	fkserrors "github.com/SamSunny4/fkshash/errors"
	"github.com/SamSunny4/fkshash/internal/secondary"
	"github.com/SamSunny4/fkshash/internal/uhash"
)

// KeyUniverse is the exclusive upper bound of the key domain. Keys must lie
// in [0, KeyUniverse); Insert rejects anything else with ErrInvalidKey
// before hashing. The bound equals the hash prime so that a*key stays
// representable in 64 bits inside the hash computation.
const KeyUniverse = int64(uhash.Prime)

// Table is a two-level FKS perfect hash structure.
//
// The bucket count and the primary hash parameters are fixed at
// construction. Buckets only grow — there is no delete — and each bucket's
// secondary table is rebuilt in full on every insert that touches it.
//
// Table is not safe for concurrent mutation; see the package documentation.
type Table struct {
	buckets [][]int64
	tables  []secondary.Table
	params  uhash.Params
	rng     *rand.Rand
	solver  *secondary.Solver

	total    int
	rebuilds uint64
}

// New creates a Table with numBuckets primary buckets, all empty. The
// primary hash parameters are drawn once from the table's random source
// and never change; supply WithSeed for a reproducible structure.
func New(numBuckets int, opts ...Option) (*Table, error) {
	if numBuckets < 1 {
		return nil, fkserrors.ErrInvalidBucketCount
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed^seedStreamMix))
	return &Table{
		buckets: make([][]int64, numBuckets),
		tables:  make([]secondary.Table, numBuckets),
		params:  uhash.Draw(rng),
		rng:     rng,
		solver:  secondary.NewSolver(cfg.maxAttempts),
	}, nil
}

// bucketIndex routes a key to its primary bucket. Insert and Contains must
// agree on this computation exactly.
func (t *Table) bucketIndex(key int64) int {
	return uhash.Fold(t.params.Hash(key), len(t.buckets))
}

// Insert adds key to the structure and rebuilds the affected bucket's
// secondary table from scratch.
//
// Keys outside [0, KeyUniverse) are rejected with ErrInvalidKey and keys
// already present with ErrDuplicateKey; a duplicate would collide with
// itself under every hash function and burn the entire attempt budget.
//
// If the rebuild exhausts its attempt budget, Insert returns ErrRetryLimit
// and rolls the key back out of the bucket, leaving the bucket and its
// previous secondary table mutually consistent: earlier keys remain
// findable and the caller may retry, typically against a larger table.
func (t *Table) Insert(key int64) error {
	if key < 0 || key >= KeyUniverse {
		return fmt.Errorf("%w: %d not in [0, %d)", fkserrors.ErrInvalidKey, key, KeyUniverse)
	}
	if t.Contains(key) {
		return fmt.Errorf("%w: %d", fkserrors.ErrDuplicateKey, key)
	}

	idx := t.bucketIndex(key)
	t.buckets[idx] = append(t.buckets[idx], key)
	t.rebuilds++

	tbl, err := t.solver.Build(t.buckets[idx], t.rng)
	if err != nil {
		t.buckets[idx] = t.buckets[idx][:len(t.buckets[idx])-1]
		return fmt.Errorf("bucket %d: %w", idx, err)
	}

	t.tables[idx] = tbl
	t.total++
	return nil
}

// Contains reports whether key has been inserted. It never mutates the
// structure: one primary hash to pick the bucket, then at most one
// secondary hash and one comparison. Keys outside the universe are never
// present. A non-matching stored key at the probed slot is the normal
// outcome for a key that was never inserted, not an error.
func (t *Table) Contains(key int64) bool {
	if key < 0 || key >= KeyUniverse {
		return false
	}
	return t.tables[t.bucketIndex(key)].Lookup(key)
}

// Len returns the number of keys in the structure.
func (t *Table) Len() int { return t.total }

// Stats summarizes the structure's occupancy and construction effort.
type Stats struct {
	TotalKeys     int
	BucketCount   int
	AvgBucketSize float64
	MaxBucketSize int
	LoadFactor    float64 // TotalKeys / BucketCount

	Rebuilds uint64
	Attempts uint64
}

// Stats returns a read-only summary of the structure. LoadFactor is exactly
// TotalKeys / BucketCount. Rebuilds counts secondary-table rebuilds
// (including failed ones) and Attempts the hash parameter draws they
// performed in total.
func (t *Table) Stats() Stats {
	maxSize := 0
	for _, b := range t.buckets {
		if len(b) > maxSize {
			maxSize = len(b)
		}
	}
	return Stats{
		TotalKeys:     t.total,
		BucketCount:   len(t.buckets),
		AvgBucketSize: float64(t.total) / float64(len(t.buckets)),
		MaxBucketSize: maxSize,
		LoadFactor:    float64(t.total) / float64(len(t.buckets)),
		Rebuilds:      t.rebuilds,
		Attempts:      t.solver.Attempts(),
	}
}

// Slot is one secondary-table cell in a Dump. Occupancy is explicit; there
// is no reserved key value.
type Slot struct {
	Key      int64
	Occupied bool
}

// BucketInfo is a read-only projection of one primary bucket: its keys in
// insertion order and its secondary table's size, hash parameters and
// contents.
type BucketInfo struct {
	Index     int
	Keys      []int64
	TableSize int
	A, B, P   uint64
	Slots     []Slot
}

// Dump returns a per-bucket listing of keys and secondary-table contents.
// The returned slices are copies; mutating them does not affect the Table.
func (t *Table) Dump() []BucketInfo {
	infos := make([]BucketInfo, len(t.buckets))
	for i := range t.buckets {
		sec := &t.tables[i]
		info := BucketInfo{
			Index:     i,
			Keys:      append([]int64(nil), t.buckets[i]...),
			TableSize: sec.Size(),
			A:         sec.Params.A,
			B:         sec.Params.B,
			P:         uhash.Prime,
			Slots:     make([]Slot, sec.Size()),
		}
		for j, s := range sec.Slots {
			info.Slots[j] = Slot{Key: s.Key, Occupied: s.Occupied}
		}
		infos[i] = info
	}
	return infos
}
