package fkshash

import (
	"github.com/cespare/xxhash/v2"

	"github.com/SamSunny4/fkshash/internal/secondary"
)

// seedStreamMix decorrelates the two PCG stream words derived from a single
// user seed. Golden-ratio increment, the usual SplitMix64 constant.
const seedStreamMix = 0x9e3779b97f4a7c15

type config struct {
	seed        uint64
	maxAttempts int
}

func defaultConfig() *config {
	return &config{
		seed:        0x1234567890abcdef, // Arbitrary default; override via WithSeed
		maxAttempts: secondary.DefaultMaxAttempts,
	}
}

// Option is a functional option for configuring a Table.
type Option func(*config)

// WithSeed sets the seed of the table's random source. Two tables created
// with the same seed, bucket count and insert sequence are identical slot
// for slot, which is the intended way to get reproducible tests.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithSeedString derives the seed from a label via xxHash. Convenient when
// a structure should be reproducible from a human-readable identifier
// rather than a literal seed value.
func WithSeedString(label string) Option {
	return func(c *config) {
		c.seed = xxhash.Sum64String(label)
	}
}

// WithMaxAttempts bounds the randomized parameter search per secondary
// table rebuild. Values below 1 select the default budget of 100. The
// budget is a tunable, not an algorithmic requirement: lowering it trades
// insert-failure probability for a tighter worst-case rebuild cost.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		c.maxAttempts = n
	}
}
