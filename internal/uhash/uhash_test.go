package uhash

import (
	"encoding/binary"
	"hash/fnv"
	"math/big"
	"math/rand/v2"
	"testing"
)

const (
	testSeed1 = 0x9E3779B97F4A7C15
	testSeed2 = 0xBF58476D1CE4E5B9
)

// newTestRNG returns a deterministic RNG derived from the test name.
func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

func TestDrawRange(t *testing.T) {
	rng := newTestRNG(t)
	for range 10000 {
		p := Draw(rng)
		if p.A < 1 || p.A > Prime-1 {
			t.Fatalf("A = %d outside [1, %d]", p.A, Prime-1)
		}
		if p.B > Prime-1 {
			t.Fatalf("B = %d outside [0, %d]", p.B, Prime-1)
		}
	}
}

// TestHashMatchesBigInt checks the modular arithmetic against math/big at
// the extremes of the domain, where a*x approaches Prime² and a narrower
// intermediate width would overflow.
func TestHashMatchesBigInt(t *testing.T) {
	rng := newTestRNG(t)

	check := func(p Params, key int64) {
		t.Helper()
		got := p.Hash(key)
		want := new(big.Int).Mul(big.NewInt(int64(p.A)), big.NewInt(key))
		want.Add(want, new(big.Int).SetUint64(p.B))
		want.Mod(want, new(big.Int).SetUint64(Prime))
		if got != want.Uint64() {
			t.Errorf("Hash(a=%d, b=%d, x=%d) = %d, want %d", p.A, p.B, key, got, want.Uint64())
		}
	}

	maxKey := int64(Prime) - 1
	extremes := []Params{
		{A: Prime - 1, B: Prime - 1},
		{A: Prime - 1, B: 0},
		{A: 1, B: 0},
	}
	for _, p := range extremes {
		check(p, 0)
		check(p, 1)
		check(p, maxKey)
	}
	for range 1000 {
		check(Draw(rng), int64(rng.Uint64N(Prime)))
	}
}

func TestIdentity(t *testing.T) {
	id := Identity()
	for _, key := range []int64{0, 1, 42, int64(Prime) - 1} {
		if got := id.Hash(key); got != uint64(key) {
			t.Errorf("Identity().Hash(%d) = %d, want %d", key, got, key)
		}
	}
}

func TestFoldRange(t *testing.T) {
	rng := newTestRNG(t)
	for _, size := range []int{1, 2, 9, 25, 1024} {
		for range 1000 {
			h := rng.Uint64N(Prime)
			slot := Fold(h, size)
			if slot < 0 || slot >= size {
				t.Fatalf("Fold(%d, %d) = %d outside [0, %d)", h, size, slot, size)
			}
		}
	}
}

// TestFoldDistribution sanity-checks that folded hashes of random draws do
// not pile up in one slot. This is a smoke test of uniformity, not a
// statistical proof: with 256 slots and 100K samples each slot expects
// ~390 hits, and a 3x band catches gross bias.
func TestFoldDistribution(t *testing.T) {
	rng := newTestRNG(t)
	const (
		size    = 256
		samples = 100_000
	)
	p := Draw(rng)
	counts := make([]int, size)
	for range samples {
		counts[Fold(p.Hash(int64(rng.Uint64N(Prime))), size)]++
	}
	expected := samples / size
	for slot, c := range counts {
		if c > 3*expected {
			t.Errorf("slot %d got %d hits, expected ~%d", slot, c, expected)
		}
	}
}
