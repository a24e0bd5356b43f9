// Bench is a benchmarking tool for measuring fkshash insert and lookup
// throughput and construction effort.
//
// Usage:
//
//	go run ./cmd/bench -keys 100000 -buckets 4096
//
// Flags:
//
//	-keys     Number of keys to insert (default: 100,000)
//	-buckets  Primary bucket count (default: keys/8)
//	-seed     Table seed (default: 1)
//	-probes   Number of negative lookups to time (default: keys)
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/spaolacci/murmur3"

	"github.com/SamSunny4/fkshash"
)

// generateKeys produces n distinct keys in the key universe by hashing a
// counter with murmur3 and skipping the occasional clash after reduction.
func generateKeys(n int, seed uint32) []int64 {
	keys := make([]int64, 0, n)
	set := make(map[int64]struct{}, n)
	var buf [8]byte
	for i := uint64(0); len(keys) < n; i++ {
		binary.LittleEndian.PutUint64(buf[:], i)
		h, _ := murmur3.Sum128WithSeed(buf[:], seed)
		key := int64(h % uint64(fkshash.KeyUniverse))
		if _, dup := set[key]; dup {
			continue
		}
		set[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}

func main() {
	keysFlag := flag.Int("keys", 100_000, "number of keys")
	bucketsFlag := flag.Int("buckets", 0, "primary bucket count (0 = keys/8)")
	seedFlag := flag.Uint64("seed", 1, "table seed")
	probesFlag := flag.Int("probes", 0, "negative lookups to time (0 = same as -keys)")
	flag.Parse()

	numKeys := *keysFlag
	numBuckets := *bucketsFlag
	if numBuckets <= 0 {
		numBuckets = max(numKeys/8, 1)
	}
	numProbes := *probesFlag
	if numProbes <= 0 {
		numProbes = numKeys
	}

	fmt.Println("Generating keys...")
	keys := generateKeys(numKeys, 0x1234)
	probes := generateKeys(numProbes, 0xfeed)

	table, err := fkshash.New(numBuckets, fkshash.WithSeed(*seedFlag))
	if err != nil {
		fmt.Printf("New failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Inserting...")
	insertStart := time.Now()
	for _, key := range keys {
		if err := table.Insert(key); err != nil {
			fmt.Printf("Insert(%d) failed: %v\n", key, err)
			os.Exit(1)
		}
	}
	insertDuration := time.Since(insertStart)

	fmt.Println("Looking up members...")
	hitStart := time.Now()
	hits := 0
	for _, key := range keys {
		if table.Contains(key) {
			hits++
		}
	}
	hitDuration := time.Since(hitStart)
	if hits != numKeys {
		fmt.Printf("BUG: only %d/%d inserted keys found\n", hits, numKeys)
		os.Exit(1)
	}

	fmt.Println("Looking up non-members...")
	missStart := time.Now()
	misses := 0
	for _, key := range probes {
		if !table.Contains(key) {
			misses++
		}
	}
	missDuration := time.Since(missStart)

	stats := table.Stats()
	fmt.Printf("\nKeys:            %d\n", stats.TotalKeys)
	fmt.Printf("Buckets:         %d\n", stats.BucketCount)
	fmt.Printf("Load factor:     %.2f\n", stats.LoadFactor)
	fmt.Printf("Max bucket:      %d\n", stats.MaxBucketSize)
	fmt.Printf("Rebuilds:        %d\n", stats.Rebuilds)
	fmt.Printf("Draws/rebuild:   %.2f\n", float64(stats.Attempts)/float64(stats.Rebuilds))
	fmt.Printf("Insert:          %v total, %.0f keys/s\n",
		insertDuration, float64(numKeys)/insertDuration.Seconds())
	fmt.Printf("Lookup (hit):    %v total, %.0f keys/s\n",
		hitDuration, float64(numKeys)/hitDuration.Seconds())
	fmt.Printf("Lookup (miss):   %v total, %.0f keys/s (%d/%d absent)\n",
		missDuration, float64(numProbes)/missDuration.Seconds(), misses, numProbes)
}
