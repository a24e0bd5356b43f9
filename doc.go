// Package fkshash implements the FKS two-level perfect hash structure for
// integer keys, with incremental insert and worst-case O(1) lookup.
//
// The first level routes a key to one of a fixed number of buckets with a
// universal hash function drawn once at construction. Each bucket owns a
// private secondary table with k² slots for k keys, built with a hash
// function found by randomized search to be collision-free on exactly that
// bucket's keys. Lookup is therefore two hash evaluations and one
// comparison, with no probing or chaining.
//
// Inserting a key rebuilds the affected bucket's secondary table from
// scratch — perfect hashing has no incremental update, only full
// re-derivation. That is the scheme's trade-off: cheap guaranteed lookups
// against an expected-O(k) insert with a small retry probability.
//
// # Basic Usage
//
//	table, err := fkshash.New(1024, fkshash.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, key := range keys {
//	    if err := table.Insert(key); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	if table.Contains(keys[0]) {
//	    fmt.Println("found")
//	}
//
// Keys must lie in [0, KeyUniverse). Arbitrary byte or string keys can be
// mapped into the universe with PreHash / PreHashString.
//
// A Table is not safe for concurrent mutation. Concurrent Contains calls
// are safe as long as no Insert is in flight; callers who need a mixed
// workload must serialize inserts against all other access.
//
// # Package Structure
//
//   - Public API: table.go (New, Insert, Contains, Stats, Dump)
//   - Configuration: options.go (Option, With* functions)
//   - Key adaptation: prehash.go (PreHash, PreHashString)
//   - Hash family: internal/uhash ((a*x + b) mod p, random draw, fold)
//   - Construction: internal/secondary (collision-free table search)
package fkshash
