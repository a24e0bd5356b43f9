package fkshash

import (
	"github.com/zeebo/xxh3"

	"github.com/SamSunny4/fkshash/internal/uhash"
)

// PreHash maps an arbitrary byte key into the integer key universe by
// applying xxHash3 and reducing into [0, KeyUniverse).
//
// Use this when your keys are not integers, or are integers outside the
// universe. Unlike the structure's own hashing, PreHash is a fixed
// function, so distinct inputs can map to the same integer key (a second
// insert of such a clash reports ErrDuplicateKey). With a ~2³¹ universe
// the birthday bound makes clashes likely beyond roughly 2¹⁶ keys; callers
// indexing more than that should partition across several tables.
//
// Querying must prehash with the same function used at insert:
//
//	table.Insert(fkshash.PreHash(key))
//	...
//	table.Contains(fkshash.PreHash(key))
func PreHash(key []byte) int64 {
	return int64(xxh3.Hash(key) % uhash.Prime)
}

// PreHashString is PreHash for strings, avoiding a []byte conversion.
func PreHashString(key string) int64 {
	return int64(xxh3.HashString(key) % uhash.Prime)
}
