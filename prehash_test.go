package fkshash

import (
	"fmt"
	"testing"
)

func TestPreHashRange(t *testing.T) {
	rng := newTestRNG(t)
	buf := make([]byte, 24)
	for range 10000 {
		for i := range buf {
			buf[i] = byte(rng.Uint64())
		}
		key := PreHash(buf)
		if key < 0 || key >= KeyUniverse {
			t.Fatalf("PreHash produced %d outside [0, %d)", key, KeyUniverse)
		}
	}
}

func TestPreHashDeterministic(t *testing.T) {
	if PreHash([]byte("hello")) != PreHash([]byte("hello")) {
		t.Error("PreHash is not deterministic")
	}
	if PreHash([]byte("hello")) != PreHashString("hello") {
		t.Error("PreHash and PreHashString disagree on identical input")
	}
	if PreHashString("hello") == PreHashString("world") {
		t.Error("distinct short strings collided; hash is suspect")
	}
}

// TestPreHashedStringKeys runs the full structure over prehashed strings.
func TestPreHashedStringKeys(t *testing.T) {
	table, err := New(16, WithSeedString(t.Name()))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	members := make([]string, 200)
	for i := range members {
		members[i] = fmt.Sprintf("user-%04d", i)
	}
	for _, s := range members {
		if err := table.Insert(PreHashString(s)); err != nil {
			t.Fatalf("Insert(PreHashString(%q)) error: %v", s, err)
		}
	}

	for _, s := range members {
		if !table.Contains(PreHashString(s)) {
			t.Errorf("Contains(PreHashString(%q)) = false", s)
		}
	}
	for i := 0; i < 200; i++ {
		s := fmt.Sprintf("guest-%04d", i)
		if table.Contains(PreHashString(s)) {
			t.Errorf("Contains(PreHashString(%q)) = true for absent key", s)
		}
	}
}
