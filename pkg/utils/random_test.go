package utils

import (
	"math/rand"
	"testing"
)

func TestRandomNumberRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		n := RandomNumber(rng, 1, 4)
		if n < 1 || n > 4 {
			t.Fatalf("RandomNumber out of range: %d", n)
		}
		seen[n] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected all of 1..4, saw %v", seen)
	}

	if got := RandomNumber(rng, 5, 5); got != 5 {
		t.Errorf("degenerate range = %d, want 5", got)
	}
}

func TestPercent(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		if p := Percent(rng); p < 1 || p > 100 {
			t.Fatalf("Percent out of range: %d", p)
		}
	}
}
