package utils

import "testing"

func TestLCGFixedSeedDeterministic(t *testing.T) {
	a, b := NewLCG(99), NewLCG(99)
	for i := 0; i < 50; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("sequences diverged at step %d: %d vs %d", i, x, y)
		}
	}
}

func TestLCGIntnBounds(t *testing.T) {
	rng := NewLCG(7)
	for i := 0; i < 100; i++ {
		if v := rng.Intn(5); v < 0 || v >= 5 {
			t.Fatalf("Intn(5) = %d out of range", v)
		}
	}
	if rng.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}

func TestLCGShuffleIsPermutation(t *testing.T) {
	first := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	NewLCG(3).Shuffle(len(first), func(i, j int) { first[i], first[j] = first[j], first[i] })

	seen := make(map[int]bool, len(first))
	for _, v := range first {
		if v < 0 || v > 9 || seen[v] {
			t.Fatalf("shuffle produced a non-permutation: %v", first)
		}
		seen[v] = true
	}

	// Same seed, same permutation.
	second := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	NewLCG(3).Shuffle(len(second), func(i, j int) { second[i], second[j] = second[j], second[i] })
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different permutations: %v vs %v", first, second)
		}
	}
}
