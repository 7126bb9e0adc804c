package problemgen

import (
	"slices"
	"testing"
)

// scriptedSource replays a fixed list of draws, reducing each modulo n.
// It repeats the last value once the script runs out.
type scriptedSource struct {
	draws []int
	i     int
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.draws) == 0 {
		return 0
	}
	v := s.draws[min(s.i, len(s.draws)-1)]
	s.i++
	return v % n
}

func (s *scriptedSource) Float64() float64 { return 0 }

func TestNewSource_Deterministic(t *testing.T) {
	a, b := NewSource(42), NewSource(42)
	for i := 0; i < 100; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d: %d != %d for the same seed", i, x, y)
		}
	}
}

func TestSource_Ranges(t *testing.T) {
	src := NewSource(7)
	for i := 0; i < 1000; i++ {
		if n := src.IntN(5); n < 0 || n >= 5 {
			t.Fatalf("IntN(5) = %d", n)
		}
		if f := src.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %f", f)
		}
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	src := NewSource(1)
	xs := []int{1, 2, 3, 4, 5, 6, 7, 8}
	for i := 0; i < 50; i++ {
		Shuffle(src, xs)
		sorted := slices.Clone(xs)
		slices.Sort(sorted)
		if !slices.Equal(sorted, []int{1, 2, 3, 4, 5, 6, 7, 8}) {
			t.Fatalf("shuffle lost elements: %v", xs)
		}
	}
}

func TestShuffle_Uniform(t *testing.T) {
	// Each of the 6 permutations of 3 elements should show up roughly
	// 1/6 of the time.
	src := NewSource(99)
	counts := map[[3]int]int{}
	const trials = 60000
	for i := 0; i < trials; i++ {
		xs := []int{1, 2, 3}
		Shuffle(src, xs)
		counts[[3]int{xs[0], xs[1], xs[2]}]++
	}
	if len(counts) != 6 {
		t.Fatalf("expected 6 permutations, got %d", len(counts))
	}
	for perm, c := range counts {
		if c < 9000 || c > 11000 {
			t.Errorf("permutation %v seen %d times, want about %d", perm, c, trials/6)
		}
	}
}

func TestSample_Distinct(t *testing.T) {
	src := NewSource(3)
	xs := []int{10, 20, 30, 40, 50}
	for i := 0; i < 100; i++ {
		got := sample(src, xs, 3)
		if len(got) != 3 {
			t.Fatalf("expected 3 values, got %d", len(got))
		}
		seen := map[int]bool{}
		for _, v := range got {
			if seen[v] {
				t.Fatalf("duplicate %d in %v", v, got)
			}
			if !slices.Contains(xs, v) {
				t.Fatalf("%d not drawn from input", v)
			}
			seen[v] = true
		}
	}
	if !slices.Equal(xs, []int{10, 20, 30, 40, 50}) {
		t.Errorf("sample modified its input: %v", xs)
	}
}

func TestSample_KLargerThanInput(t *testing.T) {
	got := sample(NewSource(1), []int{1, 2}, 5)
	if len(got) != 2 {
		t.Errorf("expected 2 values, got %v", got)
	}
}
