package random

import "testing"

func TestUniformStaysInRange(t *testing.T) {
	r := New(42)

	tests := []struct {
		min, max int
	}{
		{0, 0},
		{0, 4},
		{-3, 3},
		{10, 29},
	}

	for _, tc := range tests {
		for i := 0; i < 1000; i++ {
			v := r.Uniform(tc.min, tc.max)
			if v < tc.min || v > tc.max {
				t.Fatalf("Uniform(%d, %d) = %d, out of range", tc.min, tc.max, v)
			}
		}
	}
}

func TestUniformCoversEveryValue(t *testing.T) {
	r := New(7)
	seen := make(map[int]int)

	for i := 0; i < 6000; i++ {
		seen[r.Uniform(1, 6)]++
	}

	for v := 1; v <= 6; v++ {
		// Expect ~1000 each; a generous band keeps the test stable.
		if seen[v] < 800 || seen[v] > 1200 {
			t.Errorf("value %d drawn %d times out of 6000", v, seen[v])
		}
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a := New(12345)
	b := New(12345)

	for i := 0; i < 100; i++ {
		if x, y := a.Uniform(0, 599), b.Uniform(0, 599); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestSeedIsRemembered(t *testing.T) {
	if New(99).Seed() != 99 {
		t.Error("Seed() should return the construction seed")
	}
}

func TestUniformPanicsOnEmptyRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Uniform(5, 4) should panic")
		}
	}()
	New(1).Uniform(5, 4)
}

func TestTimeSeed(t *testing.T) {
	if seed := TimeSeed(); seed == 0 {
		t.Error("TimeSeed returned 0")
	}
}
