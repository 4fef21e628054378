package world

import "testing"

func TestReveal_ChebyshevSquare(t *testing.T) {
	v := NewVisibilityTracker()
	v.Reveal(Coord{X: 5, Y: 5}, 2, 20, 20)
	if v.Len() != 25 {
		t.Errorf("Len() = %d, want 25 (5x5 square)", v.Len())
	}
	// Corners of the square are inside: Chebyshev, not Euclidean or Manhattan
	for _, c := range []Coord{{3, 3}, {7, 7}, {3, 7}, {7, 3}} {
		if !v.IsDiscovered(c) {
			t.Errorf("IsDiscovered(%v) = false, want true", c)
		}
	}
	if v.IsDiscovered(Coord{X: 8, Y: 5}) {
		t.Error("IsDiscovered((8,5)) = true, want false (outside radius)")
	}
}

func TestReveal_ClipsToBounds(t *testing.T) {
	v := NewVisibilityTracker()
	v.Reveal(Coord{X: 0, Y: 0}, 1, 10, 10)
	if v.Len() != 4 {
		t.Errorf("Len() = %d, want 4 at the corner", v.Len())
	}
	if v.IsDiscovered(Coord{X: -1, Y: 0}) {
		t.Error("out-of-bounds cell was discovered")
	}
}

func TestReveal_IdempotentAndMonotonic(t *testing.T) {
	v := NewVisibilityTracker()
	path := []Coord{{1, 1}, {1, 1}, {2, 1}, {3, 1}, {3, 2}, {1, 1}}
	prev := 0
	for i, c := range path {
		v.Reveal(c, 1, 6, 6)
		if v.Len() < prev {
			t.Fatalf("step %d: Len() shrank from %d to %d", i, prev, v.Len())
		}
		prev = v.Len()
	}
	before := v.Len()
	v.Reveal(Coord{X: 1, Y: 1}, 1, 6, 6)
	if v.Len() != before {
		t.Errorf("re-reveal changed Len() from %d to %d", before, v.Len())
	}
}

func TestVisibilityReset(t *testing.T) {
	v := NewVisibilityTracker()
	v.Reveal(Coord{X: 2, Y: 2}, 2, 5, 5)
	v.Reset()
	if v.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", v.Len())
	}
}
