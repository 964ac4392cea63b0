package life

import (
	"slices"
	"testing"

	"github.com/gogpu/geom"
)

func TestNew_InvalidSize(t *testing.T) {
	if _, err := New(0, 5); err == nil {
		t.Error("New(0, 5) did not fail")
	}
}

func TestStep_Blinker(t *testing.T) {
	// A vertical blinker oscillates to horizontal and back.
	s, err := New(5, 5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Set(geom.Pt(2, 1), 1)
	s.Set(geom.Pt(2, 2), 1)
	s.Set(geom.Pt(2, 3), 1)

	before := slices.Clone(s.Cells())

	s.Step()
	horizontal := []geom.Point[int]{geom.Pt(1, 2), geom.Pt(2, 2), geom.Pt(3, 2)}
	alive := 0
	for _, c := range s.Cells() {
		alive += int(c)
	}
	if alive != 3 {
		t.Fatalf("after one step %d cells alive, want 3", alive)
	}
	for _, p := range horizontal {
		if s.Cells()[p.Y*5+p.X] != 1 {
			t.Errorf("cell %v dead, want alive", p)
		}
	}

	// Period 2: a second step restores the initial state.
	s.Step()
	if !slices.Equal(s.Cells(), before) {
		t.Error("blinker did not return to initial state after two steps")
	}
}

func TestStep_Underpopulation(t *testing.T) {
	s, err := New(4, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Set(geom.Pt(1, 1), 1)

	s.Step()
	for i, c := range s.Cells() {
		if c != 0 {
			t.Fatalf("lone cell survived at index %d", i)
		}
	}
}

func TestSeed_Deterministic(t *testing.T) {
	a, _ := New(16, 16)
	b, _ := New(16, 16)

	a.Seed(42)
	b.Seed(42)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Error("same seed produced different boards")
	}

	b.Seed(43)
	if slices.Equal(a.Cells(), b.Cells()) {
		t.Error("different seeds produced identical boards")
	}
}
