package geom

import "testing"

func TestSize_Ops(t *testing.T) {
	s := Sz(4, 6)

	if got := s.Area(); got != 24 {
		t.Errorf("Area() = %v, want 24", got)
	}
	if got := s.Add(Sz(1, 2)); got != Sz(5, 8) {
		t.Errorf("Add = %v, want (5, 8)", got)
	}
	if got := s.Sub(Sz(1, 2)); got != Sz(3, 4) {
		t.Errorf("Sub = %v, want (3, 4)", got)
	}
	if got := s.Min(Sz(5, 2)); got != Sz(4, 2) {
		t.Errorf("Min = %v, want (4, 2)", got)
	}
	if got := s.Max(Sz(5, 2)); got != Sz(5, 6) {
		t.Errorf("Max = %v, want (5, 6)", got)
	}
	if got := Square(3); got != Sz(3, 3) {
		t.Errorf("Square(3) = %v, want (3, 3)", got)
	}

	w, h := s.WH()
	if w != 4 || h != 6 {
		t.Errorf("WH() = (%v, %v), want (4, 6)", w, h)
	}
}

func TestSize_Empty(t *testing.T) {
	tests := []struct {
		name  string
		size  Size[int]
		empty bool
	}{
		{"positive", Sz(1, 1), false},
		{"zero width", Sz(0, 5), true},
		{"zero height", Sz(5, 0), true},
		{"negative", Sz(-1, 5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.size.Empty(); got != tt.empty {
				t.Errorf("%v.Empty() = %v, want %v", tt.size, got, tt.empty)
			}
		})
	}
}

func TestBounds_Edges(t *testing.T) {
	b := Rect(2, 3, 10, 20)

	if b.Left() != 2 || b.Top() != 3 || b.Right() != 12 || b.Bottom() != 23 {
		t.Errorf("edges = (%v, %v, %v, %v), want (2, 3, 12, 23)",
			b.Left(), b.Top(), b.Right(), b.Bottom())
	}
	if b.Width() != 10 || b.Height() != 20 {
		t.Errorf("size = %vx%v, want 10x20", b.Width(), b.Height())
	}
	if b.Area() != 200 {
		t.Errorf("Area() = %v, want 200", b.Area())
	}

	x, y, w, h := b.XYWH()
	if x != 2 || y != 3 || w != 10 || h != 20 {
		t.Errorf("XYWH() = (%v, %v, %v, %v), want (2, 3, 10, 20)", x, y, w, h)
	}
}

func TestBounds_Contains(t *testing.T) {
	b := Rect(1, 1, 3, 3)

	tests := []struct {
		name string
		p    Point[int]
		want bool
	}{
		{"inside", Pt(2, 2), true},
		{"top-left corner", Pt(1, 1), true},
		{"right edge", Pt(4, 2), false},
		{"bottom edge", Pt(2, 4), false},
		{"outside", Pt(0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBounds_Transformations(t *testing.T) {
	b := Rect(0, 40, 5, 5)

	moved := b.Translate(Off(3, 5))
	if moved != Rect(3, 45, 5, 5) {
		t.Errorf("Translate = %v, want (3, 45, 5, 5)", moved)
	}

	// Expand takes the component-wise max of the sizes.
	enlarged := moved.Expand(Sz(15, 2))
	if enlarged != Rect(3, 45, 15, 5) {
		t.Errorf("Expand = %v, want (3, 45, 15, 5)", enlarged)
	}

	// Shrink takes the component-wise min.
	reduced := enlarged.Shrink(Sz(4, 100))
	if reduced != Rect(3, 45, 4, 5) {
		t.Errorf("Shrink = %v, want (3, 45, 4, 5)", reduced)
	}

	if got := b.MoveTo(Pt(9, 9)); got != Rect(9, 9, 5, 5) {
		t.Errorf("MoveTo = %v, want (9, 9, 5, 5)", got)
	}
	if got := b.Resize(Sz(1, 2)); got != Rect(0, 40, 1, 2) {
		t.Errorf("Resize = %v, want (0, 40, 1, 2)", got)
	}

	// The original is never mutated.
	if b != Rect(0, 40, 5, 5) {
		t.Errorf("original bounds mutated: %v", b)
	}
}

func TestBounds_RectLike(t *testing.T) {
	want := Rect(1, 2, 3, 4)

	var fromBounds RectLike[int] = want
	if fromBounds.ToBounds() != want {
		t.Errorf("Bounds.ToBounds() = %v, want %v", fromBounds.ToBounds(), want)
	}

	var fromArray RectLike[int] = XYWH[int]{1, 2, 3, 4}
	if fromArray.ToBounds() != want {
		t.Errorf("XYWH.ToBounds() = %v, want %v", fromArray.ToBounds(), want)
	}
}

func TestBoundsAt(t *testing.T) {
	b := BoundsAt(Pt(7, 8), Sz(2, 3))
	if b != Rect(7, 8, 2, 3) {
		t.Errorf("BoundsAt = %v, want (7, 8, 2, 3)", b)
	}
}
