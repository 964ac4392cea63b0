package geom

import "testing"

func TestVec2_Creation(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"zero", 0, 0},
		{"positive", 3, 4},
		{"negative", -1, -2},
		{"mixed", -5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pt(tt.x, tt.y)
			if p.X != tt.x || p.Y != tt.y {
				t.Errorf("Pt(%v, %v) = %v, want (%v, %v)", tt.x, tt.y, p, tt.x, tt.y)
			}
			o := Off(tt.x, tt.y)
			if o.X != tt.x || o.Y != tt.y {
				t.Errorf("Off(%v, %v) = %v, want (%v, %v)", tt.x, tt.y, o, tt.x, tt.y)
			}
		})
	}
}

func TestVec2_Arithmetic(t *testing.T) {
	tests := []struct {
		name   string
		op     func(a, b Point[int]) Point[int]
		a, b   Point[int]
		expect Point[int]
	}{
		{"add", Point[int].Add, Pt(1, 2), Pt(3, 4), Pt(4, 6)},
		{"add negative", Point[int].Add, Pt(-1, -2), Pt(-3, -4), Pt(-4, -6)},
		{"sub", Point[int].Sub, Pt(5, 7), Pt(2, 3), Pt(3, 4)},
		{"sub to negative", Point[int].Sub, Pt(1, 1), Pt(4, 9), Pt(-3, -8)},
		{"mul", Point[int].Mul, Pt(2, 3), Pt(4, 5), Pt(8, 15)},
		{"div", Point[int].Div, Pt(8, 15), Pt(4, 5), Pt(2, 3)},
		{"min", Point[int].Min, Pt(2, 9), Pt(4, 5), Pt(2, 5)},
		{"max", Point[int].Max, Pt(2, 9), Pt(4, 5), Pt(4, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op(tt.a, tt.b); got != tt.expect {
				t.Errorf("%v %s %v = %v, want %v", tt.a, tt.name, tt.b, got, tt.expect)
			}
		})
	}
}

func TestVec2_Scale(t *testing.T) {
	if got := Pt(3, -4).Scale(2); got != Pt(6, -8) {
		t.Errorf("Scale(2) = %v, want (6, -8)", got)
	}
	if got := Off(1.5, 2.0).Scale(2.0); got != Off(3.0, 4.0) {
		t.Errorf("Scale(2.0) = %v, want (3, 4)", got)
	}
}

func TestVec2_Translate(t *testing.T) {
	// Translating keeps the receiver's kind: a Point stays a Point.
	var p Point[int] = Pt(1, 2).Translate(Off(10, 20))
	if p != Pt(11, 22) {
		t.Errorf("Translate = %v, want (11, 22)", p)
	}
}

func TestVec2_DotCross(t *testing.T) {
	tests := []struct {
		name       string
		a, b       Point[int]
		dot, cross int
	}{
		{"orthogonal", Pt(1, 0), Pt(0, 1), 0, 1},
		{"parallel", Pt(2, 3), Pt(4, 6), 26, 0},
		{"general", Pt(1, 2), Pt(3, 4), 11, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Dot(tt.b); got != tt.dot {
				t.Errorf("%v.Dot(%v) = %v, want %v", tt.a, tt.b, got, tt.dot)
			}
			if got := tt.a.Cross(tt.b); got != tt.cross {
				t.Errorf("%v.Cross(%v) = %v, want %v", tt.a, tt.b, got, tt.cross)
			}
		})
	}
}

func TestVec2_XY(t *testing.T) {
	x, y := Pt(7, 9).XY()
	if x != 7 || y != 9 {
		t.Errorf("XY() = (%v, %v), want (7, 9)", x, y)
	}
}

func TestCast(t *testing.T) {
	p := Cast[int](Pt(1.9, -2.9))
	if p != Pt(1, -2) {
		t.Errorf("Cast[int](1.9, -2.9) = %v, want (1, -2) (truncation)", p)
	}

	f := Cast[float64](Pt(3, 4))
	if f != Pt(3.0, 4.0) {
		t.Errorf("Cast[float64](3, 4) = %v, want (3, 4)", f)
	}

	s := CastSize[uint8](Sz(300, 5))
	if s != Sz[uint8](44, 5) {
		t.Errorf("CastSize[uint8](300, 5) = %v, want wrapped (44, 5)", s)
	}

	b := CastBounds[int](Rect(1.5, 2.5, 3.5, 4.5))
	if b != Rect(1, 2, 3, 4) {
		t.Errorf("CastBounds[int] = %v, want (1, 2, 3, 4)", b)
	}
}
