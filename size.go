package geom

// Size represents a two-dimensional extent: a width and a height.
// Unlike Point and Offset it is not a Vec2 alias, so the components read
// as W and H rather than X and Y.
type Size[T Number] struct {
	W, H T
}

// Sz is a convenience function to create a Size.
func Sz[T Number](w, h T) Size[T] {
	return Size[T]{W: w, H: h}
}

// Square creates a Size with equal width and height.
func Square[T Number](v T) Size[T] {
	return Size[T]{W: v, H: v}
}

// Area returns width times height.
func (s Size[T]) Area() T {
	return s.W * s.H
}

// Empty reports whether the size spans no area.
func (s Size[T]) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Add returns the component-wise sum of two sizes.
func (s Size[T]) Add(t Size[T]) Size[T] {
	return Size[T]{W: s.W + t.W, H: s.H + t.H}
}

// Sub returns the component-wise difference of two sizes.
func (s Size[T]) Sub(t Size[T]) Size[T] {
	return Size[T]{W: s.W - t.W, H: s.H - t.H}
}

// Min returns the component-wise minimum of two sizes.
func (s Size[T]) Min(t Size[T]) Size[T] {
	return Size[T]{W: min(s.W, t.W), H: min(s.H, t.H)}
}

// Max returns the component-wise maximum of two sizes.
func (s Size[T]) Max(t Size[T]) Size[T] {
	return Size[T]{W: max(s.W, t.W), H: max(s.H, t.H)}
}

// WH returns the two components.
func (s Size[T]) WH() (w, h T) {
	return s.W, s.H
}
