package geom

// Bounds is a bounding box: a rectangle described by the position of its
// top-left corner and a size. Also known as a rect, or rectangle.
//
// All transformations return a new value; a Bounds is never mutated.
type Bounds[T Number] struct {
	Pos  Point[T]
	Size Size[T]
}

// Rect creates a Bounds from its four components.
func Rect[T Number](x, y, w, h T) Bounds[T] {
	return Bounds[T]{Pos: Pt(x, y), Size: Sz(w, h)}
}

// BoundsAt creates a Bounds from a position and a size.
func BoundsAt[T Number](p Point[T], s Size[T]) Bounds[T] {
	return Bounds[T]{Pos: p, Size: s}
}

// Left returns the x-coordinate of the left edge.
func (b Bounds[T]) Left() T {
	return b.Pos.X
}

// Top returns the y-coordinate of the top edge.
func (b Bounds[T]) Top() T {
	return b.Pos.Y
}

// Right returns the x-coordinate of the right edge (exclusive).
func (b Bounds[T]) Right() T {
	return b.Pos.X + b.Size.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (b Bounds[T]) Bottom() T {
	return b.Pos.Y + b.Size.H
}

// Width returns the horizontal extent.
func (b Bounds[T]) Width() T {
	return b.Size.W
}

// Height returns the vertical extent.
func (b Bounds[T]) Height() T {
	return b.Size.H
}

// Area returns the area spanned by the bounds.
func (b Bounds[T]) Area() T {
	return b.Size.Area()
}

// Empty reports whether the bounds span no area.
func (b Bounds[T]) Empty() bool {
	return b.Size.Empty()
}

// XYWH decomposes the bounds into its four components.
func (b Bounds[T]) XYWH() (x, y, w, h T) {
	return b.Pos.X, b.Pos.Y, b.Size.W, b.Size.H
}

// Contains reports whether the point lies inside the bounds. Points on
// the left and top edges are inside; points on the right and bottom
// edges are outside.
func (b Bounds[T]) Contains(p Point[T]) bool {
	return p.X >= b.Left() && p.X < b.Right() && p.Y >= b.Top() && p.Y < b.Bottom()
}

// MoveTo returns the bounds repositioned at the given point.
func (b Bounds[T]) MoveTo(p Point[T]) Bounds[T] {
	return Bounds[T]{Pos: p, Size: b.Size}
}

// Translate returns the bounds moved by an offset.
func (b Bounds[T]) Translate(o Offset[T]) Bounds[T] {
	return Bounds[T]{Pos: b.Pos.Translate(o), Size: b.Size}
}

// Resize returns the bounds with a new size, keeping the position.
func (b Bounds[T]) Resize(s Size[T]) Bounds[T] {
	return Bounds[T]{Pos: b.Pos, Size: s}
}

// Expand returns the bounds grown to at least the given size: each
// dimension becomes the larger of the current and given extents.
func (b Bounds[T]) Expand(s Size[T]) Bounds[T] {
	return Bounds[T]{Pos: b.Pos, Size: b.Size.Max(s)}
}

// Shrink returns the bounds reduced to at most the given size: each
// dimension becomes the smaller of the current and given extents.
func (b Bounds[T]) Shrink(s Size[T]) Bounds[T] {
	return Bounds[T]{Pos: b.Pos, Size: b.Size.Min(s)}
}

// ToBounds implements RectLike.
func (b Bounds[T]) ToBounds() Bounds[T] {
	return b
}

// RectLike is satisfied by anything convertible to a Bounds. Grid region
// operations accept a RectLike so callers can pass a Bounds or a plain
// XYWH array interchangeably.
type RectLike[T Number] interface {
	ToBounds() Bounds[T]
}

// XYWH is a fixed-length array convertible to a Bounds: x, y, width,
// height. It exists so call sites can write a region inline, e.g.
//
//	grid.Slice(geom.XYWH[int]{1, 1, 2, 2})
type XYWH[T Number] [4]T

// ToBounds implements RectLike.
func (a XYWH[T]) ToBounds() Bounds[T] {
	return Rect(a[0], a[1], a[2], a[3])
}
