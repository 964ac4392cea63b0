package geom

// Number constrains the component types accepted by the geometric value
// types: every fixed-width integer, unsigned integer, and float.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Kind markers distinguish vectors with different meanings at the type
// level. They carry no data and cost nothing at runtime: a Point and an
// Offset have identical representation but cannot be mixed up by accident.
type (
	// PointKind marks a vector used as a position in 2D space.
	PointKind struct{}

	// OffsetKind marks a vector used as a translation or velocity.
	OffsetKind struct{}
)

// Vec2 is a generic pair of numeric components tagged with a kind.
// In most code you should use the Point and Offset aliases rather than
// naming Vec2 directly.
type Vec2[T Number, K any] struct {
	X, Y T
}

// Point is a vector describing a position in 2D space.
type Point[T Number] = Vec2[T, PointKind]

// Offset is a vector describing a translation in 2D space.
type Offset[T Number] = Vec2[T, OffsetKind]

// Pt is a convenience function to create a Point.
func Pt[T Number](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Off is a convenience function to create an Offset.
func Off[T Number](x, y T) Offset[T] {
	return Offset[T]{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors of the same kind.
func (v Vec2[T, K]) Add(w Vec2[T, K]) Vec2[T, K] {
	return Vec2[T, K]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the component-wise difference of two vectors of the same kind.
func (v Vec2[T, K]) Sub(w Vec2[T, K]) Vec2[T, K] {
	return Vec2[T, K]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the component-wise product of two vectors.
func (v Vec2[T, K]) Mul(w Vec2[T, K]) Vec2[T, K] {
	return Vec2[T, K]{X: v.X * w.X, Y: v.Y * w.Y}
}

// Div returns the component-wise quotient of two vectors.
// Dividing by a vector with a zero component has the usual Go semantics:
// a runtime panic for integers, an infinity or NaN for floats.
func (v Vec2[T, K]) Div(w Vec2[T, K]) Vec2[T, K] {
	return Vec2[T, K]{X: v.X / w.X, Y: v.Y / w.Y}
}

// Scale returns the vector scaled by a scalar.
func (v Vec2[T, K]) Scale(s T) Vec2[T, K] {
	return Vec2[T, K]{X: v.X * s, Y: v.Y * s}
}

// Translate returns the vector moved by an offset. The result keeps the
// kind of the receiver, so translating a Point yields a Point.
//
// The parameter is spelled Vec2[T, OffsetKind] rather than the identical
// Offset[T]: using the generic alias inside a Vec2 method signature
// deadlocks the compiler's importer when other packages import this one
// (types2 self-deadlock in Named.resolve via newAliasInstance).
func (v Vec2[T, K]) Translate(o Vec2[T, OffsetKind]) Vec2[T, K] {
	return Vec2[T, K]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2[T, K]) Dot(w Vec2[T, K]) T {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (v Vec2[T, K]) Cross(w Vec2[T, K]) T {
	return v.X*w.Y - v.Y*w.X
}

// Min returns the component-wise minimum of two vectors.
func (v Vec2[T, K]) Min(w Vec2[T, K]) Vec2[T, K] {
	return Vec2[T, K]{X: min(v.X, w.X), Y: min(v.Y, w.Y)}
}

// Max returns the component-wise maximum of two vectors.
func (v Vec2[T, K]) Max(w Vec2[T, K]) Vec2[T, K] {
	return Vec2[T, K]{X: max(v.X, w.X), Y: max(v.Y, w.Y)}
}

// XY returns the two components.
func (v Vec2[T, K]) XY() (x, y T) {
	return v.X, v.Y
}

// Cast converts the components of a vector to another numeric type,
// preserving the kind. The conversion truncates exactly like a plain Go
// conversion does.
func Cast[U, T Number, K any](v Vec2[T, K]) Vec2[U, K] {
	return Vec2[U, K]{X: U(v.X), Y: U(v.Y)}
}

// CastSize converts the components of a Size to another numeric type.
func CastSize[U, T Number](s Size[T]) Size[U] {
	return Size[U]{W: U(s.W), H: U(s.H)}
}

// CastBounds converts the components of a Bounds to another numeric type.
func CastBounds[U, T Number](b Bounds[T]) Bounds[U] {
	return Bounds[U]{Pos: Cast[U](b.Pos), Size: CastSize[U](b.Size)}
}
