package geom

import "deedles.dev/rattrig"

// Vec is a free displacement vector in the plane.
type Vec[T rattrig.Scalar] struct {
	X, Y T
}

// V is shorthand for Vec[T]{x, y}.
func V[T rattrig.Scalar](x, y T) Vec[T] {
	return Vec[T]{X: x, Y: y}
}

// XY returns v in the tuple convention of the root package.
func (v Vec[T]) XY() [2]T { return [2]T{v.X, v.Y} }

// Add returns the componentwise sum of v and w.
func (v Vec[T]) Add(w Vec[T]) Vec[T] {
	return Vec[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the componentwise difference of v and w.
func (v Vec[T]) Sub(w Vec[T]) Vec[T] {
	return Vec[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Quadrance returns the quadrance of v from the origin.
func (v Vec[T]) Quadrance() T {
	return rattrig.Quadrance(v.XY(), [2]T{})
}

// Cross returns the signed scalar cross product of v and w.
func (v Vec[T]) Cross(w Vec[T]) T {
	return rattrig.Cross(v.XY(), w.XY())
}

// Spread returns the spread between v and w, with the zero-vector
// fallback of [rattrig.Spread].
func (v Vec[T]) Spread(w Vec[T]) T {
	return rattrig.Spread(v.XY(), w.XY())
}

// Dilatation returns the quadrance ratio Q(w)/Q(v).
func (v Vec[T]) Dilatation(w Vec[T]) T {
	return rattrig.Dilatation(v.XY(), w.XY())
}

// Vec3 is a free displacement vector in space.
type Vec3[T rattrig.Scalar] struct {
	X, Y, Z T
}

// V3 is shorthand for Vec3[T]{x, y, z}.
func V3[T rattrig.Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// XYZ returns v in the tuple convention of the root package.
func (v Vec3[T]) XYZ() [3]T { return [3]T{v.X, v.Y, v.Z} }

// Add returns the componentwise sum of v and w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the componentwise difference of v and w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Quadrance returns the quadrance of v from the origin.
func (v Vec3[T]) Quadrance() T {
	return rattrig.Quadrance3(v.XYZ(), [3]T{})
}

// Cross returns the cross product of v and w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	c := rattrig.Cross3(v.XYZ(), w.XYZ())
	return Vec3[T]{X: c[0], Y: c[1], Z: c[2]}
}

// Spread returns the spread between v and w, with the zero-vector
// fallback of [rattrig.Spread3].
func (v Vec3[T]) Spread(w Vec3[T]) T {
	return rattrig.Spread3(v.XYZ(), w.XYZ())
}
