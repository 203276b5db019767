// Package geom provides structured geometry types for rational
// trigonometry.
//
// The types here are thin named wrappers over the tuple convention of
// the root package: constructors plus pass-through calls, with no
// arithmetic of their own, so the structured and tuple conventions
// cannot drift apart. All types are immutable values with no identity
// beyond their coordinates.
package geom

import "deedles.dev/rattrig"

// Point is an affine location in the plane.
type Point[T rattrig.Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T rattrig.Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// XY returns p in the tuple convention of the root package.
func (p Point[T]) XY() [2]T { return [2]T{p.X, p.Y} }

// Quadrance returns the quadrance between p and q.
func (p Point[T]) Quadrance(q Point[T]) T {
	return rattrig.Quadrance(p.XY(), q.XY())
}

// QuadranceToLine returns the quadrance from p to the line l.
func (p Point[T]) QuadranceToLine(l Line[T]) T {
	return rattrig.QuadranceFromLine(p.XY(), l.ABC())
}

// Sub returns the displacement vector from q to p.
func (p Point[T]) Sub(q Point[T]) Vec[T] {
	return Vec[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p displaced by v.
func (p Point[T]) Add(v Vec[T]) Point[T] {
	return Point[T]{X: p.X + v.X, Y: p.Y + v.Y}
}

// Point3 is an affine location in space.
type Point3[T rattrig.Scalar] struct {
	X, Y, Z T
}

// Pt3 is shorthand for Point3[T]{x, y, z}.
func Pt3[T rattrig.Scalar](x, y, z T) Point3[T] {
	return Point3[T]{X: x, Y: y, Z: z}
}

// XYZ returns p in the tuple convention of the root package.
func (p Point3[T]) XYZ() [3]T { return [3]T{p.X, p.Y, p.Z} }

// Quadrance returns the quadrance between p and q.
func (p Point3[T]) Quadrance(q Point3[T]) T {
	return rattrig.Quadrance3(p.XYZ(), q.XYZ())
}

// Sub returns the displacement vector from q to p.
func (p Point3[T]) Sub(q Point3[T]) Vec3[T] {
	return Vec3[T]{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Add returns p displaced by v.
func (p Point3[T]) Add(v Vec3[T]) Point3[T] {
	return Point3[T]{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}
