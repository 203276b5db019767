package geom

import (
	"math"

	"deedles.dev/rattrig"
)

// Triangle is a triangle in the plane. Degenerate vertex sets are
// representable: validity is a query, not a construction
// precondition, so a Triangle over collinear points simply reports a
// zero quadrea.
type Triangle[T rattrig.Scalar] struct {
	P1, P2, P3 Point[T]
}

// Tri is shorthand for Triangle[T]{p1, p2, p3}.
func Tri[T rattrig.Scalar](p1, p2, p3 Point[T]) Triangle[T] {
	return Triangle[T]{P1: p1, P2: p2, P3: p3}
}

// Quadrances returns the three side quadrances, the first belonging
// to the side opposite P1, matching the convention of
// [rattrig.Quadrances].
func (t Triangle[T]) Quadrances() (q1, q2, q3 T) {
	return rattrig.Quadrances(t.P1.XY(), t.P2.XY(), t.P3.XY())
}

// Spreads returns the three interior spreads, the first at P1.
func (t Triangle[T]) Spreads() (s1, s2, s3 T) {
	return rattrig.Spreads(t.P1.XY(), t.P2.XY(), t.P3.XY())
}

// Quadrea returns sixteen times the squared area of the triangle, via
// [rattrig.Archimedes]. Zero means the vertices are collinear.
func (t Triangle[T]) Quadrea() T {
	return rattrig.Archimedes(t.Quadrances())
}

// Cross returns twice the signed area of the triangle, positive when
// the vertices wind counter-clockwise.
func (t Triangle[T]) Cross() T {
	return rattrig.TriangleCross(t.P1.XY(), t.P2.XY(), t.P3.XY())
}

// Degenerate reports whether the three vertices are collinear.
func (t Triangle[T]) Degenerate() bool {
	var zero T
	return t.Cross() == zero
}

// Area returns the unsigned area of the triangle. It is the one
// operation here that leaves rational arithmetic: it takes a square
// root, so the result is approximate unless the quadrea is a perfect
// square. Degenerate triangles have area zero.
func (t Triangle[T]) Area() float64 {
	return math.Sqrt(float64(t.Quadrea())) / 4
}

// Triangle3 is a triangle in space.
type Triangle3[T rattrig.Scalar] struct {
	P1, P2, P3 Point3[T]
}

// Tri3 is shorthand for Triangle3[T]{p1, p2, p3}.
func Tri3[T rattrig.Scalar](p1, p2, p3 Point3[T]) Triangle3[T] {
	return Triangle3[T]{P1: p1, P2: p2, P3: p3}
}

// Quadrances returns the three side quadrances in the same
// opposite-vertex order as the planar [Triangle.Quadrances].
func (t Triangle3[T]) Quadrances() (q1, q2, q3 T) {
	return rattrig.Quadrances3(t.P1.XYZ(), t.P2.XYZ(), t.P3.XYZ())
}

// Quadrea returns sixteen times the squared area of the triangle.
// Archimedes' formula depends only on the side quadrances, so it
// applies unchanged in space.
func (t Triangle3[T]) Quadrea() T {
	return rattrig.Archimedes(t.Quadrances())
}

// Area returns the unsigned area of the triangle, with the same
// square-root caveat as the planar [Triangle.Area].
func (t Triangle3[T]) Area() float64 {
	return math.Sqrt(float64(t.Quadrea())) / 4
}
