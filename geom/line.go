package geom

import "deedles.dev/rattrig"

// Line is a line in the plane described by the coefficients of its
// implicit equation A·x + B·y + C = 0. A line built from coefficients
// and a line built through two points with [LnThrough] are
// value-equivalent views: the quadrance and spread operations give
// identical results for the same geometric line.
type Line[T rattrig.Scalar] struct {
	A, B, C T
}

// Ln is shorthand for Line[T]{a, b, c}.
func Ln[T rattrig.Scalar](a, b, c T) Line[T] {
	return Line[T]{A: a, B: b, C: c}
}

// LnThrough returns the line passing through p and q.
func LnThrough[T rattrig.Scalar](p, q Point[T]) Line[T] {
	l := rattrig.LineThrough(p.XY(), q.XY())
	return Line[T]{A: l[0], B: l[1], C: l[2]}
}

// ABC returns l in the tuple convention of the root package.
func (l Line[T]) ABC() [3]T { return [3]T{l.A, l.B, l.C} }

// Quadrance returns the quadrance from p to l.
func (l Line[T]) Quadrance(p Point[T]) T {
	return rattrig.QuadranceFromLine(p.XY(), l.ABC())
}

// Spread returns the spread between l and m.
func (l Line[T]) Spread(m Line[T]) T {
	return rattrig.SpreadFromLine(l.ABC(), m.ABC())
}

// Cross returns the cross of the normals of l and m.
func (l Line[T]) Cross(m Line[T]) T {
	return rattrig.CrossFromLine(l.ABC(), m.ABC())
}

// Contains reports whether p satisfies l's equation exactly.
func (l Line[T]) Contains(p Point[T]) bool {
	var zero T
	return l.A*p.X+l.B*p.Y+l.C == zero
}
