package rattrig

// Quadrance returns the squared distance between p1 and p2. It is
// never negative for real coordinates and is exact for integer ones.
func Quadrance[T Scalar](p1, p2 [2]T) T {
	dx := p1[0] - p2[0]
	dy := p1[1] - p2[1]
	return dx*dx + dy*dy
}

// Cross returns the signed scalar cross product of v1 and v2. The
// sign encodes orientation: positive when v2 lies counter-clockwise
// of v1.
func Cross[T Scalar](v1, v2 [2]T) T {
	return v1[0]*v2[1] - v1[1]*v2[0]
}

// Spread returns the squared sine of the angle between v1 and v2,
// computed as Cross(v1, v2)² / (Q(v1)·Q(v2)). The result lies in
// [0, 1] for real inputs: 0 for parallel vectors and 1 for
// perpendicular ones. If either vector is the zero vector, Spread
// returns zero instead of dividing by zero.
//
// For integer T the quotient truncates; use a floating point or
// rational coordinate type when intermediate spread values matter.
func Spread[T Scalar](v1, v2 [2]T) T {
	var origin [2]T
	denom := Quadrance(v1, origin) * Quadrance(v2, origin)
	var zero T
	if denom == zero {
		logFallback("spread")
		return zero
	}
	c := Cross(v1, v2)
	return c * c / denom
}

// LineThrough returns the coefficients (a, b, c) of the line
// a·x + b·y + c = 0 passing through p1 and p2.
func LineThrough[T Scalar](p1, p2 [2]T) [3]T {
	return [3]T{
		p1[1] - p2[1],
		p2[0] - p1[0],
		p1[0]*p2[1] - p2[0]*p1[1],
	}
}

// QuadranceFromLine returns the quadrance from the point p to the
// line with coefficients l. It equals Quadrance(p, f) for the foot f
// of the perpendicular dropped from p, so for a line built with
// [LineThrough] it agrees with the two-point formulas. A line with a
// zero normal yields zero.
func QuadranceFromLine[T Scalar](p [2]T, l [3]T) T {
	var origin [2]T
	q := Quadrance([2]T{l[0], l[1]}, origin)
	var zero T
	if q == zero {
		logFallback("quadrance from line")
		return zero
	}
	d := l[0]*p[0] + l[1]*p[1] + l[2]
	return d * d / q
}

// SpreadFromLine returns the spread between two lines given by their
// coefficients. It is the spread of their normals, so it is invariant
// under rescaling either coefficient triple. A zero normal yields
// zero.
func SpreadFromLine[T Scalar](l1, l2 [3]T) T {
	return Spread([2]T{l1[0], l1[1]}, [2]T{l2[0], l2[1]})
}

// CrossFromLine returns the cross of the normals of two lines. It is
// zero exactly when the lines are parallel.
func CrossFromLine[T Scalar](l1, l2 [3]T) T {
	return Cross([2]T{l1[0], l1[1]}, [2]T{l2[0], l2[1]})
}

// Quadrances returns the three pairwise quadrances of the triangle
// p1p2p3. The first result is the quadrance of the side opposite p1,
// the second of the side opposite p2, and so on. Every
// triple-producing function in this module uses this convention.
func Quadrances[T Scalar](p1, p2, p3 [2]T) (q1, q2, q3 T) {
	return Quadrance(p2, p3), Quadrance(p1, p3), Quadrance(p1, p2)
}

// Spreads returns the three interior spreads of the triangle p1p2p3,
// the first at the vertex p1, matching the ordering convention of
// [Quadrances]. Coincident vertices produce zero spreads at the
// affected corners.
func Spreads[T Scalar](p1, p2, p3 [2]T) (s1, s2, s3 T) {
	s1 = Spread(sub(p2, p1), sub(p3, p1))
	s2 = Spread(sub(p1, p2), sub(p3, p2))
	s3 = Spread(sub(p1, p3), sub(p2, p3))
	return s1, s2, s3
}

// TriangleCross returns the cross of the vectors p1→p2 and p1→p3,
// which is twice the signed area of the triangle. It is positive when
// the vertices wind counter-clockwise and zero when they are
// collinear.
func TriangleCross[T Scalar](p1, p2, p3 [2]T) T {
	return Cross(sub(p2, p1), sub(p3, p1))
}

// Archimedes returns the quadrea, sixteen times the squared area, of
// a triangle with side quadrances q1, q2, and q3:
//
//	(q1+q2+q3)² − 2(q1²+q2²+q3²)
//
// The result is exact for integer and rational inputs. A zero result
// means the quadrances belong to a degenerate (collinear) triangle; a
// negative one means no triangle has these side quadrances. Check the
// sign before taking a square root to recover an area.
func Archimedes[T Scalar](q1, q2, q3 T) T {
	s := q1 + q2 + q3
	return s*s - 2*(q1*q1+q2*q2+q3*q3)
}

// Turn returns the spread of the corner at p2 along the path
// p1→p2→p3, along with its orientation: true when the path turns
// counter-clockwise.
func Turn[T Scalar](p1, p2, p3 [2]T) (T, bool) {
	v1 := sub(p2, p1)
	v2 := sub(p3, p2)
	var zero T
	return Spread(v1, v2), Cross(v1, v2) > zero
}

// Dilatation returns the quadrance ratio Q(v2)/Q(v1), the squared
// scale factor relating the two vectors when they are parallel. A
// zero v1 yields zero.
func Dilatation[T Scalar](v1, v2 [2]T) T {
	var origin [2]T
	q1 := Quadrance(v1, origin)
	var zero T
	if q1 == zero {
		logFallback("dilatation")
		return zero
	}
	return Quadrance(v2, origin) / q1
}

// SpreadRatio returns s/q, the quantity that the spread law holds
// constant across a triangle's three corner/side pairs:
//
//	s1/q1 == s2/q2 == s3/q3
//
// A zero quadrance yields zero.
func SpreadRatio[T Scalar](q, s T) T {
	var zero T
	if q == zero {
		logFallback("spread ratio")
		return zero
	}
	return s / q
}

func sub[T Scalar](p1, p2 [2]T) [2]T {
	return [2]T{p1[0] - p2[0], p1[1] - p2[1]}
}
