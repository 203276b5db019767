// Package valid provides boolean validity predicates built from the
// rational trigonometry formulas: collinearity, triangle validity and
// classification, and line relationships.
//
// Every predicate compares exactly, for floating point coordinates
// too. That is a deliberate limitation, not a tolerance band: the
// point of the quadrance and spread formulas is exactness over
// integer and rational inputs, and callers who need fuzzy comparison
// of floats should round before asking. All predicates are pure and
// total; none panics or mutates its arguments.
package valid

import "deedles.dev/rattrig"

// Collinear reports whether the three points lie on one line. It is
// true exactly when the quadrea of the triple vanishes.
func Collinear[T rattrig.Scalar](p1, p2, p3 [2]T) bool {
	var zero T
	return rattrig.Archimedes(rattrig.Quadrances(p1, p2, p3)) == zero
}

// ValidTriangle reports whether the three points form a
// non-degenerate triangle. It checks both the cross-product and the
// quadrance criteria; the two agree on every input where the
// arithmetic is exact.
func ValidTriangle[T rattrig.Scalar](p1, p2, p3 [2]T) bool {
	var zero T
	return rattrig.TriangleCross(p1, p2, p3) != zero && !Collinear(p1, p2, p3)
}

// RightTriangle reports whether a triangle with interior spreads s1,
// s2, s3 has a right angle, which shows up as exactly one spread
// equal to one.
func RightTriangle[T rattrig.Scalar](s1, s2, s3 T) bool {
	var one T = 1
	n := 0
	if s1 == one {
		n++
	}
	if s2 == one {
		n++
	}
	if s3 == one {
		n++
	}
	return n == 1
}

// AcuteTriangle reports whether all three spreads are strictly below
// one, so no interior angle is a right angle.
func AcuteTriangle[T rattrig.Scalar](s1, s2, s3 T) bool {
	var one T = 1
	return s1 < one && s2 < one && s3 < one
}

// ObtuseTriangle reports whether some spread exceeds one half.
func ObtuseTriangle[T rattrig.Scalar](s1, s2, s3 T) bool {
	// Phrased as 2s > 1 to stay divisionless for integer types.
	var one T = 1
	return 2*s1 > one || 2*s2 > one || 2*s3 > one
}

// IsoscelesTriangle reports whether at least two of the three side
// quadrances are equal.
func IsoscelesTriangle[T rattrig.Scalar](q1, q2, q3 T) bool {
	return q1 == q2 || q1 == q3 || q2 == q3
}

// EquilateralTriangle reports whether all three side quadrances are
// equal.
func EquilateralTriangle[T rattrig.Scalar](q1, q2, q3 T) bool {
	return q1 == q2 && q2 == q3
}

// TriangleInequality reports whether three quadrances can be the side
// quadrances of a triangle, degenerate ones included. The quadrance
// form of the triangle inequality is a sign condition on the quadrea:
// Archimedes(q1, q2, q3) ≥ 0.
func TriangleInequality[T rattrig.Scalar](q1, q2, q3 T) bool {
	var zero T
	return rattrig.Archimedes(q1, q2, q3) >= zero
}

// ValidQuadrance reports whether q is a representable quadrance,
// meaning it is not negative.
func ValidQuadrance[T rattrig.Scalar](q T) bool {
	var zero T
	return q >= zero
}

// ValidSpread reports whether s is a representable spread, meaning it
// lies within [0, 1].
func ValidSpread[T rattrig.Scalar](s T) bool {
	var zero T
	var one T = 1
	return s >= zero && s <= one
}

// Perpendicular reports whether the two vectors are perpendicular,
// which is exactly when their dot product vanishes.
func Perpendicular[T rattrig.Scalar](v1, v2 [2]T) bool {
	var zero T
	return v1[0]*v2[0]+v1[1]*v2[1] == zero
}
