package rattrig

// Quadrance3 returns the squared distance between the 3D points p1
// and p2.
func Quadrance3[T Scalar](p1, p2 [3]T) T {
	dx := p1[0] - p2[0]
	dy := p1[1] - p2[1]
	dz := p1[2] - p2[2]
	return dx*dx + dy*dy + dz*dz
}

// Cross3 returns the cross product of the 3D vectors v1 and v2 by the
// usual determinant expansion. Unlike the planar [Cross], the result
// is a full vector.
func Cross3[T Scalar](v1, v2 [3]T) [3]T {
	return [3]T{
		v1[1]*v2[2] - v1[2]*v2[1],
		v1[2]*v2[0] - v1[0]*v2[2],
		v1[0]*v2[1] - v1[1]*v2[0],
	}
}

// Spread3 returns the squared sine of the angle between the 3D
// vectors v1 and v2, computed as Q(Cross3(v1, v2)) / (Q(v1)·Q(v2)).
// A zero vector yields zero, as in [Spread].
func Spread3[T Scalar](v1, v2 [3]T) T {
	var origin [3]T
	denom := Quadrance3(v1, origin) * Quadrance3(v2, origin)
	var zero T
	if denom == zero {
		logFallback("spread3")
		return zero
	}
	return Quadrance3(Cross3(v1, v2), origin) / denom
}

// Quadrances3 returns the three pairwise quadrances of the 3D
// triangle p1p2p3, using the same opposite-vertex ordering as
// [Quadrances].
func Quadrances3[T Scalar](p1, p2, p3 [3]T) (q1, q2, q3 T) {
	return Quadrance3(p2, p3), Quadrance3(p1, p3), Quadrance3(p1, p2)
}
