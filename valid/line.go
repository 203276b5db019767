package valid

import "deedles.dev/rattrig"

// ParallelLines reports whether two lines, given by their coefficient
// triples, are parallel: the cross of their normals vanishes.
func ParallelLines[T rattrig.Scalar](l1, l2 [3]T) bool {
	var zero T
	return rattrig.CrossFromLine(l1, l2) == zero
}

// PerpendicularLines reports whether two lines are perpendicular: the
// dot product of their normals vanishes.
func PerpendicularLines[T rattrig.Scalar](l1, l2 [3]T) bool {
	return Perpendicular([2]T{l1[0], l1[1]}, [2]T{l2[0], l2[1]})
}

// PointOnLine reports whether p satisfies the line equation
// l[0]·x + l[1]·y + l[2] = 0 exactly.
func PointOnLine[T rattrig.Scalar](p [2]T, l [3]T) bool {
	var zero T
	return l[0]*p[0]+l[1]*p[1]+l[2] == zero
}

// PointInTriangle reports whether p lies inside or on the boundary of
// the triangle p1p2p3. The test compares the signs of the three
// sub-triangle crosses instead of computing barycentric quotients, so
// it stays exact for integer coordinates. A degenerate triangle
// contains no points.
func PointInTriangle[T rattrig.Scalar](p, p1, p2, p3 [2]T) bool {
	var zero T
	d := rattrig.TriangleCross(p1, p2, p3)
	if d == zero {
		return false
	}

	a := rattrig.TriangleCross(p1, p2, p)
	b := rattrig.TriangleCross(p2, p3, p)
	c := rattrig.TriangleCross(p3, p1, p)
	if d < zero {
		a, b, c = -a, -b, -c
	}
	return a >= zero && b >= zero && c >= zero
}
