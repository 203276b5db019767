// Package exact restates the core rational trigonometry formulas over
// arbitrary-precision rationals.
//
// The root package is generic over Go's machine numeric types, which
// is as far as an operator constraint can reach: [math/big.Rat] does
// its arithmetic through methods, so it gets this parallel surface
// instead. The formulas and their fallbacks are identical; shared
// test vectors keep the two in agreement.
//
// Points and vectors are [2]*big.Rat arrays and lines are [3]*big.Rat
// coefficient arrays, mirroring the root package's tuple convention.
// Every function allocates its results and never mutates its inputs,
// so values may be shared freely between calls.
package exact

import "math/big"

// Quadrance returns the squared distance between p1 and p2.
func Quadrance(p1, p2 [2]*big.Rat) *big.Rat {
	dx := new(big.Rat).Sub(p1[0], p2[0])
	dy := new(big.Rat).Sub(p1[1], p2[1])
	dx.Mul(dx, dx)
	dy.Mul(dy, dy)
	return dx.Add(dx, dy)
}

// Cross returns the signed scalar cross product of v1 and v2.
func Cross(v1, v2 [2]*big.Rat) *big.Rat {
	a := new(big.Rat).Mul(v1[0], v2[1])
	b := new(big.Rat).Mul(v1[1], v2[0])
	return a.Sub(a, b)
}

// Spread returns the squared sine of the angle between v1 and v2,
// Cross(v1, v2)² / (Q(v1)·Q(v2)). If either vector is zero, Spread
// returns zero, matching [rattrig.Spread]'s fallback.
func Spread(v1, v2 [2]*big.Rat) *big.Rat {
	denom := quadranceFromOrigin(v1)
	denom.Mul(denom, quadranceFromOrigin(v2))
	if denom.Sign() == 0 {
		return new(big.Rat)
	}
	c := Cross(v1, v2)
	c.Mul(c, c)
	return c.Quo(c, denom)
}

// Archimedes returns the quadrea of a triangle with side quadrances
// q1, q2, and q3: (q1+q2+q3)² − 2(q1²+q2²+q3²). The result is exact;
// zero or negative values flag degenerate or impossible triples, as
// with [rattrig.Archimedes].
func Archimedes(q1, q2, q3 *big.Rat) *big.Rat {
	s := new(big.Rat).Add(q1, q2)
	s.Add(s, q3)
	s.Mul(s, s)

	t := new(big.Rat).Mul(q1, q1)
	t.Add(t, new(big.Rat).Mul(q2, q2))
	t.Add(t, new(big.Rat).Mul(q3, q3))
	t.Add(t, t)
	return s.Sub(s, t)
}

// LineThrough returns the coefficients (a, b, c) of the line
// a·x + b·y + c = 0 passing through p1 and p2.
func LineThrough(p1, p2 [2]*big.Rat) [3]*big.Rat {
	a := new(big.Rat).Sub(p1[1], p2[1])
	b := new(big.Rat).Sub(p2[0], p1[0])
	c := new(big.Rat).Mul(p1[0], p2[1])
	c.Sub(c, new(big.Rat).Mul(p2[0], p1[1]))
	return [3]*big.Rat{a, b, c}
}

// QuadranceFromLine returns the quadrance from the point p to the
// line with coefficients l. A zero line normal yields zero.
func QuadranceFromLine(p [2]*big.Rat, l [3]*big.Rat) *big.Rat {
	q := quadranceFromOrigin([2]*big.Rat{l[0], l[1]})
	if q.Sign() == 0 {
		return new(big.Rat)
	}
	d := new(big.Rat).Mul(l[0], p[0])
	d.Add(d, new(big.Rat).Mul(l[1], p[1]))
	d.Add(d, l[2])
	d.Mul(d, d)
	return d.Quo(d, q)
}

// SpreadFromLine returns the spread between two lines given by their
// coefficients: the spread of their normals.
func SpreadFromLine(l1, l2 [3]*big.Rat) *big.Rat {
	return Spread([2]*big.Rat{l1[0], l1[1]}, [2]*big.Rat{l2[0], l2[1]})
}

// Quadrances returns the three pairwise quadrances of the triangle
// p1p2p3, the first belonging to the side opposite p1, matching the
// convention of [rattrig.Quadrances].
func Quadrances(p1, p2, p3 [2]*big.Rat) (q1, q2, q3 *big.Rat) {
	return Quadrance(p2, p3), Quadrance(p1, p3), Quadrance(p1, p2)
}

// Spreads returns the three interior spreads of the triangle p1p2p3,
// the first at the vertex p1.
func Spreads(p1, p2, p3 [2]*big.Rat) (s1, s2, s3 *big.Rat) {
	s1 = Spread(sub(p2, p1), sub(p3, p1))
	s2 = Spread(sub(p1, p2), sub(p3, p2))
	s3 = Spread(sub(p1, p3), sub(p2, p3))
	return s1, s2, s3
}

// Collinear reports whether the three points lie on one line: the
// quadrea of the triple vanishes.
func Collinear(p1, p2, p3 [2]*big.Rat) bool {
	return Archimedes(Quadrances(p1, p2, p3)).Sign() == 0
}

func quadranceFromOrigin(v [2]*big.Rat) *big.Rat {
	x := new(big.Rat).Mul(v[0], v[0])
	y := new(big.Rat).Mul(v[1], v[1])
	return x.Add(x, y)
}

func sub(p1, p2 [2]*big.Rat) [2]*big.Rat {
	return [2]*big.Rat{
		new(big.Rat).Sub(p1[0], p2[0]),
		new(big.Rat).Sub(p1[1], p2[1]),
	}
}
