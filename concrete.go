package rattrig

// This file restates the core formulas for fixed coordinate types.
// The concrete functions are numerically identical to their generic
// counterparts for the same inputs; they exist for call sites where a
// non-generic symbol is wanted, such as function values, linkname
// shims, and code generators.

// QuadranceI64 is [Quadrance] fixed to int64 coordinates.
func QuadranceI64(p1, p2 [2]int64) int64 {
	dx := p1[0] - p2[0]
	dy := p1[1] - p2[1]
	return dx*dx + dy*dy
}

// CrossI64 is [Cross] fixed to int64 coordinates.
func CrossI64(v1, v2 [2]int64) int64 {
	return v1[0]*v2[1] - v1[1]*v2[0]
}

// SpreadI64 is [Spread] fixed to int64 coordinates. The quotient
// truncates, exactly as the generic version does for integer types.
func SpreadI64(v1, v2 [2]int64) int64 {
	denom := (v1[0]*v1[0] + v1[1]*v1[1]) * (v2[0]*v2[0] + v2[1]*v2[1])
	if denom == 0 {
		logFallback("spread")
		return 0
	}
	c := CrossI64(v1, v2)
	return c * c / denom
}

// ArchimedesI64 is [Archimedes] fixed to int64 quadrances.
func ArchimedesI64(q1, q2, q3 int64) int64 {
	s := q1 + q2 + q3
	return s*s - 2*(q1*q1+q2*q2+q3*q3)
}

// QuadranceI32 is [Quadrance] fixed to int32 coordinates.
func QuadranceI32(p1, p2 [2]int32) int32 {
	dx := p1[0] - p2[0]
	dy := p1[1] - p2[1]
	return dx*dx + dy*dy
}

// CrossI32 is [Cross] fixed to int32 coordinates.
func CrossI32(v1, v2 [2]int32) int32 {
	return v1[0]*v2[1] - v1[1]*v2[0]
}

// QuadranceF64 is [Quadrance] fixed to float64 coordinates.
func QuadranceF64(p1, p2 [2]float64) float64 {
	dx := p1[0] - p2[0]
	dy := p1[1] - p2[1]
	return dx*dx + dy*dy
}

// CrossF64 is [Cross] fixed to float64 coordinates.
func CrossF64(v1, v2 [2]float64) float64 {
	return v1[0]*v2[1] - v1[1]*v2[0]
}

// SpreadF64 is [Spread] fixed to float64 coordinates, including the
// zero-vector fallback.
func SpreadF64(v1, v2 [2]float64) float64 {
	denom := (v1[0]*v1[0] + v1[1]*v1[1]) * (v2[0]*v2[0] + v2[1]*v2[1])
	if denom == 0 {
		logFallback("spread")
		return 0
	}
	c := CrossF64(v1, v2)
	return c * c / denom
}

// ArchimedesF64 is [Archimedes] fixed to float64 quadrances.
func ArchimedesF64(q1, q2, q3 float64) float64 {
	s := q1 + q2 + q3
	return s*s - 2*(q1*q1+q2*q2+q3*q3)
}
