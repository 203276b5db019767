package valid_test

import (
	"testing"

	"deedles.dev/rattrig"
	"deedles.dev/rattrig/valid"
	"github.com/stretchr/testify/require"
)

func TestCollinear(t *testing.T) {
	require.True(t, valid.Collinear([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2}))
	require.False(t, valid.Collinear([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}))

	// Coincident points are collinear too.
	require.True(t, valid.Collinear([2]int{1, 2}, [2]int{1, 2}, [2]int{5, 7}))
}

func TestValidTriangle(t *testing.T) {
	require.True(t, valid.ValidTriangle([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}))
	require.False(t, valid.ValidTriangle([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2}))
}

func TestCollinearityCriteriaAgree(t *testing.T) {
	// The cross-product and quadrance criteria for collinearity must
	// agree everywhere the arithmetic is exact.
	p1, p2 := [2]int{-1, -1}, [2]int{2, 1}
	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			p3 := [2]int{x, y}
			byCross := rattrig.TriangleCross(p1, p2, p3) == 0
			byQuadrance := valid.Collinear(p1, p2, p3)
			require.Equal(t, byCross, byQuadrance, "p3 = %v", p3)
		}
	}
}

func TestRightTriangle(t *testing.T) {
	s1, s2, s3 := rattrig.Spreads([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{0, 1})
	require.True(t, valid.RightTriangle(s1, s2, s3))

	require.True(t, valid.RightTriangle(1.0, 0.5, 0.5))
	require.False(t, valid.RightTriangle(0.3, 0.3, 0.3))
	require.False(t, valid.RightTriangle(0.0, 0.0, 0.0))
}

func TestAcuteObtuseTriangle(t *testing.T) {
	// Equilateral: all spreads 3/4.
	require.True(t, valid.AcuteTriangle(0.75, 0.75, 0.75))
	require.False(t, valid.AcuteTriangle(1.0, 0.5, 0.5))

	s1, s2, s3 := rattrig.Spreads([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{0.1, 0.1})
	require.True(t, valid.ObtuseTriangle(s1, s2, s3))
	require.False(t, valid.ObtuseTriangle(0.1, 0.2, 0.3))
}

func TestIsoscelesTriangle(t *testing.T) {
	q1, q2, q3 := rattrig.Quadrances([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1})
	require.True(t, valid.IsoscelesTriangle(q1, q2, q3))
	require.False(t, valid.IsoscelesTriangle(9, 16, 25))
}

func TestEquilateralTriangle(t *testing.T) {
	require.True(t, valid.EquilateralTriangle(4, 4, 4))
	require.False(t, valid.EquilateralTriangle(4, 4, 5))

	q1, q2, q3 := rattrig.Quadrances([2]float64{0, 0}, [2]float64{2, 0}, [2]float64{1, 1.7320508075688772})
	require.InDelta(t, q1, q2, 1e-10)
	require.InDelta(t, q2, q3, 1e-10)
}

func TestTriangleInequality(t *testing.T) {
	require.True(t, valid.TriangleInequality(9, 16, 25))
	require.True(t, valid.TriangleInequality(2, 2, 8)) // degenerate but representable
	require.False(t, valid.TriangleInequality(1, 1, 9))
}

func TestValidQuadrance(t *testing.T) {
	require.True(t, valid.ValidQuadrance(4))
	require.True(t, valid.ValidQuadrance(0))
	require.False(t, valid.ValidQuadrance(-1))
}

func TestValidSpread(t *testing.T) {
	require.True(t, valid.ValidSpread(0.0))
	require.True(t, valid.ValidSpread(0.5))
	require.True(t, valid.ValidSpread(1.0))
	require.False(t, valid.ValidSpread(-0.1))
	require.False(t, valid.ValidSpread(1.1))
}

func TestPerpendicular(t *testing.T) {
	require.True(t, valid.Perpendicular([2]int{1, 0}, [2]int{0, 1}))
	require.True(t, valid.Perpendicular([2]int{3, 4}, [2]int{-4, 3}))
	require.False(t, valid.Perpendicular([2]int{1, 1}, [2]int{1, 0}))
}
