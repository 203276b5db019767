package valid_test

import (
	"testing"

	"deedles.dev/rattrig/valid"
	"github.com/stretchr/testify/require"
)

func TestParallelLines(t *testing.T) {
	require.True(t, valid.ParallelLines([3]int{1, 1, 0}, [3]int{2, 2, 1}))
	require.False(t, valid.ParallelLines([3]int{1, 1, 0}, [3]int{1, -1, 0}))
}

func TestPerpendicularLines(t *testing.T) {
	require.True(t, valid.PerpendicularLines([3]int{1, 0, 0}, [3]int{0, 1, 0}))
	require.False(t, valid.PerpendicularLines([3]int{1, 1, 0}, [3]int{2, 2, 1}))
}

func TestPointOnLine(t *testing.T) {
	require.True(t, valid.PointOnLine([2]int{1, 1}, [3]int{1, -1, 0}))
	require.False(t, valid.PointOnLine([2]int{1, 2}, [3]int{1, -1, 0}))
}

func TestPointInTriangle(t *testing.T) {
	p1, p2, p3 := [2]float64{0, 0}, [2]float64{2, 0}, [2]float64{0, 2}

	require.True(t, valid.PointInTriangle([2]float64{0.5, 0.5}, p1, p2, p3))
	require.False(t, valid.PointInTriangle([2]float64{2, 2}, p1, p2, p3))

	// The boundary counts as inside.
	require.True(t, valid.PointInTriangle([2]float64{1, 0}, p1, p2, p3))
	require.True(t, valid.PointInTriangle(p1, p1, p2, p3))
}

func TestPointInTriangleExact(t *testing.T) {
	// Integer coordinates stay exact: no barycentric division happens.
	p1, p2, p3 := [2]int{0, 0}, [2]int{4, 0}, [2]int{0, 4}
	require.True(t, valid.PointInTriangle([2]int{1, 1}, p1, p2, p3))
	require.True(t, valid.PointInTriangle([2]int{2, 2}, p1, p2, p3))
	require.False(t, valid.PointInTriangle([2]int{3, 3}, p1, p2, p3))

	// Clockwise winding must not flip the answer.
	require.True(t, valid.PointInTriangle([2]int{1, 1}, p1, p3, p2))
}

func TestPointInDegenerateTriangle(t *testing.T) {
	p1, p2, p3 := [2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2}
	require.False(t, valid.PointInTriangle([2]int{1, 1}, p1, p2, p3))
}
