package rattrig

import (
	"iter"
	"slices"

	"deedles.dev/xiter"
)

// PathQuadranceSeq yields the quadrance of each successive pair of
// points along a path. A path of n points produces n−1 quadrances.
func PathQuadranceSeq[T Scalar](points iter.Seq[[2]T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true
		var prev [2]T
		for p := range points {
			if !first && !yield(Quadrance(prev, p)) {
				return
			}
			first = false
			prev = p
		}
	}
}

// PathQuadrances is the same as [PathQuadranceSeq] but inserts the
// successive quadrances into dst instead of yielding them from an
// iterator. dst must have room for len(points)−1 values.
func PathQuadrances[T Scalar](dst []T, points [][2]T) {
	insertFromSeq(dst, PathQuadranceSeq(slices.Values(points)))
}

// QuadreaSeq yields the quadrea of each vertex triple, computed by
// [Archimedes] from the pairwise quadrances.
func QuadreaSeq[T Scalar](triangles iter.Seq[[3][2]T]) iter.Seq[T] {
	return xiter.Map(triangles, func(t [3][2]T) T {
		return Archimedes(Quadrances(t[0], t[1], t[2]))
	})
}

func insertFromSeq[T Scalar](dst []T, s iter.Seq[T]) {
	for i, q := range xiter.Enumerate(s) {
		dst[i] = q
	}
}
