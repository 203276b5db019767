//go:build go1.24

package rattrig_test

import (
	"testing"

	"deedles.dev/rattrig"
)

func BenchmarkQuadrance(b *testing.B) {
	for b.Loop() {
		rattrig.Quadrance([2]int64{1, 2}, [2]int64{4, 6})
	}
}

func BenchmarkQuadranceI64(b *testing.B) {
	for b.Loop() {
		rattrig.QuadranceI64([2]int64{1, 2}, [2]int64{4, 6})
	}
}

func BenchmarkSpreads(b *testing.B) {
	p1, p2, p3 := [2]float64{0, 0}, [2]float64{3, 0}, [2]float64{0, 4}
	for b.Loop() {
		rattrig.Spreads(p1, p2, p3)
	}
}

func BenchmarkArchimedes(b *testing.B) {
	for b.Loop() {
		rattrig.Archimedes[int64](9, 16, 25)
	}
}
