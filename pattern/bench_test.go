package pattern_test

import (
	"testing"

	"github.com/foldkit/boxpleat/gen"
	"github.com/foldkit/boxpleat/pattern"
)

// denseGrid builds the full unit tessellation: 2·size·(size+1) creases
// and (size+1)² vertices.
func denseGrid(b *testing.B, size int) *pattern.Pattern {
	b.Helper()
	pt, err := gen.Build(size, gen.Tessellation())
	if err != nil {
		b.Fatal(err)
	}

	return pt
}

// BenchmarkAddCrease measures insertion throughput while filling a
// 64-grid with its full unit tessellation (8320 creases per iteration).
// Complexity: O(1) amortized per insert.
func BenchmarkAddCrease(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := gen.Build(64, gen.Tessellation()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCreasesAt measures the octant-sorted vertex view across every
// vertex of a dense 128-grid tessellation.
// Complexity: O(d log d) per vertex, d ≤ 8.
func BenchmarkCreasesAt(b *testing.B) {
	pt := denseGrid(b, 128)
	vertices := pt.Vertices()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range vertices {
			if _, err := pt.CreasesAt(v); err != nil {
				b.Fatalf("CreasesAt(%v): %v", v, err)
			}
		}
	}
}

// BenchmarkClone measures deep-copy cost on a dense 128-grid
// tessellation (33024 creases).
// Complexity: O(C+V)
func BenchmarkClone(b *testing.B) {
	pt := denseGrid(b, 128)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pt.Clone()
	}
}

// BenchmarkComponents measures component enumeration on a dense
// single-component 128-grid tessellation.
// Complexity: O(V+C)
func BenchmarkComponents(b *testing.B) {
	pt := denseGrid(b, 128)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pt.Components()
	}
}
