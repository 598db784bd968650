package wfc_test

import (
	"testing"

	"github.com/arcwave/wfc"
)

// BenchmarkLearnAndGenerate measures the end-to-end facade path a typical
// caller exercises: learn once, then generate a 32x32 tilemap from it.
func BenchmarkLearnAndGenerate(b *testing.B) {
	images := [][][]int{{
		{0, 0, 1, 1},
		{0, 0, 1, 1},
		{2, 2, 3, 3},
		{2, 2, 3, 3},
	}}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		model, err := wfc.Learn(images, 2)
		if err != nil {
			b.Fatalf("Learn: %v", err)
		}
		if _, _, err := model.Generate(32, 32, 50); err != nil {
			b.Fatalf("Generate: %v", err)
		}
	}
}
