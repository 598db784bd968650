package solver_test

import (
	"math/rand"
	"testing"

	"github.com/arcwave/wfc/pattern"
	"github.com/arcwave/wfc/solver"
)

func stripeModelForBench(b *testing.B) *pattern.Learned {
	b.Helper()
	img := pattern.Grid{
		{0, 1, 0, 1, 0, 1},
		{0, 1, 0, 1, 0, 1},
		{0, 1, 0, 1, 0, 1},
	}
	learned, err := pattern.Learn([]pattern.Grid{img}, 2)
	if err != nil {
		b.Fatalf("Learn: %v", err)
	}
	return learned
}

// BenchmarkSolve_20x20 measures a full Generate-equivalent call at a modest
// output size, the scale most interactive tools would request.
func BenchmarkSolve_20x20(b *testing.B) {
	learned := stripeModelForBench(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rng := rand.New(rand.NewSource(int64(i)))
		if _, _, err := solver.Solve(learned, nil, 20, 20, 50, solver.WithRNG(rng)); err != nil {
			b.Fatalf("Solve: %v", err)
		}
	}
}

// BenchmarkSolve_60x60 measures a larger output to surface how the attempt
// loop and propagation queue scale with grid area.
func BenchmarkSolve_60x60(b *testing.B) {
	learned := stripeModelForBench(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rng := rand.New(rand.NewSource(int64(i)))
		if _, _, err := solver.Solve(learned, nil, 60, 60, 50, solver.WithRNG(rng)); err != nil {
			b.Fatalf("Solve: %v", err)
		}
	}
}
