package align_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/highroad/align"
	"github.com/katalvlaran/highroad/scoring"
)

// benchProblem returns a seeded random DNA problem of lengths n and m.
func benchProblem(n, m int) align.Problem {
	rng := rand.New(rand.NewPCG(1, 2))
	return align.Problem{
		Row:    randomDNA(rng, n),
		Col:    randomDNA(rng, m),
		Policy: scoring.DefaultPolicy(),
	}
}

func benchmarkBuild(b *testing.B, n, m int) {
	p := benchProblem(n, m)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		align.Build(p)
	}
}

func benchmarkAlign(b *testing.B, n, m int) {
	p := benchProblem(n, m)
	opts := align.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := align.Align(p, opts); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkBuild_Small benchmarks table construction on 100×100 inputs.
func BenchmarkBuild_Small(b *testing.B) { benchmarkBuild(b, 100, 100) }

// BenchmarkBuild_Medium benchmarks table construction on 1000×1000 inputs.
func BenchmarkBuild_Medium(b *testing.B) { benchmarkBuild(b, 1000, 1000) }

// BenchmarkAlign_Small benchmarks Build+Traceback on 100×100 inputs.
func BenchmarkAlign_Small(b *testing.B) { benchmarkAlign(b, 100, 100) }

// BenchmarkAlign_Skewed benchmarks a short row against a long column.
func BenchmarkAlign_Skewed(b *testing.B) { benchmarkAlign(b, 50, 2000) }

// BenchmarkTraceback_Medium isolates the walk on a prebuilt 1000×1000 table.
func BenchmarkTraceback_Medium(b *testing.B) {
	p := benchProblem(1000, 1000)
	m, end, _ := align.Build(p)
	opts := align.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := align.Traceback(m, p, end, opts); err != nil {
			b.Fatalf("Traceback failed: %v", err)
		}
	}
}
