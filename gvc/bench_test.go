package gvc_test

import (
	"testing"

	"github.com/katalvlaran/emrio/gvc"
	"github.com/katalvlaran/emrio/iotable"
	"github.com/katalvlaran/emrio/realloc"
	"github.com/katalvlaran/emrio/twofold"
)

// BenchmarkDecompose measures one scenario's full resolve-and-aggregate cost;
// the O(N³) Leontief inversion dominates.
func BenchmarkDecompose(b *testing.B) {
	bt, rows, cols := iotable.Demo()
	sys, err := twofold.Expand(bt, rows, cols)
	if err != nil {
		b.Fatal(err)
	}
	tm := sys.CloneT()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = gvc.Decompose(sys, tm); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSummarize measures the pooled pipeline over a 30-scenario set.
func BenchmarkSummarize(b *testing.B) {
	bt, rows, cols := iotable.Demo()
	sys, err := twofold.Expand(bt, rows, cols)
	if err != nil {
		b.Fatal(err)
	}
	res, err := realloc.Generate(sys, realloc.WithRounds(30), realloc.WithSeed(5))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = gvc.Summarize(sys, res.Matrices); err != nil {
			b.Fatal(err)
		}
	}
}
