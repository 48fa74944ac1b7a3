package realloc_test

import (
	"testing"

	"github.com/katalvlaran/emrio/iotable"
	"github.com/katalvlaran/emrio/realloc"
	"github.com/katalvlaran/emrio/twofold"
)

// BenchmarkGenerate measures scenario generation; per round the cost is one
// 2N×2N clone plus k constant-time block reallocations.
func BenchmarkGenerate(b *testing.B) {
	bt, rows, cols := iotable.Demo()
	sys, err := twofold.Expand(bt, rows, cols)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = realloc.Generate(sys, realloc.WithRounds(100), realloc.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}
