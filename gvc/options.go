package gvc

import "runtime"

// Options configures Decompose and Summarize.
//
// RejectNegative – treat negative transaction cells as fatal (ErrNegativeCell)
// instead of carrying them through the decomposition.
// Probs          – the (lower, median, upper) quantile probabilities.
// Workers        – parallel workers for the scenario loop in Summarize.
type Options struct {
	RejectNegative bool       // strict negative-cell policy
	Probs          [3]float64 // quantile probabilities, strictly ascending in (0,1)
	Workers        int        // scenario-loop parallelism
}

// Option represents a functional option for configuring the gvc engines.
type Option func(*Options)

// WithRejectNegativeCells makes negative transaction cells fatal. By default
// they are tolerated and flow through the scenario tables, matching the
// warn-only posture of the generator.
func WithRejectNegativeCells() Option {
	return func(o *Options) { o.RejectNegative = true }
}

// WithProbs sets the (lower, median, upper) quantile probabilities used by
// the summarizer. Validated in Summarize (ErrBadProbs).
func WithProbs(lo, mid, hi float64) Option {
	return func(o *Options) { o.Probs = [3]float64{lo, mid, hi} }
}

// WithWorkers caps the number of parallel scenario workers. Values below 1
// fall back to the default in Summarize.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// DefaultOptions returns the defaults used when no option overrides them.
//
// Defaults:
//   - RejectNegative: false (tolerate and report)
//   - Probs:          0.025, 0.5, 0.975 (95% interval around the median)
//   - Workers:        runtime.NumCPU()
func DefaultOptions() Options {
	return Options{
		RejectNegative: false,
		Probs:          [3]float64{0.025, 0.5, 0.975},
		Workers:        runtime.NumCPU(),
	}
}
