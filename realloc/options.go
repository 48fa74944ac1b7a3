package realloc

// Options configures one Monte Carlo generation run.
//
// Rounds      – number of independent perturbed matrices to produce (R).
// Rate        – fraction of the candidate pool reallocated per round, in [0,1].
// CrossBorder – restrict candidates to pairs whose base-sector countries differ.
// Seed        – seed of the single random stream driving every draw.
type Options struct {
	Rounds      int     // scenario count, must be positive
	Rate        float64 // reallocation rate, validated in Generate
	CrossBorder bool    // cross-border candidate restriction
	Seed        int64   // master seed for the draw stream
}

// Option represents a functional option for configuring Generate.
type Option func(*Options)

// WithRounds sets the number of scenarios to generate.
// Must pass a positive value; non-positive values cause ErrBadRounds in Generate.
func WithRounds(n int) Option {
	return func(o *Options) { o.Rounds = n }
}

// WithRate sets the reallocation rate. The range is validated in Generate
// (ErrBadRate) so that misconfiguration surfaces as a reported fatal error.
func WithRate(rate float64) Option {
	return func(o *Options) { o.Rate = rate }
}

// WithCrossBorder restricts the candidate pool to pairs whose base-sector
// countries differ.
func WithCrossBorder(enabled bool) Option {
	return func(o *Options) { o.CrossBorder = enabled }
}

// WithSeed sets the master seed. Equal seeds with equal options reproduce the
// output matrices bit for bit.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// DefaultOptions returns the defaults used when no option overrides them.
//
// Defaults:
//   - Rounds:      100
//   - Rate:        0.10 (the 10-percentage-point reference rate)
//   - CrossBorder: true
//   - Seed:        1
func DefaultOptions() Options {
	return Options{
		Rounds:      100,
		Rate:        0.10,
		CrossBorder: true,
		Seed:        1,
	}
}
