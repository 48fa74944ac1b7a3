package realloc

import "errors"

var (
	// ErrBadRate indicates a reallocation rate outside the closed interval [0,1].
	ErrBadRate = errors.New("realloc: rate must lie in [0,1]")
	// ErrNoCandidates indicates an empty eligible-pair set. Sampling from zero
	// candidates is a configuration error, distinct from an empty valid result.
	ErrNoCandidates = errors.New("realloc: no eligible Firm-Firm candidate pairs")
	// ErrBadRounds indicates a non-positive scenario count.
	ErrBadRounds = errors.New("realloc: rounds must be positive")
)
