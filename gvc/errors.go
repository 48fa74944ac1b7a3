package gvc

import "errors"

var (
	// ErrShape indicates a candidate matrix whose dimensions differ from 2N×2N.
	ErrShape = errors.New("gvc: transaction matrix must be 2N x 2N")
	// ErrSingular indicates that (I−A) could not be inverted.
	ErrSingular = errors.New("gvc: I-A is singular")
	// ErrNegativeCell indicates a negative transaction cell under strict mode.
	ErrNegativeCell = errors.New("gvc: negative transaction cell")
	// ErrNoScenarios indicates an empty scenario list passed to Summarize.
	ErrNoScenarios = errors.New("gvc: scenario list must be non-empty")
	// ErrBadProbs indicates quantile probabilities not strictly ascending in (0,1).
	ErrBadProbs = errors.New("gvc: quantile probs must be strictly ascending within (0,1)")
)
