package twofold

import "errors"

var (
	// ErrPartition indicates a partition-matrix column whose entries do not sum to 1.
	ErrPartition = errors.New("twofold: partition column must sum to 1")
	// ErrIdentity indicates the column accounting identity Σ_i A[i,j] + v[j] = 1
	// is violated beyond tolerance; this is a construction error, never recovered.
	ErrIdentity = errors.New("twofold: column accounting identity violated")
)
