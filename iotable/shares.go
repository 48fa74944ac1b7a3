// SPDX-License-Identifier: MIT

package iotable

import "fmt"

// ShareMap assigns each base sector its Firm-side share in [0,1].
// Row and column disaggregation use independent ShareMaps; the Other-side
// share is always the complement 1−r.
type ShareMap map[SectorKey]float64

// Validate checks that every label has a share and every share lies in [0,1].
// Configuration errors are fatal by design: the expansion engine refuses to
// start from a partially specified share assignment.
//
// Errors: ErrShareMissing, ErrShareRange.
// Complexity: O(N).
func (sm ShareMap) Validate(labels []SectorKey) error {
	for _, k := range labels {
		r, ok := sm[k]
		if !ok {
			return fmt.Errorf("iotable: %s: %w", k, ErrShareMissing)
		}
		if r < 0 || r > 1 {
			return fmt.Errorf("iotable: %s has share %v: %w", k, r, ErrShareRange)
		}
	}

	return nil
}

// Vector materializes the shares in label order. It validates first, so a
// returned slice is always complete and in-range.
// Complexity: O(N).
func (sm ShareMap) Vector(labels []SectorKey) ([]float64, error) {
	if err := sm.Validate(labels); err != nil {
		return nil, err
	}
	out := make([]float64, len(labels))
	for i, k := range labels {
		out[i] = sm[k]
	}

	return out, nil
}
