// SPDX-License-Identifier: MIT

package realloc

import (
	"github.com/katalvlaran/emrio/twofold"
)

// Pair is an ordered (producing, using) subsegment index pair; both indices
// are Firm-tagged by construction.
type Pair struct {
	Row int // producing Firm subsegment index
	Col int // using Firm subsegment index
}

// Candidates lists the eligible Firm→Firm subsegment pairs of the system in
// deterministic row-major order over base-sector indices, so downstream
// sampling is reproducible from a fixed seed. With crossBorder set, only
// pairs whose base-sector countries differ qualify.
//
// An empty pool is a configuration error, not a valid degenerate result:
// ErrNoCandidates is returned and callers must not proceed to sampling.
//
// Complexity: O(N²) time and memory.
func Candidates(sys *twofold.System, crossBorder bool) ([]Pair, error) {
	n := sys.N()
	out := make([]Pair, 0, n*n)
	// Row-major over base sectors keeps the ordering stable across runs.
	for i := 0; i < n; i++ {
		from := sys.CountryOf(twofold.FirmIndex(i))
		for j := 0; j < n; j++ {
			if crossBorder && from == sys.CountryOf(twofold.FirmIndex(j)) {
				continue // domestic pair excluded under the cross-border restriction
			}
			out = append(out, Pair{Row: twofold.FirmIndex(i), Col: twofold.FirmIndex(j)})
		}
	}
	if len(out) == 0 {
		return nil, ErrNoCandidates
	}

	return out, nil
}
