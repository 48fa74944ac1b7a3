// SPDX-License-Identifier: MIT

package gvc

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/emrio/twofold"
)

// ExportDiagonal computes, for every producing subsegment p with origin
// country c_p, the total cross-border exports
//
//	e[p] = Σ_q T[p,q] over using subsegments q with country(q) ≠ c_p
//	     + Σ_d y_s[p,d] over destination countries d ≠ c_p,
//
// returning the diagonal of ê as a dense vector plus the per-country totals
// Exports_c = Σ_{p: country(p)=c} e[p], indexed by the system's country
// ordering. The per-country total is the GVCPR denominator.
//
// Complexity: O(N² + N·Nc).
func ExportDiagonal(sys *twofold.System, t *mat.Dense) (diag []float64, byCountry []float64) {
	m := sys.NSub()
	ys := sys.YS()
	diag = make([]float64, m)
	byCountry = make([]float64, sys.Nc())
	for p := 0; p < m; p++ {
		from := sys.CountryOf(p)
		fromIdx := sys.CountryIndex(from)
		var e float64
		// Cross-border intermediate flows out of p.
		for q := 0; q < m; q++ {
			if sys.CountryOf(q) != from {
				e += t.At(p, q)
			}
		}
		// Cross-border final demand from p.
		for d := 0; d < sys.Nc(); d++ {
			if d != fromIdx {
				e += ys.At(p, d)
			}
		}
		diag[p] = e
		byCountry[fromIdx] += e
	}

	return diag, byCountry
}
