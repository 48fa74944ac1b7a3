// SPDX-License-Identifier: MIT

// Package gvc: per-scenario GVC decomposition.
//
// Purpose:
//   - Turn one transaction matrix into the per-country indicator row
//     (country, DVA, FVA, DVX, Exports, GVCPR). Column set and order are part
//     of the compatibility contract with downstream consumers.
package gvc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/emrio/twofold"
)

// CountryRow is one country's indicator row for a single scenario.
// Field order mirrors the presentation contract: country, DVA, FVA, DVX,
// Exports, GVCPR.
type CountryRow struct {
	Country string
	DVA     float64 // domestic value added embodied in own exports
	FVA     float64 // foreign value added embodied in own exports
	DVX     float64 // own value added re-exported via other countries
	Exports float64 // total cross-border exports (GVCPR denominator)
	GVCPR   float64 // (FVA+DVX)/Exports; NaN when Exports is zero
}

// Decompose computes the GVC indicator row of every country for the given
// transaction matrix.
//
// Blueprint:
//
//	Stage 1 (Police): under WithRejectNegativeCells, scan t for negative
//	  cells and fail; by default negative cells flow through.
//	Stage 2 (Resolve): (A, v, L) for t via the Leontief resolver.
//	Stage 3 (Exports): ê diagonal and per-country export totals.
//	Stage 4 (Flow): F[p,q] = v[p]·L[p,q]·e[q], the value added created at p
//	  embodied in exports originating at q.
//	Stage 5 (Aggregate): partition rows/columns by country; same-country
//	  cells feed DVA, cross-country cells feed FVA (by using country) and
//	  DVX (by producing country); GVCPR = (FVA+DVX)/Exports or NaN.
//
// Errors: ErrNegativeCell (strict mode), ErrShape, ErrSingular,
// twofold.ErrIdentity.
// Complexity: O(N³) time (dominated by Resolve), O(N²) memory.
func Decompose(sys *twofold.System, t *mat.Dense, opts ...Option) ([]CountryRow, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Stage 1: negative-cell policy.
	if cfg.RejectNegative {
		if err := scanNegative(t); err != nil {
			return nil, fmt.Errorf("gvc.Decompose: %w", err)
		}
	}

	// Stage 2: coefficient system and Leontief inverse.
	res, err := Resolve(sys, t)
	if err != nil {
		return nil, fmt.Errorf("gvc.Decompose: %w", err)
	}

	// Stage 3: export diagonal and country denominators.
	eDiag, byCountry := ExportDiagonal(sys, t)

	// Stage 4 + 5: flow matrix, aggregated on the fly — F itself is never
	// materialized, each cell lands directly in its country bucket.
	nc := sys.Nc()
	m := sys.NSub()
	dva := make([]float64, nc)
	fva := make([]float64, nc)
	dvx := make([]float64, nc)
	// Precompute the country index of every subsegment once.
	cIdx := make([]int, m)
	for p := 0; p < m; p++ {
		cIdx[p] = sys.CountryIndex(sys.CountryOf(p))
	}
	for p := 0; p < m; p++ {
		vp := res.V[p]
		if vp == 0 {
			continue // zero value-added coefficient contributes nothing
		}
		for q := 0; q < m; q++ {
			f := vp * res.L.At(p, q) * eDiag[q]
			if cIdx[p] == cIdx[q] {
				dva[cIdx[p]] += f
			} else {
				fva[cIdx[q]] += f // foreign value added in q's country's exports
				dvx[cIdx[p]] += f // p's country's value added re-exported
			}
		}
	}

	rows := make([]CountryRow, nc)
	for c, name := range sys.Countries() {
		gvcpr := math.NaN() // undefined, not a fault, when exports are zero
		if byCountry[c] > 0 {
			gvcpr = (fva[c] + dvx[c]) / byCountry[c]
		}
		rows[c] = CountryRow{
			Country: name,
			DVA:     dva[c],
			FVA:     fva[c],
			DVX:     dvx[c],
			Exports: byCountry[c],
			GVCPR:   gvcpr,
		}
	}

	return rows, nil
}

// scanNegative reports the first negative cell of t, row-major.
func scanNegative(t *mat.Dense) error {
	rows, cols := t.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if t.At(i, j) < 0 {
				return fmt.Errorf("cell (%d,%d) = %v: %w", i, j, t.At(i, j), ErrNegativeCell)
			}
		}
	}

	return nil
}

// GroupByCountry partitions the subsegment indices 0..2N-1 by origin country,
// following the system's country ordering. A pure grouping utility.
// Complexity: O(N).
func GroupByCountry(sys *twofold.System) [][]int {
	out := make([][]int, sys.Nc())
	for p := 0; p < sys.NSub(); p++ {
		c := sys.CountryIndex(sys.CountryOf(p))
		out[c] = append(out[c], p)
	}

	return out
}
