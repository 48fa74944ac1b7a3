// SPDX-License-Identifier: MIT

// Package gvc: the Leontief resolver.
//
// Purpose:
//   - Recompute (A, v, L) for a candidate transaction matrix under the
//     original output levels, preserving the column accounting identity by
//     booking input-mix changes against value added.
//
// Determinism & Performance:
//   - The O(N³) inversion dominates; one Resolve per scenario, safe to run on
//     parallel workers since it only reads the shared System.
package gvc

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/emrio/twofold"
)

// Resolved bundles the derived objects of one candidate transaction matrix.
// All fields are pure functions of (System, Tnew), recomputed whole — never
// incrementally patched.
type Resolved struct {
	A  *mat.Dense // technical coefficients of Tnew
	V  []float64  // value-added coefficients after the rebooking
	VA []float64  // adjusted value added per column
	L  *mat.Dense // Leontief inverse (I−A)⁻¹
}

// Resolve recomputes the coefficient system and Leontief inverse for tnew.
//
// Blueprint:
//
//	Stage 1 (Validate): tnew must be 2N×2N.
//	Stage 2 (Rebook): va' = va + (colsum(T₀) − colsum(tnew)) — flow removed
//	  from a column's inputs becomes value added of that column and vice
//	  versa, so the original output levels stay valid.
//	Stage 3 (Derive): A and v column-wise from tnew and the original x
//	  (zero column when x[j] ≤ 0); re-check the column identity (fatal).
//	Stage 4 (Invert): L = (I−A)⁻¹ via dense LU; singularity is reported.
//
// Errors: ErrShape, twofold.ErrIdentity (wrapped), ErrSingular.
// Complexity: O(N³) time, O(N²) memory.
func Resolve(sys *twofold.System, tnew *mat.Dense) (*Resolved, error) {
	// Stage 1: shape guard.
	m := sys.NSub()
	if r, c := tnew.Dims(); r != m || c != m {
		return nil, fmt.Errorf("gvc.Resolve: got %dx%d, want %dx%d: %w", r, c, m, m, ErrShape)
	}

	// Stage 2: rebook column-sum deltas into value added.
	tOrig := sys.T()
	vaOld := sys.VA()
	vaNew := make([]float64, m)
	for j := 0; j < m; j++ {
		var oldSum, newSum float64
		for i := 0; i < m; i++ {
			oldSum += tOrig.At(i, j)
			newSum += tnew.At(i, j)
		}
		vaNew[j] = vaOld[j] + (oldSum - newSum)
	}

	// Stage 3: coefficient system under the original output levels. The
	// rebooking makes the identity hold by algebra; the check is the contract
	// guard against inconsistent inputs.
	a, v := twofold.Coefficients(tnew, sys.X(), vaNew)
	if err := twofold.CheckColumnIdentity(a, v, sys.X(), twofold.IdentityTol); err != nil {
		return nil, fmt.Errorf("gvc.Resolve: %w", err)
	}

	// Stage 4: Leontief inverse of (I−A).
	ima := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			v0 := -a.At(i, j)
			if i == j {
				v0++
			}
			ima.Set(i, j, v0)
		}
	}
	var l mat.Dense
	if err := l.Inverse(ima); err != nil {
		return nil, fmt.Errorf("gvc.Resolve: %v: %w", err, ErrSingular)
	}

	return &Resolved{A: a, V: v, VA: vaNew, L: &l}, nil
}
