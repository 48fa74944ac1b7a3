// SPDX-License-Identifier: MIT

// Package twofold: the expansion engine.
//
// Purpose:
//   - Build the partition matrices R and C, expand the base table into the
//     2N×2N transaction system, derive the coefficient system (A, v), and
//     enforce the accounting contract before handing the System out.
//
// Determinism & Performance:
//   - Fixed loop orders everywhere; no map iteration touches numeric state.
//   - Two dense products dominate: O(N³) time, O(N²) memory.
package twofold

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/emrio/iotable"
)

// Expand builds the twofold system from a validated base table and the row
// and column Firm-share assignments.
//
// Blueprint:
//
//	Stage 1 (Validate): base-table shapes, share presence and [0,1] bounds.
//	Stage 2 (Partition): build R and C; verify every column sums to 1.
//	Stage 3 (Expand): T = R·T₀·Cᵀ; x = C·x₀; y = C·y₀; va = C·va₀; ys = C·ys₀.
//	Stage 4 (Derive): column-wise A and v, zeroing columns with x[j] ≤ 0.
//	Stage 5 (Contract): assert Σ_i A[i,j] + v[j] = 1 within IdentityTol.
//
// The identity assertion is fatal: a violation indicates a modeling or input
// error, so construction aborts with a wrapped ErrIdentity.
//
// Complexity: O(N³) time, O(N²) memory.
func Expand(bt *iotable.BaseTable, rowShares, colShares iotable.ShareMap) (*System, error) {
	// Stage 1: fail-fast validation of the table and both share maps.
	if err := bt.Validate(); err != nil {
		return nil, fmt.Errorf("twofold.Expand: %w", err)
	}
	rvec, err := rowShares.Vector(bt.Labels)
	if err != nil {
		return nil, fmt.Errorf("twofold.Expand: row shares: %w", err)
	}
	cvec, err := colShares.Vector(bt.Labels)
	if err != nil {
		return nil, fmt.Errorf("twofold.Expand: column shares: %w", err)
	}

	n := bt.N()
	nc := bt.Nc()
	m := 2 * n // subsegment count

	// Stage 2: partition matrices. Column j carries exactly two entries:
	// the Firm share on row 2j and its complement on row 2j+1.
	rPart := partition(rvec)
	cPart := partition(cvec)
	if err = checkPartition(rPart, "R"); err != nil {
		return nil, fmt.Errorf("twofold.Expand: %w", err)
	}
	if err = checkPartition(cPart, "C"); err != nil {
		return nil, fmt.Errorf("twofold.Expand: %w", err)
	}

	// Stage 3: outer-product expansion of the transaction matrix and the
	// column-aligned vectors. T = R·T₀·Cᵀ distributes each base-to-base flow
	// proportionally to both endpoints' shares.
	var rt, tExp mat.Dense
	rt.Mul(rPart, bt.T)          // (2N×N)·(N×N) → 2N×N
	tExp.Mul(&rt, cPart.T())     // (2N×N)·(N×2N) → 2N×2N
	x := expandVec(cvec, bt.X)   // x[2j] = c_j·x₀[j], x[2j+1] = (1−c_j)·x₀[j]
	y := expandVec(cvec, bt.Y)   // same split for final demand
	va := expandVec(cvec, bt.VA) // and for value added
	var ysExp mat.Dense
	ysExp.Mul(cPart, bt.YS) // (2N×N)·(N×Nc) → 2N×Nc

	// Stage 4: coefficient system.
	a, v := Coefficients(&tExp, x, va)

	// Stage 5: the accounting contract must carry over from the base table.
	if err = CheckColumnIdentity(a, v, x, IdentityTol); err != nil {
		return nil, fmt.Errorf("twofold.Expand: %w", err)
	}

	// Assemble subsegment metadata in fixed Firm-then-Other order per base.
	subs := make([]Subsegment, m)
	for j := 0; j < n; j++ {
		lbl := bt.Labels[j]
		subs[FirmIndex(j)] = Subsegment{Base: j, Tag: Firm, Country: lbl.Country, Sector: lbl.Sector}
		subs[OtherIndex(j)] = Subsegment{Base: j, Tag: Other, Country: lbl.Country, Sector: lbl.Sector}
	}

	countries := make([]string, nc)
	copy(countries, bt.Countries)

	return &System{
		n:         n,
		nc:        nc,
		countries: countries,
		subs:      subs,
		rowShares: rvec,
		colShares: cvec,
		rPart:     rPart,
		cPart:     cPart,
		t:         &tExp,
		x:         x,
		y:         y,
		va:        va,
		ys:        &ysExp,
		a:         a,
		v:         v,
	}, nil
}

// partition builds the 2N×N partition matrix for the given Firm shares.
// Column j has share[j] on row 2j and 1−share[j] on row 2j+1; all other
// entries stay zero.
func partition(shares []float64) *mat.Dense {
	n := len(shares)
	p := mat.NewDense(2*n, n, nil)
	for j, r := range shares {
		p.Set(FirmIndex(j), j, r)
		p.Set(OtherIndex(j), j, 1-r)
	}

	return p
}

// checkPartition verifies that every column of p sums to 1 within
// PartitionTol. The construction makes this hold by algebra; the check is a
// contract guard against share vectors mutated after validation.
func checkPartition(p *mat.Dense, name string) error {
	rows, cols := p.Dims()
	for j := 0; j < cols; j++ {
		var sum float64
		for i := 0; i < rows; i++ {
			sum += p.At(i, j)
		}
		if math.Abs(sum-1) > PartitionTol {
			return fmt.Errorf("%s column %d sums to %v: %w", name, j, sum, ErrPartition)
		}
	}

	return nil
}

// expandVec splits a base vector across Firm/Other subsegments by the given
// column shares: out[2j] = share[j]·v[j], out[2j+1] = (1−share[j])·v[j].
// Equivalent to the product C·v without materializing the sparse structure.
func expandVec(shares, v []float64) []float64 {
	out := make([]float64, 2*len(v))
	for j, c := range shares {
		out[FirmIndex(j)] = c * v[j]
		out[OtherIndex(j)] = (1 - c) * v[j]
	}

	return out
}

// Coefficients derives the technical-coefficient matrix A and the value-added
// coefficient vector v from a transaction matrix and column-aligned totals:
// A[i,j] = T[i,j]/x[j] and v[j] = va[j]/x[j]. Columns with x[j] ≤ 0 are
// defined to be all-zero in both A and v.
//
// Exported so the Leontief resolver reuses the exact same derivation on
// perturbed matrices.
// Complexity: O(N²).
func Coefficients(t *mat.Dense, x, va []float64) (*mat.Dense, []float64) {
	rows, cols := t.Dims()
	a := mat.NewDense(rows, cols, nil)
	v := make([]float64, cols)
	for j := 0; j < cols; j++ {
		if x[j] <= 0 {
			continue // degenerate column: all-zero coefficients by definition
		}
		inv := 1 / x[j]
		for i := 0; i < rows; i++ {
			a.Set(i, j, t.At(i, j)*inv)
		}
		v[j] = va[j] * inv
	}

	return a, v
}

// CheckColumnIdentity verifies that every column with positive output
// satisfies Σ_i A[i,j] + v[j] = 1 within tol, reporting the worst offender.
//
// Errors: ErrIdentity.
// Complexity: O(N²).
func CheckColumnIdentity(a *mat.Dense, v, x []float64, tol float64) error {
	rows, cols := a.Dims()
	worst, worstCol := 0.0, -1
	for j := 0; j < cols; j++ {
		if x[j] <= 0 {
			continue // zero-output columns are excluded from the identity
		}
		sum := v[j]
		for i := 0; i < rows; i++ {
			sum += a.At(i, j)
		}
		if dev := math.Abs(sum - 1); dev > worst {
			worst, worstCol = dev, j
		}
	}
	if worst > tol {
		return fmt.Errorf("column %d off by %.3e: %w", worstCol, worst, ErrIdentity)
	}

	return nil
}
