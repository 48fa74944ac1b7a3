// SPDX-License-Identifier: MIT

package realloc

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/emrio/twofold"
)

// Reallocate applies the structure-preserving local operator to the 2×2 block
// of t spanned by base sectors (iBase, jBase): with Δ = t[iF,jF],
//
//	t[iF,jF] = 0
//	t[iF,jO] += Δ
//	t[iO,jF] += Δ
//	t[iO,jO] -= Δ
//
// A Δ ≤ 0 is a no-op, not an error — in particular a second application to
// the same pair does nothing. The operator mutates t in place; callers own
// the copy discipline (the generator always works on CloneT copies).
//
// Invariant: the row sums of {iF,iO} restricted to columns {jF,jO} and the
// column sums of {jF,jO} restricted to rows {iF,iO} are bit-for-bit
// unchanged, so the base-sector aggregate flow iBase→jBase is invariant.
//
// The Other–Other cell may go negative when Δ exceeds it; the operator never
// guards against that. Share assignments with r_i + c_j ≤ 1 make negative
// results rare, and downstream consumers treat negative cells as a
// reportable, non-fatal condition.
//
// Complexity: O(1).
func Reallocate(t *mat.Dense, iBase, jBase int) {
	iF, iO := twofold.FirmIndex(iBase), twofold.OtherIndex(iBase)
	jF, jO := twofold.FirmIndex(jBase), twofold.OtherIndex(jBase)

	delta := t.At(iF, jF)
	if delta <= 0 {
		return // nothing to move; zero and negative cells are left alone
	}

	t.Set(iF, jF, 0)
	t.Set(iF, jO, t.At(iF, jO)+delta)
	t.Set(iO, jF, t.At(iO, jF)+delta)
	t.Set(iO, jO, t.At(iO, jO)-delta)
}
