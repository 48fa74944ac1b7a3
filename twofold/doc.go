// Package twofold implements the twofold (Firm/Other) disaggregation of a
// base input-output table and the immutable System context consumed by every
// downstream engine.
//
// What:
//
//   - Expand splits each base sector into exactly two subsegments, Firm and
//     Other, via partition matrices R (rows) and C (columns), producing the
//     expanded transaction system T = R·T₀·Cᵀ together with column-aligned
//     output, final-demand and value-added vectors and the destination
//     final-demand matrix.
//   - System is the read-only result: subsegment labels, Firm shares, the
//     canonical transaction matrix, and the derived coefficient system (A, v).
//   - Coefficients and CheckColumnIdentity expose the exact column-wise
//     derivation and the accounting contract so the Leontief resolver reuses
//     them unchanged.
//
// Why:
//
//   - Outer-product expansion distributes each base-to-base flow
//     proportionally to both endpoints' Firm shares; it is the only
//     construction under which the post-expansion column identity
//     Σ_i A[i,j] + v[j] = 1 holds automatically whenever the base identity
//     held, with no per-cell correction.
//
// Indexing:
//
//   - Base sector j ∈ 0..N-1 expands to Firm = 2j and Other = 2j+1.
//   - BaseIndex(k) = k/2 inverts the expansion; TagOf(k) = k%2.
//
// Errors:
//
//   - ErrPartition: a partition-matrix column does not sum to 1 (1e-12).
//   - ErrIdentity: the post-expansion accounting identity is off by more than
//     1e-10 — a modeling/input error, fatal to construction.
//   - Configuration errors from iotable (missing/out-of-range shares, shape
//     mismatches) pass through wrapped.
//
// Complexity:
//
//   - Expand: O(N³) time for the two dense products, O(N²) memory.
//   - All accessors: O(1).
package twofold
