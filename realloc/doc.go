// Package realloc perturbs the twofold transaction matrix by randomly
// reallocating Firm-to-Firm links, producing the Monte Carlo scenario set for
// the robustness analysis.
//
// What:
//
//   - Candidates enumerates the eligible Firm→Firm subsegment pairs in a
//     deterministic row-major order, optionally restricted to cross-border
//     pairs.
//   - Reallocate is the structure-preserving local operator: it moves the
//     whole Firm–Firm flow of one base-sector pair into the three sibling
//     cells of the same 2×2 block, leaving the block's row and column sums
//     bit-for-bit unchanged.
//   - Generate draws k = round(rate·|candidates|) pairs without replacement
//     per round from one seeded stream and applies the operator to an
//     independent copy of the canonical matrix, returning R perturbed
//     matrices plus run metadata.
//
// Why:
//
//   - Because the operator redistributes within a 2×2 block only, every
//     base-sector-to-base-sector aggregate is invariant: the perturbation
//     stresses the Firm/Other split without changing the sector-level table,
//     which is exactly the internal-robustness question.
//
// Reproducibility:
//
//   - A single *rand.Rand stream seeded once is advanced across all rounds,
//     never reseeded, so the full sequence of draws — and therefore every
//     output matrix — is a pure function of the seed.
//
// Errors:
//
//   - ErrBadRate: reallocation rate outside [0,1] (fatal).
//   - ErrNoCandidates: the eligible pair set is empty (fatal; a configuration
//     error, never a degenerate valid run).
//
// Warnings:
//
//   - Meta.Warning is set when max(r_i + c_j − 1) exceeds tolerance: the
//     operator may then drive Other–Other cells negative. Advisory only; the
//     run still executes and downstream consumers decide how to treat
//     negative cells.
package realloc
