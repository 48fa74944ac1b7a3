// Package gvc computes Leontief-inverse based global-value-chain indicators
// for twofold transaction matrices and pools them into uncertainty summaries
// across Monte Carlo scenarios.
//
// What:
//
//   - Resolve recomputes the coefficient system and the Leontief inverse
//     (I−A)⁻¹ for any candidate transaction matrix, booking every change in a
//     column's input mix against that column's value added so total output
//     never moves.
//   - ExportDiagonal builds the per-subsegment cross-border export totals
//     (intermediate plus final) and the per-country export denominators.
//   - Decompose computes the value-added flow matrix F = v̂·L·ê and aggregates
//     DVA, FVA, DVX, Exports and GVCPR per country for one scenario.
//   - Summarize runs Decompose across a scenario set on a bounded worker pool
//     and reports, per country and indicator, the five-number uncertainty
//     summary: median, lower/upper quantile, ±U% and ε = U%/10.
//
// Why:
//
//   - F[p,q] is the value added created at subsegment p embodied in exports
//     originating at q; partitioning its rows and columns by country yields
//     the domestic (DVA), foreign (FVA) and re-exported (DVX) components and
//     the participation rate GVCPR = (FVA+DVX)/Exports.
//
// Numerical degeneracy:
//
//   - Columns with zero output get all-zero coefficients; countries with zero
//     exports get GVCPR = NaN. Both are defined substitutions, not faults.
//
// Options:
//
//   - WithRejectNegativeCells: fail with ErrNegativeCell instead of tolerating
//     negative transaction cells produced by aggressive reallocation.
//   - WithProbs: quantile probabilities (default 0.025, 0.5, 0.975).
//   - WithWorkers: parallelism of the scenario loop (default NumCPU).
//
// Errors:
//
//   - ErrShape: candidate matrix does not match the system's 2N×2N shape.
//   - ErrSingular: (I−A) is numerically singular.
//   - ErrNegativeCell: negative transaction cell under strict mode.
//   - ErrNoScenarios: Summarize received an empty scenario list.
//   - ErrBadProbs: quantile probabilities not strictly ascending in (0,1).
//
// Concurrency:
//
//   - The System and the scenario matrices are read-only here; each worker
//     writes only its own per-scenario result slot, so no locking is needed.
package gvc
