// Package iotable defines the base (pre-disaggregation) multi-regional
// input-output table and its configuration surface.
//
// What:
//
//   - BaseTable wraps the sector-level accounts: intermediate flows T (N×N),
//     total output x, final demand y, value added va (length N), and final
//     demand by destination country y_s (N×Nc).
//   - SectorKey is the (country, sector) product type identifying one base
//     sector; Labels fixes the row/column ordering of every matrix.
//   - ShareMap assigns each SectorKey a Firm share in [0,1], validated eagerly
//     at construction rather than looked up lazily at use sites.
//   - Demo returns the illustrative two-country, three-sector table used by
//     the examples and the end-to-end tests.
//
// Why:
//
//   - Downstream engines (twofold expansion, Monte Carlo reallocation, GVC
//     decomposition) assume well-formed numeric inputs; this package is the
//     single fail-fast gate that guarantees shapes, label/country consistency
//     and share bounds before any algebra runs.
//
// Errors:
//
//   - ErrNilTable: a nil *BaseTable or nil matrix field was supplied.
//   - ErrEmptyTable: the table has no sectors or no countries.
//   - ErrShape: a matrix or vector does not match the declared dimensions.
//   - ErrUnknownCountry: a sector label names a country absent from the list.
//   - ErrShareMissing: a labeled sector has no entry in a ShareMap.
//   - ErrShareRange: a share lies outside [0,1].
//
// Complexity:
//
//   - Validate: O(N + Nc); ShareMap.Vector: O(N). No allocation beyond the
//     returned share vector.
package iotable
