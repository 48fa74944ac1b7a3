// SPDX-License-Identifier: MIT

// Package iotable: domain types for the base sector-level table.
// This file contains ONLY the domain-facing record and its fail-fast
// validation; share configuration lives in shares.go and the synthetic
// demo table in demo.go, per the package conventions.
package iotable

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SectorKey identifies one base sector as a (country, sector) pair.
// Determinism relies on the Labels slice order, not on map iteration.
type SectorKey struct {
	Country string // country code, must appear in BaseTable.Countries
	Sector  string // sector code, free-form
}

// String renders the key as "country.sector" for error messages.
func (k SectorKey) String() string { return k.Country + "." + k.Sector }

// BaseTable is the immutable sector-level input-output record handed to the
// expansion engine. Row/column i of every field refers to Labels[i]; column d
// of YS refers to Countries[d].
//
// The accounting convention is column-side: for every sector j,
// Σ_i T[i,j] + VA[j] = X[j], and row-side: Σ_j T[i,j] + Y[i] = X[i] with
// Y[i] = Σ_d YS[i,d]. Validate checks shapes and label consistency only;
// the numeric identities are enforced downstream by twofold.Expand.
type BaseTable struct {
	Countries []string    // ordered country list, length Nc
	Labels    []SectorKey // ordered sector labels, length N
	T         *mat.Dense  // N×N intermediate transaction flows
	X         []float64   // length N, total output per sector
	Y         []float64   // length N, total final demand per sector
	VA        []float64   // length N, value added per sector
	YS        *mat.Dense  // N×Nc, final demand split by destination country
}

// N returns the number of base sectors.
func (bt *BaseTable) N() int { return len(bt.Labels) }

// Nc returns the number of countries.
func (bt *BaseTable) Nc() int { return len(bt.Countries) }

// Validate checks that every field is present and dimensionally consistent
// with Labels and Countries, and that every label's country is known.
// It is the single fail-fast gate before any algebra runs.
//
// Errors: ErrNilTable, ErrEmptyTable, ErrShape, ErrUnknownCountry.
// Complexity: O(N + Nc).
func (bt *BaseTable) Validate() error {
	// Reject nil receiver and nil matrix fields with the unified sentinel.
	if bt == nil || bt.T == nil || bt.YS == nil {
		return ErrNilTable
	}
	n, nc := bt.N(), bt.Nc()
	if n == 0 || nc == 0 {
		return ErrEmptyTable
	}
	// Transaction matrix must be square N×N.
	if r, c := bt.T.Dims(); r != n || c != n {
		return fmt.Errorf("iotable: T is %dx%d, want %dx%d: %w", r, c, n, n, ErrShape)
	}
	// Column-aligned vectors must all have length N.
	if len(bt.X) != n || len(bt.Y) != n || len(bt.VA) != n {
		return fmt.Errorf("iotable: X/Y/VA lengths %d/%d/%d, want %d: %w",
			len(bt.X), len(bt.Y), len(bt.VA), n, ErrShape)
	}
	// Destination final demand must be N×Nc.
	if r, c := bt.YS.Dims(); r != n || c != nc {
		return fmt.Errorf("iotable: YS is %dx%d, want %dx%d: %w", r, c, n, nc, ErrShape)
	}
	// Every label must reference a declared country.
	known := make(map[string]bool, nc)
	for _, c := range bt.Countries {
		known[c] = true
	}
	for i, k := range bt.Labels {
		if !known[k.Country] {
			return fmt.Errorf("iotable: label %d (%s): %w", i, k, ErrUnknownCountry)
		}
	}

	return nil
}

// CountryIndex returns the position of country c in Countries, or -1.
// Complexity: O(Nc); Nc is small, a map would not pay for itself.
func (bt *BaseTable) CountryIndex(c string) int {
	for d, name := range bt.Countries {
		if name == c {
			return d
		}
	}

	return -1
}
