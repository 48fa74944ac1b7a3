// SPDX-License-Identifier: MIT

// Package twofold: domain types and O(1) accessors for the expanded system.
// Construction lives in expand.go; this file holds the Subsegment/System
// types and the index mapping between base sectors and subsegments.
package twofold

import (
	"gonum.org/v1/gonum/mat"
)

// Tolerances for the construction-time contract checks.
const (
	// PartitionTol bounds the deviation of a partition column sum from 1.
	PartitionTol = 1e-12
	// IdentityTol bounds the deviation of Σ_i A[i,j] + v[j] from 1.
	IdentityTol = 1e-10
)

// Tag distinguishes the two subsegments of a base sector.
type Tag uint8

const (
	// Firm is the firm-like subsegment, index 2j for base sector j.
	Firm Tag = iota
	// Other is the residual subsegment, index 2j+1.
	Other
)

// String returns "firm" or "other".
func (t Tag) String() string {
	if t == Firm {
		return "firm"
	}

	return "other"
}

// Subsegment describes one row/column of the expanded system.
type Subsegment struct {
	Base    int    // base-sector index in 0..N-1
	Tag     Tag    // Firm or Other
	Country string // country of the base sector
	Sector  string // sector code of the base sector
}

// Label renders the subsegment as "country.sector.tag".
func (s Subsegment) Label() string { return s.Country + "." + s.Sector + "." + s.Tag.String() }

// FirmIndex returns the subsegment index of base sector j's Firm part.
func FirmIndex(j int) int { return 2 * j }

// OtherIndex returns the subsegment index of base sector j's Other part.
func OtherIndex(j int) int { return 2*j + 1 }

// BaseIndex inverts the Firm/Other expansion: subsegment k belongs to base k/2.
func BaseIndex(k int) int { return k / 2 }

// TagOf reports whether subsegment k is the Firm or the Other part.
func TagOf(k int) Tag { return Tag(k % 2) }

// System is the immutable twofold context threaded through the reallocation
// and GVC engines. It is read-only shared state once Expand returns: no
// component mutates it, and scenario work always operates on CloneT copies.
type System struct {
	n         int          // base-sector count N
	nc        int          // country count
	countries []string     // ordered country list
	subs      []Subsegment // length 2N, index = subsegment index
	rowShares []float64    // Firm row shares r_j, length N
	colShares []float64    // Firm column shares c_j, length N
	rPart     *mat.Dense   // R partition matrix, 2N×N
	cPart     *mat.Dense   // C partition matrix, 2N×N
	t         *mat.Dense   // canonical expanded transactions, 2N×2N
	x         []float64    // total output, length 2N
	y         []float64    // total final demand, length 2N
	va        []float64    // value added, length 2N
	ys        *mat.Dense   // destination final demand, 2N×Nc
	a         *mat.Dense   // technical coefficients, 2N×2N
	v         []float64    // value-added coefficients, length 2N
}

// N returns the base-sector count.
func (s *System) N() int { return s.n }

// NSub returns the subsegment count 2N.
func (s *System) NSub() int { return 2 * s.n }

// Nc returns the country count.
func (s *System) Nc() int { return s.nc }

// Countries returns the ordered country list. Treat as read-only.
func (s *System) Countries() []string { return s.countries }

// CountryIndex returns the position of country c, or -1 if unknown.
func (s *System) CountryIndex(c string) int {
	for d, name := range s.countries {
		if name == c {
			return d
		}
	}

	return -1
}

// Sub returns the metadata of subsegment k.
func (s *System) Sub(k int) Subsegment { return s.subs[k] }

// CountryOf returns the origin country of subsegment k.
func (s *System) CountryOf(k int) string { return s.subs[k].Country }

// RowShare returns the Firm row share r_j used to build R for base sector j.
func (s *System) RowShare(j int) float64 { return s.rowShares[j] }

// ColShare returns the Firm column share c_j used to build C for base sector j.
func (s *System) ColShare(j int) float64 { return s.colShares[j] }

// R returns the 2N×N row partition matrix. Treat as read-only.
func (s *System) R() *mat.Dense { return s.rPart }

// C returns the 2N×N column partition matrix. Treat as read-only.
func (s *System) C() *mat.Dense { return s.cPart }

// T returns the canonical expanded transaction matrix. Treat as read-only;
// scenario perturbation must go through CloneT.
func (s *System) T() *mat.Dense { return s.t }

// CloneT returns an independent deep copy of the canonical transaction
// matrix. Scenario surgery always happens on such a copy, so no two scenarios
// ever alias the same backing storage.
// Complexity: O(N²).
func (s *System) CloneT() *mat.Dense {
	var out mat.Dense
	out.CloneFrom(s.t)

	return &out
}

// X returns the expanded total-output vector. Treat as read-only.
func (s *System) X() []float64 { return s.x }

// Y returns the expanded final-demand vector. Treat as read-only.
func (s *System) Y() []float64 { return s.y }

// VA returns the expanded value-added vector. Treat as read-only.
func (s *System) VA() []float64 { return s.va }

// YS returns the 2N×Nc destination final-demand matrix. Treat as read-only.
func (s *System) YS() *mat.Dense { return s.ys }

// A returns the canonical technical-coefficient matrix. Treat as read-only.
func (s *System) A() *mat.Dense { return s.a }

// V returns the canonical value-added coefficient vector. Treat as read-only.
func (s *System) V() []float64 { return s.v }
