// SPDX-License-Identifier: MIT

package iotable

import "gonum.org/v1/gonum/mat"

// Demo dimensions: two countries ("A", "B") with three sectors each.
const (
	demoHomeShare = 0.7 // share of final demand served domestically
	demoN         = 6
	demoNc        = 2
)

// Demo returns the illustrative two-country, three-sector base table together
// with row and column Firm-share assignments. The transaction flows and output
// levels are synthetic literals; value added and final demand are derived from
// them so that both accounting identities hold exactly:
//
//	Σ_i T[i,j] + VA[j] = X[j]   and   Σ_j T[i,j] + Y[i] = X[i].
//
// Final demand is split demoHomeShare domestic / complement cross-border, so
// YS row sums reproduce Y exactly. Every row share r and column share c
// satisfy r+c ≤ 1, keeping the reallocation operator's Other–Other cells
// nonnegative on this table.
//
// The same table backs the runnable examples and the end-to-end tests.
func Demo() (*BaseTable, ShareMap, ShareMap) {
	labels := []SectorKey{
		{Country: "A", Sector: "agri"},
		{Country: "A", Sector: "manu"},
		{Country: "A", Sector: "serv"},
		{Country: "B", Sector: "agri"},
		{Country: "B", Sector: "manu"},
		{Country: "B", Sector: "serv"},
	}
	x := []float64{100, 120, 90, 110, 80, 130}
	flows := []float64{
		10, 12, 8, 5, 3, 6,
		9, 14, 10, 4, 2, 5,
		7, 9, 6, 3, 2, 4,
		5, 6, 4, 12, 9, 14,
		3, 4, 3, 8, 7, 10,
		6, 8, 5, 11, 8, 15,
	}
	T := mat.NewDense(demoN, demoN, flows)

	// Derive VA and Y from T and X so the identities hold to the last bit.
	va := make([]float64, demoN)
	y := make([]float64, demoN)
	for j := 0; j < demoN; j++ {
		var col float64
		for i := 0; i < demoN; i++ {
			col += T.At(i, j)
		}
		va[j] = x[j] - col
	}
	for i := 0; i < demoN; i++ {
		var row float64
		for j := 0; j < demoN; j++ {
			row += T.At(i, j)
		}
		y[i] = x[i] - row
	}

	// Split final demand by destination: home country gets demoHomeShare.
	ys := mat.NewDense(demoN, demoNc, nil)
	for i := 0; i < demoN; i++ {
		home := 0 // country "A"
		if labels[i].Country == "B" {
			home = 1
		}
		ys.Set(i, home, demoHomeShare*y[i])
		ys.Set(i, 1-home, (1-demoHomeShare)*y[i])
	}

	bt := &BaseTable{
		Countries: []string{"A", "B"},
		Labels:    labels,
		T:         T,
		X:         x,
		Y:         y,
		VA:        va,
		YS:        ys,
	}

	rowShares := ShareMap{
		labels[0]: 0.40, labels[1]: 0.35, labels[2]: 0.45,
		labels[3]: 0.38, labels[4]: 0.42, labels[5]: 0.40,
	}
	colShares := ShareMap{
		labels[0]: 0.50, labels[1]: 0.45, labels[2]: 0.55,
		labels[3]: 0.48, labels[4]: 0.52, labels[5]: 0.50,
	}

	return bt, rowShares, colShares
}
