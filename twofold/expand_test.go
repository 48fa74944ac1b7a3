// Package twofold_test validates the expansion engine: partition-matrix
// invariants, aggregate preservation of the outer-product expansion, the
// column accounting identity, and the System accessors.
package twofold_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/emrio/iotable"
	"github.com/katalvlaran/emrio/twofold"
)

// expandDemo builds the canonical demo system or fails the test.
func expandDemo(t *testing.T) *twofold.System {
	t.Helper()
	bt, rows, cols := iotable.Demo()
	sys, err := twofold.Expand(bt, rows, cols)
	require.NoError(t, err)

	return sys
}

// ------------------------------------------------------------------------
// 1. Configuration errors: construction must refuse bad inputs.
// ------------------------------------------------------------------------

func TestExpand_MissingShare(t *testing.T) {
	bt, rows, cols := iotable.Demo()
	delete(rows, bt.Labels[4])
	_, err := twofold.Expand(bt, rows, cols)
	require.ErrorIs(t, err, iotable.ErrShareMissing)
}

func TestExpand_ShareOutOfRange(t *testing.T) {
	bt, rows, cols := iotable.Demo()
	cols[bt.Labels[1]] = 1.01
	_, err := twofold.Expand(bt, rows, cols)
	require.ErrorIs(t, err, iotable.ErrShareRange)
}

func TestExpand_BadTable(t *testing.T) {
	bt, rows, cols := iotable.Demo()
	bt.X = bt.X[:3] // break the vector length
	_, err := twofold.Expand(bt, rows, cols)
	require.ErrorIs(t, err, iotable.ErrShape)
}

// ------------------------------------------------------------------------
// 2. Partition matrices: each column must sum to exactly 1.
// ------------------------------------------------------------------------

func TestExpand_PartitionColumns(t *testing.T) {
	sys := expandDemo(t)
	for name, p := range map[string]*mat.Dense{"R": sys.R(), "C": sys.C()} {
		rows, cols := p.Dims()
		require.Equal(t, sys.NSub(), rows)
		require.Equal(t, sys.N(), cols)
		for j := 0; j < cols; j++ {
			var sum float64
			nonzero := 0
			for i := 0; i < rows; i++ {
				if v := p.At(i, j); v != 0 {
					sum += v
					nonzero++
				}
			}
			assert.InDelta(t, 1.0, sum, twofold.PartitionTol, "%s column %d", name, j)
			assert.LessOrEqual(t, nonzero, 2, "%s column %d has spurious entries", name, j)
		}
	}
}

// ------------------------------------------------------------------------
// 3. Aggregate preservation: the expansion must be a pure refinement.
// ------------------------------------------------------------------------

func TestExpand_BlockAggregates(t *testing.T) {
	bt, rows, cols := iotable.Demo()
	sys, err := twofold.Expand(bt, rows, cols)
	require.NoError(t, err)

	// Every 2×2 block of the expanded matrix must sum back to the base flow.
	n := bt.N()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			block := sys.T().At(2*i, 2*j) + sys.T().At(2*i, 2*j+1) +
				sys.T().At(2*i+1, 2*j) + sys.T().At(2*i+1, 2*j+1)
			assert.InDelta(t, bt.T.At(i, j), block, 1e-10, "block (%d,%d)", i, j)
		}
	}

	// Column-aligned vectors split by the column shares and sum back exactly.
	for j := 0; j < n; j++ {
		assert.InDelta(t, bt.X[j], sys.X()[2*j]+sys.X()[2*j+1], 1e-12)
		assert.InDelta(t, bt.VA[j], sys.VA()[2*j]+sys.VA()[2*j+1], 1e-12)
		assert.InDelta(t, bt.Y[j], sys.Y()[2*j]+sys.Y()[2*j+1], 1e-12)
	}

	// Destination final demand refines the same way.
	for j := 0; j < n; j++ {
		for d := 0; d < bt.Nc(); d++ {
			got := sys.YS().At(2*j, d) + sys.YS().At(2*j+1, d)
			assert.InDelta(t, bt.YS.At(j, d), got, 1e-12)
		}
	}
}

// ------------------------------------------------------------------------
// 4. The accounting identity after expansion (core contract).
// ------------------------------------------------------------------------

func TestExpand_ColumnIdentity(t *testing.T) {
	sys := expandDemo(t)
	m := sys.NSub()
	worst := 0.0
	for j := 0; j < m; j++ {
		if sys.X()[j] <= 0 {
			continue
		}
		sum := sys.V()[j]
		for i := 0; i < m; i++ {
			sum += sys.A().At(i, j)
		}
		worst = math.Max(worst, math.Abs(sum-1))
	}
	assert.Less(t, worst, 1e-9, "max column identity deviation")
}

// ------------------------------------------------------------------------
// 5. Accessors and index mapping.
// ------------------------------------------------------------------------

func TestIndexMapping(t *testing.T) {
	for j := 0; j < 5; j++ {
		assert.Equal(t, 2*j, twofold.FirmIndex(j))
		assert.Equal(t, 2*j+1, twofold.OtherIndex(j))
		assert.Equal(t, j, twofold.BaseIndex(twofold.FirmIndex(j)))
		assert.Equal(t, j, twofold.BaseIndex(twofold.OtherIndex(j)))
		assert.Equal(t, twofold.Firm, twofold.TagOf(twofold.FirmIndex(j)))
		assert.Equal(t, twofold.Other, twofold.TagOf(twofold.OtherIndex(j)))
	}
}

func TestSystem_Accessors(t *testing.T) {
	bt, rows, cols := iotable.Demo()
	sys, err := twofold.Expand(bt, rows, cols)
	require.NoError(t, err)

	require.Equal(t, 6, sys.N())
	require.Equal(t, 12, sys.NSub())
	require.Equal(t, 2, sys.Nc())
	assert.Equal(t, []string{"A", "B"}, sys.Countries())

	for j, k := range bt.Labels {
		assert.Equal(t, rows[k], sys.RowShare(j))
		assert.Equal(t, cols[k], sys.ColShare(j))
		firm := sys.Sub(twofold.FirmIndex(j))
		assert.Equal(t, j, firm.Base)
		assert.Equal(t, twofold.Firm, firm.Tag)
		assert.Equal(t, k.Country, firm.Country)
		assert.Equal(t, k.Country+"."+k.Sector+".firm", firm.Label())
	}
	assert.Equal(t, "A", sys.CountryOf(0))
	assert.Equal(t, "B", sys.CountryOf(twofold.FirmIndex(3)))
	assert.Equal(t, 1, sys.CountryIndex("B"))
	assert.Equal(t, -1, sys.CountryIndex("Z"))
}

func TestSystem_CloneT_Independent(t *testing.T) {
	sys := expandDemo(t)
	clone := sys.CloneT()
	orig := sys.T().At(0, 0)
	clone.Set(0, 0, orig+42)
	assert.Equal(t, orig, sys.T().At(0, 0), "canonical T must not alias clones")
}

// ------------------------------------------------------------------------
// 6. Coefficient derivation edge cases.
// ------------------------------------------------------------------------

func TestCoefficients_ZeroColumn(t *testing.T) {
	tm := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	x := []float64{10, 0} // second column has no output
	va := []float64{6, 4}
	a, v := twofold.Coefficients(tm, x, va)

	assert.InDelta(t, 0.1, a.At(0, 0), 1e-15)
	assert.InDelta(t, 0.3, a.At(1, 0), 1e-15)
	assert.InDelta(t, 0.6, v[0], 1e-15)
	// Zero-output column is defined to be all-zero.
	assert.Zero(t, a.At(0, 1))
	assert.Zero(t, a.At(1, 1))
	assert.Zero(t, v[1])

	// The identity check must skip the degenerate column.
	require.NoError(t, twofold.CheckColumnIdentity(a, v, x, twofold.IdentityTol))
}

func TestCheckColumnIdentity_Violation(t *testing.T) {
	a := mat.NewDense(1, 1, []float64{0.5})
	err := twofold.CheckColumnIdentity(a, []float64{0.4}, []float64{1}, twofold.IdentityTol)
	require.ErrorIs(t, err, twofold.ErrIdentity)
}
