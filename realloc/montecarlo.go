// SPDX-License-Identifier: MIT

// Package realloc: the Monte Carlo scenario generator.
//
// Purpose:
//   - Drive the local reallocation operator over seeded random draws from the
//     candidate pool, producing the ordered scenario set consumed by the GVC
//     engines.
//
// Determinism:
//   - One *rand.Rand stream, seeded once, advanced across rounds in a fixed
//     order. Parallel consumers downstream never touch the stream: all
//     sampling decisions are made here, sequentially.
package realloc

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/emrio/twofold"
)

// excessTol bounds how far max(r_i + c_j − 1) may exceed zero before the
// balance-risk warning is raised.
const excessTol = 1e-12

// Meta records the run diagnostics alongside the scenario matrices.
type Meta struct {
	CandidateCount int     // size of the eligible Firm-Firm pool
	DropCount      int     // pairs reallocated per round, round(rate·pool)
	Rate           float64 // configured reallocation rate
	CrossBorder    bool    // whether the cross-border restriction was active
	Seed           int64   // master seed of the draw stream
	MaxExcess      float64 // max over base pairs of r_i + c_j − 1
	Warning        bool    // true when MaxExcess > tolerance (negative-cell risk)
}

// Result is the ordered scenario set plus its metadata.
type Result struct {
	Matrices []*mat.Dense // length Rounds, independent copies
	Meta     Meta
}

// Generate produces Options.Rounds perturbed transaction matrices.
//
// Blueprint:
//
//	Stage 1 (Validate): rate ∈ [0,1], rounds > 0 — both fatal.
//	Stage 2 (Enumerate): candidate pool via Candidates; empty pool is fatal.
//	Stage 3 (Diagnose): MaxExcess = max(r_i + c_j − 1); advisory Warning flag.
//	Stage 4 (Sample & apply): per round, draw k pairs without replacement
//	  from the single seeded stream, clone the canonical T, apply the
//	  reallocation operator per sampled pair (mapped to its base pair first).
//
// Scenario matrices never share backing storage with each other or with the
// canonical system.
//
// Errors: ErrBadRate, ErrBadRounds, ErrNoCandidates.
// Complexity: O(Rounds·(N² + k)) time, O(Rounds·N²) memory.
func Generate(sys *twofold.System, opts ...Option) (*Result, error) {
	// Stage 1: build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Rate < 0 || cfg.Rate > 1 {
		return nil, fmt.Errorf("realloc.Generate: rate %v: %w", cfg.Rate, ErrBadRate)
	}
	if cfg.Rounds <= 0 {
		return nil, fmt.Errorf("realloc.Generate: rounds %d: %w", cfg.Rounds, ErrBadRounds)
	}

	// Stage 2: deterministic candidate pool; an empty pool aborts the run.
	cands, err := Candidates(sys, cfg.CrossBorder)
	if err != nil {
		return nil, fmt.Errorf("realloc.Generate: %w", err)
	}

	// Stage 3: balance-risk diagnostic. The worst pair is the worst row share
	// against the worst column share, so two linear scans suffice.
	maxExcess := maxShareExcess(sys)

	k := int(math.Round(cfg.Rate * float64(len(cands))))

	// Stage 4: sampling and surgery. One stream for all rounds; never reseeded.
	rng := rand.New(rand.NewSource(cfg.Seed))
	idx := make([]int, len(cands)) // reusable index buffer for the partial shuffle
	mats := make([]*mat.Dense, cfg.Rounds)
	for r := 0; r < cfg.Rounds; r++ {
		for i := range idx {
			idx[i] = i
		}
		t := sys.CloneT()
		// Partial Fisher-Yates: the first k slots become a uniform draw
		// without replacement from the candidate pool.
		for d := 0; d < k; d++ {
			swap := d + rng.Intn(len(idx)-d)
			idx[d], idx[swap] = idx[swap], idx[d]
			p := cands[idx[d]]
			Reallocate(t, twofold.BaseIndex(p.Row), twofold.BaseIndex(p.Col))
		}
		mats[r] = t
	}

	return &Result{
		Matrices: mats,
		Meta: Meta{
			CandidateCount: len(cands),
			DropCount:      k,
			Rate:           cfg.Rate,
			CrossBorder:    cfg.CrossBorder,
			Seed:           cfg.Seed,
			MaxExcess:      maxExcess,
			Warning:        maxExcess > excessTol,
		},
	}, nil
}

// maxShareExcess returns max over base-sector pairs (i,j) of
// rowShare(i) + colShare(j) − 1. Positive values flag pairs whose full
// reallocation can overdraw the Other-Other cell.
func maxShareExcess(sys *twofold.System) float64 {
	maxRow, maxCol := math.Inf(-1), math.Inf(-1)
	for j := 0; j < sys.N(); j++ {
		maxRow = math.Max(maxRow, sys.RowShare(j))
		maxCol = math.Max(maxCol, sys.ColShare(j))
	}

	return maxRow + maxCol - 1
}
