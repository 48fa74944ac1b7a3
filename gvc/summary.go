// SPDX-License-Identifier: MIT

// Package gvc: the uncertainty summarizer.
//
// Purpose:
//   - Pool per-country indicator values across Monte Carlo scenarios and
//     reduce them to five-number uncertainty summaries.
//
// Concurrency:
//   - Scenario decompositions are independent; they run on a bounded worker
//     pool with one result slot per scenario index. No shared mutable
//     accumulator exists, so no locking is required (merge happens after the
//     pool drains).
package gvc

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/emrio/twofold"
)

const (
	// medianZeroTol decides when a median counts as zero for the U% guard.
	medianZeroTol = 1e-12
	// epsRateDivisor normalizes U% to a 10-percentage-point reallocation rate.
	epsRateDivisor = 10
)

// FiveNum is the five-number uncertainty summary of one indicator.
type FiveNum struct {
	Median float64 // central quantile (probs[1])
	Lo     float64 // lower confidence bound (probs[0])
	Hi     float64 // upper confidence bound (probs[2])
	UPct   float64 // half-width relative to the median, in percent
	Eps    float64 // UPct normalized per 10 percentage points of rate
}

// SummaryRow carries the five FiveNum summaries of one country, in the fixed
// presentation order DVA, FVA, DVX, Exports, GVCPR (25 numeric fields).
type SummaryRow struct {
	Country string
	DVA     FiveNum
	FVA     FiveNum
	DVX     FiveNum
	Exports FiveNum
	GVCPR   FiveNum
}

// Summary bundles the per-scenario indicator tables with the per-country
// uncertainty rows.
type Summary struct {
	Scenarios [][]CountryRow // Scenarios[r][c]: scenario r, country c
	Rows      []SummaryRow   // one row per country, system ordering
	Probs     [3]float64     // quantile probabilities actually used
}

// Summarize decomposes every scenario matrix and reduces the pooled indicator
// values to per-country five-number summaries.
//
// Blueprint:
//
//	Stage 1 (Validate): non-empty scenario list; probs strictly ascending in
//	  (0,1); worker count clamped to [1, len(mats)].
//	Stage 2 (Fan out): decompose scenarios on the worker pool, each worker
//	  writing only its own result slot; fail on the first scenario error.
//	Stage 3 (Reduce): per country × indicator, sort the pooled values and
//	  take the three quantiles; U% = 0 when the median is (near) zero, else
//	  (hi−lo)/(2·median)·100; ε = U%/10.
//
// NaN indicator values (GVCPR of a zero-export country) are excluded from
// the pooled quantiles; if every value is NaN the whole FiveNum is NaN.
//
// Errors: ErrNoScenarios, ErrBadProbs, plus any Decompose error.
// Complexity: O(R·N³) time across workers, O(R·Nc) memory for the tables.
func Summarize(sys *twofold.System, mats []*mat.Dense, opts ...Option) (*Summary, error) {
	// Stage 1: options and validation.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(mats) == 0 {
		return nil, fmt.Errorf("gvc.Summarize: %w", ErrNoScenarios)
	}
	p := cfg.Probs
	if !(p[0] > 0 && p[0] < p[1] && p[1] < p[2] && p[2] < 1) {
		return nil, fmt.Errorf("gvc.Summarize: probs %v: %w", p, ErrBadProbs)
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(mats) {
		workers = len(mats)
	}

	// Stage 2: parallel decomposition, one result slot per scenario.
	scen := make([][]CountryRow, len(mats))
	errs := make([]error, len(mats))
	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for r := range jobs {
				scen[r], errs[r] = Decompose(sys, mats[r], passthrough(cfg))
			}
		}()
	}
	for r := range mats {
		jobs <- r
	}
	close(jobs)
	wg.Wait()
	for r, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("gvc.Summarize: scenario %d: %w", r, err)
		}
	}

	// Stage 3: reduce per country × indicator.
	nc := sys.Nc()
	rows := make([]SummaryRow, nc)
	vals := make([]float64, 0, len(mats)) // reusable pool buffer
	for c, name := range sys.Countries() {
		rows[c] = SummaryRow{
			Country: name,
			DVA:     fiveNum(pool(scen, c, &vals, func(cr CountryRow) float64 { return cr.DVA }), p),
			FVA:     fiveNum(pool(scen, c, &vals, func(cr CountryRow) float64 { return cr.FVA }), p),
			DVX:     fiveNum(pool(scen, c, &vals, func(cr CountryRow) float64 { return cr.DVX }), p),
			Exports: fiveNum(pool(scen, c, &vals, func(cr CountryRow) float64 { return cr.Exports }), p),
			GVCPR:   fiveNum(pool(scen, c, &vals, func(cr CountryRow) float64 { return cr.GVCPR }), p),
		}
	}

	return &Summary{Scenarios: scen, Rows: rows, Probs: p}, nil
}

// passthrough forwards the policy-relevant knobs of an already-resolved
// Options value into a per-call Option for Decompose.
func passthrough(cfg Options) Option {
	return func(o *Options) { o.RejectNegative = cfg.RejectNegative }
}

// pool collects one indicator across all scenarios for country c, skipping
// NaN values (undefined indicators never enter the quantiles). The shared
// buffer is reused between calls; fiveNum consumes it before the next pool.
func pool(scen [][]CountryRow, c int, buf *[]float64, pick func(CountryRow) float64) []float64 {
	vals := (*buf)[:0]
	for _, table := range scen {
		if v := pick(table[c]); !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	*buf = vals

	return vals
}

// fiveNum reduces pooled values to the five-number summary. An empty pool
// (all values undefined) yields NaN across the board.
func fiveNum(vals []float64, probs [3]float64) FiveNum {
	if len(vals) == 0 {
		nan := math.NaN()

		return FiveNum{Median: nan, Lo: nan, Hi: nan, UPct: nan, Eps: nan}
	}
	// stat.Quantile requires ascending input.
	sort.Float64s(vals)
	lo := stat.Quantile(probs[0], stat.Empirical, vals, nil)
	median := stat.Quantile(probs[1], stat.Empirical, vals, nil)
	hi := stat.Quantile(probs[2], stat.Empirical, vals, nil)

	// U% is half the quantile spread relative to the median; a (near-)zero
	// median is defined as zero uncertainty to keep the ratio meaningful.
	var uPct float64
	if math.Abs(median) > medianZeroTol {
		uPct = (hi - lo) / (2 * median) * 100
	}

	return FiveNum{
		Median: median,
		Lo:     lo,
		Hi:     hi,
		UPct:   uPct,
		Eps:    uPct / epsRateDivisor,
	}
}
