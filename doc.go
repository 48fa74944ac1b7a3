// Package emrio is an in-memory engine for enterprise-level multi-regional
// input-output (EMRIO) accounting and Monte Carlo robustness analysis of
// global-value-chain indicators.
//
// 🚀 What is emrio?
//
//	A numeric library that brings together:
//		• Twofold disaggregation: split each (country, sector) of a base
//		  input-output table into Firm and Other subsegments while preserving
//		  every accounting identity
//		• Structure-preserving reallocation: local 2×2 surgery on the
//		  transaction matrix that leaves base-sector aggregates untouched
//		• Monte Carlo scenario generation: seeded, reproducible perturbation
//		  of Firm-to-Firm links at a configurable reallocation rate
//		• GVC decomposition: Leontief-inverse based DVA/FVA/DVX/GVCPR per
//		  country for any candidate transaction matrix
//		• Uncertainty summaries: medians, confidence bounds and normalized
//		  uncertainty pooled across scenarios
//
// ✨ Why choose emrio?
//
//   - Deterministic – one seed reproduces every draw, scenario and summary
//   - Contract-checked – accounting identities are verified at construction,
//     never silently violated
//   - Value semantics – scenarios never alias each other's backing storage
//   - Built on gonum – dense algebra and quantiles by the ecosystem standard
//
// Everything is organized under four subpackages:
//
//	iotable/ — base-table record, share configuration, synthetic demo table
//	twofold/ — partition matrices, expansion engine, the immutable System
//	realloc/ — candidate enumeration, reallocation operator, Monte Carlo
//	gvc/     — Leontief resolver, export diagonal, decomposition, summaries
//
// Typical pipeline:
//
//	base table ──▶ twofold.Expand ──▶ realloc.Generate ──▶ gvc.Summarize
//
//	go get github.com/katalvlaran/emrio
package emrio
