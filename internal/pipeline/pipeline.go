// Package pipeline runs the augmented-binning strategy over lightcurves:
// scan for fidelity, keep the anomalous samples raw, bin the rest, merge.
package pipeline

import (
	"math"
	"time"

	"github.com/asterfold/qfa-augment/internal/augment"
	"github.com/asterfold/qfa-augment/internal/binning"
	"github.com/asterfold/qfa-augment/internal/evolver"
	"github.com/asterfold/qfa-augment/internal/fidelity"
	"github.com/asterfold/qfa-augment/internal/lightcurve"
	"github.com/asterfold/qfa-augment/internal/preprocess"
	"github.com/asterfold/qfa-augment/internal/selector"
)

// #region process
// Process runs one lightcurve through Evolve → Select → Bin → Merge. It is
// pure and deterministic: no state survives between calls, so independent
// files can run concurrently with no coordination. Zero samples in, zero
// rows out; that is a valid degenerate result, not an error.
func Process(samples []lightcurve.Sample, cfg Config) (Result, error) {
	start := time.Now()

	if err := selector.Validate(cfg.RetentionPct); err != nil {
		return Result{}, err
	}
	if len(samples) == 0 {
		return Result{Report: Report{Gain: cfg.Evolver.Gain, Duration: time.Since(start)}}, nil
	}

	// Non-finite times would poison bin means and break output ordering;
	// reject them here. Flux is checked by the evolver.
	for i, s := range samples {
		if math.IsNaN(s.Time) || math.IsInf(s.Time, 0) {
			return Result{}, &evolver.InvalidInputError{Index: i, Value: s.Time, Field: "time"}
		}
	}

	flux := make([]float64, len(samples))
	for i, s := range samples {
		flux[i] = s.Flux
	}
	if cfg.ImputeNaN {
		flux = preprocess.ImputeNaN(flux)
		// Imputed values replace the raw flux everywhere downstream, so
		// kept rows and bin means never carry NaN into the output.
		imputed := make([]lightcurve.Sample, len(samples))
		for i := range samples {
			imputed[i] = lightcurve.Sample{Time: samples[i].Time, Flux: flux[i]}
		}
		samples = imputed
	}

	scanFlux := flux
	if cfg.Normalize {
		scanFlux = preprocess.Normalize(flux)
	}

	evCfg := cfg.Evolver
	if cfg.AdaptiveGain {
		evCfg.Gain = preprocess.AdaptiveGain(scanFlux, evCfg.Gain)
	}

	fids, err := fidelity.Scan(scanFlux, evCfg, cfg.Bidirectional)
	if err != nil {
		return Result{}, err
	}

	kept, err := selector.Select(fids, cfg.RetentionPct)
	if err != nil {
		return Result{}, err
	}

	mask := selector.KeepMask(len(samples), kept)
	bins := binning.Reduce(samples, mask)
	rows := augment.Merge(samples, kept, bins)

	return Result{
		Rows:     rows,
		Fidelity: fids,
		Kept:     kept,
		Report: Report{
			PointsIn:  len(samples),
			PointsOut: len(rows),
			Kept:      len(kept),
			Bins:      len(bins),
			Gain:      evCfg.Gain,
			Duration:  time.Since(start),
		},
	}, nil
}
// #endregion process
