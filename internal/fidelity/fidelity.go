// Package fidelity turns an ordered flux sequence into a same-length,
// same-order fidelity trace by threading an evolver through it.
package fidelity

import (
	"errors"

	"github.com/asterfold/qfa-augment/internal/evolver"
)

// #region forward
// Forward runs a fresh evolver over flux in order. One pass, O(1) state
// beyond the output buffer. Empty input yields an empty trace.
func Forward(flux []float64, cfg evolver.Config) ([]float64, error) {
	e := evolver.New(cfg)
	trace := make([]float64, len(flux))
	for i, v := range flux {
		fid, _, err := e.Step(v)
		if err != nil {
			return nil, err
		}
		trace[i] = fid
	}
	return trace, nil
}
// #endregion forward

// #region scan
// Scan produces the fidelity trace for flux. With bidirectional set it also
// scans the reversed sequence and combines the two traces with an
// elementwise max, which removes the phase lag of a purely causal scan and
// sharpens event edges from both sides.
func Scan(flux []float64, cfg evolver.Config, bidirectional bool) ([]float64, error) {
	fwd, err := Forward(flux, cfg)
	if err != nil {
		return nil, err
	}
	if !bidirectional {
		return fwd, nil
	}

	n := len(flux)
	rev := make([]float64, n)
	for i, v := range flux {
		rev[n-1-i] = v
	}
	bwd, err := Forward(rev, cfg)
	if err != nil {
		// Report the index in original orientation.
		var inv *evolver.InvalidInputError
		if errors.As(err, &inv) {
			inv.Index = n - 1 - inv.Index
		}
		return nil, err
	}

	for i := range fwd {
		if b := bwd[n-1-i]; b > fwd[i] {
			fwd[i] = b
		}
	}
	return fwd, nil
}
// #endregion scan
