package fidelity

import (
	"errors"
	"math"
	"testing"

	"github.com/asterfold/qfa-augment/internal/evolver"
)

func TestForwardLengthAndRange(t *testing.T) {
	flux := make([]float64, 500)
	for i := range flux {
		flux[i] = math.Sin(float64(i) / 7)
	}
	trace, err := Forward(flux, evolver.DefaultConfig())
	if err != nil {
		t.Fatalf("forward: %v", err)
	}
	if len(trace) != len(flux) {
		t.Fatalf("trace length %d != input length %d", len(trace), len(flux))
	}
	for i, f := range trace {
		if f < 0 || f > 1 {
			t.Fatalf("fidelity %v out of [0,1] at %d", f, i)
		}
	}
}

func TestScanEmptyInput(t *testing.T) {
	trace, err := Scan(nil, evolver.DefaultConfig(), true)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(trace) != 0 {
		t.Fatalf("expected empty trace, got %d values", len(trace))
	}
}

func TestScanBidirectionalAtLeastForward(t *testing.T) {
	flux := []float64{0, 0, 0, 5, 5, 0, 0, 0}
	cfg := evolver.DefaultConfig()
	fwd, err := Scan(flux, cfg, false)
	if err != nil {
		t.Fatalf("forward scan: %v", err)
	}
	both, err := Scan(flux, cfg, true)
	if err != nil {
		t.Fatalf("bidirectional scan: %v", err)
	}
	for i := range fwd {
		if both[i] < fwd[i] {
			t.Fatalf("max combine lowered fidelity at %d: %v < %v", i, both[i], fwd[i])
		}
	}
}

func TestScanBidirectionalSymmetricPulse(t *testing.T) {
	// A symmetric pulse scanned from both ends gives a symmetric trace.
	flux := []float64{0, 0, 0, 4, 4, 4, 0, 0, 0}
	trace, err := Scan(flux, evolver.DefaultConfig(), true)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	n := len(trace)
	for i := 0; i < n/2; i++ {
		if d := math.Abs(trace[i] - trace[n-1-i]); d > 1e-12 {
			t.Fatalf("asymmetry %v between %d and %d", d, i, n-1-i)
		}
	}
}

func TestScanReportsOriginalIndex(t *testing.T) {
	flux := []float64{0, 0, math.NaN(), 0}
	_, err := Scan(flux, evolver.DefaultConfig(), true)
	var inv *evolver.InvalidInputError
	if !errors.As(err, &inv) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
	if inv.Index != 2 {
		t.Fatalf("expected index 2, got %d", inv.Index)
	}
}
