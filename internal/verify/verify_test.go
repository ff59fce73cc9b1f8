package verify

import (
	"testing"

	"github.com/asterfold/qfa-augment/internal/lightcurve"
	"github.com/asterfold/qfa-augment/internal/pipeline"
)

func TestRunPassesOnRealResult(t *testing.T) {
	samples := make([]lightcurve.Sample, 200)
	for i := range samples {
		samples[i] = lightcurve.Sample{Time: float64(i), Flux: 0.01 * float64(i%13)}
	}
	cfg := pipeline.DefaultConfig()
	cfg.RetentionPct = 10

	res, err := pipeline.Process(samples, cfg)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	v := Run(samples, res, cfg.RetentionPct)
	if !v.Passed {
		t.Fatalf("expected pass, got: %s", v.Reason)
	}
	if len(v.Metrics) != 5 {
		t.Fatalf("expected 5 metrics, got %d", len(v.Metrics))
	}
}

func TestRunFlagsDisorderedOutput(t *testing.T) {
	samples := []lightcurve.Sample{{Time: 0, Flux: 0}, {Time: 1, Flux: 0}}
	res := pipeline.Result{
		Fidelity: []float64{1, 1},
		Rows: []lightcurve.OutputRow{
			{Time: 5, Flux: 0, Source: 0},
			{Time: 1, Flux: 0, Source: 0},
		},
	}
	v := Run(samples, res, 0)
	if v.Passed {
		t.Fatal("expected failure for disordered output")
	}
	for _, m := range v.Metrics {
		if m.Name == "output_ordered" && m.Pass {
			t.Fatal("output_ordered should fail")
		}
	}
}

func TestRunFlagsBadFidelity(t *testing.T) {
	samples := []lightcurve.Sample{{Time: 0, Flux: 0}}
	res := pipeline.Result{Fidelity: []float64{1.5}}
	v := Run(samples, res, 0)
	if v.Passed {
		t.Fatal("expected failure for out-of-range fidelity")
	}
}

func TestRunFlagsBadSource(t *testing.T) {
	samples := []lightcurve.Sample{{Time: 0, Flux: 0}}
	res := pipeline.Result{
		Fidelity: []float64{1},
		Rows:     []lightcurve.OutputRow{{Time: 0, Flux: 0, Source: 3}},
	}
	v := Run(samples, res, 0)
	if v.Passed {
		t.Fatal("expected failure for source value 3")
	}
}
