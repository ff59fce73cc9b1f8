package fixture

import (
	"path/filepath"
	"testing"

	"github.com/asterfold/qfa-augment/internal/lightcurve"
	"github.com/asterfold/qfa-augment/internal/pipeline"
)

func transitSamples() []lightcurve.Sample {
	return []lightcurve.Sample{
		{Time: 0, Flux: 0}, {Time: 1, Flux: 0}, {Time: 2, Flux: 0},
		{Time: 3, Flux: 5}, {Time: 4, Flux: 5},
		{Time: 5, Flux: 0}, {Time: 6, Flux: 0},
	}
}

func TestCaptureReplayRoundTrip(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.RetentionPct = 30

	fx, err := Capture("transit scenario", transitSamples(), cfg)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if len(fx.Expected) != 4 {
		t.Fatalf("expected 4 recorded rows, got %d", len(fx.Expected))
	}

	result, err := Replay(fx, 0)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !result.Passed {
		t.Fatalf("replay mismatches: %v", result.Mismatches)
	}
}

func TestSaveLoad(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.RetentionPct = 30
	fx, err := Capture("round trip", transitSamples(), cfg)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}

	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := Save(path, fx); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	result, err := Replay(loaded, 0)
	if err != nil {
		t.Fatalf("replay loaded: %v", err)
	}
	if !result.Passed {
		t.Fatalf("loaded fixture mismatches: %v", result.Mismatches)
	}
}

func TestReplayDetectsDrift(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.RetentionPct = 30
	fx, err := Capture("drift", transitSamples(), cfg)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	fx.Expected[0].Flux += 0.5

	result, err := Replay(fx, 0)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if result.Passed {
		t.Fatal("expected mismatch after perturbing the expectation")
	}
	if len(result.Mismatches) == 0 {
		t.Fatal("expected mismatch details")
	}
}
