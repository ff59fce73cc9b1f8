package binning

import (
	"testing"

	"github.com/asterfold/qfa-augment/internal/lightcurve"
)

func mkSamples(times ...float64) []lightcurve.Sample {
	s := make([]lightcurve.Sample, len(times))
	for i, t := range times {
		s[i] = lightcurve.Sample{Time: t, Flux: t * 10}
	}
	return s
}

func TestReduceSplitsOnKeptSamples(t *testing.T) {
	samples := mkSamples(0, 1, 2, 3, 4, 5, 6)
	keep := []bool{false, false, false, true, true, false, false}
	bins := Reduce(samples, keep)
	if len(bins) != 2 {
		t.Fatalf("expected 2 bins, got %d", len(bins))
	}
	if bins[0].Start != 0 || bins[0].End != 2 || bins[0].Time != 1 || bins[0].Flux != 10 {
		t.Fatalf("bin 0: %+v", bins[0])
	}
	if bins[1].Start != 5 || bins[1].End != 6 || bins[1].Time != 5.5 || bins[1].Flux != 55 {
		t.Fatalf("bin 1: %+v", bins[1])
	}
}

func TestReduceSingletonRun(t *testing.T) {
	samples := mkSamples(0, 1, 2)
	keep := []bool{true, false, true}
	bins := Reduce(samples, keep)
	if len(bins) != 1 {
		t.Fatalf("expected 1 bin, got %d", len(bins))
	}
	if bins[0].Start != 1 || bins[0].End != 1 || bins[0].Time != 1 || bins[0].Flux != 10 {
		t.Fatalf("singleton bin: %+v", bins[0])
	}
}

func TestReduceAllKept(t *testing.T) {
	samples := mkSamples(0, 1, 2)
	bins := Reduce(samples, []bool{true, true, true})
	if len(bins) != 0 {
		t.Fatalf("expected no bins, got %d", len(bins))
	}
}

func TestReduceNothingKept(t *testing.T) {
	samples := mkSamples(0, 1, 2, 3)
	bins := Reduce(samples, []bool{false, false, false, false})
	if len(bins) != 1 {
		t.Fatalf("expected one bin covering everything, got %d", len(bins))
	}
	if bins[0].Time != 1.5 || bins[0].Flux != 15 {
		t.Fatalf("bin: %+v", bins[0])
	}
}

func TestReduceEmpty(t *testing.T) {
	if bins := Reduce(nil, nil); len(bins) != 0 {
		t.Fatalf("expected no bins for empty input, got %d", len(bins))
	}
}
