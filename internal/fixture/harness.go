package fixture

import (
	"fmt"
	"math"

	"github.com/asterfold/qfa-augment/internal/lightcurve"
	"github.com/asterfold/qfa-augment/internal/pipeline"
)

// #region replay-result

// ReplayResult reports one fixture replay.
type ReplayResult struct {
	Description string
	Passed      bool
	Rows        []lightcurve.OutputRow // freshly computed output
	Mismatches  []string               // human-readable diffs, empty when passed
}

// #endregion replay-result

// #region replay

// DefaultTolerance is the absolute tolerance for row comparison. Replay on
// the same platform is bit-exact; the tolerance absorbs cross-platform
// libm differences.
const DefaultTolerance = 1e-9

// Replay runs the pipeline on the fixture input and compares the output
// against the recorded expectation within an absolute tolerance.
func Replay(fx Fixture, tol float64) (ReplayResult, error) {
	if tol <= 0 {
		tol = DefaultTolerance
	}

	samples := make([]lightcurve.Sample, len(fx.Samples))
	for i, s := range fx.Samples {
		samples[i] = lightcurve.Sample{Time: s.Time, Flux: s.Flux}
	}

	res, err := pipeline.Process(samples, fx.Config.PipelineConfig())
	if err != nil {
		return ReplayResult{}, err
	}

	out := ReplayResult{Description: fx.Description, Rows: res.Rows, Passed: true}

	if len(res.Rows) != len(fx.Expected) {
		out.Passed = false
		out.Mismatches = append(out.Mismatches,
			fmt.Sprintf("row count: got %d, expected %d", len(res.Rows), len(fx.Expected)))
		return out, nil
	}

	for i, want := range fx.Expected {
		got := res.Rows[i]
		if math.Abs(got.Time-want.Time) > tol ||
			math.Abs(got.Flux-want.Flux) > tol ||
			got.Source != want.Source {
			out.Passed = false
			out.Mismatches = append(out.Mismatches,
				fmt.Sprintf("row %d: got (%v, %v, %d), expected (%v, %v, %d)",
					i, got.Time, got.Flux, got.Source, want.Time, want.Flux, want.Source))
		}
	}
	return out, nil
}

// #endregion replay
