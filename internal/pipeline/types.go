package pipeline

import (
	"time"

	"github.com/asterfold/qfa-augment/internal/evolver"
	"github.com/asterfold/qfa-augment/internal/lightcurve"
)

// #region config
// Config controls the per-file pipeline.
type Config struct {
	RetentionPct  float64        // percentage of samples kept at full resolution
	Evolver       evolver.Config // recurrence parameters
	Bidirectional bool           // forward + backward scan, max combine
	Normalize     bool           // median/MAD normalize flux before scanning
	AdaptiveGain  bool           // scale gain by the noise level of the curve
	ImputeNaN     bool           // replace NaN flux with the median before scanning
}

// DefaultConfig mirrors the production defaults.
func DefaultConfig() Config {
	return Config{
		RetentionPct:  5.0,
		Evolver:       evolver.DefaultConfig(),
		Bidirectional: true,
		Normalize:     true,
		AdaptiveGain:  true,
	}
}
// #endregion config

// #region report
// Report captures per-file telemetry from one pipeline run.
type Report struct {
	PointsIn  int
	PointsOut int
	Kept      int
	Bins      int
	Gain      float64 // effective gain after adaptation
	Duration  time.Duration
}
// #endregion report

// #region result
// Result bundles everything produced by Process.
type Result struct {
	Rows     []lightcurve.OutputRow
	Fidelity []float64 // same length and order as the input samples
	Kept     []int     // ascending kept indices
	Report   Report
}
// #endregion result

// #region file-outcome
// FileOutcome reports one file of a batch run.
type FileOutcome struct {
	File   string // input path
	Output string // written output path, empty on failure
	Report Report
	Err    error
}

// RunOptions controls the batch runner.
type RunOptions struct {
	OutputDir string
	Prefix    string // output file name prefix, default "augmented_"
	Workers   int    // worker goroutines, default NumCPU
}
// #endregion file-outcome
