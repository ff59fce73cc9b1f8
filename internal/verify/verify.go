// Package verify runs lightweight post-run validation on a pipeline result.
// Pure checks over data already in memory; used by qfa-replay and tests.
package verify

import (
	"fmt"
	"math"

	"github.com/asterfold/qfa-augment/internal/lightcurve"
	"github.com/asterfold/qfa-augment/internal/pipeline"
)

// #region types
// Metric is one named check with its measured value.
type Metric struct {
	Name  string
	Value float64
	Pass  bool
}

// Result is the outcome of a verification run.
type Result struct {
	Passed  bool
	Reason  string
	Metrics []Metric
}
// #endregion types

// #region run
// Run checks the invariants a correct pipeline result must satisfy: fidelity
// trace length and range, non-decreasing output times, source values in
// {0,1}, and the kept-row count within one sample of the retention target.
func Run(samples []lightcurve.Sample, res pipeline.Result, retentionPct float64) Result {
	var metrics []Metric
	passed := true
	var failReasons []string

	check := func(name string, value float64, ok bool, reason string) {
		metrics = append(metrics, Metric{Name: name, Value: value, Pass: ok})
		if !ok {
			passed = false
			failReasons = append(failReasons, reason)
		}
	}

	// 1. Fidelity trace length matches input
	check("fidelity_length", float64(len(res.Fidelity)),
		len(res.Fidelity) == len(samples),
		fmt.Sprintf("fidelity length %d != input length %d", len(res.Fidelity), len(samples)))

	// 2. Every fidelity in [0,1]
	rangeOK := true
	for _, f := range res.Fidelity {
		if f < 0 || f > 1 || math.IsNaN(f) {
			rangeOK = false
			break
		}
	}
	check("fidelity_range", boolVal(rangeOK), rangeOK, "fidelity outside [0,1]")

	// 3. Output times non-decreasing
	ordered := true
	for i := 1; i < len(res.Rows); i++ {
		if res.Rows[i].Time < res.Rows[i-1].Time {
			ordered = false
			break
		}
	}
	check("output_ordered", boolVal(ordered), ordered, "output times not non-decreasing")

	// 4. Source values in {0,1}
	sourcesOK := true
	detail := 0
	for _, row := range res.Rows {
		switch row.Source {
		case lightcurve.SourceBin:
		case lightcurve.SourceDetail:
			detail++
		default:
			sourcesOK = false
		}
	}
	check("source_values", boolVal(sourcesOK), sourcesOK, "source value outside {0,1}")

	// 5. Kept-row count within one sample of the retention target
	target := int(float64(len(samples)) * retentionPct / 100.0)
	diff := detail - target
	if diff < 0 {
		diff = -diff
	}
	check("retention_bound", float64(detail), diff <= 1,
		fmt.Sprintf("detail rows %d deviate from target %d by more than one", detail, target))

	reason := "all checks passed"
	if !passed {
		reason = failReasons[0]
		for _, r := range failReasons[1:] {
			reason += "; " + r
		}
	}
	return Result{Passed: passed, Reason: reason, Metrics: metrics}
}
// #endregion run

// #region helpers
func boolVal(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}
// #endregion helpers
