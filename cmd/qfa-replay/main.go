// Command qfa-replay re-runs recorded fixtures through the pipeline and
// verifies that the output still matches. Exits nonzero on any mismatch, so
// it can guard determinism in CI.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/asterfold/qfa-augment/internal/fixture"
	"github.com/asterfold/qfa-augment/internal/lightcurve"
	"github.com/asterfold/qfa-augment/internal/pipeline"
	"github.com/asterfold/qfa-augment/internal/verify"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to a fixture JSON file")
	fixtureDir := flag.String("dir", "", "replay every *.json fixture in a directory")
	tol := flag.Float64("tol", fixture.DefaultTolerance, "absolute comparison tolerance")
	flag.Parse()

	if (*fixturePath == "" && *fixtureDir == "") || (*fixturePath != "" && *fixtureDir != "") {
		fmt.Fprintln(os.Stderr, "usage: qfa-replay --fixture path/to/fixture.json")
		fmt.Fprintln(os.Stderr, "       qfa-replay --dir path/to/fixtures")
		os.Exit(2)
	}

	paths := []string{*fixturePath}
	if *fixtureDir != "" {
		var err error
		paths, err = filepath.Glob(filepath.Join(*fixtureDir, "*.json"))
		if err != nil || len(paths) == 0 {
			fmt.Fprintf(os.Stderr, "no fixtures found in %s\n", *fixtureDir)
			os.Exit(2)
		}
		sort.Strings(paths)
	}

	failed := 0
	for _, path := range paths {
		if err := replayOne(path, *tol); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", path, err)
			failed++
		} else {
			fmt.Printf("PASS %s\n", path)
		}
	}

	fmt.Printf("%d fixtures, %d failed\n", len(paths), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// #endregion main

// #region replay-one

func replayOne(path string, tol float64) error {
	fx, err := fixture.Load(path)
	if err != nil {
		return err
	}

	result, err := fixture.Replay(fx, tol)
	if err != nil {
		return err
	}
	if !result.Passed {
		return fmt.Errorf("%d mismatches, first: %s", len(result.Mismatches), result.Mismatches[0])
	}

	// Cross-check the pipeline invariants on a fresh run as well.
	samples := make([]lightcurve.Sample, len(fx.Samples))
	for i, s := range fx.Samples {
		samples[i] = lightcurve.Sample{Time: s.Time, Flux: s.Flux}
	}
	res, err := pipeline.Process(samples, fx.Config.PipelineConfig())
	if err != nil {
		return err
	}
	if v := verify.Run(samples, res, fx.Config.RetentionPct); !v.Passed {
		return fmt.Errorf("invariant check: %s", v.Reason)
	}
	return nil
}

// #endregion replay-one
