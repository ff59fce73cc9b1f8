// Command fixture-export runs one lightcurve CSV through the pipeline and
// writes a replay fixture capturing the input, configuration, and output.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/asterfold/qfa-augment/internal/fixture"
	"github.com/asterfold/qfa-augment/internal/lightcurve"
	"github.com/asterfold/qfa-augment/internal/pipeline"
)

// #region main

func main() {
	inPath := flag.String("in", "", "input lightcurve CSV")
	outPath := flag.String("out", "", "output fixture JSON path")
	retention := flag.Float64("retention", 5.0, "percentage of samples kept at full fidelity")
	desc := flag.String("desc", "", "fixture description")
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --in lightcurve.csv --out fixture.json [--retention pct] [--desc text]")
		os.Exit(2)
	}

	if err := run(*inPath, *outPath, *retention, *desc); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region run

func run(inPath, outPath string, retention float64, desc string) error {
	samples, err := lightcurve.ReadCSV(inPath)
	if err != nil {
		return err
	}

	cfg := pipeline.DefaultConfig()
	cfg.RetentionPct = retention

	if desc == "" {
		desc = fmt.Sprintf("exported from %s (%d samples)", inPath, len(samples))
	}

	fx, err := fixture.Capture(desc, samples, cfg)
	if err != nil {
		return err
	}
	if err := fixture.Save(outPath, fx); err != nil {
		return err
	}

	fmt.Printf("wrote %s: %d samples, %d expected rows\n", outPath, len(fx.Samples), len(fx.Expected))
	return nil
}

// #endregion run
