// Command qfa-augment runs the augmented-binning pipeline over a directory
// of lightcurve CSV files: anomalous samples are kept at full resolution,
// quiescent stretches are folded into bins.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/asterfold/qfa-augment/internal/catalog"
	"github.com/asterfold/qfa-augment/internal/pipeline"
)

// #region main

func main() {
	inputDir := flag.String("input", "", "directory containing flattened lightcurve .csv files")
	outputDir := flag.String("out", "./qfa_augmented_results", "directory to save augmented results")
	retention := flag.Float64("retention", 5.0, "percentage of samples kept at full fidelity")
	workers := flag.Int("workers", runtime.NumCPU(), "number of parallel workers")
	gain := flag.Float64("gain", 0.03, "base flux-to-angle gain")
	decays := flag.String("decays", "0.2,0.1,0.05,0.025,0.01", "comma-separated decay scales")
	forwardOnly := flag.Bool("forward-only", false, "disable the backward scan pass")
	noNormalize := flag.Bool("no-normalize", false, "skip median/MAD normalization before scanning")
	noAdaptive := flag.Bool("no-adaptive-gain", false, "use the base gain regardless of noise level")
	imputeNaN := flag.Bool("impute-nan", false, "replace NaN flux with the curve median")
	catalogPath := flag.String("catalog", "", "optional SQLite run-catalog path")
	flag.Parse()

	if *inputDir == "" {
		fmt.Fprintln(os.Stderr, "usage: qfa-augment --input path/to/csvs [--out dir] [--retention pct] [--catalog db]")
		os.Exit(2)
	}

	cfg := pipeline.DefaultConfig()
	cfg.RetentionPct = *retention
	cfg.Evolver.Gain = *gain
	cfg.Bidirectional = !*forwardOnly
	cfg.Normalize = !*noNormalize
	cfg.AdaptiveGain = !*noAdaptive
	cfg.ImputeNaN = *imputeNaN

	scales, err := parseDecays(*decays)
	if err != nil {
		log.Fatalf("bad --decays: %v", err)
	}
	cfg.Evolver.Decays = scales

	files, err := filepath.Glob(filepath.Join(*inputDir, "*.csv"))
	if err != nil {
		log.Fatalf("glob input: %v", err)
	}
	if len(files) == 0 {
		log.Fatalf("no .csv files found in %s", *inputDir)
	}
	sort.Strings(files)

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	var store *catalog.Store
	var runID string
	if *catalogPath != "" {
		store, err = catalog.NewStore(*catalogPath)
		if err != nil {
			log.Fatalf("open catalog: %v", err)
		}
		defer store.Close()
		run, err := store.BeginRun(cfg, *inputDir, *outputDir)
		if err != nil {
			log.Fatalf("begin run: %v", err)
		}
		runID = run.RunID
		log.Printf("catalog run %s", runID)
	}

	log.Printf("processing %d files with %d workers (retention %.1f%%)", len(files), *workers, *retention)
	start := time.Now()

	var okCount, failCount int
	err = pipeline.RunFiles(context.Background(), files, cfg, pipeline.RunOptions{
		OutputDir: *outputDir,
		Workers:   *workers,
	}, func(out pipeline.FileOutcome) {
		name := filepath.Base(out.File)
		if out.Err != nil {
			failCount++
			log.Printf("[%s] failed: %v", name, out.Err)
		} else {
			okCount++
			log.Printf("[%s] %d -> %d points (%d detail, %d bins)",
				name, out.Report.PointsIn, out.Report.PointsOut, out.Report.Kept, out.Report.Bins)
		}
		if store != nil {
			if err := store.RecordFile(runID, out); err != nil {
				log.Printf("catalog error: %v", err)
			}
		}
	})
	if err != nil {
		log.Fatalf("batch failed: %v", err)
	}

	log.Printf("complete: %d ok, %d failed in %.2fs", okCount, failCount, time.Since(start).Seconds())
	if okCount == 0 && failCount > 0 {
		os.Exit(1)
	}
}

// #endregion main

// #region helpers

func parseDecays(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", p, err)
		}
		if v <= 0 || v >= 1 {
			return nil, fmt.Errorf("decay %v outside (0, 1)", v)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no decay scales given")
	}
	return out, nil
}

// #endregion helpers
