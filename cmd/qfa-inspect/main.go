// Command qfa-inspect browses the run catalog: recent batch runs, or the
// per-file rows of one run, as a table or JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/asterfold/qfa-augment/internal/catalog"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to the catalog database")
	last := flag.Int("last", 20, "show N most recent runs")
	runID := flag.String("run", "", "show per-file rows for one run")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: qfa-inspect --db path/to/catalog.db [--last N] [--run id] [--json]")
		os.Exit(2)
	}

	store, err := catalog.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *runID != "" {
		err = runFilesMode(store, *runID, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

func runListMode(store *catalog.Store, last int, jsonOut bool) error {
	runs, err := store.ListRuns(last)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stderr, "no runs found")
		return nil
	}

	if jsonOut {
		return printJSON(runs)
	}

	fmt.Printf("%-36s  %-20s  %s\n", "Run", "Time", "Input")
	for _, r := range runs {
		fmt.Printf("%-36s  %-20s  %s\n",
			r.RunID, r.CreatedAt.Format("2006-01-02T15:04:05Z"), r.InputDir)
	}
	return nil
}

// #endregion list-mode

// #region files-mode

func runFilesMode(store *catalog.Store, runID string, jsonOut bool) error {
	files, err := store.ListFiles(runID)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "no files recorded for this run")
		return nil
	}

	if jsonOut {
		return printJSON(files)
	}

	fmt.Printf("%-30s  %-7s  %8s  %8s  %6s  %6s  %8s\n",
		"File", "Status", "In", "Out", "Kept", "Bins", "Time ms")
	for _, f := range files {
		name := filepath.Base(f.File)
		if f.Status == "failed" {
			fmt.Printf("%-30s  %-7s  %s\n", name, f.Status, f.Error)
			continue
		}
		fmt.Printf("%-30s  %-7s  %8d  %8d  %6d  %6d  %8d\n",
			name, f.Status, f.PointsIn, f.PointsOut, f.Kept, f.Bins, f.DurationMS)
	}
	return nil
}

// #endregion files-mode

// #region helpers

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// #endregion helpers
