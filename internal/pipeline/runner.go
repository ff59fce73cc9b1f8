package pipeline

import (
	"context"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/asterfold/qfa-augment/internal/lightcurve"
	"github.com/asterfold/qfa-augment/internal/selector"
)

// #region run-files
// RunFiles processes files on a worker pool and streams one FileOutcome per
// file to visit, serialized on a single goroutine. A failing file is
// reported and the batch continues; only an invalid configuration or a
// canceled context aborts the whole run. Outcome order follows completion,
// not input order.
func RunFiles(ctx context.Context, files []string, cfg Config, opts RunOptions, visit func(FileOutcome)) error {
	if err := selector.Validate(cfg.RetentionPct); err != nil {
		return err
	}
	if opts.Workers < 1 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Prefix == "" {
		opts.Prefix = "augmented_"
	}

	jobs := make(chan string, opts.Workers)
	outcomes := make(chan FileOutcome, opts.Workers)

	var wg sync.WaitGroup
	wg.Add(opts.Workers)
	for w := 0; w < opts.Workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case path, ok := <-jobs:
					if !ok {
						return
					}
					out := processFile(path, cfg, opts)
					select {
					case outcomes <- out:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	var cwg sync.WaitGroup
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for out := range outcomes {
			visit(out)
		}
	}()

	feed := func() {
		defer close(jobs)
		for _, f := range files {
			select {
			case jobs <- f:
			case <-ctx.Done():
				return
			}
		}
	}
	feed()

	wg.Wait()
	close(outcomes)
	cwg.Wait()

	return ctx.Err()
}
// #endregion run-files

// #region process-file
func processFile(path string, cfg Config, opts RunOptions) FileOutcome {
	out := FileOutcome{File: path}

	samples, err := lightcurve.ReadCSV(path)
	if err != nil {
		out.Err = err
		return out
	}

	result, err := Process(samples, cfg)
	if err != nil {
		out.Err = err
		return out
	}

	dest := filepath.Join(opts.OutputDir, opts.Prefix+filepath.Base(path))
	if err := lightcurve.WriteCSV(dest, result.Rows); err != nil {
		out.Err = err
		return out
	}

	out.Output = dest
	out.Report = result.Report
	return out
}
// #endregion process-file
