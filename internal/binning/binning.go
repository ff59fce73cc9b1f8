// Package binning folds the samples that were not kept at full resolution
// into bins, one per maximal run of consecutive dropped samples.
package binning

import "github.com/asterfold/qfa-augment/internal/lightcurve"

// #region bin
// Bin is a maximal run of consecutive dropped samples reduced to one
// representative point. Start and End are inclusive sample indices.
type Bin struct {
	Start int
	End   int
	Time  float64 // mean time over the run
	Flux  float64 // mean flux over the run
}
// #endregion bin

// #region reduce
// Reduce partitions the non-kept samples into maximal contiguous runs and
// reduces each to its arithmetic mean. A run of one sample reduces to
// itself. When every sample is kept the result is empty.
func Reduce(samples []lightcurve.Sample, keep []bool) []Bin {
	var bins []Bin
	i := 0
	for i < len(samples) {
		if keep[i] {
			i++
			continue
		}
		start := i
		var sumT, sumF float64
		for i < len(samples) && !keep[i] {
			sumT += samples[i].Time
			sumF += samples[i].Flux
			i++
		}
		n := float64(i - start)
		bins = append(bins, Bin{
			Start: start,
			End:   i - 1,
			Time:  sumT / n,
			Flux:  sumF / n,
		})
	}
	return bins
}
// #endregion reduce
