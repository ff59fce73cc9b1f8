// Package augment merges kept detail points with bin representatives into
// the final time-ordered output sequence.
package augment

import (
	"sort"

	"github.com/asterfold/qfa-augment/internal/binning"
	"github.com/asterfold/qfa-augment/internal/lightcurve"
)

// #region merge
// Merge combines kept raw samples (source=1) and bin representatives
// (source=0) sorted by time ascending. On an exact time collision the kept
// row sorts first; the stated policy, not an accident of insertion order.
func Merge(samples []lightcurve.Sample, kept []int, bins []binning.Bin) []lightcurve.OutputRow {
	rows := make([]lightcurve.OutputRow, 0, len(kept)+len(bins))
	for _, i := range kept {
		rows = append(rows, lightcurve.OutputRow{
			Time:   samples[i].Time,
			Flux:   samples[i].Flux,
			Source: lightcurve.SourceDetail,
		})
	}
	for _, b := range bins {
		rows = append(rows, lightcurve.OutputRow{
			Time:   b.Time,
			Flux:   b.Flux,
			Source: lightcurve.SourceBin,
		})
	}

	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a].Time != rows[b].Time {
			return rows[a].Time < rows[b].Time
		}
		return rows[a].Source > rows[b].Source
	})
	return rows
}
// #endregion merge
