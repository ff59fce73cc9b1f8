// Package selector decides which samples survive at full resolution. The
// cutoff is rank-based on the fidelity distribution, so behavior does not
// depend on the absolute flux scale of a particular star.
package selector

import (
	"fmt"
	"sort"
)

// #region config-error
// ConfigError reports a retention percentage outside [0, 100]. It fails the
// run before any file is touched.
type ConfigError struct {
	RetentionPct float64
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("retention percentage %v outside [0, 100]", e.RetentionPct)
}
// #endregion config-error

// #region validate
// Validate checks a retention percentage without needing a fidelity trace.
func Validate(retentionPct float64) error {
	if retentionPct < 0 || retentionPct > 100 {
		return &ConfigError{RetentionPct: retentionPct}
	}
	return nil
}
// #endregion validate

// #region select
// Select returns the indices of the floor(N*pct/100) lowest-fidelity samples
// in ascending index order. Low fidelity means anomalous, so those are the
// samples kept raw. Candidates are ranked by (fidelity, index) ascending,
// which makes ties at the cutoff resolve by index and the kept count exact
// and reproducible.
//
// pct=0 keeps nothing (pure binning); pct=100 keeps every sample.
func Select(fidelities []float64, retentionPct float64) ([]int, error) {
	if err := Validate(retentionPct); err != nil {
		return nil, err
	}
	n := len(fidelities)
	if n == 0 {
		return nil, nil
	}

	keep := int(float64(n) * retentionPct / 100.0)
	if keep <= 0 {
		return nil, nil
	}
	if keep > n {
		keep = n
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if fidelities[order[a]] != fidelities[order[b]] {
			return fidelities[order[a]] < fidelities[order[b]]
		}
		return order[a] < order[b]
	})

	kept := append([]int(nil), order[:keep]...)
	sort.Ints(kept)
	return kept, nil
}
// #endregion select

// #region keep-mask
// KeepMask expands a kept index list into a boolean mask over n samples.
func KeepMask(n int, kept []int) []bool {
	mask := make([]bool, n)
	for _, i := range kept {
		if i >= 0 && i < n {
			mask[i] = true
		}
	}
	return mask
}
// #endregion keep-mask
