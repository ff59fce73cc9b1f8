package evolver

import "fmt"

// #region state
// State holds the four real degrees of freedom of the 2x2 density matrix:
// G = r00 (ground population), E = r11 (excited population), CA = r01 and
// CB = r10 (off-diagonal coherences). The trace G+E is kept at 1.
type State struct {
	G  float64
	E  float64
	CA float64
	CB float64
}

// Ground returns the pure ground state every scan starts from.
func Ground() State {
	return State{G: 1}
}
// #endregion state

// #region config
// Config holds the fixed parameters of the recurrence.
type Config struct {
	Gain            float64   // flux-to-rotation-angle sensitivity
	Decays          []float64 // per-scale damping toward ground, one state per entry
	GainAutoscaling bool      // squash the angle through tanh to bound outliers
}

// DefaultConfig returns the production parameters: a robust universal gain
// and five memory horizons from ~5 to ~100 samples.
func DefaultConfig() Config {
	return Config{
		Gain:            0.03,
		Decays:          []float64{0.2, 0.1, 0.05, 0.025, 0.01},
		GainAutoscaling: true,
	}
}
// #endregion config

// #region invalid-input-error
// InvalidInputError reports a non-finite flux or time value. The pipeline
// refuses to process such input so one bad row cannot corrupt every later
// score.
type InvalidInputError struct {
	Index int
	Value float64
	Field string // "flux" or "time"; empty means flux
}

func (e *InvalidInputError) Error() string {
	field := e.Field
	if field == "" {
		field = "flux"
	}
	return fmt.Sprintf("non-finite %s %v at sample %d", field, e.Value, e.Index)
}
// #endregion invalid-input-error
