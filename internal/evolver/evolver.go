package evolver

import "math"

// maxAngle bounds the rotation per sample to a quarter turn.
const maxAngle = math.Pi / 2

// #region angle
// Angle maps a flux value to a rotation angle. With autoscaling the angle is
// squashed through tanh so arbitrarily large outliers stay inside
// (-maxAngle, maxAngle); without it the mapping is linear.
func Angle(flux, gain float64, autoscale bool) float64 {
	if autoscale {
		return maxAngle * math.Tanh((flux*gain)/maxAngle)
	}
	return flux * gain
}
// #endregion angle

// #region update
// Update is a pure function that advances one state by one sample: rotate by
// theta, damp toward ground with rate decay, renormalize the trace, and read
// out fidelity as the ground population clamped to [0,1].
func Update(s State, theta, decay float64) (State, float64) {
	c := math.Cos(theta)
	sn := math.Sin(theta)
	c2, s2, cs := c*c, sn*sn, c*sn

	off := s.CA + s.CB
	diag := s.G - s.E

	n00 := c2*s.G - cs*off + s2*s.E
	n11 := s2*s.G + cs*off + c2*s.E
	n01 := c2*s.CA + cs*diag - s2*s.CB
	n10 := c2*s.CB + cs*diag - s2*s.CA

	oneMinus := 1 - decay
	next := State{
		G:  oneMinus*n00 + decay,
		E:  oneMinus * n11,
		CA: oneMinus * n01,
		CB: oneMinus * n10,
	}

	// Trace is preserved analytically; renormalize anyway so drift cannot
	// accumulate over long streams.
	if tr := next.G + next.E; tr != 0 {
		next.G /= tr
		next.E /= tr
		next.CA /= tr
		next.CB /= tr
	}

	return next, clamp01(next.G)
}
// #endregion update

// #region evolver
// Evolver runs one State per decay scale over a single lightcurve. Fast
// scales forget quickly and catch short events; slow scales hold longer
// baselines. Construct a fresh Evolver per scan; it is not rewindable.
type Evolver struct {
	cfg    Config
	states []State
	index  int
}

// New creates an evolver with every scale in the ground state. An empty
// decay list falls back to the defaults.
func New(cfg Config) *Evolver {
	if len(cfg.Decays) == 0 {
		cfg.Decays = DefaultConfig().Decays
	}
	states := make([]State, len(cfg.Decays))
	for i := range states {
		states[i] = Ground()
	}
	return &Evolver{cfg: cfg, states: states}
}

// Step advances every scale by one sample. Fidelity blends the mean and the
// minimum ground population across scales (conservative voting: a dip on any
// single scale pulls the blend down). Coherence is the largest off-diagonal
// magnitude. Non-finite flux fails without advancing the state.
func (e *Evolver) Step(flux float64) (fidelity, coherence float64, err error) {
	if math.IsNaN(flux) || math.IsInf(flux, 0) {
		return 0, 0, &InvalidInputError{Index: e.index, Value: flux}
	}

	theta := Angle(flux, e.cfg.Gain, e.cfg.GainAutoscaling)

	minFid := 1.0
	sumFid := 0.0
	maxCoh := 0.0
	for k, d := range e.cfg.Decays {
		next, fid := Update(e.states[k], theta, d)
		e.states[k] = next
		if fid < minFid {
			minFid = fid
		}
		sumFid += fid
		if coh := math.Abs(next.CA); coh > maxCoh {
			maxCoh = coh
		}
	}
	e.index++

	mean := sumFid / float64(len(e.cfg.Decays))
	return 0.5*mean + 0.5*minFid, maxCoh, nil
}

// Trace returns the worst-case trace deviation from 1 across scales.
// Diagnostic only.
func (e *Evolver) Trace() float64 {
	worst := 0.0
	for _, s := range e.states {
		if dev := math.Abs(s.G + s.E - 1); dev > worst {
			worst = dev
		}
	}
	return worst
}
// #endregion evolver

// #region helpers
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
// #endregion helpers
