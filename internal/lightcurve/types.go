package lightcurve

// #region sample
// Sample is one (time, flux) measurement of a lightcurve. Input files are
// assumed time-sorted and detrended; neither is verified here.
type Sample struct {
	Time float64
	Flux float64
}
// #endregion sample

// #region source
// Source values for output rows.
const (
	SourceBin    = 0 // aggregated bin representative
	SourceDetail = 1 // raw sample kept at full resolution
)
// #endregion source

// #region output-row
// OutputRow is one row of the augmented output: a raw detail point
// (Source=1) or a bin representative (Source=0).
type OutputRow struct {
	Time   float64
	Flux   float64
	Source int
}
// #endregion output-row
