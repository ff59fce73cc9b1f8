package catalog

import "time"

// #region run-record
// RunRecord is one batch invocation of the pipeline.
type RunRecord struct {
	RunID      string
	ConfigJSON string
	InputDir   string
	OutputDir  string
	CreatedAt  time.Time
}
// #endregion run-record

// #region file-record
// FileRecord is one processed file within a run. Status is "ok" or
// "failed"; Error holds the failure text for failed files.
type FileRecord struct {
	RunID      string
	File       string
	Status     string
	Error      string
	PointsIn   int
	PointsOut  int
	Kept       int
	Bins       int
	DurationMS int64
	CreatedAt  time.Time
}
// #endregion file-record
