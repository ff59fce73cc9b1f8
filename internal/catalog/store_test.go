package catalog

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/asterfold/qfa-augment/internal/pipeline"
)

func tempDB(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "catalog.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBeginRunAndList(t *testing.T) {
	s := tempDB(t)

	run, err := s.BeginRun(pipeline.DefaultConfig(), "/data/in", "/data/out")
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	if run.RunID == "" {
		t.Fatal("expected non-empty run ID")
	}
	if run.ConfigJSON == "" {
		t.Fatal("expected serialized config")
	}

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].RunID != run.RunID || runs[0].InputDir != "/data/in" {
		t.Fatalf("round trip mismatch: %+v", runs[0])
	}
}

func TestRecordAndListFiles(t *testing.T) {
	s := tempDB(t)
	run, err := s.BeginRun(pipeline.DefaultConfig(), "", "")
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}

	ok := pipeline.FileOutcome{
		File:   "a.csv",
		Output: "augmented_a.csv",
		Report: pipeline.Report{
			PointsIn: 1000, PointsOut: 200, Kept: 50, Bins: 150,
			Duration: 42 * time.Millisecond,
		},
	}
	failed := pipeline.FileOutcome{
		File: "b.csv",
		Err:  errors.New("row 7: bad flux"),
	}

	if err := s.RecordFile(run.RunID, ok); err != nil {
		t.Fatalf("RecordFile ok: %v", err)
	}
	if err := s.RecordFile(run.RunID, failed); err != nil {
		t.Fatalf("RecordFile failed: %v", err)
	}

	files, err := s.ListFiles(run.RunID)
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 file rows, got %d", len(files))
	}

	if files[0].Status != "ok" || files[0].PointsIn != 1000 || files[0].DurationMS != 42 {
		t.Fatalf("ok row: %+v", files[0])
	}
	if files[1].Status != "failed" || files[1].Error == "" {
		t.Fatalf("failed row: %+v", files[1])
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	s := tempDB(t)
	first, err := s.BeginRun(pipeline.DefaultConfig(), "", "")
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	second, err := s.BeginRun(pipeline.DefaultConfig(), "", "")
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].RunID != second.RunID || runs[1].RunID != first.RunID {
		t.Fatal("expected newest-first ordering")
	}
}
