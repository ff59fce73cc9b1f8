// Package catalog records batch runs in SQLite: one row per run, one row
// per processed file. Strictly observational; nothing in the pipeline reads
// the catalog back, so runs stay independent of each other.
package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/asterfold/qfa-augment/internal/fixture"
	"github.com/asterfold/qfa-augment/internal/pipeline"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id       TEXT PRIMARY KEY,
	config_json  TEXT NOT NULL,
	input_dir    TEXT,
	output_dir   TEXT,
	created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS run_files (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id       TEXT NOT NULL,
	file         TEXT NOT NULL,
	status       TEXT NOT NULL,
	error        TEXT,
	points_in    INTEGER NOT NULL DEFAULT 0,
	points_out   INTEGER NOT NULL DEFAULT 0,
	kept         INTEGER NOT NULL DEFAULT 0,
	bins         INTEGER NOT NULL DEFAULT 0,
	duration_ms  INTEGER NOT NULL DEFAULT 0,
	created_at   TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`
// #endregion schema

// #region store-struct
// Store manages the run catalog in SQLite.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region begin-run
// BeginRun inserts a run row and returns its record. The pipeline config is
// serialized through the fixture form so the catalog and replay fixtures
// share one JSON shape.
func (s *Store) BeginRun(cfg pipeline.Config, inputDir, outputDir string) (RunRecord, error) {
	cfgJSON, err := json.Marshal(fixture.FromPipelineConfig(cfg))
	if err != nil {
		return RunRecord{}, fmt.Errorf("marshal config: %w", err)
	}

	rec := RunRecord{
		RunID:      uuid.New().String(),
		ConfigJSON: string(cfgJSON),
		InputDir:   inputDir,
		OutputDir:  outputDir,
		CreatedAt:  time.Now().UTC(),
	}

	_, err = s.db.Exec(
		`INSERT INTO runs (run_id, config_json, input_dir, output_dir, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.RunID, rec.ConfigJSON,
		nullIfEmpty(rec.InputDir), nullIfEmpty(rec.OutputDir),
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("insert run: %w", err)
	}
	return rec, nil
}
// #endregion begin-run

// #region record-file
// RecordFile writes one per-file provenance row for a run.
func (s *Store) RecordFile(runID string, out pipeline.FileOutcome) error {
	status := "ok"
	errText := ""
	if out.Err != nil {
		status = "failed"
		errText = out.Err.Error()
	}

	_, err := s.db.Exec(
		`INSERT INTO run_files (run_id, file, status, error, points_in, points_out, kept, bins, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, out.File, status, nullIfEmpty(errText),
		out.Report.PointsIn, out.Report.PointsOut, out.Report.Kept, out.Report.Bins,
		out.Report.Duration.Milliseconds(),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record file: %w", err)
	}
	return nil
}
// #endregion record-file

// #region list-runs
// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, config_json, input_dir, output_dir, created_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var inputDir, outputDir sql.NullString
		var createdStr string
		if err := rows.Scan(&rec.RunID, &rec.ConfigJSON, &inputDir, &outputDir, &createdStr); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.InputDir = inputDir.String
		rec.OutputDir = outputDir.String
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}
// #endregion list-runs

// #region list-files
// ListFiles returns the per-file rows of a run in insertion order.
func (s *Store) ListFiles(runID string) ([]FileRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, file, status, error, points_in, points_out, kept, bins, duration_ms, created_at
		 FROM run_files WHERE run_id = ? ORDER BY id ASC`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	var records []FileRecord
	for rows.Next() {
		var rec FileRecord
		var errText sql.NullString
		var createdStr string
		if err := rows.Scan(&rec.RunID, &rec.File, &rec.Status, &errText,
			&rec.PointsIn, &rec.PointsOut, &rec.Kept, &rec.Bins, &rec.DurationMS, &createdStr); err != nil {
			return nil, fmt.Errorf("scan file row: %w", err)
		}
		rec.Error = errText.String
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}
// #endregion list-files

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
// #endregion helpers
