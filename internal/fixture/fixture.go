// Package fixture provides JSON replay fixtures: a recorded input
// lightcurve, the pipeline configuration, and the expected output rows.
// Replaying a fixture and comparing against its expectation is the
// determinism guard for the whole pipeline.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/asterfold/qfa-augment/internal/evolver"
	"github.com/asterfold/qfa-augment/internal/lightcurve"
	"github.com/asterfold/qfa-augment/internal/pipeline"
)

// #region fixture-types

// Fixture is the top-level JSON structure.
type Fixture struct {
	Description string   `json:"description"`
	Config      Config   `json:"config"`
	Samples     []Sample `json:"samples"`
	Expected    []Row    `json:"expected"`
}

// Sample mirrors lightcurve.Sample with JSON tags.
type Sample struct {
	Time float64 `json:"time"`
	Flux float64 `json:"flux"`
}

// Row mirrors lightcurve.OutputRow with JSON tags.
type Row struct {
	Time   float64 `json:"time"`
	Flux   float64 `json:"flux"`
	Source int     `json:"source"`
}

// Config mirrors pipeline.Config with JSON tags.
type Config struct {
	RetentionPct    float64   `json:"retention_pct"`
	Gain            float64   `json:"gain"`
	Decays          []float64 `json:"decays"`
	GainAutoscaling bool      `json:"gain_autoscaling"`
	Bidirectional   bool      `json:"bidirectional"`
	Normalize       bool      `json:"normalize"`
	AdaptiveGain    bool      `json:"adaptive_gain"`
	ImputeNaN       bool      `json:"impute_nan"`
}

// #endregion fixture-types

// #region config-conversion

// PipelineConfig converts the fixture config to a pipeline.Config.
func (c Config) PipelineConfig() pipeline.Config {
	return pipeline.Config{
		RetentionPct: c.RetentionPct,
		Evolver: evolver.Config{
			Gain:            c.Gain,
			Decays:          c.Decays,
			GainAutoscaling: c.GainAutoscaling,
		},
		Bidirectional: c.Bidirectional,
		Normalize:     c.Normalize,
		AdaptiveGain:  c.AdaptiveGain,
		ImputeNaN:     c.ImputeNaN,
	}
}

// FromPipelineConfig captures a pipeline.Config into fixture form.
func FromPipelineConfig(cfg pipeline.Config) Config {
	return Config{
		RetentionPct:    cfg.RetentionPct,
		Gain:            cfg.Evolver.Gain,
		Decays:          cfg.Evolver.Decays,
		GainAutoscaling: cfg.Evolver.GainAutoscaling,
		Bidirectional:   cfg.Bidirectional,
		Normalize:       cfg.Normalize,
		AdaptiveGain:    cfg.AdaptiveGain,
		ImputeNaN:       cfg.ImputeNaN,
	}
}

// #endregion config-conversion

// #region io

// Load reads and validates a fixture from a JSON file.
func Load(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	var fx Fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return fx, nil
}

// Save writes a fixture as indented JSON.
func Save(path string, fx Fixture) error {
	data, err := json.MarshalIndent(fx, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	return nil
}

// #endregion io

// #region capture

// Capture builds a fixture from samples by running the pipeline and
// recording its output as the expectation.
func Capture(description string, samples []lightcurve.Sample, cfg pipeline.Config) (Fixture, error) {
	res, err := pipeline.Process(samples, cfg)
	if err != nil {
		return Fixture{}, err
	}
	fx := Fixture{
		Description: description,
		Config:      FromPipelineConfig(cfg),
	}
	for _, s := range samples {
		fx.Samples = append(fx.Samples, Sample{Time: s.Time, Flux: s.Flux})
	}
	for _, row := range res.Rows {
		fx.Expected = append(fx.Expected, Row{Time: row.Time, Flux: row.Flux, Source: row.Source})
	}
	return fx, nil
}

// #endregion capture
