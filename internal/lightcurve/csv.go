package lightcurve

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// #region read
// ReadCSV loads samples from a CSV file with at least `time` and `flux`
// columns (matched case-insensitively, any column order). A file with a
// header and zero data rows yields an empty, valid slice.
func ReadCSV(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lightcurve: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, &ParseError{File: path, Row: 1, Msg: err.Error()}
	}

	timeCol, fluxCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "time":
			timeCol = i
		case "flux":
			fluxCol = i
		}
	}
	if timeCol < 0 || fluxCol < 0 {
		return nil, &ParseError{File: path, Row: 1, Msg: "missing 'time' or 'flux' column"}
	}

	var samples []Sample
	row := 1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, &ParseError{File: path, Row: row, Msg: err.Error()}
		}
		if timeCol >= len(rec) || fluxCol >= len(rec) {
			return nil, &ParseError{File: path, Row: row, Msg: "short row"}
		}
		t, err := strconv.ParseFloat(strings.TrimSpace(rec[timeCol]), 64)
		if err != nil {
			return nil, &ParseError{File: path, Row: row, Msg: fmt.Sprintf("bad time %q", rec[timeCol])}
		}
		fl, err := strconv.ParseFloat(strings.TrimSpace(rec[fluxCol]), 64)
		if err != nil {
			return nil, &ParseError{File: path, Row: row, Msg: fmt.Sprintf("bad flux %q", rec[fluxCol])}
		}
		samples = append(samples, Sample{Time: t, Flux: fl})
	}
	return samples, nil
}
// #endregion read

// #region write
// WriteCSV writes augmented rows as time,flux,source. Float formatting uses
// the shortest round-trip representation so identical inputs produce
// byte-identical files.
func WriteCSV(path string, rows []OutputRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"time", "flux", "source"}); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		rec := []string{
			strconv.FormatFloat(row.Time, 'g', -1, 64),
			strconv.FormatFloat(row.Flux, 'g', -1, 64),
			strconv.Itoa(row.Source),
		}
		if err := w.Write(rec); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush output: %w", err)
	}
	return f.Close()
}
// #endregion write
