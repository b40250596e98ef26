// Package dataset loads the survey CSV into an immutable in-memory snapshot.
//
// Loading is a one-shot extract-enrich cycle: read the header, trim and
// rename columns, fail fast if the required refArea column is absent, then
// run every row through domain enrichment. The resulting Snapshot is computed
// once at startup and handed read-only to the rest of the service; it is only
// invalidated by a process restart.
package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/couchcryptid/parks-dashboard/internal/domain"
)

// DefaultFileName is the expected CSV name when DATA_FILE is not set; the
// file is looked up next to the running executable.
const DefaultFileName = "Parks Data.csv"

// columnRenames maps the verbose source headers (after whitespace trimming)
// to the short canonical field names used everywhere downstream.
var columnRenames = map[string]string{
	"State of public parks - bad":                "parks_bad",
	"State of public parks - acceptable":         "parks_acceptable",
	"State of public parks - good":               "parks_good",
	"State of the lighting network - bad":        "light_bad",
	"State of the lighting network - acceptable": "light_acceptable",
	"State of the lighting network - good":       "light_good",
	"Existence of public parks - exists":         "parks_exist",
}

// MissingColumnError reports a required column absent from the source file.
// This is fatal at load time: the whole pipeline keys off refArea.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q is missing from the dataset", e.Column)
}

// Snapshot is the enriched record set plus load provenance. Immutable after
// construction.
type Snapshot struct {
	Records  []domain.SurveyRecord
	Columns  domain.Columns
	Source   string
	LoadedAt time.Time
}

// CheckReadiness reports whether the snapshot can serve traffic. Satisfies
// the server's readiness checker.
func (s *Snapshot) CheckReadiness(_ context.Context) error {
	if s == nil || len(s.Records) == 0 {
		return errors.New("dataset snapshot is empty")
	}
	return nil
}

// Load reads and enriches the CSV at path. A missing file is fatal and the
// error names the path so operators know where the file was expected.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("survey CSV not found at %q: place the data file there or set DATA_FILE", path)
		}
		return nil, fmt.Errorf("open survey CSV: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	return Read(f, path)
}

// Read parses CSV data from r. source is recorded for provenance only.
// Read is idempotent: identical input yields a field-for-field identical
// record set.
func Read(r io.Reader, source string) (*Snapshot, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &MissingColumnError{Column: "refArea"}
		}
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	idx := indexColumns(header)
	if _, ok := idx["refArea"]; !ok {
		return nil, &MissingColumnError{Column: "refArea"}
	}

	cols := domain.Columns{
		Town:           has(idx, "Town"),
		ParksExist:     has(idx, "parks_exist"),
		ParksTriple:    has(idx, "parks_bad") && has(idx, "parks_acceptable") && has(idx, "parks_good"),
		LightingTriple: has(idx, "light_bad") && has(idx, "light_acceptable") && has(idx, "light_good"),
	}

	var records []domain.SurveyRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row: %w", err)
		}

		raw := domain.RawRecord{
			RefArea:         cell(row, idx, "refArea"),
			Town:            cell(row, idx, "Town"),
			ParksExist:      cell(row, idx, "parks_exist"),
			ParksBad:        cell(row, idx, "parks_bad"),
			ParksAcceptable: cell(row, idx, "parks_acceptable"),
			ParksGood:       cell(row, idx, "parks_good"),
			LightBad:        cell(row, idx, "light_bad"),
			LightAcceptable: cell(row, idx, "light_acceptable"),
			LightGood:       cell(row, idx, "light_good"),
		}
		records = append(records, domain.EnrichRecord(raw, cols))
	}

	return &Snapshot{
		Records:  records,
		Columns:  cols,
		Source:   source,
		LoadedAt: clock.Now(),
	}, nil
}

// indexColumns trims incidental whitespace from headers, applies the rename
// map, and returns name → column index. The first occurrence of a name wins.
func indexColumns(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if short, ok := columnRenames[name]; ok {
			name = short
		}
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}
	return idx
}

func has(idx map[string]int, name string) bool {
	_, ok := idx[name]
	return ok
}

// cell fetches a named column from a row, tolerating ragged rows.
func cell(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
