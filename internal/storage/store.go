// Package storage persists run recordings: one directory per run with
// a metadata.json and a ticks.csv of the per-tick channel telemetry.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes one recorded run.
type RunMetadata struct {
	ID        string    `json:"id"`
	Scenario  string    `json:"scenario"`
	Timestamp time.Time `json:"timestamp"`
	Dt        float64   `json:"dt"`
	Duration  float64   `json:"duration"`
	Steps     int       `json:"steps"`
	Columns   []string  `json:"columns"`
}

// Recording accumulates rows during a run. Columns is the header
// (excluding the leading time column); each row is one tick.
type Recording struct {
	Columns []string
	Times   []float64
	Rows    [][]float64
}

func NewRecording(columns []string) *Recording {
	return &Recording{Columns: columns}
}

func (r *Recording) Append(t float64, row []float64) {
	r.Times = append(r.Times, t)
	cp := make([]float64, len(row))
	copy(cp, row)
	r.Rows = append(r.Rows, cp)
}

// Save writes the recording under a fresh run id and returns it.
func (s *Store) Save(scenario string, dt, duration float64, rec *Recording) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenario,
		Timestamp: time.Now(),
		Dt:        dt,
		Duration:  duration,
		Steps:     len(rec.Rows),
		Columns:   rec.Columns,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "ticks.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := append([]string{"time"}, rec.Columns...)
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, row := range rec.Rows {
		out := make([]string, 0, len(row)+1)
		out = append(out, strconv.FormatFloat(rec.Times[i], 'f', 6, 64))
		for _, v := range row {
			out = append(out, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(out); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTicks reads back the recording of a run.
func (s *Store) LoadTicks(runID string) (*Recording, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "ticks.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Recording{}, nil
	}

	rec := NewRecording(records[0][1:])
	for _, row := range records[1:] {
		if len(row) < 2 {
			continue
		}
		t, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			continue
		}
		vals := make([]float64, 0, len(row)-1)
		for _, cell := range row[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				break
			}
			vals = append(vals, v)
		}
		rec.Times = append(rec.Times, t)
		rec.Rows = append(rec.Rows, vals)
	}
	return rec, nil
}

// Column extracts one named column from the recording, nil when the
// name is unknown.
func (r *Recording) Column(name string) []float64 {
	idx := -1
	for i, c := range r.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	out := make([]float64, 0, len(r.Rows))
	for _, row := range r.Rows {
		if idx < len(row) {
			out = append(out, row[idx])
		}
	}
	return out
}
