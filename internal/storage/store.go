// Package storage persists simulation runs under a base directory: one
// directory per run holding metadata.json, stats.csv, and optionally a
// frames/ subdirectory of rendered PNGs.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/r7vme/ripple/internal/wave"
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

type RunMetadata struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`

	Size      int     `json:"size"`
	Drops     int     `json:"drops"`
	Steps     int     `json:"steps"`
	Seed      int64   `json:"seed"`
	Eps       float64 `json:"eps"`
	Damping   float64 `json:"damping"`
	WaveSpeed float64 `json:"wave_speed"`

	Metrics map[string]float64 `json:"metrics"`
}

// NewRunID allocates an id for a run about to start, so collaborators like
// the frame writer can target the run directory before the run finishes.
func (s *Store) NewRunID() string {
	return fmt.Sprintf("pond_%d", time.Now().Unix())
}

// Save writes a run directory under the given id.
func (s *Store) Save(runID string, meta RunMetadata, result *wave.Result) error {
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Metrics = result.Metrics

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	statsFile, err := os.Create(filepath.Join(runDir, "stats.csv"))
	if err != nil {
		return err
	}
	defer statsFile.Close()

	if err := gocsv.Marshal(&result.Stats, statsFile); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}

	return nil
}

// FramesDir returns the frame directory for a run, creating it if needed.
func (s *Store) FramesDir(runID string) (string, error) {
	dir := filepath.Join(s.baseDir, runID, "frames")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
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

func (s *Store) LoadStats(runID string) ([]wave.Stats, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "stats.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stats := []wave.Stats{}
	if err := gocsv.Unmarshal(file, &stats); err != nil {
		return nil, fmt.Errorf("reading stats: %w", err)
	}

	return stats, nil
}
