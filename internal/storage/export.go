package storage

import (
	"encoding/json"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/r7vme/ripple/internal/wave"
)

// ExportData is the JSON export shape for a stored run.
type ExportData struct {
	RunMetadata
	Stats []wave.Stats `json:"stats"`
}

// ExportJSON writes a run's metadata and stats series as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, stats []wave.Stats) error {
	data := ExportData{RunMetadata: *meta, Stats: stats}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes a run's stats series as CSV.
func ExportCSV(w io.Writer, stats []wave.Stats) error {
	return gocsv.Marshal(&stats, w)
}
