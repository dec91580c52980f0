// Package sampledata embeds a small NBA physiques sample so the explorer runs
// without an external data file.
package sampledata

import (
	"bytes"
	_ "embed"

	"github.com/louisbranch/chartlab/internal/nba"
)

// Source is the dataset source label of the embedded sample.
const Source = "embedded sample"

// PhysiquesCSV is the raw sample in the importer CSV layout.
//
//go:embed nba_physiques.csv
var PhysiquesCSV []byte

// Players parses the embedded sample.
func Players() ([]nba.Player, error) {
	return nba.ParseCSV(bytes.NewReader(PhysiquesCSV))
}
