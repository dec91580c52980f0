package nba

import (
	"fmt"
	"slices"

	apperrors "github.com/louisbranch/chartlab/internal/platform/errors"
)

// HeightQuantiles is the number of height bins.
const HeightQuantiles = 4

// Dataset is the loaded player table with its derived columns.
type Dataset struct {
	players []Player
	bins    Bins
	binOf   []int
	source  string
}

// NewDataset derives bmi and the height bins for players. source describes
// where the rows came from (for display).
func NewDataset(players []Player, source string) (*Dataset, error) {
	if len(players) == 0 {
		return nil, apperrors.New(apperrors.CodeDatasetUnavailable, "dataset has no players")
	}
	for _, p := range players {
		if _, ok := ParsePosition(string(p.Position)); !ok {
			return nil, apperrors.WithMetadata(apperrors.CodeInvalidArgument,
				fmt.Sprintf("player %d has unknown position %q", p.Index, p.Position),
				map[string]string{"Position": string(p.Position)})
		}
	}
	rows := slices.Clone(players)
	heights := make([]float64, len(rows))
	for i, p := range rows {
		heights[i] = p.Height
	}
	bins := QCut(heights, HeightQuantiles)
	binOf := make([]int, len(rows))
	for i, h := range heights {
		binOf[i] = bins.Assign(h)
	}
	return &Dataset{players: rows, bins: bins, binOf: binOf, source: source}, nil
}

// Len is the number of players.
func (d *Dataset) Len() int {
	return len(d.players)
}

// Source describes where the rows were loaded from.
func (d *Dataset) Source() string {
	return d.source
}

// Players returns a copy of the rows.
func (d *Dataset) Players() []Player {
	return slices.Clone(d.players)
}

// HeightBins returns the height quartile bins.
func (d *Dataset) HeightBins() Bins {
	return d.bins
}

// HeightBin returns the bin index of row i, -1 when its height is missing.
func (d *Dataset) HeightBin(i int) int {
	return d.binOf[i]
}

// Values returns the numeric column for every row, NaN where missing.
func (d *Dataset) Values(column string) ([]float64, error) {
	if _, err := NumericColumn(column); err != nil {
		return nil, err
	}
	out := make([]float64, len(d.players))
	for i, p := range d.players {
		out[i] = p.Value(column)
	}
	return out, nil
}

// Cell returns the display value of column for row i, including the
// categorical columns.
func (d *Dataset) Cell(i int, column string) (string, error) {
	c, err := LookupColumn(column)
	if err != nil {
		return "", err
	}
	p := d.players[i]
	switch {
	case c.Name == ColumnPosition:
		return string(p.Position), nil
	case c.Name == ColumnHeightBins:
		if b := d.binOf[i]; b >= 0 {
			return d.bins.Labels[b], nil
		}
		return "", nil
	default:
		return formatFloat(p.Value(column)), nil
	}
}
