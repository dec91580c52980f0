package nba

import (
	"math"
	"slices"

	"github.com/louisbranch/chartlab/internal/numeric"
)

// DefaultPivotValue is the initial pivot value column.
const DefaultPivotValue = ColumnHeight

// PivotPrecision is the number of significant digits shown in pivot cells.
const PivotPrecision = 5

// Pivot is the mean of a value column by height bin (rows) and position
// (columns). Cells are NaN where no row contributes.
type Pivot struct {
	Value   string
	Rows    []string
	Columns []Position
	Cells   [][]float64
}

// Pivot aggregates column value. Positions are sorted lexicographically;
// rows and columns with no value at all are dropped.
func (d *Dataset) Pivot(value string) (Pivot, error) {
	values, err := d.Values(value)
	if err != nil {
		return Pivot{}, err
	}

	positions := slices.Clone(PositionOrder)
	slices.Sort(positions)
	colOf := make(map[Position]int, len(positions))
	for i, p := range positions {
		colOf[p] = i
	}

	nbins := d.bins.Len()
	groups := make([][][]float64, nbins)
	for b := range groups {
		groups[b] = make([][]float64, len(positions))
	}
	for i, p := range d.players {
		b := d.binOf[i]
		if b < 0 || math.IsNaN(values[i]) {
			continue
		}
		c, ok := colOf[p.Position]
		if !ok {
			continue
		}
		groups[b][c] = append(groups[b][c], values[i])
	}

	cells := make([][]float64, nbins)
	rowHas := make([]bool, nbins)
	colHas := make([]bool, len(positions))
	for b := range groups {
		cells[b] = make([]float64, len(positions))
		for c := range positions {
			mean, n := numeric.Mean(groups[b][c])
			cells[b][c] = mean
			if n > 0 {
				rowHas[b] = true
				colHas[c] = true
			}
		}
	}

	out := Pivot{Value: value}
	var keepCols []int
	for c, p := range positions {
		if colHas[c] {
			keepCols = append(keepCols, c)
			out.Columns = append(out.Columns, p)
		}
	}
	for b, label := range d.bins.Labels {
		if !rowHas[b] {
			continue
		}
		row := make([]float64, len(keepCols))
		for j, c := range keepCols {
			row[j] = cells[b][c]
		}
		out.Rows = append(out.Rows, label)
		out.Cells = append(out.Cells, row)
	}
	return out, nil
}

// TableColumn describes a column of the JSON table form.
type TableColumn struct {
	Name   string      `json:"name"`
	ID     string      `json:"id"`
	Type   string      `json:"type"`
	Format TableFormat `json:"format"`
}

// TableFormat carries the numeric display precision.
type TableFormat struct {
	Specifier string `json:"specifier,omitempty"`
}

// Table is the records form of a pivot: one record per row keyed by column id,
// with height_bins first in Columns. Missing cells are null.
type Table struct {
	Data    []map[string]any `json:"data"`
	Columns []TableColumn    `json:"columns"`
}

// Table converts the pivot into records.
func (p Pivot) Table() Table {
	format := TableFormat{Specifier: ".5"}
	t := Table{
		Data:    make([]map[string]any, 0, len(p.Rows)),
		Columns: []TableColumn{{Name: ColumnHeightBins, ID: ColumnHeightBins, Type: "numeric", Format: format}},
	}
	for _, pos := range p.Columns {
		t.Columns = append(t.Columns, TableColumn{Name: string(pos), ID: string(pos), Type: "numeric", Format: format})
	}
	for i, label := range p.Rows {
		record := map[string]any{ColumnHeightBins: label}
		for j, pos := range p.Columns {
			v := p.Cells[i][j]
			if math.IsNaN(v) {
				record[string(pos)] = nil
				continue
			}
			record[string(pos)] = v
		}
		t.Data = append(t.Data, record)
	}
	return t
}
