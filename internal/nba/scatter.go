package nba

import (
	"math"

	"github.com/louisbranch/chartlab/internal/numeric"
)

// Defaults of the scatter controls.
const (
	DefaultScatterX = ColumnHeight
	DefaultScatterY = ColumnWeight
)

// Group is the points of one position.
type Group struct {
	Position Position
	X, Y     []float64
}

// Marginal is a histogram of one axis per position over shared edges.
type Marginal struct {
	Edges  []float64
	Counts map[Position][]float64
}

// Scatter is the x/y figure data.
type Scatter struct {
	X, Y      string
	Groups    []Group
	MarginalX Marginal
	MarginalY Marginal
}

// Scatter groups the rows by position, in PositionOrder, for columns x and y.
// Rows missing either value are skipped.
func (d *Dataset) Scatter(x, y string) (Scatter, error) {
	xs, err := d.Values(x)
	if err != nil {
		return Scatter{}, err
	}
	ys, err := d.Values(y)
	if err != nil {
		return Scatter{}, err
	}

	out := Scatter{X: x, Y: y}
	byPos := make(map[Position]*Group, len(PositionOrder))
	for _, pos := range PositionOrder {
		out.Groups = append(out.Groups, Group{Position: pos})
	}
	for i := range out.Groups {
		byPos[out.Groups[i].Position] = &out.Groups[i]
	}
	var keptX, keptY []float64
	for i, p := range d.players {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		g, ok := byPos[p.Position]
		if !ok {
			continue
		}
		g.X = append(g.X, xs[i])
		g.Y = append(g.Y, ys[i])
		keptX = append(keptX, xs[i])
		keptY = append(keptY, ys[i])
	}
	out.MarginalX = marginal(out.Groups, keptX, func(g Group) []float64 { return g.X })
	out.MarginalY = marginal(out.Groups, keptY, func(g Group) []float64 { return g.Y })
	return out, nil
}

func marginal(groups []Group, all []float64, axis func(Group) []float64) Marginal {
	lo, hi, ok := numeric.Bounds(all)
	if !ok {
		return Marginal{Counts: map[Position][]float64{}}
	}
	edges := numeric.Edges(lo, hi, numeric.SturgesBins(len(all))*2)
	m := Marginal{Edges: edges, Counts: make(map[Position][]float64, len(groups))}
	for _, g := range groups {
		m.Counts[g.Position] = numeric.Histogram(axis(g), edges, numeric.NormCount)
	}
	return m
}
