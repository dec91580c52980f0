package plot

import (
	"slices"

	"github.com/louisbranch/chartlab/internal/nba"
)

// ScatterFigures are the main scatter and its two marginal histograms.
type ScatterFigures struct {
	Main  Figure
	Top   Figure
	Right Figure
}

// PositionColor is the colour of a position, by its display order.
func PositionColor(pos nba.Position) string {
	i := slices.Index(nba.PositionOrder, pos)
	if i < 0 {
		return Grey
	}
	return Palette[i%len(Palette)]
}

func scatterRanges(s nba.Scatter) (Range, Range) {
	var xs, ys []float64
	for _, g := range s.Groups {
		xs = append(xs, g.X...)
		ys = append(ys, g.Y...)
	}
	return Padded(xs, 0.05), Padded(ys, 0.05)
}

// Scatter draws points coloured by position with marginal histograms of
// both axes, the y marginal laid out horizontally.
func Scatter(s nba.Scatter) ScatterFigures {
	xr, yr := scatterRanges(s)
	mainFig := Figure{
		Width:  560,
		Height: 480,
		X:      Axis{Label: s.X, Range: xr},
		Y:      Axis{Label: s.Y, Range: yr},
		Legend: true,
	}
	for _, g := range s.Groups {
		mainFig.Add(Points(string(g.Position), g.X, g.Y, Color(PositionColor(g.Position)).WithAlpha(200), 4))
	}

	var topMax, rightMax float64
	for _, pos := range nba.PositionOrder {
		topMax = max(topMax, HistogramMax(s.MarginalX.Counts[pos]))
		rightMax = max(rightMax, HistogramMax(s.MarginalY.Counts[pos]))
	}
	top := Figure{
		Width:  560,
		Height: 160,
		X:      Axis{Range: xr},
		Y:      Axis{Range: Range{Min: 0, Max: 1.1 * topMax}},
	}
	right := Figure{
		Width:  200,
		Height: 480,
		X:      Axis{Range: Range{Min: 0, Max: 1.1 * rightMax}},
		Y:      Axis{Range: yr},
	}
	for _, pos := range nba.PositionOrder {
		color := Color(PositionColor(pos))
		top.Add(Histogram(string(pos), s.MarginalX.Edges, s.MarginalX.Counts[pos], color))
		right.Add(HorizontalHistogram(string(pos), s.MarginalY.Edges, s.MarginalY.Counts[pos], color))
	}
	return ScatterFigures{Main: mainFig, Top: top, Right: right}
}

// MatrixCell is one grid slot of the scatter matrix. Diagonal cells have no
// figure and show the dimension name instead.
type MatrixCell struct {
	Row, Col  int
	Dimension string
	Figure    *Figure
}

// Matrix lays out the panels row by row, size pixels per panel.
func Matrix(m nba.Matrix, size int) [][]MatrixCell {
	k := len(m.Dimensions)
	grid := make([][]MatrixCell, k)
	for row := range grid {
		grid[row] = make([]MatrixCell, k)
		for col := range grid[row] {
			grid[row][col] = MatrixCell{Row: row, Col: col, Dimension: m.Dimensions[row]}
		}
	}
	for _, p := range m.Panels {
		xr, yr := scatterRanges(p.Scatter)
		f := Figure{
			Width:  size,
			Height: size,
			X:      Axis{Label: p.Scatter.X, Range: xr},
			Y:      Axis{Label: p.Scatter.Y, Range: yr},
		}
		for _, g := range p.Scatter.Groups {
			f.Add(Points(string(g.Position), g.X, g.Y, Color(PositionColor(g.Position)).WithAlpha(200), 2.5))
		}
		grid[p.Row][p.Col].Figure = &f
	}
	return grid
}
