// Package plot renders figures as SVG with go-chart.
//
// A Figure holds fixed axis ranges so degenerate data (one point, constant
// values, empty groups) never collapses an axis.
package plot

import (
	"bytes"
	"fmt"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Default figure sizes in pixels.
const (
	DefaultWidth  = 720
	DefaultHeight = 480
)

// Range is a closed axis interval.
type Range struct {
	Min, Max float64
}

// Guard returns r widened to a non-empty finite interval.
func (r Range) Guard() Range {
	if math.IsNaN(r.Min) || math.IsInf(r.Min, 0) {
		r.Min = 0
	}
	if math.IsNaN(r.Max) || math.IsInf(r.Max, 0) {
		r.Max = r.Min + 1
	}
	if r.Max < r.Min {
		r.Min, r.Max = r.Max, r.Min
	}
	if r.Max == r.Min {
		r.Min -= 0.5
		r.Max += 0.5
	}
	return r
}

// Padded returns the bounds of values widened by frac of their span on each
// side. Empty input yields [0, 1].
func Padded(values []float64, frac float64) Range {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return Range{Min: 0, Max: 1}
	}
	pad := (hi - lo) * frac
	return Range{Min: lo - pad, Max: hi + pad}.Guard()
}

// Tick is an axis tick with an optional label.
type Tick struct {
	Value float64
	Label string
}

// Axis configures one axis.
type Axis struct {
	Label  string
	Range  Range
	Ticks  []Tick
	Hidden bool
}

func (a Axis) ticks() []chart.Tick {
	if len(a.Ticks) == 0 {
		return nil
	}
	out := make([]chart.Tick, len(a.Ticks))
	for i, t := range a.Ticks {
		label := t.Label
		if label == "" {
			label = fmt.Sprintf("%g", t.Value)
		}
		out[i] = chart.Tick{Value: t.Value, Label: label}
	}
	return out
}

// Figure is one chart. Series are drawn in order.
type Figure struct {
	Title  string
	Width  int
	Height int
	X, Y   Axis
	Legend bool
	Series []chart.Series
}

// Add appends series that have at least one point.
func (f *Figure) Add(series ...chart.Series) {
	for _, s := range series {
		if cs, ok := s.(chart.ContinuousSeries); ok && len(cs.XValues) == 0 {
			continue
		}
		f.Series = append(f.Series, s)
	}
}

// Render writes the figure as SVG.
func (f Figure) Render(w io.Writer) error {
	width, height := f.Width, f.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	xr := f.X.Range.Guard()
	yr := f.Y.Range.Guard()

	series := f.Series
	if len(series) == 0 {
		// go-chart refuses to render without a series.
		series = []chart.Series{chart.ContinuousSeries{
			Style:   chart.Style{Hidden: true},
			XValues: []float64{xr.Min, xr.Max},
			YValues: []float64{yr.Min, yr.Max},
		}}
	}

	ch := chart.Chart{
		Title:  f.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:  f.X.Label,
			Range: &chart.ContinuousRange{Min: xr.Min, Max: xr.Max},
			Ticks: f.X.ticks(),
			Style: chart.Style{Hidden: f.X.Hidden},
		},
		YAxis: chart.YAxis{
			Name:  f.Y.Label,
			Range: &chart.ContinuousRange{Min: yr.Min, Max: yr.Max},
			Ticks: f.Y.ticks(),
			Style: chart.Style{Hidden: f.Y.Hidden},
		},
		Series: series,
	}
	if f.Legend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	if err := ch.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render %q: %w", f.Title, err)
	}
	return nil
}

// SVG renders the figure into a string.
func (f Figure) SVG() (string, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Color parses a hex colour such as "#636EFA".
func Color(hex string) drawing.Color {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	return drawing.ColorFromHex(hex)
}
