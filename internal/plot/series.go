package plot

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Points draws unconnected dots. Pairs with a NaN coordinate are dropped.
func Points(name string, xs, ys []float64, color drawing.Color, size float64) chart.ContinuousSeries {
	x, y := finitePairs(xs, ys)
	return chart.ContinuousSeries{
		Name: name,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    size,
			DotColor:    color,
		},
		XValues: x,
		YValues: y,
	}
}

// Line draws a solid polyline.
func Line(name string, xs, ys []float64, color drawing.Color, width float64) chart.ContinuousSeries {
	x, y := finitePairs(xs, ys)
	return chart.ContinuousSeries{
		Name: name,
		Style: chart.Style{
			StrokeWidth: width,
			StrokeColor: color,
		},
		XValues: x,
		YValues: y,
	}
}

// Dashed draws a dashed polyline.
func Dashed(name string, xs, ys []float64, color drawing.Color, width float64) chart.ContinuousSeries {
	s := Line(name, xs, ys, color, width)
	s.Style.StrokeDashArray = []float64{6, 4}
	return s
}

// Filled draws a polyline and fills the area below it down to the bottom of
// the plot.
func Filled(name string, xs, ys []float64, stroke, fill drawing.Color) chart.ContinuousSeries {
	s := Line(name, xs, ys, stroke, 1)
	s.Style.FillColor = fill
	return s
}

// VLine is a vertical segment at x spanning r.
func VLine(name string, x float64, r Range, color drawing.Color, dashed bool) chart.ContinuousSeries {
	s := Line(name, []float64{x, x}, []float64{r.Min, r.Max}, color, 1)
	if dashed {
		s.Style.StrokeDashArray = []float64{6, 4}
	}
	return s
}

// HLine is a horizontal segment at y spanning r.
func HLine(name string, y float64, r Range, color drawing.Color, dashed bool) chart.ContinuousSeries {
	s := Line(name, []float64{r.Min, r.Max}, []float64{y, y}, color, 1)
	if dashed {
		s.Style.StrokeDashArray = []float64{6, 4}
	}
	return s
}

// Histogram draws counts over edges as a filled step curve.
func Histogram(name string, edges, counts []float64, color drawing.Color) chart.ContinuousSeries {
	xs, ys := step(edges, counts)
	return Filled(name, xs, ys, color, color.WithAlpha(96))
}

// HorizontalHistogram draws counts over edges along the y axis: x is the
// count, y the value.
func HorizontalHistogram(name string, edges, counts []float64, color drawing.Color) chart.ContinuousSeries {
	ys, xs := step(edges, counts)
	return Line(name, xs, ys, color, 1.5)
}

// HistogramMax is the largest count across histograms.
func HistogramMax(counts ...[]float64) float64 {
	var m float64
	for _, c := range counts {
		for _, v := range c {
			if v > m {
				m = v
			}
		}
	}
	return m
}

// step turns bins into the outline (e0,0) (e0,c0) (e1,c0) (e1,c1) ... (en,0).
func step(edges, counts []float64) (pos, height []float64) {
	if len(edges) < 2 || len(counts) != len(edges)-1 {
		return nil, nil
	}
	pos = append(pos, edges[0])
	height = append(height, 0)
	for i, c := range counts {
		pos = append(pos, edges[i], edges[i+1])
		height = append(height, c, c)
	}
	pos = append(pos, edges[len(edges)-1])
	height = append(height, 0)
	return pos, height
}

func finitePairs(xs, ys []float64) ([]float64, []float64) {
	n := min(len(xs), len(ys))
	x := make([]float64, 0, n)
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if isFinite(xs[i]) && isFinite(ys[i]) {
			x = append(x, xs[i])
			y = append(y, ys[i])
		}
	}
	return x, y
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Area shades the region between ys and zero as a dense zigzag of vertical
// strokes, so the fill stops at y = 0 instead of the plot bottom.
func Area(name string, xs, ys []float64, color drawing.Color) chart.ContinuousSeries {
	x, y := finitePairs(xs, ys)
	zx := make([]float64, 0, 2*len(x))
	zy := make([]float64, 0, 2*len(y))
	for i := range x {
		if i%2 == 0 {
			zx = append(zx, x[i], x[i])
			zy = append(zy, 0, y[i])
		} else {
			zx = append(zx, x[i], x[i])
			zy = append(zy, y[i], 0)
		}
	}
	return Line(name, zx, zy, color, 1)
}

// Fan shades a polar lobe with spokes from the origin to each outline point.
func Fan(name string, xs, ys []float64, color drawing.Color) chart.ContinuousSeries {
	x, y := finitePairs(xs, ys)
	fx := make([]float64, 0, 2*len(x))
	fy := make([]float64, 0, 2*len(y))
	for i := range x {
		fx = append(fx, 0, x[i])
		fy = append(fy, 0, y[i])
	}
	return Line(name, fx, fy, color, 1)
}

// ClippedLine splits a curve into the runs that stay inside r, so values
// beyond the axis range are cut instead of drawn outside the plot. Only the
// first run carries the name.
func ClippedLine(name string, xs, ys []float64, r Range, color drawing.Color, width float64) []chart.Series {
	var out []chart.Series
	var runX, runY []float64
	flush := func() {
		if len(runX) > 0 {
			out = append(out, Line(name, runX, runY, color, width))
			name = ""
		}
		runX, runY = nil, nil
	}
	n := min(len(xs), len(ys))
	for i := 0; i < n; i++ {
		if !isFinite(ys[i]) || ys[i] < r.Min || ys[i] > r.Max {
			flush()
			continue
		}
		runX = append(runX, xs[i])
		runY = append(runY, ys[i])
	}
	flush()
	return out
}

// Circle is a closed polyline of radius r around the origin.
func Circle(name string, radius float64, color drawing.Color, dashed bool) chart.ContinuousSeries {
	const segments = 400
	xs := make([]float64, segments+1)
	ys := make([]float64, segments+1)
	for i := range xs {
		a := 2 * math.Pi * float64(i) / segments
		xs[i] = radius * math.Cos(a)
		ys[i] = radius * math.Sin(a)
	}
	if dashed {
		return Dashed(name, xs, ys, color, 1.5)
	}
	return Line(name, xs, ys, color, 1.5)
}
