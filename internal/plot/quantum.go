package plot

import (
	"fmt"
	"math"

	"github.com/louisbranch/chartlab/internal/numeric"
	"github.com/louisbranch/chartlab/internal/quantum/angular"
	"github.com/louisbranch/chartlab/internal/quantum/orbital"
	"github.com/louisbranch/chartlab/internal/quantum/particlebox"
	"github.com/louisbranch/chartlab/internal/quantum/radial"
)

// Text localizes a figure label key. A nil Text prints the key.
type Text func(key string, args ...any) string

func (t Text) get(key string, args ...any) string {
	if t == nil {
		return key
	}
	return t(key, args...)
}

// ParticleBoxInput is the data of the particle in a box figure.
type ParticleBoxInput struct {
	Level        int
	Length       float64
	Sigma        float64
	Curve        particlebox.Curve
	Samples      particlebox.Samples
	Nodes        []float64
	Wavefunction bool
}

// ParticleBox returns the density panel and the sampled positions panel.
func ParticleBox(in ParticleBoxInput, text Text) (Figure, Figure) {
	xr := Range{Min: 0, Max: in.Length}
	peak := 2 / in.Length
	yr := Range{Min: -0.05 * peak, Max: 1.05 * peak}
	if in.Wavefunction {
		yr.Min = -1.1 * math.Sqrt(peak)
	}
	edges := numeric.Edges(0, in.Length, particlebox.HistogramBins)
	hist := numeric.Histogram(in.Samples.X, edges, numeric.NormDensity)
	if m := HistogramMax(hist); m*1.05 > yr.Max {
		yr.Max = 1.05 * m
	}

	density := Figure{
		Title:  text.get("plot.pbox.title", in.Level),
		Height: 360,
		X:      Axis{Range: xr},
		Y:      Axis{Label: text.get("plot.density"), Range: yr},
		Legend: true,
	}
	density.Add(
		Histogram(text.get("plot.histogram"), edges, hist, Color(Blue).WithAlpha(102)),
		HLine("", 0, xr, Color(Grey), false),
		Line(text.get("plot.density"), in.Curve.X, in.Curve.Density, Color(Red), 2),
	)
	if in.Wavefunction {
		density.Add(Line(text.get("plot.wavefunction"), in.Curve.X, in.Curve.Phi, Color(Green), 2))
	}
	if len(in.Nodes) > 0 {
		density.Add(Points(text.get("plot.nodes"), in.Nodes, make([]float64, len(in.Nodes)), Color(Orange), 7))
	}

	samples := Figure{
		Height: 240,
		X:      Axis{Label: text.get("plot.x"), Range: xr},
		Y: Axis{
			Label: text.get("plot.pbox.samples", len(in.Samples.X)),
			Range: Range{Min: -8 * in.Sigma, Max: 8 * in.Sigma},
		},
	}
	samples.Add(Points("", in.Samples.X, in.Samples.Y, Color(Grey).WithAlpha(153), 3))
	return density, samples
}

// RadialInput is the data of the radial part figure.
type RadialInput struct {
	Orbital      radial.Orbital
	Curves       radial.Curves
	Integration  *radial.Integration
	Wavefunction bool
}

// Radial y range, shared by every orbital so curves compare.
var radialRange = Range{Min: -0.3, Max: 1.05}

// Radial draws D(r), optionally R(r), and the integrated area.
func Radial(in RadialInput, text Text) Figure {
	xr := Range{Min: 0, Max: radial.PlotMax}
	var ticks []Tick
	for _, v := range radial.BohrTicks(radial.PlotMax) {
		ticks = append(ticks, Tick{Value: v, Label: fmt.Sprintf("%.1f", v)})
	}
	f := Figure{
		Title:  text.get("plot.radial.title", in.Orbital.N, in.Orbital.L),
		X:      Axis{Label: text.get("plot.r"), Range: xr, Ticks: ticks},
		Y:      Axis{Range: radialRange},
		Legend: true,
	}
	f.Add(HLine("", 0, xr, Color(LightGray), false))
	if in.Integration != nil {
		c := in.Integration.Curve
		f.Add(Area(text.get("plot.integration"), c.R, c.D, Color(Orange).WithAlpha(110)))
	}
	if in.Wavefunction {
		f.Add(ClippedLine(text.get("plot.wavefunction"), in.Curves.R, in.Curves.Wave, radialRange, Color(Blue), 2)...)
	}
	f.Add(ClippedLine("D(r)", in.Curves.R, in.Curves.D, radialRange, Color(Orange), 2)...)
	return f
}

// Angular draws a harmonic polar curve in the xOz plane.
func Angular(h angular.Harmonic, polar angular.Polar, wavefunction bool, text Text) Figure {
	limit := 1.1 * polar.Max
	r := Range{Min: -limit, Max: limit}
	f := Figure{
		Title:  text.get("plot.angular.title"),
		Width:  560,
		Height: 560,
		X:      Axis{Label: "x", Range: r},
		Y:      Axis{Label: "z", Range: r},
		Legend: true,
	}
	positiveName := text.get("plot.density")
	if wavefunction {
		positiveName = text.get("plot.positive")
	}
	lobes := func(runs [][]angular.Point, name, hex string) {
		for i, run := range runs {
			xs := make([]float64, len(run))
			zs := make([]float64, len(run))
			for j, p := range run {
				xs[j], zs[j] = p.X, p.Z
			}
			if i > 0 {
				name = ""
			}
			f.Add(Fan("", xs, zs, Color(hex).WithAlpha(64)), Line(name, xs, zs, Color(hex), 2))
		}
	}
	lobes(polar.Negative, text.get("plot.negative"), SteelBlue)
	lobes(polar.Positive, positiveName, FireBrick)
	for i, theta := range h.NodalAngles {
		seg := angular.NodalLine(theta, limit)
		name := ""
		if i == 0 {
			name = text.get("plot.nodal_plane")
		}
		f.Add(Line(name, []float64{seg[0].X, seg[1].X}, []float64{seg[0].Z, seg[1].Z}, Color(DarkOrange), 1.5))
	}
	return f
}

// OrbitalInput is the data of the electron cloud figure.
type OrbitalInput struct {
	Orbital orbital.Orbital
	Points  []orbital.Point
	Sign    bool
	Nodal   bool
}

// Orbital draws the sampled cloud in the xOz plane with equal axes.
func Orbital(in OrbitalInput, text Text) Figure {
	r := Range{Min: -orbital.PlotLimit, Max: orbital.PlotLimit}
	f := Figure{
		Title:  text.get("plot.orbital.title", in.Orbital.Name),
		Width:  600,
		Height: 600,
		X:      Axis{Label: text.get("plot.x"), Range: r},
		Y:      Axis{Label: text.get("plot.z"), Range: r},
		Legend: true,
	}
	var px, pz, nx, nz []float64
	for _, p := range in.Points {
		if !in.Sign || p.Positive {
			px = append(px, p.X)
			pz = append(pz, p.Z)
		} else {
			nx = append(nx, p.X)
			nz = append(nz, p.Z)
		}
	}
	if in.Sign {
		f.Add(
			Points(text.get("plot.positive"), px, pz, Color(FireBrick).WithAlpha(153), 3),
			Points(text.get("plot.negative"), nx, nz, Color(SteelBlue).WithAlpha(153), 3),
		)
	} else {
		f.Add(Points(text.get("plot.density"), px, pz, Color(Grey).WithAlpha(153), 3))
	}
	if in.Nodal {
		for i, radius := range in.Orbital.NodalRadii {
			name := ""
			if i == 0 {
				name = text.get("plot.radial_node")
			}
			f.Add(Circle(name, radius, Color(DarkOrange), false))
		}
		for i, seg := range in.Orbital.NodalLines(orbital.PlotLimit) {
			name := ""
			if i == 0 {
				name = text.get("plot.angular_node")
			}
			f.Add(Dashed(name, []float64{seg.X1, seg.X2}, []float64{seg.Z1, seg.Z2}, Color(DarkOrange), 1.5))
		}
	}
	return f
}
