// Package particlebox models a particle of mass m in an infinite potential
// well of length L: x in [0, L].
package particlebox

import (
	"math"
	"math/rand/v2"

	"github.com/louisbranch/chartlab/internal/numeric"
	"github.com/louisbranch/chartlab/internal/quantum/units"
)

const (
	// MinLevel and MaxLevel bound the quantum number p.
	MinLevel = 1
	MaxLevel = 15
	// MinPoints and MaxPoints bound the number of sampled positions.
	MinPoints     = 1
	MaxPoints     = 1000
	DefaultPoints = 100
	// Length is the box length in Å.
	Length = 1.0
	// Jitter is the vertical dispersion of the sample strip.
	Jitter = 0.5
	// CurvePoints is the resolution of the density curve.
	CurvePoints = 500
	// HistogramBins is the bin count of the sampled position histogram.
	HistogramBins = 30
)

// Phi is the normalised wavefunction sqrt(2/L) sin(pπx/L).
func Phi(x float64, p int, length float64) float64 {
	return math.Sqrt(2/length) * math.Sin(float64(p)*math.Pi*x/length)
}

// Energy returns h²p²/(8mL²) in eV, with mass in kg and length in m.
func Energy(p int, mass, length float64) float64 {
	fp := float64(p)
	return units.JoulesToEV(units.Planck * units.Planck * fp * fp / (8 * mass * length * length))
}

// ElectronEnergy is Energy for an electron in a box of length Å.
func ElectronEnergy(p int, length float64) float64 {
	return Energy(p, units.ElectronMass, length*units.Angstrom)
}

// Sample draws exactly n positions from |Phi|² by rejection: x ~ U(0, L) is
// kept when Phi² exceeds a U(0, 2/L) draw.
func Sample(rng *rand.Rand, n, p int, length float64) []float64 {
	pos := make([]float64, 0, n)
	for len(pos) < n {
		x, _ := Try(rng, p, length)
		if !math.IsNaN(x) {
			pos = append(pos, x)
		}
	}
	return pos
}

// Try performs one rejection step. It returns the candidate and true when
// accepted, NaN and false otherwise.
func Try(rng *rand.Rand, p int, length float64) (float64, bool) {
	x := rng.Float64() * length
	phi := Phi(x, p, length)
	if phi*phi > rng.Float64()*2/length {
		return x, true
	}
	return math.NaN(), false
}

// jitter returns n draws from N(0, sigma).
func jitter(rng *rand.Rand, n int, sigma float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.NormFloat64() * sigma
	}
	return out
}

// Nodes returns the interior zeros i L/p of Phi for i in 1..p-1.
func Nodes(p int, length float64) []float64 {
	if p <= 1 {
		return nil
	}
	out := make([]float64, 0, p-1)
	for i := 1; i < p; i++ {
		out = append(out, float64(i)*length/float64(p))
	}
	return out
}

// Curve is a sampled wavefunction and its square on [0, L].
type Curve struct {
	X       []float64
	Phi     []float64
	Density []float64
}

// Density evaluates Phi and Phi² on npts points over [0, L].
func Density(p int, length float64, npts int) Curve {
	xs := numeric.Linspace(0, length, npts)
	c := Curve{X: xs, Phi: make([]float64, len(xs)), Density: make([]float64, len(xs))}
	for i, x := range xs {
		phi := Phi(x, p, length)
		c.Phi[i] = phi
		c.Density[i] = phi * phi
	}
	return c
}

// Samples is one draw of positions with their vertical jitter.
type Samples struct {
	X []float64
	Y []float64
}

// Draw samples n positions and their jitter from one generator, positions
// first, so a seed reproduces both.
func Draw(rng *rand.Rand, n, p int, length, sigma float64) Samples {
	return Samples{
		X: Sample(rng, n, p, length),
		Y: jitter(rng, n, sigma),
	}
}
