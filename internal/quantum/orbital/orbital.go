// Package orbital combines radial and angular parts into hydrogen atomic
// orbitals ψ = R_nl Y and samples their electron cloud in the xOz plane.
package orbital

import (
	"math"
	"math/rand/v2"
	"slices"
	"strconv"

	apperrors "github.com/louisbranch/chartlab/internal/platform/errors"
	"github.com/louisbranch/chartlab/internal/quantum/angular"
	"github.com/louisbranch/chartlab/internal/quantum/radial"
	"github.com/louisbranch/chartlab/internal/quantum/units"
)

const (
	MinPoints     = 1
	MaxPoints     = 1000
	DefaultPoints = 250
	// PlotLimit bounds both axes of the cloud plot, in Å.
	PlotLimit = 15.0
)

// Orbital is one atomic orbital of the catalog.
type Orbital struct {
	Name    string
	Radial  radial.Orbital
	Angular angular.Harmonic
	// NodalRadii are the radii of the spherical nodal surfaces, in Å.
	NodalRadii []float64
	// RMax is the half width of the sampling square, in Å.
	RMax float64
}

// Psi evaluates ψ at radius r (Å) and polar angle θ, in the φ = 0 half plane.
func (o Orbital) Psi(r, theta float64) float64 {
	return o.Radial.At(r) * o.Angular.Func(theta, 0)
}

// NodalAngles returns the angular nodal planes of the orbital.
func (o Orbital) NodalAngles() []float64 {
	return o.Angular.NodalAngles
}

var catalog = buildCatalog()

func buildCatalog() []Orbital {
	a0 := units.BohrRadius
	harmonic := func(name string) angular.Harmonic {
		h, err := angular.ByName(name)
		if err != nil {
			panic(err)
		}
		return h
	}
	return []Orbital{
		{Name: "1s", Radial: radial.Orbital{N: 1, L: 0}, Angular: harmonic("ns"), RMax: 3},
		{Name: "2s", Radial: radial.Orbital{N: 2, L: 0}, Angular: harmonic("ns"), NodalRadii: []float64{2 * a0}, RMax: 10},
		{Name: "3s", Radial: radial.Orbital{N: 3, L: 0}, Angular: harmonic("ns"), NodalRadii: []float64{
			3 * a0 / 2 * (3 - math.Sqrt(3)),
			3 * a0 / 2 * (3 + math.Sqrt(3)),
		}, RMax: 15},
		{Name: "2pz", Radial: radial.Orbital{N: 2, L: 1}, Angular: harmonic("npz"), RMax: 10},
		{Name: "3pz", Radial: radial.Orbital{N: 3, L: 1}, Angular: harmonic("npz"), NodalRadii: []float64{6 * a0}, RMax: 15},
		{Name: "3dz2", Radial: radial.Orbital{N: 3, L: 2}, Angular: harmonic("ndz2"), RMax: 15},
		{Name: "4fz3", Radial: radial.Orbital{N: 4, L: 3}, Angular: harmonic("nfz3"), RMax: 15},
	}
}

// All returns the orbitals in display order.
func All() []Orbital {
	return slices.Clone(catalog)
}

// ByName looks up an orbital by name.
func ByName(name string) (Orbital, error) {
	for _, o := range catalog {
		if o.Name == name {
			return o, nil
		}
	}
	return Orbital{}, apperrors.WithMetadata(apperrors.CodeUnknownOrbital, "unknown orbital "+strconv.Quote(name), map[string]string{
		"Orbital": name,
	})
}

// ValidatePoints checks the requested cloud size.
func ValidatePoints(n int) error {
	if n < MinPoints || n > MaxPoints {
		return apperrors.WithMetadata(apperrors.CodeOutOfRange, "npts out of range", map[string]string{
			"Field": "npts", "Min": strconv.Itoa(MinPoints), "Max": strconv.Itoa(MaxPoints),
		})
	}
	return nil
}

// Point is an accepted cloud position and the sign of ψ there.
type Point struct {
	X, Z     float64
	Positive bool
}

// Sample draws exactly n cloud points. Each batch draws n uniform (x, z) in
// [-RMax, RMax]² and keeps those where ψ² exceeds U(0, max ψ² of the batch);
// batches repeat until n points are kept and the excess is dropped.
func Sample(rng *rand.Rand, o Orbital, n int) []Point {
	if n <= 0 {
		return nil
	}
	out := make([]Point, 0, n)
	xs := make([]float64, n)
	zs := make([]float64, n)
	psi := make([]float64, n)
	for len(out) < n {
		var maxRho float64
		for i := range n {
			x := (2*rng.Float64() - 1) * o.RMax
			z := (2*rng.Float64() - 1) * o.RMax
			r := math.Hypot(x, z)
			theta := 0.0
			if r > 0 {
				theta = math.Acos(z / r)
			}
			xs[i], zs[i] = x, z
			psi[i] = o.Psi(r, theta)
			maxRho = math.Max(maxRho, psi[i]*psi[i])
		}
		for i := range n {
			if psi[i]*psi[i] > rng.Float64()*maxRho {
				out = append(out, Point{X: xs[i], Z: zs[i], Positive: psi[i] > 0})
				if len(out) == n {
					break
				}
			}
		}
	}
	return out
}

// Segment is a straight line in the xOz plane.
type Segment struct {
	X1, Z1, X2, Z2 float64
}

// NodalLines returns the angular nodal planes as segments through the origin
// clipped to [-limit, limit]².
func (o Orbital) NodalLines(limit float64) []Segment {
	out := make([]Segment, 0, len(o.Angular.NodalAngles))
	for _, theta := range o.Angular.NodalAngles {
		// Direction (sin θ, cos θ); scale so the longer component hits the limit.
		dx, dz := math.Sin(theta), math.Cos(theta)
		scale := limit / math.Max(math.Abs(dx), math.Abs(dz))
		out = append(out, Segment{X1: -dx * scale, Z1: -dz * scale, X2: dx * scale, Z2: dz * scale})
	}
	return out
}
