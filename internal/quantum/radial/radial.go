// Package radial computes the radial part R_nl(r) of hydrogen-like atomic
// orbitals and the radial probability density D(r) = r² R_nl(r)².
//
// Radii are in Å. Functions follow the convention R_nl > 0 near the nucleus.
package radial

import (
	"math"
	"strconv"

	"github.com/louisbranch/chartlab/internal/numeric"
	apperrors "github.com/louisbranch/chartlab/internal/platform/errors"
	"github.com/louisbranch/chartlab/internal/quantum/units"
)

const (
	MinN = 1
	MaxN = 4
	// PlotMax is the largest radius drawn, in Å.
	PlotMax = 15.0
	// PlotPoints is the resolution of the curves.
	PlotPoints = 400
	// IntegrationPoints is the trapezoid resolution of Probability.
	IntegrationPoints = 400
)

// Orbital identifies a radial function by its quantum numbers.
type Orbital struct {
	N, L int
	// Z is the nuclear charge; zero means hydrogen.
	Z float64
}

// Validate checks 1 <= n <= MaxN and 0 <= l < n.
func (o Orbital) Validate() error {
	if o.N < MinN || o.N > MaxN {
		return apperrors.WithMetadata(apperrors.CodeOutOfRange, "n out of range", map[string]string{
			"Field": "n", "Min": "1", "Max": "4",
		})
	}
	if o.L < 0 || o.L >= o.N {
		return apperrors.WithMetadata(apperrors.CodeOutOfRange, "l out of range", map[string]string{
			"Field": "l", "Min": "0", "Max": strconv.Itoa(o.N - 1),
		})
	}
	return nil
}

// Label returns the spectroscopic name such as "2p".
func (o Orbital) Label() string {
	return strconv.Itoa(o.N) + string("spdf"[o.L])
}

func (o Orbital) charge() float64 {
	if o.Z <= 0 {
		return 1
	}
	return o.Z
}

// R evaluates R_nl at r with the Bohr radius a0 (Å). Closed forms cover n <= 3;
// n = 4 uses the associated Laguerre expression.
func (o Orbital) R(r, a0 float64) float64 {
	z := o.charge()
	rho := z * r / a0
	pre := math.Pow(z/a0, 1.5)
	switch {
	case o.N == 1 && o.L == 0:
		return 2 * pre * math.Exp(-rho)
	case o.N == 2 && o.L == 0:
		return pre / (2 * math.Sqrt2) * (2 - rho) * math.Exp(-rho/2)
	case o.N == 2 && o.L == 1:
		return pre / (2 * math.Sqrt(6)) * rho * math.Exp(-rho/2)
	case o.N == 3 && o.L == 0:
		return 2 * pre / (81 * math.Sqrt(3)) * (27 - 18*rho + 2*rho*rho) * math.Exp(-rho/3)
	case o.N == 3 && o.L == 1:
		return 4 * pre / (81 * math.Sqrt(6)) * (6*rho - rho*rho) * math.Exp(-rho/3)
	case o.N == 3 && o.L == 2:
		return 4 * pre / (81 * math.Sqrt(30)) * rho * rho * math.Exp(-rho/3)
	default:
		return General(o.N, o.L, z, r, a0)
	}
}

// At evaluates R_nl at r with the standard Bohr radius.
func (o Orbital) At(r float64) float64 {
	return o.R(r, units.BohrRadius)
}

// D is the radial probability density r² R_nl(r)².
func (o Orbital) D(r float64) float64 {
	v := o.At(r)
	return r * r * v * v
}

// General evaluates
//
//	R_nl(r) = sqrt((2Z/(n a0))³ (n-l-1)! / (2n (n+l)!)) e^(-ρ/2) ρ^l L^(2l+1)_(n-l-1)(ρ)
//
// with ρ = 2Zr/(n a0).
func General(n, l int, z, r, a0 float64) float64 {
	fn := float64(n)
	rho := 2 * z * r / (fn * a0)
	norm := math.Sqrt(math.Pow(2*z/(fn*a0), 3) * factorial(n-l-1) / (2 * fn * factorial(n+l)))
	return norm * math.Exp(-rho/2) * math.Pow(rho, float64(l)) * Laguerre(n-l-1, float64(2*l+1), rho)
}

// Laguerre evaluates the generalised Laguerre polynomial L^alpha_k(x) by
// upward recurrence.
func Laguerre(k int, alpha, x float64) float64 {
	if k <= 0 {
		return 1
	}
	prev, cur := 1.0, 1+alpha-x
	for i := 1; i < k; i++ {
		fi := float64(i)
		prev, cur = cur, ((2*fi+1+alpha-x)*cur-(fi+alpha)*prev)/(fi+1)
	}
	return cur
}

func factorial(n int) float64 {
	out := 1.0
	for i := 2; i <= n; i++ {
		out *= float64(i)
	}
	return out
}

// Curves samples the wavefunction and D(r) over [0, rmax].
type Curves struct {
	R    []float64
	Wave []float64
	D    []float64
}

// Sample evaluates R and D on npts points of [0, rmax].
func (o Orbital) Sample(rmax float64, npts int) Curves {
	rs := numeric.Linspace(0, rmax, npts)
	c := Curves{R: rs, Wave: make([]float64, len(rs)), D: make([]float64, len(rs))}
	for i, r := range rs {
		v := o.At(r)
		c.Wave[i] = v
		c.D[i] = r * r * v * v
	}
	return c
}

// Integration is the probability of finding the electron between R1 and R2
// along with the sampled D(r) used to compute it.
type Integration struct {
	R1, R2      float64
	Probability float64
	Curve       Curves
}

// Probability integrates D(r) over [r1, r2] with the trapezoidal rule.
// It requires 0 <= r1 < r2.
func (o Orbital) Probability(r1, r2 float64) (Integration, error) {
	if err := o.Validate(); err != nil {
		return Integration{}, err
	}
	if math.IsNaN(r1) || math.IsNaN(r2) || r1 < 0 || r2 <= r1 {
		return Integration{}, apperrors.WithMetadata(apperrors.CodeInvalidArgument, "integration bounds must satisfy 0 <= r1 < r2", map[string]string{
			"Field": "r",
		})
	}
	rs := numeric.Linspace(r1, r2, IntegrationPoints)
	c := Curves{R: rs, Wave: make([]float64, len(rs)), D: make([]float64, len(rs))}
	for i, r := range rs {
		c.Wave[i] = o.At(r)
		c.D[i] = r * r * c.Wave[i] * c.Wave[i]
	}
	return Integration{R1: r1, R2: r2, Probability: numeric.Trapezoid(c.D, rs), Curve: c}, nil
}

// BohrTicks returns tick positions at multiples k a0 for k = 1, 4, 7, ...
// inside [0, rmax].
func BohrTicks(rmax float64) []float64 {
	var out []float64
	for k := 1; float64(k)*units.BohrRadius <= rmax; k += 3 {
		out = append(out, float64(k)*units.BohrRadius)
	}
	return out
}
