// Package angular evaluates the real spherical harmonics used as the angular
// part of atomic orbitals, and their polar curves in the xOz plane.
package angular

import (
	"math"
	"slices"
	"strconv"

	apperrors "github.com/louisbranch/chartlab/internal/platform/errors"
)

// MaxL is the largest secondary quantum number handled.
const MaxL = 3

// Function is a real spherical harmonic Y(θ, φ).
type Function func(theta, phi float64) float64

// Harmonic describes one real angular part.
type Harmonic struct {
	// Name is the control value, e.g. "npz".
	Name string
	// Label is the display name, such as "ndz²".
	Label string
	// Symbol names the harmonic combination, e.g. "Y₁⁰".
	Symbol string
	L      int
	// ML is the magnetic quantum number; combinations of ±m carry |m|.
	ML int
	// NodalAngles are the θ of the nodal planes through the origin in xOz.
	NodalAngles []float64
	Func        Function
}

// MLText renders m_l, with ± for real combinations.
func (h Harmonic) MLText() string {
	if h.ML == 0 {
		return "0"
	}
	return "±" + strconv.Itoa(h.ML)
}

// Y00 is the ns angular part.
func Y00(_, _ float64) float64 {
	return 1 / math.Sqrt(4*math.Pi)
}

// Y10 is the npz angular part.
func Y10(theta, _ float64) float64 {
	return math.Sqrt(3/(4*math.Pi)) * math.Cos(theta)
}

// Y11x is the npx combination (-Y₁¹ + Y₁⁻¹)/√2.
func Y11x(theta, phi float64) float64 {
	return math.Sqrt(3/(4*math.Pi)) * math.Sin(theta) * math.Cos(phi)
}

// Y20 is the ndz2 angular part.
func Y20(theta, _ float64) float64 {
	c := math.Cos(theta)
	return math.Sqrt(5/(16*math.Pi)) * (3*c*c - 1)
}

// Y21xz is the ndxz combination (-Y₂¹ + Y₂⁻¹)/√2.
func Y21xz(theta, phi float64) float64 {
	return math.Sqrt(15/(4*math.Pi)) * math.Sin(theta) * math.Cos(theta) * math.Cos(phi)
}

// Y30 is the nfz3 angular part.
func Y30(theta, _ float64) float64 {
	c := math.Cos(theta)
	return math.Sqrt(7/(16*math.Pi)) * (5*c*c*c - 3*c)
}

// Y31xz2 is the nfxz2 combination (-Y₃¹ + Y₃⁻¹)/√2.
func Y31xz2(theta, phi float64) float64 {
	c := math.Cos(theta)
	return math.Sqrt(21/(32*math.Pi)) * math.Sin(theta) * (5*c*c - 1) * math.Cos(phi)
}

var harmonics = []Harmonic{
	{Name: "ns", Label: "ns", Symbol: "Y₀⁰", L: 0, ML: 0, Func: Y00},
	{Name: "npz", Label: "npz", Symbol: "Y₁⁰", L: 1, ML: 0, NodalAngles: []float64{math.Pi / 2}, Func: Y10},
	{Name: "npx", Label: "npx", Symbol: "(Y₁⁻¹ - Y₁¹)/√2", L: 1, ML: 1, NodalAngles: []float64{0}, Func: Y11x},
	{Name: "ndz2", Label: "ndz²", Symbol: "Y₂⁰", L: 2, ML: 0, NodalAngles: []float64{math.Acos(1 / math.Sqrt(3)), -math.Acos(1 / math.Sqrt(3))}, Func: Y20},
	{Name: "ndxz", Label: "ndxz", Symbol: "(Y₂⁻¹ - Y₂¹)/√2", L: 2, ML: 1, NodalAngles: []float64{0, math.Pi / 2}, Func: Y21xz},
	{Name: "nfz3", Label: "nfz³", Symbol: "Y₃⁰", L: 3, ML: 0, NodalAngles: []float64{math.Pi / 2, math.Acos(math.Sqrt(3.0 / 5)), -math.Acos(math.Sqrt(3.0 / 5))}, Func: Y30},
	{Name: "nfxz2", Label: "nfxz²", Symbol: "(Y₃⁻¹ - Y₃¹)/√2", L: 3, ML: 1, NodalAngles: []float64{0, math.Acos(math.Sqrt(1.0 / 5)), -math.Acos(math.Sqrt(1.0 / 5))}, Func: Y31xz2},
}

// All returns the harmonics in display order.
func All() []Harmonic {
	return slices.Clone(harmonics)
}

// ByName looks up a harmonic by control value.
func ByName(name string) (Harmonic, error) {
	for _, h := range harmonics {
		if h.Name == name {
			return h, nil
		}
	}
	return Harmonic{}, apperrors.WithMetadata(apperrors.CodeUnknownOrbital, "unknown angular part "+strconv.Quote(name), map[string]string{
		"Orbital": name,
	})
}

// ByQuantumNumbers looks up the harmonic for (l, |m_l|).
func ByQuantumNumbers(l, ml int) (Harmonic, error) {
	if err := Validate(l, ml); err != nil {
		return Harmonic{}, err
	}
	if ml < 0 {
		ml = -ml
	}
	for _, h := range harmonics {
		if h.L == l && h.ML == ml {
			return h, nil
		}
	}
	return Harmonic{}, apperrors.WithMetadata(apperrors.CodeUnknownOrbital, "no real harmonic for l and m_l", map[string]string{
		"Orbital": "l=" + strconv.Itoa(l) + " m=" + strconv.Itoa(ml),
	})
}

// Validate checks 0 <= l <= MaxL and -l <= m <= l.
func Validate(l, m int) error {
	if l < 0 || l > MaxL {
		return apperrors.WithMetadata(apperrors.CodeOutOfRange, "l out of range", map[string]string{
			"Field": "l", "Min": "0", "Max": strconv.Itoa(MaxL),
		})
	}
	if m < -l || m > l {
		return apperrors.WithMetadata(apperrors.CodeOutOfRange, "m_l out of range", map[string]string{
			"Field": "m_l", "Min": strconv.Itoa(-l), "Max": strconv.Itoa(l),
		})
	}
	return nil
}

// Point is a polar sample projected into the xOz plane.
type Point struct {
	Theta float64
	X, Z  float64
}

// Polar is a polar curve split into the lobes where the plotted value is
// positive and where it is negative. Radii are absolute values.
type Polar struct {
	Positive [][]Point
	Negative [][]Point
	// Max is the largest radius; plots use [0, 1.1 Max].
	Max float64
}

// Curve evaluates h in the xOz plane (φ = 0) for θ from 0 to 360° by
// stepDeg degrees. In density mode the square is drawn, so only the
// positive part is populated.
func Curve(h Harmonic, stepDeg float64, density bool) Polar {
	if stepDeg <= 0 {
		stepDeg = 1
	}
	var out Polar
	var run []Point
	runPositive := true
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runPositive {
			out.Positive = append(out.Positive, run)
		} else {
			out.Negative = append(out.Negative, run)
		}
		run = nil
	}
	for deg := 0.0; deg <= 360+1e-9; deg += stepDeg {
		theta := deg * math.Pi / 180
		v := h.Func(theta, 0)
		if density {
			v *= v
		}
		positive := v >= 0
		if positive != runPositive {
			flush()
			runPositive = positive
		}
		r := math.Abs(v)
		out.Max = math.Max(out.Max, r)
		run = append(run, Point{Theta: theta, X: r * math.Sin(theta), Z: r * math.Cos(theta)})
	}
	flush()
	return out
}

// NodalLine returns the segment through the origin at angle theta spanning
// radius on both sides, in xOz coordinates.
func NodalLine(theta, radius float64) [2]Point {
	return [2]Point{
		{Theta: theta, X: radius * math.Sin(theta), Z: radius * math.Cos(theta)},
		{Theta: theta + math.Pi, X: -radius * math.Sin(theta), Z: -radius * math.Cos(theta)},
	}
}
