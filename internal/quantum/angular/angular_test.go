package angular

import (
	"errors"
	"math"
	"testing"

	apperrors "github.com/louisbranch/chartlab/internal/platform/errors"
)

// integrate |Y|² over the sphere with a midpoint rule.
func sphereNorm(f Function) float64 {
	const nTheta, nPhi = 200, 400
	dTheta, dPhi := math.Pi/nTheta, 2*math.Pi/nPhi
	var sum float64
	for i := 0; i < nTheta; i++ {
		theta := (float64(i) + 0.5) * dTheta
		for j := 0; j < nPhi; j++ {
			phi := (float64(j) + 0.5) * dPhi
			v := f(theta, phi)
			sum += v * v * math.Sin(theta) * dTheta * dPhi
		}
	}
	return sum
}

func TestHarmonicsAreNormalised(t *testing.T) {
	t.Parallel()

	for _, h := range All() {
		if got := sphereNorm(h.Func); math.Abs(got-1) > 1e-3 {
			t.Fatalf("∫|%s|² = %v, want 1", h.Name, got)
		}
	}
}

func TestNodalAnglesAreZeros(t *testing.T) {
	t.Parallel()

	for _, h := range All() {
		for _, theta := range h.NodalAngles {
			if v := h.Func(theta, 0); math.Abs(v) > 1e-12 {
				t.Fatalf("%s(θ=%v) = %v, want 0", h.Name, theta, v)
			}
		}
		if want := h.L; h.ML == 0 && len(h.NodalAngles) != want {
			t.Fatalf("%s has %d nodal planes, want %d", h.Name, len(h.NodalAngles), want)
		}
	}
}

func TestByName(t *testing.T) {
	t.Parallel()

	h, err := ByName("nfxz2")
	if err != nil {
		t.Fatalf("ByName() error = %v", err)
	}
	if h.L != 3 || h.MLText() != "±1" {
		t.Fatalf("nfxz2 = l %d m %s, want l 3 m ±1", h.L, h.MLText())
	}
	if _, err := ByName("ndxy"); !errors.Is(err, apperrors.New(apperrors.CodeUnknownOrbital, "")) {
		t.Fatalf("ByName(ndxy) error = %v, want UNKNOWN_ORBITAL", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := [][2]int{{0, 0}, {1, -1}, {3, 3}}
	for _, v := range valid {
		if err := Validate(v[0], v[1]); err != nil {
			t.Fatalf("Validate(%d, %d) error = %v", v[0], v[1], err)
		}
	}
	invalid := [][2]int{{-1, 0}, {4, 0}, {1, 2}, {2, -3}}
	for _, v := range invalid {
		if err := Validate(v[0], v[1]); !errors.Is(err, apperrors.New(apperrors.CodeOutOfRange, "")) {
			t.Fatalf("Validate(%d, %d) error = %v, want OUT_OF_RANGE", v[0], v[1], err)
		}
	}
	if h, err := ByQuantumNumbers(2, -1); err != nil || h.Name != "ndxz" {
		t.Fatalf("ByQuantumNumbers(2, -1) = %v, %v", h.Name, err)
	}
	if _, err := ByQuantumNumbers(3, 3); !errors.Is(err, apperrors.New(apperrors.CodeUnknownOrbital, "")) {
		t.Fatalf("ByQuantumNumbers(3, 3) error = %v, want UNKNOWN_ORBITAL", err)
	}
}

func TestCurveSplitsSigns(t *testing.T) {
	t.Parallel()

	pz, _ := ByName("npz")
	wave := Curve(pz, 1, false)
	if len(wave.Positive) == 0 || len(wave.Negative) == 0 {
		t.Fatalf("npz wavefunction lobes: %d positive, %d negative", len(wave.Positive), len(wave.Negative))
	}
	top := wave.Positive[0][0]
	if top.Theta != 0 || top.X != 0 || math.Abs(top.Z-wave.Max) > 1e-12 {
		t.Fatalf("first point = %+v, want on +z with radius %v", top, wave.Max)
	}
	var count int
	for _, run := range append(wave.Positive, wave.Negative...) {
		count += len(run)
	}
	if count != 361 {
		t.Fatalf("points = %d, want 361", count)
	}

	density := Curve(pz, 1, true)
	if len(density.Negative) != 0 {
		t.Fatal("density mode must not have a negative part")
	}
	if math.Abs(density.Max-wave.Max*wave.Max) > 1e-12 {
		t.Fatalf("density max = %v, want %v", density.Max, wave.Max*wave.Max)
	}
}

func TestNodalLine(t *testing.T) {
	t.Parallel()

	line := NodalLine(math.Pi/2, 2)
	if math.Abs(line[0].X-2) > 1e-12 || math.Abs(line[1].X+2) > 1e-12 || math.Abs(line[0].Z) > 1e-12 {
		t.Fatalf("NodalLine(π/2) = %+v", line)
	}
}
