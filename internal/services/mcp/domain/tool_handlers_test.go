package domain

import (
	"context"
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/louisbranch/chartlab/internal/nba"
	"github.com/louisbranch/chartlab/internal/nba/source"
	apperrors "github.com/louisbranch/chartlab/internal/platform/errors"
	"github.com/louisbranch/chartlab/internal/quantum/particlebox"
	"github.com/louisbranch/chartlab/internal/random"
)

func sampleDataset(t *testing.T) *nba.Dataset {
	t.Helper()
	d, err := source.Sample()
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	return d
}

func TestParticleBoxLevelHandler(t *testing.T) {
	t.Parallel()

	_, got, err := ParticleBoxLevelHandler()(context.Background(), nil, ParticleBoxLevelInput{Level: 3})
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if math.Abs(got.EnergyEV-9*37.6) > 1 {
		t.Fatalf("EnergyEV = %v, want about %v", got.EnergyEV, 9*37.6)
	}
	want := []float64{1.0 / 3, 2.0 / 3}
	if len(got.Nodes) != len(want) {
		t.Fatalf("Nodes = %v, want %v", got.Nodes, want)
	}
	for i := range want {
		if math.Abs(got.Nodes[i]-want[i]) > 1e-12 {
			t.Fatalf("Nodes = %v, want %v", got.Nodes, want)
		}
	}

	_, ground, err := ParticleBoxLevelHandler()(context.Background(), nil, ParticleBoxLevelInput{Level: 1})
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if ground.Nodes == nil || len(ground.Nodes) != 0 {
		t.Fatalf("Nodes = %#v, want empty slice", ground.Nodes)
	}
}

func TestParticleBoxLevelHandlerRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	for _, level := range []int{0, 16} {
		_, _, err := ParticleBoxLevelHandler()(context.Background(), nil, ParticleBoxLevelInput{Level: level})
		if !errors.Is(err, apperrors.New(apperrors.CodeOutOfRange, "")) {
			t.Fatalf("level %d error = %v, want OUT_OF_RANGE", level, err)
		}
	}
}

func TestParticleBoxSampleHandlerSeeded(t *testing.T) {
	t.Parallel()

	seed := int64(11)
	handler := ParticleBoxSampleHandler(func() (int64, error) {
		t.Fatal("newSeed called with an explicit seed")
		return 0, nil
	})
	_, got, err := handler(context.Background(), nil, ParticleBoxSampleInput{Level: 2, Points: 40, Seed: &seed})
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	want := particlebox.Sample(random.New(seed), 40, 2, particlebox.Length)
	if got.Seed != seed || !slices.Equal(got.Positions, want) {
		t.Fatalf("result = %+v, want seed %d positions %v", got, seed, want)
	}
}

func TestParticleBoxSampleHandlerDrawsSeed(t *testing.T) {
	t.Parallel()

	handler := ParticleBoxSampleHandler(func() (int64, error) { return 7, nil })
	_, got, err := handler(context.Background(), nil, ParticleBoxSampleInput{Level: 1, Points: 5})
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if got.Seed != 7 || len(got.Positions) != 5 {
		t.Fatalf("result = %+v, want seed 7 and 5 positions", got)
	}
	for _, x := range got.Positions {
		if x < 0 || x > particlebox.Length {
			t.Fatalf("position %v outside [0, %v]", x, particlebox.Length)
		}
	}

	failing := ParticleBoxSampleHandler(func() (int64, error) { return 0, errors.New("entropy") })
	if _, _, err := failing(context.Background(), nil, ParticleBoxSampleInput{Level: 1, Points: 5}); err == nil {
		t.Fatal("expected seed error")
	}
	if _, _, err := handler(context.Background(), nil, ParticleBoxSampleInput{Level: 1, Points: 1001}); err == nil {
		t.Fatal("expected points out of range")
	}
}

func TestRadialProbabilityHandler(t *testing.T) {
	t.Parallel()

	_, got, err := RadialProbabilityHandler()(context.Background(), nil, RadialProbabilityInput{N: 2, L: 1, R1: 0, R2: 15})
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if got.Orbital != "2p" {
		t.Fatalf("Orbital = %q, want %q", got.Orbital, "2p")
	}
	if math.Abs(got.Probability-1) > 0.01 {
		t.Fatalf("Probability = %v, want about 1", got.Probability)
	}

	tests := []struct {
		name  string
		input RadialProbabilityInput
	}{
		{name: "l too large", input: RadialProbabilityInput{N: 1, L: 1, R1: 0, R2: 1}},
		{name: "n too large", input: RadialProbabilityInput{N: 5, L: 0, R1: 0, R2: 1}},
		{name: "reversed bounds", input: RadialProbabilityInput{N: 1, L: 0, R1: 2, R2: 1}},
		{name: "negative bound", input: RadialProbabilityInput{N: 1, L: 0, R1: -1, R2: 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, _, err := RadialProbabilityHandler()(context.Background(), nil, tc.input); err == nil {
				t.Fatalf("handler(%+v) error = nil, want error", tc.input)
			}
		})
	}
}

func TestOrbitalNodesHandler(t *testing.T) {
	t.Parallel()

	_, got, err := OrbitalNodesHandler()(context.Background(), nil, OrbitalNodesInput{Name: "3pz"})
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if len(got.NodalRadii) != 1 || len(got.NodalAngles) != 1 {
		t.Fatalf("result = %+v, want one radial and one angular node", got)
	}
	if math.Abs(got.NodalAngles[0]-90) > 1e-9 {
		t.Fatalf("NodalAngles = %v, want [90]", got.NodalAngles)
	}

	_, s, err := OrbitalNodesHandler()(context.Background(), nil, OrbitalNodesInput{Name: "1s"})
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if s.NodalRadii == nil || s.NodalAngles == nil || len(s.NodalRadii)+len(s.NodalAngles) != 0 {
		t.Fatalf("1s result = %#v, want empty node lists", s)
	}

	_, _, err = OrbitalNodesHandler()(context.Background(), nil, OrbitalNodesInput{Name: "5g"})
	if !errors.Is(err, apperrors.New(apperrors.CodeUnknownOrbital, "")) {
		t.Fatalf("unknown orbital error = %v, want UNKNOWN_ORBITAL", err)
	}
}

func TestNBAColumnsHandler(t *testing.T) {
	t.Parallel()

	_, got, err := NBAColumnsHandler(sampleDataset(t))(context.Background(), nil, NBAColumnsInput{})
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if got.Players != 100 || got.Source != "embedded sample" {
		t.Fatalf("result = %+v, want 100 players from the embedded sample", got)
	}
	if len(got.Columns) != len(nba.Columns()) || got.Columns[0].Name != nba.ColumnYear || !got.Columns[0].Numeric {
		t.Fatalf("Columns = %+v", got.Columns)
	}
}

func TestNBAPivotHandler(t *testing.T) {
	t.Parallel()

	dataset := sampleDataset(t)
	_, got, err := NBAPivotHandler(dataset)(context.Background(), nil, NBAPivotInput{})
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if got.Value != nba.ColumnHeight {
		t.Fatalf("Value = %q, want %q", got.Value, nba.ColumnHeight)
	}
	pivot, err := dataset.Pivot(nba.ColumnHeight)
	if err != nil {
		t.Fatalf("Pivot() error = %v", err)
	}
	if len(got.Table.Data) != len(pivot.Rows) || len(got.Table.Columns) != len(pivot.Columns)+1 {
		t.Fatalf("Table has %d rows %d columns, want %d and %d", len(got.Table.Data), len(got.Table.Columns), len(pivot.Rows), len(pivot.Columns)+1)
	}

	_, _, err = NBAPivotHandler(dataset)(context.Background(), nil, NBAPivotInput{Value: nba.ColumnPosition})
	if !errors.Is(err, apperrors.New(apperrors.CodeNotNumericColumn, "")) {
		t.Fatalf("categorical error = %v, want NOT_NUMERIC_COLUMN", err)
	}
}

func TestNBAHandlersWithoutDataset(t *testing.T) {
	t.Parallel()

	unavailable := apperrors.New(apperrors.CodeDatasetUnavailable, "")
	if _, _, err := NBAColumnsHandler(nil)(context.Background(), nil, NBAColumnsInput{}); !errors.Is(err, unavailable) {
		t.Fatalf("columns error = %v, want DATASET_UNAVAILABLE", err)
	}
	if _, _, err := NBAPivotHandler(nil)(context.Background(), nil, NBAPivotInput{}); !errors.Is(err, unavailable) {
		t.Fatalf("pivot error = %v, want DATASET_UNAVAILABLE", err)
	}
}
