package nba

import (
	"testing"

	apperrors "github.com/louisbranch/chartlab/internal/platform/errors"
)

func TestScatterGroups(t *testing.T) {
	t.Parallel()

	d := fixtureDataset(t)
	s, err := d.Scatter(ColumnHeight, ColumnPTS)
	if err != nil {
		t.Fatalf("Scatter() error = %v", err)
	}
	if len(s.Groups) != len(PositionOrder) {
		t.Fatalf("len(Groups) = %d, want %d", len(s.Groups), len(PositionOrder))
	}
	for i, g := range s.Groups {
		if g.Position != PositionOrder[i] {
			t.Fatalf("Groups[%d].Position = %q, want %q", i, g.Position, PositionOrder[i])
		}
	}
	pg := s.Groups[0]
	if len(pg.X) != 1 || pg.X[0] != 190 || pg.Y[0] != 10 {
		t.Fatalf("PG group = %+v, want one point (190, 10)", pg)
	}
	if c := s.Groups[4]; len(c.X) != 2 {
		t.Fatalf("C group = %+v, want two points", c)
	}
}

func TestScatterMarginals(t *testing.T) {
	t.Parallel()

	d := fixtureDataset(t)
	s, err := d.Scatter(ColumnHeight, ColumnPTS)
	if err != nil {
		t.Fatalf("Scatter() error = %v", err)
	}
	// 7 complete rows: Sturges gives 4 bins, doubled.
	if got := len(s.MarginalX.Edges); got != 9 {
		t.Fatalf("len(MarginalX.Edges) = %d, want 9", got)
	}
	if s.MarginalX.Edges[0] != 190 || s.MarginalX.Edges[8] != 225 {
		t.Fatalf("MarginalX.Edges = %v, want 190..225", s.MarginalX.Edges)
	}
	for name, m := range map[string]Marginal{"x": s.MarginalX, "y": s.MarginalY} {
		var total float64
		for _, pos := range PositionOrder {
			counts := m.Counts[pos]
			if len(counts) != len(m.Edges)-1 {
				t.Fatalf("%s counts for %s = %d bins, want %d", name, pos, len(counts), len(m.Edges)-1)
			}
			for _, c := range counts {
				total += c
			}
		}
		if total != 7 {
			t.Fatalf("%s marginal total = %v, want 7", name, total)
		}
	}
}

func TestScatterErrors(t *testing.T) {
	t.Parallel()

	d := fixtureDataset(t)
	for _, tc := range []struct {
		x, y string
		want apperrors.Code
	}{
		{"nope", ColumnWeight, apperrors.CodeUnknownColumn},
		{ColumnHeight, "nope", apperrors.CodeUnknownColumn},
		{ColumnPosition, ColumnWeight, apperrors.CodeNotNumericColumn},
		{ColumnHeight, ColumnHeightBins, apperrors.CodeNotNumericColumn},
	} {
		_, err := d.Scatter(tc.x, tc.y)
		if got := apperrors.GetCode(err); got != tc.want {
			t.Fatalf("Scatter(%q, %q) code = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}
