package nba

import (
	"testing"

	apperrors "github.com/louisbranch/chartlab/internal/platform/errors"
)

func TestMatrixPanels(t *testing.T) {
	t.Parallel()

	d := fixtureDataset(t)
	m, err := d.Matrix(DefaultMatrixDimensions)
	if err != nil {
		t.Fatalf("Matrix() error = %v", err)
	}
	if got := len(m.Panels); got != 6 {
		t.Fatalf("len(Panels) = %d, want 6", got)
	}
	for _, p := range m.Panels {
		if p.Row == p.Col {
			t.Fatalf("panel on the diagonal: %d,%d", p.Row, p.Col)
		}
		if p.Scatter.X != m.Dimensions[p.Col] || p.Scatter.Y != m.Dimensions[p.Row] {
			t.Fatalf("panel %d,%d axes = %s/%s", p.Row, p.Col, p.Scatter.X, p.Scatter.Y)
		}
	}
}

func TestMatrixSingleDimension(t *testing.T) {
	t.Parallel()

	d := fixtureDataset(t)
	m, err := d.Matrix([]string{ColumnHeight})
	if err != nil {
		t.Fatalf("Matrix() error = %v", err)
	}
	if len(m.Panels) != 0 || len(m.Dimensions) != 1 {
		t.Fatalf("Matrix(height) = %+v, want one dimension and no panels", m)
	}
}

func TestMatrixErrors(t *testing.T) {
	t.Parallel()

	d := fixtureDataset(t)
	for _, tc := range []struct {
		name string
		dims []string
		want apperrors.Code
	}{
		{"none", nil, apperrors.CodeOutOfRange},
		{"too many", []string{ColumnYear, ColumnHeight, ColumnWeight, ColumnBMI, ColumnPER, ColumnPTS, ColumnYear}, apperrors.CodeOutOfRange},
		{"duplicate", []string{ColumnHeight, ColumnHeight}, apperrors.CodeInvalidArgument},
		{"categorical", []string{ColumnHeight, ColumnPosition}, apperrors.CodeNotNumericColumn},
		{"unknown", []string{"nope"}, apperrors.CodeUnknownColumn},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := d.Matrix(tc.dims)
			if got := apperrors.GetCode(err); got != tc.want {
				t.Fatalf("Matrix(%v) code = %v, want %v", tc.dims, got, tc.want)
			}
		})
	}
}
