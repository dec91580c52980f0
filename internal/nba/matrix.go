package nba

import (
	"strconv"

	apperrors "github.com/louisbranch/chartlab/internal/platform/errors"
)

// Bounds of the scatter matrix selection.
const (
	MinMatrixDimensions = 1
	MaxMatrixDimensions = 6
)

// DefaultMatrixDimensions is the initial selection.
var DefaultMatrixDimensions = []string{ColumnHeight, ColumnBMI, ColumnPTS}

// Panel is one cell of the matrix: x = dimension Col, y = dimension Row.
type Panel struct {
	Row, Col int
	Scatter  Scatter
}

// Matrix is a k×k grid of scatter panels. The diagonal is not drawn.
type Matrix struct {
	Dimensions []string
	Panels     []Panel
}

// Matrix builds the off-diagonal panels for dims, which must hold 1 to 6
// distinct numeric columns.
func (d *Dataset) Matrix(dims []string) (Matrix, error) {
	if len(dims) < MinMatrixDimensions || len(dims) > MaxMatrixDimensions {
		return Matrix{}, apperrors.WithMetadata(apperrors.CodeOutOfRange, "matrix needs 1 to 6 dimensions", map[string]string{
			"Field": "dim",
			"Min":   strconv.Itoa(MinMatrixDimensions),
			"Max":   strconv.Itoa(MaxMatrixDimensions),
		})
	}
	seen := make(map[string]bool, len(dims))
	for _, dim := range dims {
		if _, err := NumericColumn(dim); err != nil {
			return Matrix{}, err
		}
		if seen[dim] {
			return Matrix{}, apperrors.WithMetadata(apperrors.CodeInvalidArgument, "duplicate dimension "+strconv.Quote(dim), map[string]string{
				"Field": "dim",
			})
		}
		seen[dim] = true
	}

	m := Matrix{Dimensions: append([]string(nil), dims...)}
	for row, y := range dims {
		for col, x := range dims {
			if row == col {
				continue
			}
			s, err := d.Scatter(x, y)
			if err != nil {
				return Matrix{}, err
			}
			m.Panels = append(m.Panels, Panel{Row: row, Col: col, Scatter: s})
		}
	}
	return m, nil
}
