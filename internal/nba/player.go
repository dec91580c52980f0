package nba

import (
	"math"
	"slices"
	"strconv"

	apperrors "github.com/louisbranch/chartlab/internal/platform/errors"
)

// Position is the simplified playing position.
type Position string

const (
	PointGuard    Position = "PG"
	ShootingGuard Position = "SG"
	SmallForward  Position = "SF"
	PowerForward  Position = "PF"
	Center        Position = "C"
)

// PositionOrder is the display order of positions in charts.
var PositionOrder = []Position{PointGuard, ShootingGuard, SmallForward, PowerForward, Center}

// ParsePosition validates a position code.
func ParsePosition(value string) (Position, bool) {
	p := Position(value)
	return p, slices.Contains(PositionOrder, p)
}

// Player is one row of the dataset. Missing numeric cells are NaN.
type Player struct {
	Index    int
	Name     string
	Year     int
	Height   float64 // cm
	Weight   float64 // kg
	PER      float64
	PTS      float64
	Position Position
}

// BMI is weight / (height in m)².
func (p Player) BMI() float64 {
	h := p.Height / 100
	return p.Weight / (h * h)
}

// Column names.
const (
	ColumnYear       = "Year"
	ColumnHeight     = "height"
	ColumnWeight     = "weight"
	ColumnBMI        = "bmi"
	ColumnPER        = "PER"
	ColumnPTS        = "PTS"
	ColumnPosition   = "pos_simple"
	ColumnHeightBins = "height_bins"
)

// Column describes one dataset column.
type Column struct {
	Name    string
	Numeric bool
}

var columns = []Column{
	{Name: ColumnYear, Numeric: true},
	{Name: ColumnHeight, Numeric: true},
	{Name: ColumnWeight, Numeric: true},
	{Name: ColumnBMI, Numeric: true},
	{Name: ColumnPER, Numeric: true},
	{Name: ColumnPTS, Numeric: true},
	{Name: ColumnPosition},
	{Name: ColumnHeightBins},
}

// Columns returns every column in dataset order.
func Columns() []Column {
	return slices.Clone(columns)
}

// NumericColumns returns the names of the numeric columns.
func NumericColumns() []string {
	var out []string
	for _, c := range columns {
		if c.Numeric {
			out = append(out, c.Name)
		}
	}
	return out
}

// LookupColumn returns the column named name.
func LookupColumn(name string) (Column, error) {
	for _, c := range columns {
		if c.Name == name {
			return c, nil
		}
	}
	return Column{}, apperrors.WithMetadata(apperrors.CodeUnknownColumn, "unknown column "+strconv.Quote(name), map[string]string{
		"Column": name,
	})
}

// NumericColumn returns the column named name and fails for categorical ones.
func NumericColumn(name string) (Column, error) {
	c, err := LookupColumn(name)
	if err != nil {
		return Column{}, err
	}
	if !c.Numeric {
		return Column{}, apperrors.WithMetadata(apperrors.CodeNotNumericColumn, "column "+strconv.Quote(name)+" is not numeric", map[string]string{
			"Column": name,
		})
	}
	return c, nil
}

// Value returns the numeric value of column for p. Categorical columns
// return NaN.
func (p Player) Value(column string) float64 {
	switch column {
	case ColumnYear:
		return float64(p.Year)
	case ColumnHeight:
		return p.Height
	case ColumnWeight:
		return p.Weight
	case ColumnBMI:
		return p.BMI()
	case ColumnPER:
		return p.PER
	case ColumnPTS:
		return p.PTS
	default:
		return math.NaN()
	}
}
