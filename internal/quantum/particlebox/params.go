package particlebox

import (
	"strconv"

	apperrors "github.com/louisbranch/chartlab/internal/platform/errors"
)

// Params is the control state of the particle in a box figure.
type Params struct {
	Level        int
	Points       int
	Seed         int64
	Wavefunction bool
}

// Validate checks the level and point count bounds.
func (p Params) Validate() error {
	if p.Level < MinLevel || p.Level > MaxLevel {
		return outOfRange("p", MinLevel, MaxLevel)
	}
	if p.Points < MinPoints || p.Points > MaxPoints {
		return outOfRange("npts", MinPoints, MaxPoints)
	}
	return nil
}

func outOfRange(field string, lo, hi int) error {
	return apperrors.WithMetadata(apperrors.CodeOutOfRange, field+" out of range", map[string]string{
		"Field": field,
		"Min":   strconv.Itoa(lo),
		"Max":   strconv.Itoa(hi),
	})
}
