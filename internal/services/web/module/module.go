// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/louisbranch/chartlab/internal/nba"
)

// NewSeed draws a fresh sampling seed.
type NewSeed func() (int64, error)

// Dependencies carries the shared state handed to every module.
type Dependencies struct {
	// Title overrides the page header title when set.
	Title string
	// GitHubURL is linked from the header when set.
	GitHubURL string
	// Dataset is the NBA dataset, loaded once and read-only afterwards.
	Dataset *nba.Dataset
	// NewSeed draws seeds for the sampling demos.
	NewSeed NewSeed
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
