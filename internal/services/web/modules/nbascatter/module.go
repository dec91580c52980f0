// Package nbascatter serves the NBA scatter plot with marginal histograms.
package nbascatter

import (
	"net/http"

	module "github.com/louisbranch/chartlab/internal/services/web/module"
	"github.com/louisbranch/chartlab/internal/services/web/routepath"
)

// Module serves the scatter routes.
type Module struct {
	deps module.Dependencies
}

// New returns the scatter module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns the module id.
func (Module) ID() string { return "nba-scatter" }

// Mount returns the module handler.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.deps))
	return module.Mount{Prefix: routepath.NBAScatterPrefix, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.NBAScatterPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.NBAScatterFigure, h.handleFigure)
}
