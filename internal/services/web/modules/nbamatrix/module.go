// Package nbamatrix serves the NBA scatter matrix.
package nbamatrix

import (
	"net/http"

	module "github.com/louisbranch/chartlab/internal/services/web/module"
	"github.com/louisbranch/chartlab/internal/services/web/routepath"
)

// Module serves the scatter matrix routes.
type Module struct {
	deps module.Dependencies
}

// New returns the scatter matrix module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns the module id.
func (Module) ID() string { return "nba-matrix" }

// Mount returns the module handler.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.deps))
	return module.Mount{Prefix: routepath.NBAMatrixPrefix, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.NBAMatrixPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.NBAMatrixFigure, h.handleFigure)
}
