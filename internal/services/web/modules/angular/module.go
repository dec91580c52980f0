// Package angular serves the spherical harmonic polar plots.
package angular

import (
	"net/http"

	module "github.com/louisbranch/chartlab/internal/services/web/module"
	"github.com/louisbranch/chartlab/internal/services/web/routepath"
)

// Module serves the angular part routes.
type Module struct {
	deps module.Dependencies
}

// New returns the angular module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns the module id.
func (Module) ID() string { return "angular" }

// Mount returns the module handler.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.deps))
	return module.Mount{Prefix: routepath.AngularPrefix, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AngularPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AngularFigure, h.handleFigure)
}
