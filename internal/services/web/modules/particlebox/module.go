// Package particlebox serves the particle in a box demo: the density figure,
// its sampled positions and a websocket view of the rejection sampler.
package particlebox

import (
	"net/http"

	module "github.com/louisbranch/chartlab/internal/services/web/module"
	"github.com/louisbranch/chartlab/internal/services/web/routepath"
)

// Module serves the particle in a box routes.
type Module struct {
	deps module.Dependencies
}

// New returns the particle in a box module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns the module id.
func (Module) ID() string { return "particle-box" }

// Mount returns the module handler.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.deps))
	return module.Mount{Prefix: routepath.ParticleBoxPrefix, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.ParticleBoxPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ParticleBoxFigure, h.handleFigure)
	mux.Handle(http.MethodGet+" "+routepath.ParticleBoxStream, h.streamHandler())
}
