// Package home serves the landing page and the not-found fallback.
package home

import (
	"net/http"

	module "github.com/louisbranch/chartlab/internal/services/web/module"
	"github.com/louisbranch/chartlab/internal/services/web/platform/weberror"
	"github.com/louisbranch/chartlab/internal/services/web/routepath"
)

// Module serves "/".
type Module struct {
	deps module.Dependencies
}

// New returns the home module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns the module id.
func (Module) ID() string { return "home" }

// Mount returns the module handler for the root prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.Handle(routepath.Root, weberror.NotFound(h.deps))
}
