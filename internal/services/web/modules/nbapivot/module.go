// Package nbapivot serves the NBA pivot table and its JSON export.
package nbapivot

import (
	"net/http"

	module "github.com/louisbranch/chartlab/internal/services/web/module"
	"github.com/louisbranch/chartlab/internal/services/web/routepath"
)

// Module serves the pivot routes.
type Module struct {
	deps module.Dependencies
}

// New returns the pivot module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns the module id.
func (Module) ID() string { return "nba-pivot" }

// Mount returns the module handler.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.deps))
	return module.Mount{Prefix: routepath.NBAPivotPrefix, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.NBAPivotPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.NBAPivotTable, h.handleTable)
	mux.HandleFunc(http.MethodGet+" "+routepath.NBAPivotTableJSON, h.handleTableJSON)
}
