// Package modules lists the web modules served by chartlab.
package modules

import (
	module "github.com/louisbranch/chartlab/internal/services/web/module"
	"github.com/louisbranch/chartlab/internal/services/web/modules/angular"
	"github.com/louisbranch/chartlab/internal/services/web/modules/home"
	"github.com/louisbranch/chartlab/internal/services/web/modules/nbamatrix"
	"github.com/louisbranch/chartlab/internal/services/web/modules/nbapivot"
	"github.com/louisbranch/chartlab/internal/services/web/modules/nbascatter"
	"github.com/louisbranch/chartlab/internal/services/web/modules/orbitals"
	"github.com/louisbranch/chartlab/internal/services/web/modules/particlebox"
	"github.com/louisbranch/chartlab/internal/services/web/modules/radial"
)

// Default returns every module in navigation order, home first.
func Default(deps module.Dependencies) []module.Module {
	return []module.Module{
		home.New(deps),
		particlebox.New(deps),
		radial.New(deps),
		angular.New(deps),
		orbitals.New(deps),
		nbascatter.New(deps),
		nbamatrix.New(deps),
		nbapivot.New(deps),
	}
}
