// Package routepath stores canonical HTTP paths for web modules.
package routepath

const (
	Root         = "/"
	Health       = "/up"
	StaticPrefix = "/static/"

	ParticleBoxPrefix = "/particle-box/"
	ParticleBoxFigure = "/particle-box/figure"
	ParticleBoxStream = "/particle-box/stream"

	RadialPrefix = "/radial/"
	RadialFigure = "/radial/figure"

	AngularPrefix = "/angular/"
	AngularFigure = "/angular/figure"

	OrbitalsPrefix = "/orbitals/"
	OrbitalsFigure = "/orbitals/figure"

	NBAScatterPrefix = "/nba/scatter/"
	NBAScatterFigure = "/nba/scatter/figure"

	NBAMatrixPrefix = "/nba/matrix/"
	NBAMatrixFigure = "/nba/matrix/figure"

	NBAPivotPrefix    = "/nba/pivot/"
	NBAPivotTable     = "/nba/pivot/table"
	NBAPivotTableJSON = "/nba/pivot/table.json"
)
