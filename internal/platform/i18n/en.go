package i18n

var english = map[string]string{
	// Layout
	"app.title":            "Wavefunctions, atomic orbitals and NBA physiques",
	"header.github":        "View on GitHub",
	"footer.credits":       "Charts are rendered on the server. NBA data: player physiques by season.",
	"nav.section.quantum":  "Quantum chemistry",
	"nav.section.nba":      "NBA explorer",
	"nav.home":             "Home",
	"nav.particle_box":     "Particle in a box",
	"nav.radial":           "Radial part of AO",
	"nav.angular":          "Angular part of AO",
	"nav.orbitals":         "Atomic orbitals cloud",
	"nav.nba_scatter":      "Scatter",
	"nav.nba_matrix":       "Scatter matrix",
	"nav.nba_pivot":        "Pivot table",
	"nav.language":         "Language",
	"lang.en":              "English",
	"lang.fr":              "Français",
	"control.on":           "On",
	"control.off":          "Off",
	"control.replot":       "Replot",
	"control.run":          "run",
	"control.apply":        "Apply",
	"control.points":       "Number of points",
	"control.wavefunction": "Wavefunction",

	// Home
	"home.heading": "Interactive demos",
	"home.intro":   "Pick a demo below. Every control re-renders its chart on the server; nothing is computed in the browser.",

	// Particle in a box
	"pbox.heading":       "Particle in a box system",
	"pbox.select_p":      "Select the quantum number: p",
	"pbox.energy":        "Energy of level p = %d: %.2f eV",
	"pbox.nodes":         "Number of nodes: %d",
	"pbox.stream":        "Watch sampling",
	"pbox.stream.status": "accepted {accepted} of {target} after {tries} tries",
	"pbox.doc.heading":   "Theory: Particle in a box",
	"pbox.doc.p1":        "We consider the solutions of the Schrödinger equation for a particle of mass m free to move on a segment of length L, x in [0, L], also known as the infinite potential well.",
	"pbox.doc.p2":        "The wavefunctions vanish at both walls and are normalised. These conditions quantify the energy with a quantum number p = 1, 2, 3 and so on.",
	"pbox.doc.p3":        "The solutions read φp(x) = √(2/L) sin(pπx/L) with energies εp = h²p²/(8mL²). The lower panel shows positions drawn from |φp|²: each accepted point is a possible measurement of the particle position.",

	// Radial part
	"radial.heading":        "Atomic orbitals - Radial probability density",
	"radial.select":         "Select quantum numbers",
	"radial.integrate":      "Integrate the radial probability density",
	"radial.rmin":           "r min (Å)",
	"radial.rmax":           "r max (Å)",
	"radial.compute":        "compute",
	"radial.result":         "Integration result",
	"radial.result.value":   "P(e⁻ ∈ [%.1f ; %.1f]) = %.2f",
	"radial.result.hint":    "Click on the compute button to integrate the radial probability density.",
	"radial.error.n_max":    "Maximum value of n is {{.Max}}.",
	"radial.error.n_min":    "Minimum value of n is 1.",
	"radial.error.reduce_l": "l values are in [0, n-1]. Reduce l first. l = {{.L}}, n = {{.N}}.",
	"radial.error.l_max":    "When n = {{.N}}, maximum value of l is {{.Max}}.",
	"radial.error.l_min":    "Minimum value of l is 0.",
	"radial.doc.heading":    "Theory: Radial part of atomic orbitals",
	"radial.doc.p1":         "Atomic orbitals are monoelectronic wavefunctions, solutions of the Schrödinger equation for hydrogen-like atoms. They factor into a radial part Rn,l(r) and an angular part Yl,ml(θ, φ).",
	"radial.doc.p2":         "The radial part controls the expansion of the atomic orbital. The radial probability density D(r) = r²Rn,l(r)² gives the probability to find the electron in a thin shell at a distance r from the nucleus.",
	"radial.doc.p3":         "Integrating D(r) between two radii gives the probability to find the electron between those two spheres.",

	// Angular part
	"angular.heading":     "Atomic orbitals - Shape of angular functions",
	"angular.select":      "Select the angular part:",
	"angular.density":     "Probability density",
	"angular.nodal":       "Nodal planes: %d",
	"angular.describe":    "AO %s, function %s: l = %d and ml = %s, %d nodal plane(s).",
	"angular.doc.heading": "Theory: Angular part of atomic orbitals",
	"angular.doc.p1":      "The angular part Yl,ml(θ, φ) of an atomic orbital is a real spherical harmonic. It depends on the quantum numbers l and ml.",
	"angular.doc.p2":      "The angular part controls the shape and the space orientation of the atomic orbital. The plot shows |Y| in the xOz plane as a polar curve: red where Y is positive, blue where it is negative. Orange lines mark the nodal planes.",

	// Atomic orbitals
	"orbitals.heading":     "Atomic orbitals - Overview of the electronic cloud",
	"orbitals.select":      "Atomic orbital:",
	"orbitals.sign":        "Sign",
	"orbitals.nodal":       "Nodal planes",
	"orbitals.doc.heading": "Theory: Atomic orbitals",
	"orbitals.doc.p1":      "Atomic orbitals are the product of the radial part and the angular part. Their square gives the probability density to find the electron at a given point in space.",
	"orbitals.doc.p2":      "The figure shows a view of the electronic cloud in the xOz plane. Each point is a position drawn from |ψ|², coloured by the sign of ψ when requested. Circles are radial nodal surfaces and dashed lines angular nodal surfaces.",

	// NBA
	"nba.heading":        "NBA player physiques",
	"nba.x":              "x axis",
	"nba.y":              "y axis",
	"nba.dimensions":     "Dimensions",
	"nba.value":          "Value",
	"nba.source":         "%d players loaded from %s.",
	"nba.scatter.doc":    "Pick two numeric columns. Points are coloured by position; the side panels show the distribution of each axis per position.",
	"nba.matrix.doc":     "Select between one and six numeric columns to compare them pairwise.",
	"nba.pivot.doc":      "Mean of the selected column per height quartile (rows) and position (columns).",
	"nba.pivot.download": "Download JSON",

	// Figures
	"plot.pbox.title":    "Particle in a box wavefunctions: p = %d",
	"plot.pbox.samples":  "sample points, npts = %d",
	"plot.density":       "probability density",
	"plot.histogram":     "histogram",
	"plot.wavefunction":  "wavefunction",
	"plot.nodes":         "nodes",
	"plot.x":             "x (Å)",
	"plot.z":             "z (Å)",
	"plot.r":             "r (Å)",
	"plot.radial.title":  "Radial probability density: n = %d, l = %d",
	"plot.integration":   "integration",
	"plot.angular.title": "Spherical harmonic in the (xOz) plane",
	"plot.positive":      "positive part",
	"plot.negative":      "negative part",
	"plot.nodal_plane":   "nodal plane",
	"plot.radial_node":   "radial nodal surface",
	"plot.angular_node":  "angular nodal surface",
	"plot.orbital.title": "Electronic cloud of the %s orbital",

	// Errors
	"error.UNKNOWN":              "Something went wrong.",
	"error.INVALID_ARGUMENT":     "Invalid value for {{.Field}}.",
	"error.OUT_OF_RANGE":         "{{.Field}} must be between {{.Min}} and {{.Max}}.",
	"error.UNKNOWN_COLUMN":       "Unknown column {{.Column}}.",
	"error.NOT_NUMERIC_COLUMN":   "Column {{.Column}} is not numeric.",
	"error.UNKNOWN_ORBITAL":      "Unknown orbital {{.Orbital}}.",
	"error.DATASET_UNAVAILABLE":  "The dataset is not available.",
	"error.NOT_FOUND":            "Page not found.",
	"error.title_not_found":      "Page not found",
	"error.title_server_error":   "Something went wrong",
	"error.message_not_found":    "The page you are looking for does not exist.",
	"error.message_server_error": "The chart could not be rendered. Please try again.",
	"error.heading":              "Error",
	"error.back":                 "Back to the demos",
}
