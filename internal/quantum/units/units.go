// Package units holds the physical constants used by the quantum demos.
package units

const (
	// Planck is the Planck constant in J s.
	Planck = 6.62607015e-34
	// ElectronMass is the electron rest mass in kg.
	ElectronMass = 9.1093837015e-31
	// ElementaryCharge is the elementary charge in C, also J per eV.
	ElementaryCharge = 1.602176634e-19
	// BohrRadius is the Bohr radius in Å.
	BohrRadius = 0.529177210903
	// Angstrom is one ångström in m.
	Angstrom = 1e-10
)

// JoulesToEV converts an energy in joules to electronvolts.
func JoulesToEV(joules float64) float64 {
	return joules / ElementaryCharge
}
