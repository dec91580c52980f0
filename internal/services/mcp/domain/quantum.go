package domain

import (
	"context"
	"fmt"
	"math"

	"github.com/louisbranch/chartlab/internal/quantum/orbital"
	"github.com/louisbranch/chartlab/internal/quantum/particlebox"
	"github.com/louisbranch/chartlab/internal/quantum/radial"
	"github.com/louisbranch/chartlab/internal/random"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ParticleBoxLevelInput selects one energy level of the box.
type ParticleBoxLevelInput struct {
	Level int `json:"level" jsonschema:"quantum number p, 1 to 15"`
}

// ParticleBoxLevelResult describes one level of an electron in a 1 Å box.
type ParticleBoxLevelResult struct {
	Level    int       `json:"level" jsonschema:"quantum number p"`
	EnergyEV float64   `json:"energy_ev" jsonschema:"energy in electronvolts"`
	Nodes    []float64 `json:"nodes" jsonschema:"interior nodes of the wavefunction, in Å"`
}

// ParticleBoxSampleInput requests positions drawn from |φ_p|².
type ParticleBoxSampleInput struct {
	Level  int    `json:"level" jsonschema:"quantum number p, 1 to 15"`
	Points int    `json:"points" jsonschema:"number of positions, 1 to 1000"`
	Seed   *int64 `json:"seed,omitempty" jsonschema:"optional seed for a reproducible draw"`
}

// ParticleBoxSampleResult carries the positions and the seed that produced
// them.
type ParticleBoxSampleResult struct {
	Level     int       `json:"level" jsonschema:"quantum number p"`
	Seed      int64     `json:"seed" jsonschema:"seed used for the draw"`
	Positions []float64 `json:"positions" jsonschema:"sampled positions in Å"`
}

// RadialProbabilityInput selects an orbital and a shell [r1, r2].
type RadialProbabilityInput struct {
	N  int     `json:"n" jsonschema:"principal quantum number, 1 to 4"`
	L  int     `json:"l" jsonschema:"secondary quantum number, 0 to n-1"`
	R1 float64 `json:"r1" jsonschema:"inner radius in Å"`
	R2 float64 `json:"r2" jsonschema:"outer radius in Å"`
}

// RadialProbabilityResult is the probability of the electron in the shell.
type RadialProbabilityResult struct {
	Orbital     string  `json:"orbital" jsonschema:"spectroscopic name such as 2p"`
	R1          float64 `json:"r1" jsonschema:"inner radius in Å"`
	R2          float64 `json:"r2" jsonschema:"outer radius in Å"`
	Probability float64 `json:"probability" jsonschema:"integral of r²R² over the shell"`
}

// OrbitalNodesInput names a catalog orbital.
type OrbitalNodesInput struct {
	Name string `json:"name" jsonschema:"orbital name: 1s, 2s, 3s, 2pz, 3pz, 3dz2 or 4fz3"`
}

// OrbitalNodesResult lists the nodal surfaces of an orbital.
type OrbitalNodesResult struct {
	Name        string    `json:"name" jsonschema:"orbital name"`
	NodalRadii  []float64 `json:"nodal_radii" jsonschema:"radii of the spherical nodes, in Å"`
	NodalAngles []float64 `json:"nodal_angles" jsonschema:"polar angles of the nodal planes, in degrees"`
}

// ParticleBoxLevelTool defines the MCP tool schema for box energy levels.
func ParticleBoxLevelTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "particle_box_level",
		Description: "Returns the energy and nodes of an electron in a 1 Å infinite well at level p",
	}
}

// ParticleBoxSampleTool defines the MCP tool schema for position sampling.
func ParticleBoxSampleTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "particle_box_sample",
		Description: "Draws electron positions in a 1 Å infinite well from the probability density |φ_p|²",
	}
}

// RadialProbabilityTool defines the MCP tool schema for shell probabilities.
func RadialProbabilityTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "radial_probability",
		Description: "Integrates the radial probability density of a hydrogen orbital between two radii",
	}
}

// OrbitalNodesTool defines the MCP tool schema for nodal surfaces.
func OrbitalNodesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "orbital_nodes",
		Description: "Lists the spherical and planar nodes of a hydrogen orbital",
	}
}

// ParticleBoxLevelHandler computes one energy level.
func ParticleBoxLevelHandler() mcp.ToolHandlerFor[ParticleBoxLevelInput, ParticleBoxLevelResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ParticleBoxLevelInput) (*mcp.CallToolResult, ParticleBoxLevelResult, error) {
		params := particlebox.Params{Level: input.Level, Points: particlebox.DefaultPoints}
		if err := params.Validate(); err != nil {
			return nil, ParticleBoxLevelResult{}, err
		}
		nodes := particlebox.Nodes(input.Level, particlebox.Length)
		if nodes == nil {
			nodes = []float64{}
		}
		return nil, ParticleBoxLevelResult{
			Level:    input.Level,
			EnergyEV: particlebox.ElectronEnergy(input.Level, particlebox.Length),
			Nodes:    nodes,
		}, nil
	}
}

// ParticleBoxSampleHandler draws positions. newSeed supplies a seed when the
// caller sends none.
func ParticleBoxSampleHandler(newSeed func() (int64, error)) mcp.ToolHandlerFor[ParticleBoxSampleInput, ParticleBoxSampleResult] {
	if newSeed == nil {
		newSeed = random.NewSeed
	}
	return func(_ context.Context, _ *mcp.CallToolRequest, input ParticleBoxSampleInput) (*mcp.CallToolResult, ParticleBoxSampleResult, error) {
		params := particlebox.Params{Level: input.Level, Points: input.Points}
		if err := params.Validate(); err != nil {
			return nil, ParticleBoxSampleResult{}, err
		}
		var seed int64
		if input.Seed != nil {
			seed = *input.Seed
		} else {
			var err error
			if seed, err = newSeed(); err != nil {
				return nil, ParticleBoxSampleResult{}, fmt.Errorf("generate seed: %w", err)
			}
		}
		samples := particlebox.Draw(random.New(seed), params.Points, params.Level, particlebox.Length, particlebox.Jitter)
		return nil, ParticleBoxSampleResult{
			Level:     params.Level,
			Seed:      seed,
			Positions: samples.X,
		}, nil
	}
}

// RadialProbabilityHandler integrates D(r) over the requested shell.
func RadialProbabilityHandler() mcp.ToolHandlerFor[RadialProbabilityInput, RadialProbabilityResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RadialProbabilityInput) (*mcp.CallToolResult, RadialProbabilityResult, error) {
		o := radial.Orbital{N: input.N, L: input.L}
		integration, err := o.Probability(input.R1, input.R2)
		if err != nil {
			return nil, RadialProbabilityResult{}, err
		}
		return nil, RadialProbabilityResult{
			Orbital:     o.Label(),
			R1:          integration.R1,
			R2:          integration.R2,
			Probability: integration.Probability,
		}, nil
	}
}

// OrbitalNodesHandler reports the nodes of a catalog orbital.
func OrbitalNodesHandler() mcp.ToolHandlerFor[OrbitalNodesInput, OrbitalNodesResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input OrbitalNodesInput) (*mcp.CallToolResult, OrbitalNodesResult, error) {
		o, err := orbital.ByName(input.Name)
		if err != nil {
			return nil, OrbitalNodesResult{}, err
		}
		angles := make([]float64, 0, len(o.NodalAngles()))
		for _, theta := range o.NodalAngles() {
			angles = append(angles, theta*180/math.Pi)
		}
		radii := append([]float64{}, o.NodalRadii...)
		return nil, OrbitalNodesResult{Name: o.Name, NodalRadii: radii, NodalAngles: angles}, nil
	}
}
