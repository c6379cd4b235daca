package scene

import (
	"math"

	"github.com/evan-ms/parascope/internal/generators"
)

// Catalog builds the scene list in navigation order. Insertion order is
// significant; slugs, not indices, key persisted presets.
func Catalog() []Descriptor {
	return []Descriptor{
		{
			Slug: "torus_knot", Name: "Fibonacci Torus Knots",
			Generate: generators.TorusKnot,
			Params: []ParameterSpec{
				iparam("p", 2, 1, 50),
				iparam("q", 3, 1, 50),
				fparam("R", 1.0, 0.1, 10.0, 0.1),
				fparam("r", 0.4, 0.01, 5.0, 0.01),
				iparam("num_points", 1000, 100, 4000),
			},
		},
		{
			Slug: "gradient_flow", Name: "Force Gradient Flow",
			Generate: generators.GradientFlow,
			Params: []ParameterSpec{
				iparam("num_arrows", 20, 4, 40),
			},
			Style: StylePoints,
		},
		{
			Slug: "fib_spiral", Name: "Golden Ratio Overtone",
			Generate: generators.FibSpiral,
			Params: []ParameterSpec{
				fparam("phi", generators.Phi, 1.0, 2.5, 0.01),
				iparam("num_points", 200, 50, 2000),
			},
			Style: StylePoints,
		},
		{
			Slug: "harmonic_pressure", Name: "Gravity Harmonic Pressure",
			Generate: generators.HarmonicPressure,
			Params: []ParameterSpec{
				iparam("grid", 12, 4, 24),
			},
			Style: StylePoints,
		},
		{
			Slug: "standing_wave", Name: "Mass Phase-Locked Density",
			Generate: generators.StandingWave,
			Params: []ParameterSpec{
				fparam("amp", 1.0, 0.1, 5.0, 0.1),
				fparam("freq", 2.0, 0.5, 10.0, 0.5),
				iparam("num_points", 500, 50, 2000),
			},
			Animated: true,
		},
		{
			Slug: "phase_alignment", Name: "Quantum Phase Alignment",
			Generate: generators.PhaseAlignment,
			Params: []ParameterSpec{
				fparam("phase_diff", math.Pi/2, 0, 2*math.Pi, 0.1),
				iparam("num_points", 200, 50, 1000),
			},
		},
		{
			Slug: "quaternion_cube", Name: "Quaternion Rotation",
			Generate: generators.QuaternionCube,
			Params: []ParameterSpec{
				fparam("angle", 0, 0, 2*math.Pi, 0.05),
				fparam("axis_x", 1, -1, 1, 0.1),
				fparam("axis_y", 1, -1, 1, 0.1),
				fparam("axis_z", 1, -1, 1, 0.1),
			},
			Style: StylePoints,
		},
		{
			Slug: "converging_waves", Name: "Spacetime Emergent Geom",
			Generate: generators.ConvergingWaves,
			Params: []ParameterSpec{
				iparam("num_points", 200, 50, 1000),
			},
		},
		{
			Slug: "golden_torus_spiral", Name: "Golden Torus Spiral",
			Generate: generators.GoldenTorusSpiral,
			Params: []ParameterSpec{
				iparam("turns", 5, 1, 12),
				fparam("R", 1.0, 0.1, 10.0, 0.1),
				fparam("r", 0.2, 0.01, 5.0, 0.01),
				iparam("num_points", 1000, 100, 4000),
			},
		},
		{
			Slug: "harmonic_lattice", Name: "Harmonic Lattice",
			Generate: generators.HarmonicLattice,
			Params: []ParameterSpec{
				iparam("nx", 32, 4, 64),
				iparam("ny", 32, 4, 64),
				iparam("modes", 3, 1, 8),
			},
			Style: StylePoints,
		},
		{
			Slug: "superposition", Name: "Harmonic Superposition",
			Generate: generators.Superposition,
			Params: []ParameterSpec{
				iparam("num_waves", 5, 1, 12),
				iparam("num_points", 400, 50, 2000),
			},
			Animated: true,
		},
		{
			Slug: "interference", Name: "Wave Interference Field",
			Generate: generators.Interference,
			Params: []ParameterSpec{
				iparam("num_waves", 3, 1, 10),
				iparam("grid", 20, 4, 40),
			},
			Style: StylePoints,
		},
	}
}
