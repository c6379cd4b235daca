package generators

import (
	"math"
	"testing"
)

var all = map[string]Func{
	"torus_knot":          TorusKnot,
	"gradient_flow":       GradientFlow,
	"fib_spiral":          FibSpiral,
	"harmonic_pressure":   HarmonicPressure,
	"standing_wave":       StandingWave,
	"phase_alignment":     PhaseAlignment,
	"quaternion_cube":     QuaternionCube,
	"converging_waves":    ConvergingWaves,
	"golden_torus_spiral": GoldenTorusSpiral,
	"harmonic_lattice":    HarmonicLattice,
	"superposition":       Superposition,
	"interference":        Interference,
}

func TestAllFinite(t *testing.T) {
	for name, gen := range all {
		for _, tm := range []float64{0, 0.37, 12.5} {
			pts := gen(Params{}, tm)
			if len(pts) == 0 {
				t.Errorf("%s: empty cloud with default params", name)
			}
			for i, p := range pts {
				if !p.IsFinite() {
					t.Fatalf("%s: non-finite point %d at t=%.2f: %v", name, i, tm, p)
				}
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	p := Params{"p": 3, "q": 5, "num_points": 300}
	a := TorusKnot(p, 0)
	b := TorusKnot(p, 0)
	if len(a) != len(b) {
		t.Fatalf("length differs: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestInputNotMutated(t *testing.T) {
	p := Params{"num_points": 50, "amp": 2.0, "freq": 3.0}
	StandingWave(p, 1.0)
	if p["num_points"] != 50 || p["amp"] != 2.0 || p["freq"] != 3.0 {
		t.Errorf("params mutated: %v", p)
	}
	if len(p) != 3 {
		t.Errorf("params grew: %v", p)
	}
}

func TestPointCountFollowsParams(t *testing.T) {
	if got := len(TorusKnot(Params{"num_points": 250}, 0)); got != 250 {
		t.Errorf("torus_knot: expected 250 points, got %d", got)
	}
	// Standing wave extrudes every sample into two points.
	if got := len(StandingWave(Params{"num_points": 100}, 0)); got != 200 {
		t.Errorf("standing_wave: expected 200 points, got %d", got)
	}
	if got := len(HarmonicLattice(Params{"nx": 8, "ny": 6}, 0)); got != 48 {
		t.Errorf("harmonic_lattice: expected 48 points, got %d", got)
	}
	if got := len(HarmonicPressure(Params{"grid": 4}, 0)); got != 64 {
		t.Errorf("harmonic_pressure: expected 64 points, got %d", got)
	}
	// Fractional values of integer-stepped params round.
	if got := len(FibSpiral(Params{"num_points": 99.6}, 0)); got != 100 {
		t.Errorf("fib_spiral: expected 100 points, got %d", got)
	}
}

func TestFibSpiralGuardsPhi(t *testing.T) {
	pts := FibSpiral(Params{"phi": 0, "num_points": 40}, 0)
	for i, p := range pts {
		if !p.IsFinite() {
			t.Fatalf("point %d non-finite with phi=0: %v", i, p)
		}
	}
}

func TestQuaternionCubeZeroAxis(t *testing.T) {
	p := Params{"angle": 1.0, "axis_x": 0, "axis_y": 0, "axis_z": 0}
	pts := QuaternionCube(p, 0)
	if len(pts) != 8 {
		t.Fatalf("expected 8 corners, got %d", len(pts))
	}
	// Zero axis falls back to the unrotated cube.
	for _, c := range pts {
		if math.Abs(c.X) != 0.5 || math.Abs(c.Y) != 0.5 || math.Abs(c.Z) != 0.5 {
			t.Errorf("corner moved under zero axis: %v", c)
		}
	}
}

func TestStandingWaveTimeModulation(t *testing.T) {
	p := Params{"num_points": 64, "amp": 1.0, "freq": 2.0}
	at0 := StandingWave(p, 0)
	atQuarter := StandingWave(p, 0.25) // cos(pi/2) = 0: flat line
	peak := 0.0
	for _, pt := range at0 {
		if a := math.Abs(pt.Y); a > peak {
			peak = a
		}
	}
	if peak < 0.5 {
		t.Fatalf("snapshot at t=0 should have visible amplitude, peak=%.3f", peak)
	}
	for i, pt := range atQuarter {
		if math.Abs(pt.Y) > 1e-9 || math.Abs(pt.Z) > 1e-9 {
			t.Fatalf("point %d not flat at quarter period: %v", i, pt)
		}
	}
}
