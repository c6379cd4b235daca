package generators

import (
	"math"

	"github.com/evan-ms/parascope/internal/geom"
)

// StandingWave samples a time-modulated standing wave and extrudes each
// sample into the xz plane, giving the curve visible depth under rotation.
func StandingWave(p Params, t float64) []geom.Vec3 {
	n := p.geti("num_points", 500, 2)
	amp := p.get("amp", 1.0)
	freq := p.get("freq", 2.0)

	mod := math.Cos(2 * math.Pi * t)
	pts := make([]geom.Vec3, 0, 2*n)
	for i := 0; i < n; i++ {
		x := -math.Pi + 2*math.Pi*float64(i)/float64(n-1)
		w := amp * math.Sin(freq*x) * mod
		pts = append(pts,
			geom.Vec3{X: x, Y: w},
			geom.Vec3{X: x, Z: w},
		)
	}
	return sanitize(pts)
}

// PhaseAlignment plots two sinusoids offset by phase_diff against a shared
// x axis: x along the curve, one wave on y, the shifted wave on z.
func PhaseAlignment(p Params, _ float64) []geom.Vec3 {
	n := p.geti("num_points", 200, 2)
	diff := p.get("phase_diff", math.Pi/2)

	pts := make([]geom.Vec3, n)
	for i := 0; i < n; i++ {
		x := 2 * math.Pi * float64(i) / float64(n-1)
		pts[i] = geom.Vec3{X: x, Y: math.Sin(x), Z: math.Sin(x + diff)}
	}
	return sanitize(pts)
}

// Superposition sums num_waves harmonic modes with 1/k amplitudes into
// U(x,t) and plots the waveform along x. Time shifts each mode by its own
// frequency, so the pattern travels.
func Superposition(p Params, t float64) []geom.Vec3 {
	waves := p.geti("num_waves", 5, 1)
	n := p.geti("num_points", 400, 2)

	pts := make([]geom.Vec3, n)
	for i := 0; i < n; i++ {
		x := -math.Pi + 2*math.Pi*float64(i)/float64(n-1)
		u := 0.0
		for k := 1; k <= waves; k++ {
			fk := float64(k)
			u += (1 / fk) * math.Sin(fk*x-2*math.Pi*fk*t)
		}
		pts[i] = geom.Vec3{X: x, Y: u}
	}
	return sanitize(pts)
}
