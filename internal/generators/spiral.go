package generators

import (
	"math"

	"github.com/evan-ms/parascope/internal/geom"
)

// FibSpiral plants points on a flat Fibonacci (phyllotaxis) spiral. The
// divergence angle comes from the phi parameter; phi near zero would blow
// up the angle term, so it is floored.
func FibSpiral(p Params, _ float64) []geom.Vec3 {
	n := p.geti("num_points", 200, 1)
	phi := p.get("phi", Phi)
	if phi < 0.1 {
		phi = 0.1
	}

	pts := make([]geom.Vec3, n)
	for i := 0; i < n; i++ {
		r := math.Sqrt(float64(i))
		theta := float64(i) * 2 * math.Pi / (phi * phi)
		pts[i] = geom.Vec3{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}
	return sanitize(pts)
}

// ConvergingWaves sums an x-axis sine and a phase-shifted y-axis cosine
// into a single closed curve.
func ConvergingWaves(p Params, _ float64) []geom.Vec3 {
	n := p.geti("num_points", 200, 2)

	pts := make([]geom.Vec3, n)
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n-1)
		pts[i] = geom.Vec3{X: math.Sin(t), Y: math.Cos(t + math.Pi/3)}
	}
	return sanitize(pts)
}
