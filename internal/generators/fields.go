package generators

import (
	"math"

	"github.com/evan-ms/parascope/internal/geom"
)

// GradientFlow samples the gradient of sin(2πx+π/4)+cos(2πy) on a square
// grid and emits each arrow as a start/end point pair.
func GradientFlow(p Params, _ float64) []geom.Vec3 {
	n := p.geti("num_arrows", 20, 2)

	pts := make([]geom.Vec3, 0, 2*n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := -2 + 4*float64(i)/float64(n-1)
			y := -2 + 4*float64(j)/float64(n-1)
			field := math.Sin(2*math.Pi*x+math.Pi/4) + math.Cos(2*math.Pi*y)
			dx := math.Cos(2*math.Pi*x+math.Pi/4) * 2 * math.Pi
			dy := -math.Sin(2*math.Pi*y) * 2 * math.Pi
			start := geom.Vec3{X: x, Y: y, Z: field * 0.1}
			pts = append(pts, start, geom.Vec3{X: x + dx*0.1, Y: y + dy*0.1, Z: start.Z})
		}
	}
	return sanitize(pts)
}

// HarmonicPressure fills a cube grid and lifts each sample by the summed
// harmonic density at that cell. grid is points per axis, so the output
// grows cubically.
func HarmonicPressure(p Params, _ float64) []geom.Vec3 {
	n := p.geti("grid", 12, 2)

	pts := make([]geom.Vec3, 0, n*n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				x := -1 + 2*float64(i)/float64(n-1)
				y := -1 + 2*float64(j)/float64(n-1)
				z := -1 + 2*float64(k)/float64(n-1)
				density := math.Sin(2*math.Pi*x) + math.Cos(2*math.Pi*y) + math.Sin(2*math.Pi*z)
				pts = append(pts, geom.Vec3{X: x, Y: y, Z: density * 0.5})
			}
		}
	}
	return sanitize(pts)
}

// HarmonicLattice maps modes summed harmonics onto the z axis of a 2D
// lattice.
func HarmonicLattice(p Params, _ float64) []geom.Vec3 {
	nx := p.geti("nx", 32, 2)
	ny := p.geti("ny", 32, 2)
	modes := p.geti("modes", 3, 1)

	pts := make([]geom.Vec3, 0, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			x := -2 + 4*float64(i)/float64(nx-1)
			y := -2 + 4*float64(j)/float64(ny-1)
			z := 0.0
			for m := 1; m <= modes; m++ {
				z += (1 / float64(m)) * math.Sin(float64(m)*(x+y))
			}
			pts = append(pts, geom.Vec3{X: x, Y: y, Z: z * 0.5})
		}
	}
	return sanitize(pts)
}

// Interference overlays num_waves offset sine/cosine pairs across a planar
// grid, lifting each cell by the combined field strength.
func Interference(p Params, _ float64) []geom.Vec3 {
	waves := p.geti("num_waves", 3, 1)
	n := p.geti("grid", 20, 2)

	pts := make([]geom.Vec3, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := -1 + 2*float64(i)/float64(n-1)
			y := -1 + 2*float64(j)/float64(n-1)
			field := 0.0
			for w := 0; w < waves; w++ {
				field += math.Sin(2*math.Pi*(x+float64(w)*0.5)) + math.Cos(2*math.Pi*(y+float64(w)*0.3))
			}
			pts = append(pts, geom.Vec3{X: x, Y: y, Z: field * 0.2})
		}
	}
	return sanitize(pts)
}
