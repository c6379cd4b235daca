package generators

import (
	"math"

	"github.com/evan-ms/parascope/internal/geom"
)

// TorusKnot traces a (p,q) torus knot: q windings around the tube while
// wrapping p times around the axis.
func TorusKnot(p Params, _ float64) []geom.Vec3 {
	kp := float64(p.geti("p", 2, 1))
	kq := float64(p.geti("q", 3, 1))
	R := p.get("R", 1.0)
	r := p.get("r", 0.4)
	n := p.geti("num_points", 1000, 2)

	pts := make([]geom.Vec3, n)
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n-1)
		ring := R + r*math.Cos(kq*t)
		pts[i] = geom.Vec3{
			X: ring * math.Cos(kp*t),
			Y: ring * math.Sin(kp*t),
			Z: r * math.Sin(kq * t),
		}
	}
	return sanitize(pts)
}

// GoldenTorusSpiral is a toroidal spiral whose radius grows by the golden
// ratio over its turns.
func GoldenTorusSpiral(p Params, _ float64) []geom.Vec3 {
	turns := float64(p.geti("turns", 5, 1))
	R := p.get("R", 1.0)
	r := p.get("r", 0.2)
	n := p.geti("num_points", 1000, 2)

	span := 2 * math.Pi * turns
	pts := make([]geom.Vec3, n)
	for i := 0; i < n; i++ {
		t := span * float64(i) / float64(n-1)
		scale := math.Pow(Phi, t/span)
		ring := (R + r*math.Cos(3*t)) * scale
		pts[i] = geom.Vec3{
			X: ring * math.Cos(2*t),
			Y: ring * math.Sin(2*t),
			Z: r * math.Sin(3*t) * scale,
		}
	}
	return sanitize(pts)
}

// QuaternionCube rotates a unit cube's corners by an axis-angle
// quaternion. A zero-length axis leaves the cube unrotated.
func QuaternionCube(p Params, _ float64) []geom.Vec3 {
	angle := p.get("angle", 0)
	axis := geom.Vec3{
		X: p.get("axis_x", 1),
		Y: p.get("axis_y", 1),
		Z: p.get("axis_z", 1),
	}
	q := geom.AxisAngle(axis, angle)

	corners := []geom.Vec3{
		{X: -0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: -0.5, Z: 0.5},
		{X: -0.5, Y: 0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: 0.5},
		{X: 0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: 0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: 0.5},
	}
	for i, c := range corners {
		corners[i] = q.Rotate(c)
	}
	return sanitize(corners)
}
