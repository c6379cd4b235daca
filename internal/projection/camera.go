// Package projection turns generator point clouds into screen coordinates:
// accumulated rigid rotation followed by a perspective divide.
package projection

import "github.com/evan-ms/parascope/internal/geom"

// ZoomLevel is the enumerated zoom toggle. 2x zooms out, matching the
// touch-button behavior.
type ZoomLevel int

const (
	Zoom1x ZoomLevel = iota
	Zoom2x
)

func (z ZoomLevel) Factor() float64 {
	if z == Zoom2x {
		return 2.0
	}
	return 1.0
}

func (z ZoomLevel) String() string {
	if z == Zoom2x {
		return "2x"
	}
	return "1x"
}

// Auto-rotate angular rates, radians per frame at the 60Hz reference rate.
const (
	autoRateX = 0.01
	autoRateY = 0.02
	autoRateZ = 0.005

	refFrame = 1.0 / 60.0

	// Composed increments drift away from orthonormality; re-project
	// the basis every this many compositions (two seconds at 60Hz).
	renormEvery = 120
)

// Camera accumulates orientation as an orthonormal rotation matrix.
type Camera struct {
	orient     geom.Mat3
	composed   int
	Zoom       ZoomLevel
	AutoRotate bool
}

func NewCamera() *Camera {
	return &Camera{orient: geom.Identity(), AutoRotate: true}
}

// Rotate composes incremental rotations about the three axes.
func (c *Camera) Rotate(ax, ay, az float64) {
	inc := geom.RotationZ(az).Mul(geom.RotationY(ay)).Mul(geom.RotationX(ax))
	c.orient = inc.Mul(c.orient)
	c.composed++
	if c.composed >= renormEvery {
		c.orient = c.orient.Orthonormalize()
		c.composed = 0
	}
}

// Advance applies the auto-rotate increment for an elapsed frame time.
// No-op when auto-rotate is off.
func (c *Camera) Advance(dt float64) {
	if !c.AutoRotate || dt <= 0 {
		return
	}
	s := dt / refFrame
	c.Rotate(autoRateX*s, autoRateY*s, autoRateZ*s)
}

// ToggleZoom cycles 1x -> 2x -> 1x.
func (c *Camera) ToggleZoom() {
	if c.Zoom == Zoom1x {
		c.Zoom = Zoom2x
	} else {
		c.Zoom = Zoom1x
	}
}

// Orientation returns the current rotation.
func (c *Camera) Orientation() geom.Mat3 { return c.orient }

// Reset restores identity orientation.
func (c *Camera) Reset() {
	c.orient = geom.Identity()
	c.composed = 0
}
