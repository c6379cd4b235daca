package projection

import "github.com/evan-ms/parascope/internal/geom"

// The eye sits at z=-5 looking down +z through a screen 4 units away.
// World units map to 100 screen pixels before the perspective factor.
const (
	eyeZ       = -5.0
	screenDist = 4.0
	pointScale = 100.0
)

type Viewport struct {
	Width, Height int
}

// ScreenPoint is one projected point: screen coordinates plus the
// depth-derived perspective factor (useful for marker sizing).
type ScreenPoint struct {
	X, Y  float64
	Depth float64
}

// Project rotates every point by the camera orientation and applies the
// perspective divide. Points with non-finite coordinates are skipped; a
// point on the eye plane gets the fallback factor 1 instead of dividing
// by zero.
func Project(points []geom.Vec3, cam *Camera, vp Viewport) []ScreenPoint {
	rot := cam.Orientation()
	scale := pointScale / cam.Zoom.Factor()
	cx := float64(vp.Width) / 2
	cy := float64(vp.Height) / 2

	out := make([]ScreenPoint, 0, len(points))
	for _, p := range points {
		if !p.IsFinite() {
			continue
		}
		r := rot.Apply(p)
		factor := 1.0
		if d := eyeZ - r.Z; d != 0 {
			factor = screenDist / d
		}
		out = append(out, ScreenPoint{
			X:     cx + r.X*factor*scale,
			Y:     cy - r.Y*factor*scale,
			Depth: factor,
		})
	}
	return out
}
