// Package generators holds the closed-form point-cloud generators behind
// each scene. Every generator is a pure function of its parameter map and
// the elapsed time: same inputs, same output, no retained state.
package generators

import (
	"math"

	"github.com/evan-ms/parascope/internal/geom"
)

// Params maps parameter names to current values. Generators must not
// mutate it.
type Params map[string]float64

// Func produces a point cloud. t is elapsed seconds; static generators
// ignore it. Output must be finite for any in-bounds parameter values.
type Func func(p Params, t float64) []geom.Vec3

// Phi is the golden ratio, the default scale base for the spiral scenes.
var Phi = (1 + math.Sqrt(5)) / 2

func (p Params) get(name string, def float64) float64 {
	if v, ok := p[name]; ok && finite(v) {
		return v
	}
	return def
}

// geti reads an integer-stepped parameter, rounding and flooring at min.
func (p Params) geti(name string, def, min int) int {
	n := int(math.Round(p.get(name, float64(def))))
	if n < min {
		n = min
	}
	return n
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// sanitize zeroes any non-finite component so a singular parameter
// combination degrades to a visible fallback instead of poisoning the
// projection pass.
func sanitize(pts []geom.Vec3) []geom.Vec3 {
	for i, pt := range pts {
		if !pt.IsFinite() {
			pts[i] = geom.Vec3{}
		}
	}
	return pts
}
