package scene

import "math"

// ParameterSpec is one tunable scene parameter. Value always stays inside
// [Min, Max]; writes outside the range clamp.
type ParameterSpec struct {
	Name    string
	Value   float64
	Min     float64
	Max     float64
	Step    float64
	Integer bool
}

// Set clamps v into bounds (rounding first for integer-stepped params) and
// stores it.
func (p *ParameterSpec) Set(v float64) {
	if math.IsNaN(v) {
		return
	}
	if p.Integer {
		v = math.Round(v)
	}
	if v < p.Min {
		v = p.Min
	}
	if v > p.Max {
		v = p.Max
	}
	p.Value = v
}

// Nudge moves the value by steps increments of Step, clamped.
func (p *ParameterSpec) Nudge(steps float64) {
	p.Set(p.Value + steps*p.Step)
}

func fparam(name string, value, min, max, step float64) ParameterSpec {
	return ParameterSpec{Name: name, Value: value, Min: min, Max: max, Step: step}
}

func iparam(name string, value, min, max float64) ParameterSpec {
	return ParameterSpec{Name: name, Value: value, Min: min, Max: max, Step: 1, Integer: true}
}
