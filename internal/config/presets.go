package config

import "sort"

// Built-in named parameter sets, keyed by scene slug. These complement
// user-saved presets: they ship with the binary and are applied the same
// way a loaded record is.
var Presets = map[string]map[string]map[string]float64{
	"torus_knot": {
		"trefoil":    {"p": 2, "q": 3, "R": 1.0, "r": 0.4},
		"cinquefoil": {"p": 2, "q": 5, "R": 1.0, "r": 0.35},
		"solenoid":   {"p": 1, "q": 12, "R": 1.2, "r": 0.5},
		"dense":      {"p": 7, "q": 11, "R": 1.0, "r": 0.3, "num_points": 3000},
	},
	"fib_spiral": {
		"golden": {"phi": 1.618, "num_points": 400},
		"tight":  {"phi": 1.2, "num_points": 800},
	},
	"standing_wave": {
		"fundamental": {"amp": 1.0, "freq": 1.0},
		"overtone":    {"amp": 0.6, "freq": 5.0},
	},
	"golden_torus_spiral": {
		"shell":  {"turns": 8, "R": 1.0, "r": 0.15},
		"bloom":  {"turns": 4, "R": 0.8, "r": 0.4},
		"strand": {"turns": 12, "R": 1.5, "r": 0.05, "num_points": 3000},
	},
	"harmonic_lattice": {
		"coarse": {"nx": 12, "ny": 12, "modes": 2},
		"fine":   {"nx": 48, "ny": 48, "modes": 6},
	},
	"superposition": {
		"square-ish": {"num_waves": 9},
		"pair":       {"num_waves": 2},
	},
	"interference": {
		"calm":  {"num_waves": 2, "grid": 24},
		"storm": {"num_waves": 8, "grid": 32},
	},
}

// GetPreset returns the named built-in values for a scene, or nil.
func GetPreset(slug, name string) map[string]float64 {
	scenePresets, ok := Presets[slug]
	if !ok {
		return nil
	}
	return scenePresets[name]
}

// ListPresets names a scene's built-in presets, or nil when none exist.
func ListPresets(slug string) []string {
	scenePresets, ok := Presets[slug]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenePresets))
	for name := range scenePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
