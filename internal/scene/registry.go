// Package scene holds the fixed catalog of visualizable scenes and their
// live parameter values. The registry is built once at startup and only
// parameter values mutate afterwards.
package scene

import (
	"errors"
	"fmt"

	"github.com/evan-ms/parascope/internal/generators"
)

var (
	// ErrOutOfRange indicates a scene index outside [0, Count).
	ErrOutOfRange = errors.New("scene: index out of range")

	// ErrEmptyCatalog indicates a registry constructed with no scenes.
	ErrEmptyCatalog = errors.New("scene: catalog is empty")
)

// Style hints how a front-end should draw the projected cloud.
type Style int

const (
	StyleLine   Style = iota // connect consecutive points
	StylePoints              // independent markers
)

// Descriptor is one catalog entry. Slug is the stable preset key: unlike
// the ordinal it survives catalog reordering across versions.
type Descriptor struct {
	Slug     string
	Name     string
	Generate generators.Func
	Params   []ParameterSpec
	Animated bool // regenerate every frame, not only on edits
	Style    Style
}

// Param returns the spec with the given name, or nil.
func (d *Descriptor) Param(name string) *ParameterSpec {
	for i := range d.Params {
		if d.Params[i].Name == name {
			return &d.Params[i]
		}
	}
	return nil
}

// ParamMap snapshots current values for a generator call.
func (d *Descriptor) ParamMap() generators.Params {
	m := make(generators.Params, len(d.Params))
	for _, p := range d.Params {
		m[p.Name] = p.Value
	}
	return m
}

// Values is an alias of ParamMap for preset serialization.
func (d *Descriptor) Values() map[string]float64 {
	return d.ParamMap()
}

type Registry struct {
	scenes []Descriptor
}

// NewRegistry wraps a fixed scene list. An empty list is a construction
// bug, not a runtime condition.
func NewRegistry(scenes []Descriptor) (*Registry, error) {
	if len(scenes) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &Registry{scenes: scenes}, nil
}

func (r *Registry) Count() int { return len(r.scenes) }

// At returns the live descriptor at index i.
func (r *Registry) At(i int) (*Descriptor, error) {
	if i < 0 || i >= len(r.scenes) {
		return nil, fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(r.scenes))
	}
	return &r.scenes[i], nil
}

// Slugs lists the stable keys in navigation order.
func (r *Registry) Slugs() []string {
	out := make([]string, len(r.scenes))
	for i := range r.scenes {
		out[i] = r.scenes[i].Slug
	}
	return out
}
