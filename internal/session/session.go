// Package session owns the interactive state: current scene, camera,
// edit mode, and the dispatch of interaction events. All mutation happens
// through Apply/Tick on the frame goroutine; front-ends only push events
// and read frames.
package session

import (
	"fmt"

	"github.com/evan-ms/parascope/internal/geom"
	"github.com/evan-ms/parascope/internal/preset"
	"github.com/evan-ms/parascope/internal/projection"
	"github.com/evan-ms/parascope/internal/scene"
)

// dragRate converts pointer pixels to radians.
const dragRate = 0.01

// Session is the single mutable context threaded through the frame loop.
type Session struct {
	reg   *scene.Registry
	cam   *projection.Camera
	store *preset.Store
	queue Queue

	sceneIdx int
	editing  bool
	paramIdx int

	stale  bool
	clock  float64
	points []geom.Vec3
}

// FrameData is everything a drawing layer needs for one frame. The core
// issues no draw calls itself.
type FrameData struct {
	Points     []projection.ScreenPoint
	Scene      string
	Slug       string
	Style      scene.Style
	Params     []scene.ParameterSpec
	Selected   int
	Editing    bool
	Zoom       projection.ZoomLevel
	AutoRotate bool
}

// New builds a session over a fixed registry. initial selects the starting
// scene and is wrapped into range.
func New(reg *scene.Registry, store *preset.Store, initial int) (*Session, error) {
	if reg == nil || reg.Count() == 0 {
		return nil, scene.ErrEmptyCatalog
	}
	n := reg.Count()
	return &Session{
		reg:      reg,
		cam:      projection.NewCamera(),
		store:    store,
		sceneIdx: ((initial % n) + n) % n,
		stale:    true,
	}, nil
}

// Push queues an event for the next tick. Safe to call from an input
// boundary that runs ahead of the frame loop.
func (s *Session) Push(ev Event) { s.queue.Push(ev) }

// Tick drains the event queue and advances time-driven state by dt
// seconds. The last event error, if any, is returned after all events
// have been applied; a failed event never blocks the rest of the frame.
func (s *Session) Tick(dt float64) error {
	var firstErr error
	for _, ev := range s.queue.drain() {
		if err := s.Apply(ev); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.clock += dt
	s.cam.Advance(dt)
	return firstErr
}

// Apply executes one event against the transition table. Every event has
// a defined effect in every mode; events that do not apply are no-ops.
// Failed operations leave all state unchanged.
func (s *Session) Apply(ev Event) error {
	switch ev.Kind {
	case EvNextScene:
		s.changeScene(1)
	case EvPrevScene:
		s.changeScene(-1)
	case EvToggleEdit:
		// Entering edit mode keeps the previous selection.
		s.editing = !s.editing
	case EvCycleParam:
		if s.editing {
			if n := len(s.current().Params); n > 0 {
				s.paramIdx = (s.paramIdx + 1) % n
			}
		}
	case EvAdjustParam:
		if s.editing {
			d := s.current()
			if s.paramIdx < len(d.Params) {
				d.Params[s.paramIdx].Nudge(ev.Steps)
				s.stale = true
			}
		}
	case EvToggleAutoRotate:
		s.cam.AutoRotate = !s.cam.AutoRotate
	case EvToggleZoom:
		s.cam.ToggleZoom()
	case EvDrag:
		s.cam.Rotate(ev.DY*dragRate, ev.DX*dragRate, 0)
	case EvSavePreset:
		return s.savePreset(ev.Name)
	case EvLoadLatest:
		return s.loadLatest()
	case EvLoadPreset:
		return s.loadPreset(ev.Name)
	}
	return nil
}

// Frame regenerates the point cloud when needed, projects it, and bundles
// the display metadata. Generation is pure, so only edits (or animated
// scenes) trigger it.
func (s *Session) Frame(vp projection.Viewport) FrameData {
	d := s.current()
	if s.stale || d.Animated || s.points == nil {
		s.points = d.Generate(d.ParamMap(), s.clock)
		s.stale = false
	}
	params := make([]scene.ParameterSpec, len(d.Params))
	copy(params, d.Params)
	return FrameData{
		Points:     projection.Project(s.points, s.cam, vp),
		Scene:      d.Name,
		Slug:       d.Slug,
		Style:      d.Style,
		Params:     params,
		Selected:   s.paramIdx,
		Editing:    s.editing,
		Zoom:       s.cam.Zoom,
		AutoRotate: s.cam.AutoRotate,
	}
}

func (s *Session) current() *scene.Descriptor {
	d, _ := s.reg.At(s.sceneIdx) // index is maintained in range
	return d
}

// SceneIndex returns the current scene's position in the catalog.
func (s *Session) SceneIndex() int { return s.sceneIdx }

// Editing reports whether edit mode is active.
func (s *Session) Editing() bool { return s.editing }

// SelectedParam returns the index of the parameter edits target.
func (s *Session) SelectedParam() int { return s.paramIdx }

// Presets lists saved records for the current scene, newest first.
func (s *Session) Presets() ([]preset.Record, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.List(s.current().Slug)
}

// DeletePreset removes a saved record by id.
func (s *Session) DeletePreset(id string) error {
	if s.store == nil {
		return preset.ErrNotFound
	}
	return s.store.Delete(id)
}

func (s *Session) changeScene(dir int) {
	n := s.reg.Count()
	s.sceneIdx = ((s.sceneIdx+dir)%n + n) % n
	// Selection must always index into the new scene's parameters.
	s.paramIdx = 0
	s.editing = false
	s.stale = true
}

func (s *Session) savePreset(name string) error {
	if s.store == nil {
		return fmt.Errorf("session: no preset store configured")
	}
	d := s.current()
	_, err := s.store.Save(d.Slug, name, d.Values())
	return err
}

func (s *Session) loadLatest() error {
	if s.store == nil {
		return fmt.Errorf("session: no preset store configured")
	}
	rec, err := s.store.LoadLatest(s.current().Slug)
	if err != nil {
		return err
	}
	s.applyValues(rec.Values)
	return nil
}

func (s *Session) loadPreset(id string) error {
	if s.store == nil {
		return fmt.Errorf("session: no preset store configured")
	}
	rec, err := s.store.Load(id)
	if err != nil {
		return err
	}
	d := s.current()
	if rec.Scene != d.Slug {
		return fmt.Errorf("%w: preset %s belongs to scene %s", preset.ErrNotFound, id, rec.Scene)
	}
	s.applyValues(rec.Values)
	return nil
}

// applyValues overwrites declared parameters from a preset mapping. Keys
// the scene no longer declares are dropped; parameters the record misses
// keep their current value. Values pass through the usual clamp.
func (s *Session) applyValues(values map[string]float64) {
	d := s.current()
	for i := range d.Params {
		if v, ok := values[d.Params[i].Name]; ok {
			d.Params[i].Set(v)
		}
	}
	s.stale = true
}
