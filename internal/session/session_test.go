package session_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/evan-ms/parascope/internal/preset"
	"github.com/evan-ms/parascope/internal/projection"
	"github.com/evan-ms/parascope/internal/scene"
	"github.com/evan-ms/parascope/internal/session"
)

var _ = Describe("Session", func() {
	var (
		reg *scene.Registry
		st  *preset.Store
		s   *session.Session
		vp  = projection.Viewport{Width: 800, Height: 600}
	)

	BeforeEach(func() {
		var err error
		reg, err = scene.NewRegistry(scene.Catalog())
		Expect(err).NotTo(HaveOccurred())
		st = preset.New(GinkgoT().TempDir())
		s, err = session.New(reg, st, 0)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("scene navigation", func() {
		It("wraps forward past the last scene", func() {
			for i := 0; i < reg.Count(); i++ {
				Expect(s.Apply(session.Next())).To(Succeed())
			}
			Expect(s.SceneIndex()).To(Equal(0))
		})

		It("wraps backward from the first scene", func() {
			Expect(s.Apply(session.Prev())).To(Succeed())
			Expect(s.SceneIndex()).To(Equal(reg.Count() - 1))
		})

		It("round-trips next then prev from any index", func() {
			for start := 0; start < reg.Count(); start++ {
				var err error
				s, err = session.New(reg, st, start)
				Expect(err).NotTo(HaveOccurred())
				s.Apply(session.Next())
				s.Apply(session.Prev())
				Expect(s.SceneIndex()).To(Equal(start))
			}
		})

		It("resets edit state on every scene change", func() {
			s.Apply(session.ToggleEdit())
			s.Apply(session.CycleParam())
			Expect(s.Editing()).To(BeTrue())
			Expect(s.SelectedParam()).To(Equal(1))

			s.Apply(session.Next())
			Expect(s.Editing()).To(BeFalse())
			Expect(s.SelectedParam()).To(Equal(0))
		})
	})

	Describe("edit mode", func() {
		It("keeps the selected parameter when toggling edit", func() {
			s.Apply(session.ToggleEdit())
			s.Apply(session.CycleParam())
			s.Apply(session.ToggleEdit())
			s.Apply(session.ToggleEdit())
			Expect(s.SelectedParam()).To(Equal(1))
		})

		It("ignores CycleParam and AdjustParam outside edit mode", func() {
			before := s.Frame(vp).Params
			s.Apply(session.CycleParam())
			s.Apply(session.Adjust(10))
			after := s.Frame(vp).Params
			Expect(s.SelectedParam()).To(Equal(0))
			Expect(after).To(Equal(before))
		})

		It("returns the selection to start after a full cycle", func() {
			s.Apply(session.ToggleEdit())
			n := len(s.Frame(vp).Params)
			for i := 0; i < n; i++ {
				s.Apply(session.CycleParam())
			}
			Expect(s.SelectedParam()).To(Equal(0))
		})

		It("adjusts by step increments and clamps at the bounds", func() {
			// torus_knot R: value 1.0, min 0.1, max 10.0, step 0.1.
			s.Apply(session.ToggleEdit())
			s.Apply(session.CycleParam()) // p -> q
			s.Apply(session.CycleParam()) // q -> R

			s.Apply(session.Adjust(5))
			Expect(s.Frame(vp).Params[2].Value).To(BeNumerically("~", 1.5, 1e-12))

			s.Apply(session.Adjust(1000))
			Expect(s.Frame(vp).Params[2].Value).To(Equal(10.0))

			s.Apply(session.Adjust(-1e9))
			Expect(s.Frame(vp).Params[2].Value).To(Equal(0.1))

			// At the floor, stepping down stays at the floor.
			s.Apply(session.Adjust(-1))
			Expect(s.Frame(vp).Params[2].Value).To(Equal(0.1))
		})

		It("regenerates the cloud when a geometry parameter changes", func() {
			before := len(s.Frame(vp).Points)
			s.Apply(session.ToggleEdit())
			// torus_knot num_points is the last parameter.
			for i := 0; i < 4; i++ {
				s.Apply(session.CycleParam())
			}
			s.Apply(session.Adjust(500))
			after := len(s.Frame(vp).Points)
			Expect(after).NotTo(Equal(before))
		})
	})

	Describe("camera events", func() {
		It("toggles auto-rotate and zoom", func() {
			Expect(s.Frame(vp).AutoRotate).To(BeTrue())
			s.Apply(session.ToggleAutoRotate())
			Expect(s.Frame(vp).AutoRotate).To(BeFalse())

			Expect(s.Frame(vp).Zoom).To(Equal(projection.Zoom1x))
			s.Apply(session.ToggleZoom())
			Expect(s.Frame(vp).Zoom).To(Equal(projection.Zoom2x))
			s.Apply(session.ToggleZoom())
			Expect(s.Frame(vp).Zoom).To(Equal(projection.Zoom1x))
		})

		It("rotates the view on drag", func() {
			s.Apply(session.ToggleAutoRotate()) // freeze auto-rotate
			before := s.Frame(vp).Points
			s.Apply(session.Drag(40, 0))
			after := s.Frame(vp).Points
			Expect(after).NotTo(Equal(before))
		})
	})

	Describe("presets", func() {
		It("round-trips save then load-latest", func() {
			s.Apply(session.ToggleEdit())
			s.Apply(session.Adjust(3)) // p: 2 -> 5
			saved := s.Frame(vp).Params[0].Value
			Expect(s.Apply(session.Save("mine"))).To(Succeed())

			s.Apply(session.Adjust(10)) // wander off
			Expect(s.Frame(vp).Params[0].Value).NotTo(Equal(saved))

			Expect(s.Apply(session.LoadLatest())).To(Succeed())
			Expect(s.Frame(vp).Params[0].Value).To(Equal(saved))
		})

		It("reports NotFound without touching state when no preset exists", func() {
			before := s.Frame(vp).Params
			err := s.Apply(session.LoadLatest())
			Expect(err).To(MatchError(preset.ErrNotFound))
			Expect(s.Frame(vp).Params).To(Equal(before))
		})

		It("ignores unknown keys and keeps values for missing keys", func() {
			_, err := st.Save("torus_knot", "partial", map[string]float64{
				"q":            7,
				"retired_knob": 99, // no longer declared
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(s.Apply(session.LoadLatest())).To(Succeed())
			params := s.Frame(vp).Params
			Expect(params[1].Value).To(Equal(7.0)) // q loaded
			Expect(params[0].Value).To(Equal(2.0)) // p kept its value
			for _, p := range params {
				Expect(p.Name).NotTo(Equal("retired_knob"))
			}
		})

		It("clamps out-of-bounds preset values on load", func() {
			_, err := st.Save("torus_knot", "wild", map[string]float64{"R": 1e6})
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Apply(session.LoadLatest())).To(Succeed())
			Expect(s.Frame(vp).Params[2].Value).To(Equal(10.0))
		})

		It("refuses to load a record saved for another scene", func() {
			id, err := st.Save("fib_spiral", "elsewhere", map[string]float64{"phi": 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Apply(session.LoadPreset(id))).To(MatchError(preset.ErrNotFound))
		})
	})

	Describe("frame ticks", func() {
		It("drains queued events in order on the next tick", func() {
			s.Push(session.Next())
			s.Push(session.Next())
			s.Push(session.Prev())
			Expect(s.Tick(1.0 / 60.0)).To(Succeed())
			Expect(s.SceneIndex()).To(Equal(1))
		})

		It("applies all events even when one fails", func() {
			s.Push(session.LoadLatest()) // fails: nothing saved
			s.Push(session.Next())
			err := s.Tick(1.0 / 60.0)
			Expect(err).To(MatchError(preset.ErrNotFound))
			Expect(s.SceneIndex()).To(Equal(1))
		})

		It("advances auto-rotate with elapsed time only", func() {
			frozen := s.Frame(vp).Points
			s.Apply(session.ToggleAutoRotate())
			s.Tick(1.0 / 60.0)
			Expect(s.Frame(vp).Points).To(Equal(frozen))

			s.Apply(session.ToggleAutoRotate())
			s.Tick(1.0 / 60.0)
			Expect(s.Frame(vp).Points).NotTo(Equal(frozen))
		})

		It("regenerates animated scenes every frame", func() {
			// standing_wave is at index 4 and time-modulated.
			var err error
			s, err = session.New(reg, st, 4)
			Expect(err).NotTo(HaveOccurred())
			s.Apply(session.ToggleAutoRotate()) // isolate time modulation
			a := s.Frame(vp).Points
			s.Tick(0.1)
			b := s.Frame(vp).Points
			Expect(b).NotTo(Equal(a))
		})
	})
})
