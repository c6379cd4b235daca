// Package gui is the windowed front-end built on raylib. Like the
// terminal viewer it only translates input into session events and
// draws the per-frame projection; all scene state lives in the session.
package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/evan-ms/parascope/internal/preset"
	"github.com/evan-ms/parascope/internal/projection"
	"github.com/evan-ms/parascope/internal/session"
)

// Theme colors (dark, low-chroma)
var (
	ColBg      = rl.NewColor(12, 12, 16, 255)
	ColPoint   = rl.NewColor(210, 210, 220, 255)
	ColLine    = rl.NewColor(170, 180, 200, 255)
	ColAccent  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(150, 150, 150, 255)
	ColTextDim = rl.NewColor(70, 70, 70, 255)
	ColButton  = rl.NewColor(30, 30, 38, 255)
	ColButtonA = rl.NewColor(55, 55, 70, 255)
)

// button is a touch/click target along the bottom edge.
type button struct {
	Label string
	Rect  rl.Rectangle
	Fire  func(a *App)
}

type App struct {
	Sess  *session.Session
	Total int
	Quit  bool

	Width  int32
	Height int32
	FPS    int32

	Buttons []button

	Naming  bool
	NameBuf string

	Browsing  bool
	Records   []preset.Record
	BrowseIdx int

	ShowHelp bool
	LastErr  string

	Frame session.FrameData
}

// Run opens the window and blocks until it is closed.
func Run(sess *session.Session, width, height, fps, totalScenes int) error {
	a := NewApp(sess, width, height, fps, totalScenes)
	rl.InitWindow(a.Width, a.Height, "parascope")
	defer rl.CloseWindow()
	rl.SetTargetFPS(a.FPS)
	rl.SetExitKey(0)

	for !rl.WindowShouldClose() && !a.Quit {
		a.Update()
		a.Draw()
	}
	return nil
}

func NewApp(sess *session.Session, width, height, fps, totalScenes int) *App {
	a := &App{
		Sess:   sess,
		Total:  totalScenes,
		Width:  int32(width),
		Height: int32(height),
		FPS:    int32(fps),
	}
	a.layoutButtons()
	return a
}

// layoutButtons places the control row along the bottom edge, sized to
// split the full width evenly.
func (a *App) layoutButtons() {
	labels := []struct {
		text string
		fire func(a *App)
	}{
		{"<", func(a *App) { a.push(session.Prev()) }},
		{">", func(a *App) { a.push(session.Next()) }},
		{"EDIT", func(a *App) { a.push(session.ToggleEdit()) }},
		{"AUTO", func(a *App) { a.push(session.ToggleAutoRotate()) }},
		{"ZOOM", func(a *App) { a.push(session.ToggleZoom()) }},
		{"SAVE", func(a *App) { a.Naming = true; a.NameBuf = "" }},
		{"LOAD", func(a *App) { a.push(session.LoadLatest()) }},
		{"LIST", func(a *App) { a.toggleBrowser() }},
		{"?", func(a *App) { a.ShowHelp = !a.ShowHelp }},
	}
	const h, pad = 44, 4
	w := (float32(a.Width) - pad*float32(len(labels)+1)) / float32(len(labels))
	y := float32(a.Height) - h - pad
	a.Buttons = a.Buttons[:0]
	for i, l := range labels {
		x := pad + float32(i)*(w+pad)
		a.Buttons = append(a.Buttons, button{
			Label: l.text,
			Rect:  rl.NewRectangle(x, y, w, h),
			Fire:  l.fire,
		})
	}
}

func (a *App) push(ev session.Event) {
	a.LastErr = ""
	a.Sess.Push(ev)
}

func (a *App) toggleBrowser() {
	a.Browsing = !a.Browsing
	if !a.Browsing {
		return
	}
	recs, err := a.Sess.Presets()
	if err != nil {
		a.LastErr = err.Error()
		recs = nil
	}
	a.Records = recs
	if a.BrowseIdx >= len(a.Records) {
		a.BrowseIdx = 0
	}
}

func (a *App) Update() {
	if a.Naming {
		a.updateNaming()
	} else if a.Browsing {
		a.updateBrowser()
	} else {
		a.updateMain()
	}

	dt := float64(rl.GetFrameTime())
	if dt <= 0 {
		dt = 1.0 / float64(a.FPS)
	}
	if err := a.Sess.Tick(dt); err != nil {
		a.LastErr = err.Error()
	}
	a.Frame = a.Sess.Frame(projection.Viewport{Width: int(a.Width), Height: int(a.Height)})
}

func (a *App) updateMain() {
	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		a.Quit = true
	case rl.IsKeyPressed(rl.KeyRight):
		a.push(session.Next())
	case rl.IsKeyPressed(rl.KeyLeft):
		a.push(session.Prev())
	case rl.IsKeyPressed(rl.KeyE):
		a.push(session.ToggleEdit())
	case rl.IsKeyPressed(rl.KeyTab):
		a.push(session.CycleParam())
	case rl.IsKeyPressed(rl.KeyUp):
		a.push(session.Adjust(1))
	case rl.IsKeyPressed(rl.KeyDown):
		a.push(session.Adjust(-1))
	case rl.IsKeyPressed(rl.KeyA):
		a.push(session.ToggleAutoRotate())
	case rl.IsKeyPressed(rl.KeyZ):
		a.push(session.ToggleZoom())
	case rl.IsKeyPressed(rl.KeyS):
		a.Naming = true
		a.NameBuf = ""
	case rl.IsKeyPressed(rl.KeyL):
		a.push(session.LoadLatest())
	case rl.IsKeyPressed(rl.KeyP):
		a.toggleBrowser()
	case rl.IsKeyPressed(rl.KeyH):
		a.ShowHelp = !a.ShowHelp
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		for i := range a.Buttons {
			if rl.CheckCollisionPointRec(pos, a.Buttons[i].Rect) {
				a.Buttons[i].Fire(a)
				return
			}
		}
	}

	// Dragging above the button row spins the view.
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		if pos.Y < a.Buttons[0].Rect.Y {
			d := rl.GetMouseDelta()
			if d.X != 0 || d.Y != 0 {
				a.push(session.Drag(float64(d.X), float64(d.Y)))
			}
		}
	}
}

func (a *App) updateNaming() {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch < 127 {
			a.NameBuf += string(rune(ch))
		}
	}
	switch {
	case rl.IsKeyPressed(rl.KeyEnter):
		a.push(session.Save(a.NameBuf))
		a.Naming, a.NameBuf = false, ""
	case rl.IsKeyPressed(rl.KeyEscape):
		a.Naming, a.NameBuf = false, ""
	case rl.IsKeyPressed(rl.KeyBackspace):
		if len(a.NameBuf) > 0 {
			a.NameBuf = a.NameBuf[:len(a.NameBuf)-1]
		}
	}
}

func (a *App) updateBrowser() {
	switch {
	case rl.IsKeyPressed(rl.KeyEscape), rl.IsKeyPressed(rl.KeyP):
		a.Browsing = false
	case rl.IsKeyPressed(rl.KeyDown):
		if a.BrowseIdx < len(a.Records)-1 {
			a.BrowseIdx++
		}
	case rl.IsKeyPressed(rl.KeyUp):
		if a.BrowseIdx > 0 {
			a.BrowseIdx--
		}
	case rl.IsKeyPressed(rl.KeyEnter):
		if a.BrowseIdx < len(a.Records) {
			a.push(session.LoadPreset(a.Records[a.BrowseIdx].ID))
			a.Browsing = false
		}
	case rl.IsKeyPressed(rl.KeyD):
		if a.BrowseIdx < len(a.Records) {
			if err := a.Sess.DeletePreset(a.Records[a.BrowseIdx].ID); err != nil {
				a.LastErr = err.Error()
			}
			a.Browsing = false
			a.toggleBrowser()
		}
	}
}
