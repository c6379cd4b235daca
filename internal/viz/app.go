// Package viz is the terminal front-end: a Bubble Tea program that drives
// the session once per frame tick and draws the projected cloud onto a
// braille canvas. It owns no scene state of its own.
package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/evan-ms/parascope/internal/preset"
	"github.com/evan-ms/parascope/internal/projection"
	"github.com/evan-ms/parascope/internal/scene"
	"github.com/evan-ms/parascope/internal/session"
)

const (
	canvasCols = 80
	canvasRows = 24

	frameHistory = 240
)

type TickMsg time.Time

// Model is the Bubble Tea state for the interactive viewer.
type Model struct {
	sess   *session.Session
	canvas *Canvas
	fps    int

	lastFrame  time.Time
	frameTimes []float64 // milliseconds, rolling

	naming  bool
	nameBuf string

	browsing  bool
	records   []preset.Record
	browseIdx int

	showHelp bool
	lastErr  string
	frame    session.FrameData

	total int // catalog size, for the "scene i/n" header
}

// NewModel wraps a session for terminal rendering at the given frame rate.
func NewModel(sess *session.Session, fps, totalScenes int) Model {
	if fps <= 0 {
		fps = 60
	}
	return Model{
		sess:       sess,
		canvas:     NewCanvas(canvasCols, canvasRows),
		fps:        fps,
		frameTimes: make([]float64, 0, frameHistory),
		total:      totalScenes,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		now := time.Time(msg)
		dt := 1.0 / float64(m.fps)
		if !m.lastFrame.IsZero() {
			if elapsed := now.Sub(m.lastFrame).Seconds(); elapsed > 0 {
				dt = elapsed
			}
		}
		m.lastFrame = now

		start := time.Now()
		if err := m.sess.Tick(dt); err != nil {
			m.lastErr = err.Error()
		}
		m.draw()
		m.frameTimes = append(m.frameTimes, float64(time.Since(start).Microseconds())/1000)
		if len(m.frameTimes) > frameHistory {
			m.frameTimes = m.frameTimes[1:]
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.naming {
		return m.handleNameKey(msg)
	}
	if m.browsing {
		return m.handleBrowserKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "right":
		m.push(session.Next())
	case "left":
		m.push(session.Prev())
	case "e":
		m.push(session.ToggleEdit())
	case "tab":
		m.push(session.CycleParam())
	case "up", "k":
		m.push(session.Adjust(1))
	case "down", "j":
		m.push(session.Adjust(-1))
	case "a":
		m.push(session.ToggleAutoRotate())
	case "z":
		m.push(session.ToggleZoom())
	case "x":
		m.push(session.Drag(0, 10))
	case "X":
		m.push(session.Drag(0, -10))
	case "y":
		m.push(session.Drag(10, 0))
	case "Y":
		m.push(session.Drag(-10, 0))
	case "s":
		m.naming = true
		m.nameBuf = ""
	case "l":
		m.push(session.LoadLatest())
	case "p":
		m.browsing = !m.browsing
		if m.browsing {
			m.refreshRecords()
		}
	case "h", "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.push(session.Save(m.nameBuf))
		m.naming, m.nameBuf = false, ""
	case "esc":
		m.naming, m.nameBuf = false, ""
	case "backspace":
		if len(m.nameBuf) > 0 {
			m.nameBuf = m.nameBuf[:len(m.nameBuf)-1]
		}
	default:
		if s := msg.String(); len(s) == 1 {
			m.nameBuf += s
		}
	}
	return m, nil
}

func (m Model) handleBrowserKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "p", "esc", "q":
		m.browsing = false
	case "up", "k":
		if m.browseIdx > 0 {
			m.browseIdx--
		}
	case "down", "j":
		if m.browseIdx < len(m.records)-1 {
			m.browseIdx++
		}
	case "enter":
		if m.browseIdx < len(m.records) {
			m.push(session.LoadPreset(m.records[m.browseIdx].ID))
			m.browsing = false
		}
	case "d":
		if m.browseIdx < len(m.records) {
			if err := m.sess.DeletePreset(m.records[m.browseIdx].ID); err != nil {
				m.lastErr = err.Error()
			}
			m.refreshRecords()
		}
	}
	return m, nil
}

func (m *Model) push(ev session.Event) {
	m.lastErr = ""
	m.sess.Push(ev)
}

func (m *Model) refreshRecords() {
	recs, err := m.sess.Presets()
	if err != nil {
		m.lastErr = err.Error()
		recs = nil
	}
	m.records = recs
	if m.browseIdx >= len(m.records) {
		m.browseIdx = 0
	}
}

// draw runs one generate+project pass and rasterizes it.
func (m *Model) draw() {
	pw, ph := m.canvas.PixelSize()
	frame := m.sess.Frame(projection.Viewport{Width: pw, Height: ph})
	m.frame = frame

	m.canvas.Clear()
	if frame.Style == scene.StyleLine && len(frame.Points) > 1 {
		prev := frame.Points[0]
		for _, p := range frame.Points[1:] {
			m.canvas.DrawLine(int(prev.X), int(prev.Y), int(p.X), int(p.Y))
			prev = p
		}
		return
	}
	for _, p := range frame.Points {
		// The perspective factor is signed; its magnitude sizes the dot.
		r := int(math.Abs(p.Depth))
		if r > 2 {
			r = 2
		}
		m.canvas.Marker(int(p.X), int(p.Y), r)
	}
}

func (m Model) View() string {
	frame := m.frame
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(frame.Scene)) + "\n")
	s.WriteString(fmt.Sprintf("scene %d/%d\n\n", m.sess.SceneIndex()+1, m.total))

	if frame.Editing {
		s.WriteString(editBadgeStyle.Render("EDIT") + "\n")
	} else {
		s.WriteString(fmt.Sprintf("auto-rotate %s   zoom %s\n", onOff(frame.AutoRotate), frame.Zoom))
	}
	s.WriteString(labelStyle.Render("Points") + valueStyle.Render(fmt.Sprintf("%d", len(frame.Points))) + "\n")

	if len(m.frameTimes) > 1 {
		chart := asciigraph.Plot(m.frameTimes, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("frame ms"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	for i, p := range frame.Params {
		ratio := 0.0
		if p.Max > p.Min {
			ratio = (p.Value - p.Min) / (p.Max - p.Min)
		}
		filled := int(ratio * 10)
		bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", 10-filled) + "]"
		line := fmt.Sprintf("%-12s %s %.3g", p.Name, bar, p.Value)
		if frame.Editing && i == frame.Selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	if m.naming {
		s.WriteString("\nsave preset as: " + valueStyle.Render(m.nameBuf+"_") + "\n")
	}
	if m.lastErr != "" {
		s.WriteString("\n" + errStyle.Render(m.lastErr) + "\n")
	}
	s.WriteString(helpStyle.Render("\n─────────────────────\n←/→:Scene E:Edit Tab:Param ↑↓:Adjust\nA:Auto Z:Zoom S:Save L:Load P:Presets\nX/Y:Rotate H:Help Q:Quit"))

	panel := panelStyle.Render(s.String())
	main := lipgloss.JoinHorizontal(lipgloss.Top, canvasStyle.Render(m.canvas.String()), panel)

	if m.browsing {
		return m.browserView() + "\n" + main
	}
	if m.showHelp {
		return helpOverlay + "\n" + main
	}
	return main
}

func (m Model) browserView() string {
	var b strings.Builder
	b.WriteString("PRESETS (enter: load, d: delete, p: close)\n")
	if len(m.records) == 0 {
		b.WriteString("  (none saved for this scene)\n")
	}
	for i, r := range m.records {
		line := fmt.Sprintf("%-20s %s", r.Name, r.Timestamp.Format("2006-01-02 15:04:05"))
		if len(r.Tags) > 0 {
			line += "  [" + strings.Join(r.Tags, ",") + "]"
		}
		if i == m.browseIdx {
			b.WriteString(selectedRowStyle.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return browserStyle.Render(b.String())
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  ←/→      - Previous / next scene    ║
║  E        - Toggle edit mode         ║
║  Tab      - Cycle parameter          ║
║  ↑/↓      - Adjust parameter         ║
║  A        - Toggle auto-rotate       ║
║  Z        - Toggle zoom (1x/2x)      ║
║  X/Y      - Rotate view              ║
║  S        - Save preset (with name)  ║
║  L        - Load most recent preset  ║
║  P        - Preset browser           ║
║  H or ?   - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Run starts the interactive terminal viewer and blocks until quit.
func Run(sess *session.Session, fps, totalScenes int) error {
	p := tea.NewProgram(NewModel(sess, fps, totalScenes), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
