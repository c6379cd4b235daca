package gui

import (
	"fmt"
	"math"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/evan-ms/parascope/internal/scene"
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawCloud()
	a.drawHUD()
	a.drawButtons()

	switch {
	case a.Naming:
		a.drawNaming()
	case a.Browsing:
		a.drawBrowser()
	case a.ShowHelp:
		a.drawHelp()
	}

	rl.EndDrawing()
}

// drawCloud rasterizes the projected frame. Line scenes are drawn as a
// strip between consecutive points, point scenes as depth-scaled dots.
func (a *App) drawCloud() {
	pts := a.Frame.Points
	if len(pts) == 0 {
		return
	}

	if a.Frame.Style == scene.StyleLine && len(pts) > 1 {
		strip := make([]rl.Vector2, len(pts))
		for i, p := range pts {
			strip[i] = rl.NewVector2(float32(p.X), float32(p.Y))
		}
		rl.DrawLineStrip(strip, ColLine)
		return
	}

	for _, p := range pts {
		// The perspective factor is signed; only its magnitude is a
		// depth cue.
		r := float32(math.Abs(p.Depth)) * 3
		if r < 1 {
			r = 1
		} else if r > 5 {
			r = 5
		}
		rl.DrawCircle(int32(p.X), int32(p.Y), r, ColPoint)
	}
}

func (a *App) drawHUD() {
	rl.DrawText("parascope", 14, 12, 22, ColAccent)
	rl.DrawText(fmt.Sprintf(":: %s  (%d/%d)", a.Frame.Scene, a.Sess.SceneIndex()+1, a.Total), 140, 16, 16, ColText)

	status := fmt.Sprintf("auto %s   zoom %s", onOff(a.Frame.AutoRotate), a.Frame.Zoom)
	if a.Frame.Editing {
		status = "EDIT"
	}
	rl.DrawText(status, a.Width-160, 16, 16, ColText)
	rl.DrawText(fmt.Sprintf("%d fps", rl.GetFPS()), 14, a.Height-76, 14, ColTextDim)

	y := int32(48)
	for i, p := range a.Frame.Params {
		col := ColText
		prefix := "  "
		if a.Frame.Editing && i == a.Frame.Selected {
			col = ColAccent
			prefix = "> "
		}
		rl.DrawText(fmt.Sprintf("%s%-14s %.3g", prefix, p.Name, p.Value), 14, y, 16, col)
		y += 20
	}

	if a.LastErr != "" {
		rl.DrawText(a.LastErr, 14, a.Height-96, 14, rl.NewColor(200, 90, 90, 255))
	}
}

func (a *App) drawButtons() {
	pos := rl.GetMousePosition()
	for i := range a.Buttons {
		b := &a.Buttons[i]
		col := ColButton
		if rl.CheckCollisionPointRec(pos, b.Rect) {
			col = ColButtonA
		}
		rl.DrawRectangleRec(b.Rect, col)
		tw := rl.MeasureText(b.Label, 16)
		rl.DrawText(b.Label,
			int32(b.Rect.X)+int32(b.Rect.Width)/2-tw/2,
			int32(b.Rect.Y)+int32(b.Rect.Height)/2-8,
			16, ColText)
	}
}

func (a *App) drawNaming() {
	a.dim()
	rl.DrawText("save preset as:", a.Width/2-150, a.Height/2-30, 18, ColText)
	rl.DrawText(a.NameBuf+"_", a.Width/2-150, a.Height/2, 18, ColAccent)
	rl.DrawText("enter: save   esc: cancel", a.Width/2-150, a.Height/2+40, 14, ColTextDim)
}

func (a *App) drawBrowser() {
	a.dim()
	rl.DrawText("PRESETS", 80, 60, 20, ColAccent)
	y := int32(100)
	if len(a.Records) == 0 {
		rl.DrawText("(none saved for this scene)", 80, y, 16, ColTextDim)
	}
	for i, r := range a.Records {
		col := ColText
		prefix := "  "
		if i == a.BrowseIdx {
			col = ColAccent
			prefix = "> "
		}
		line := fmt.Sprintf("%s%-20s %s", prefix, r.Name, r.Timestamp.Format("2006-01-02 15:04:05"))
		if len(r.Tags) > 0 {
			line += "  [" + strings.Join(r.Tags, ",") + "]"
		}
		rl.DrawText(line, 80, y, 16, col)
		y += 22
	}
	rl.DrawText("enter: load   d: delete   esc: close", 80, a.Height-90, 14, ColTextDim)
}

func (a *App) drawHelp() {
	a.dim()
	lines := []string{
		"LEFT/RIGHT   previous / next scene",
		"E            toggle edit mode",
		"TAB          cycle parameter",
		"UP/DOWN      adjust parameter",
		"A            toggle auto-rotate",
		"Z            toggle zoom (1x / 2x)",
		"DRAG         rotate view",
		"S            save preset",
		"L            load most recent preset",
		"P            preset browser",
		"H            toggle this help",
		"Q            quit",
	}
	rl.DrawText("CONTROLS", 80, 60, 20, ColAccent)
	y := int32(100)
	for _, l := range lines {
		rl.DrawText(l, 80, y, 16, ColText)
		y += 22
	}
}

func (a *App) dim() {
	rl.DrawRectangle(0, 0, a.Width, a.Height, rl.NewColor(0, 0, 0, 200))
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
