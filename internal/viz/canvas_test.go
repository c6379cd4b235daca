package viz

import (
	"math/bits"
	"strings"
	"testing"
)

func TestCanvasPixelSize(t *testing.T) {
	c := NewCanvas(80, 24)
	w, h := c.PixelSize()
	if w != 160 || h != 96 {
		t.Fatalf("got %dx%d, want 160x96", w, h)
	}
}

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("sub-pixel not lit")
	}

	// Out-of-bounds plots must be silently dropped.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(8, 0)
	c.Set(0, 16)

	c.Clear()
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("clear left lit pixels")
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 39)

	lit := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("line lit no cells")
	}
	if c.Grid[0][0] == 0x2800 || c.Grid[9][9] == 0x2800 {
		t.Error("endpoints not lit")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	out := c.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d rows, want 2", len(lines))
	}
	for _, l := range lines {
		if len([]rune(l)) != 3 {
			t.Errorf("row %q has wrong width", l)
		}
	}
}

func TestMarkerRadius(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Marker(10, 20, 0)
	single := countLit(c)
	if single != 1 {
		t.Fatalf("r=0 marker lit %d pixels, want 1", single)
	}

	c.Clear()
	c.Marker(10, 20, 2)
	if countLit(c) <= single {
		t.Error("larger radius did not light more pixels")
	}
}

// countLit counts lit sub-pixels across the whole canvas.
func countLit(c *Canvas) int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			n += bits.OnesCount(uint(r - 0x2800))
		}
	}
	return n
}
