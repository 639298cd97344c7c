package term

import (
	"image/color"
	"testing"

	"pong/internal/game"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return screen
}

func bgAt(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestCanvasFillRect(t *testing.T) {
	screen := newScreen(t, 80, 24)
	c := NewCanvas(screen, 800, 600)

	if w, h := c.Size(); w != 800 || h != 600 {
		t.Fatalf("canvas reports %dx%d, want field size", w, h)
	}

	bg := tcell.FromImageColor(game.BgColor)
	white := tcell.FromImageColor(color.White)

	c.FillRect(0, 0, 800, 600, game.BgColor)
	for _, p := range [][2]int{{0, 0}, {79, 0}, {0, 23}, {79, 23}, {40, 12}} {
		if got := bgAt(screen, p[0], p[1]); got != bg {
			t.Errorf("cell %v: background %v, want %v", p, got, bg)
		}
	}

	// Left paddle: x 25..35, y 250..350 covers columns 2-3 and rows 10-13.
	c.FillRect(25, 250, 10, 100, color.White)
	for _, p := range [][2]int{{2, 10}, {3, 10}, {2, 13}, {3, 13}} {
		if got := bgAt(screen, p[0], p[1]); got != white {
			t.Errorf("paddle cell %v not painted", p)
		}
	}
	for _, p := range [][2]int{{1, 10}, {4, 10}, {2, 9}, {2, 14}} {
		if got := bgAt(screen, p[0], p[1]); got != bg {
			t.Errorf("cell %v outside paddle was painted", p)
		}
	}
}

func TestCanvasFillRectClipped(t *testing.T) {
	screen := newScreen(t, 80, 24)
	c := NewCanvas(screen, 800, 600)
	c.FillRect(0, 0, 800, 600, game.BgColor)

	// Paddles may leave the field; only the visible part is painted.
	c.FillRect(25, -50, 10, 100, color.White)
	if got := bgAt(screen, 2, 0); got != tcell.FromImageColor(color.White) {
		t.Errorf("visible part of paddle not painted")
	}
	if got := bgAt(screen, 2, 2); got != tcell.FromImageColor(game.BgColor) {
		t.Errorf("cell below paddle was painted")
	}
}

func TestCanvasDrawImage(t *testing.T) {
	screen := newScreen(t, 80, 24)
	c := NewCanvas(screen, 800, 600)
	c.FillRect(0, 0, 800, 600, game.BgColor)

	glyphs := game.NewGlyphs(color.White)
	c.DrawImage(glyphs[1], 0, 0)

	bg := tcell.FromImageColor(game.BgColor)
	white := tcell.FromImageColor(color.White)

	// Cell centers sample the middle column of the 3x5 bitmap.
	for _, p := range [][2]int{{1, 0}, {1, 1}} {
		if got := bgAt(screen, p[0], p[1]); got != white {
			t.Errorf("stroke cell %v not painted", p)
		}
	}
	for _, p := range [][2]int{{0, 0}, {2, 0}, {0, 1}, {2, 1}, {3, 0}, {1, 2}} {
		if got := bgAt(screen, p[0], p[1]); got != bg {
			t.Errorf("transparent cell %v was painted", p)
		}
	}
}

func TestSpan(t *testing.T) {
	tests := []struct {
		lo, hi float64
		a, b   int
	}{
		{0, 800, 0, 80},
		{395, 405, 39, 41},
		{-100, 5, 0, 1},
		{790, 900, 79, 80},
		{-50, -10, 0, 0},
	}
	for _, tt := range tests {
		a, b := span(tt.lo, tt.hi, 800, 80)
		if a != tt.a || b != tt.b {
			t.Errorf("span(%v, %v) = %d, %d; want %d, %d", tt.lo, tt.hi, a, b, tt.a, tt.b)
		}
	}
}
