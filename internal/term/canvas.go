package term

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Canvas maps a fixed size field onto the cell grid of a terminal. Each cell
// is painted with a background color; there is no text.
type Canvas struct {
	screen tcell.Screen
	w, h   int
}

func NewCanvas(screen tcell.Screen, w, h int) *Canvas {
	return &Canvas{screen: screen, w: w, h: h}
}

// Size returns the field size, not the terminal size.
func (c *Canvas) Size() (int, int) {
	return c.w, c.h
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	cols, rows := c.screen.Size()
	x0, x1 := span(x, x+w, float64(c.w), cols)
	y0, y1 := span(y, y+h, float64(c.h), rows)

	style := tcell.StyleDefault.Background(tcell.FromImageColor(clr))
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			c.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// DrawImage samples img at the center of every cell it covers and paints
// the cells whose sample is not transparent.
func (c *Canvas) DrawImage(img image.Image, x, y float64) {
	b := img.Bounds()
	cols, rows := c.screen.Size()
	x0, x1 := span(x, x+float64(b.Dx()), float64(c.w), cols)
	y0, y1 := span(y, y+float64(b.Dy()), float64(c.h), rows)

	for row := y0; row < y1; row++ {
		fy := (float64(row) + .5) * float64(c.h) / float64(rows)
		py := b.Min.Y + int(math.Floor(fy-y))
		for col := x0; col < x1; col++ {
			fx := (float64(col) + .5) * float64(c.w) / float64(cols)
			px := b.Min.X + int(math.Floor(fx-x))
			if !image.Pt(px, py).In(b) {
				continue
			}
			clr := img.At(px, py)
			if _, _, _, a := clr.RGBA(); a == 0 {
				continue
			}
			c.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(tcell.FromImageColor(clr)))
		}
	}
}

// span converts the field interval [lo, hi) to the range of cells it
// touches, clipped to [0, cells].
func span(lo, hi, field float64, cells int) (int, int) {
	a := int(math.Floor(lo * float64(cells) / field))
	b := int(math.Ceil(hi * float64(cells) / field))
	return clamp(a, 0, cells), clamp(b, 0, cells)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
