package client

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Framebuffer is an offscreen ebiten image that the simulation draws into
// during Update. Draw copies it to the window.
type Framebuffer struct {
	img    *ebiten.Image
	w, h   int
	images map[image.Image]*ebiten.Image // source bitmap -> GPU copy
}

func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{
		img:    ebiten.NewImage(w, h),
		w:      w,
		h:      h,
		images: make(map[image.Image]*ebiten.Image),
	}
}

func (f *Framebuffer) Size() (int, int) {
	return f.w, f.h
}

func (f *Framebuffer) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(f.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

// DrawImage uploads img on first use and reuses the copy afterwards, so
// callers must not mutate a bitmap once it has been drawn.
func (f *Framebuffer) DrawImage(img image.Image, x, y float64) {
	src, ok := f.images[img]
	if !ok {
		src = ebiten.NewImageFromImage(img)
		f.images[img] = src
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	f.img.DrawImage(src, op)
}

func (f *Framebuffer) DrawTo(screen *ebiten.Image) {
	screen.DrawImage(f.img, nil)
}
