package game

import (
	"image"
	"image/color"
	"image/draw"
)

// CharPixel is the side of one font cell in field units.
const CharPixel = 10

// Digits are 3x5 bitmaps, row major.
var digitMasks = [10]string{
	"111101101101111",
	"010010010010010",
	"111001111100111",
	"111001111001111",
	"101101111001001",
	"111100111001111",
	"111100111101111",
	"111001001001001",
	"111101111101111",
	"111101111001111",
}

// Glyphs holds one pre-rendered image per decimal digit.
type Glyphs [10]*image.RGBA

func NewGlyphs(c color.Color) Glyphs {
	var g Glyphs
	src := image.NewUniform(c)
	for d, mask := range digitMasks {
		img := image.NewRGBA(image.Rect(0, 0, 3*CharPixel, 5*CharPixel))
		for i, fill := range mask {
			if fill != '1' {
				continue
			}
			x, y := (i%3)*CharPixel, (i/3)*CharPixel
			draw.Draw(img, image.Rect(x, y, x+CharPixel, y+CharPixel), src, image.Point{}, draw.Src)
		}
		g[d] = img
	}
	return g
}
