package game

import (
	"image/color"
	"testing"
)

func TestGlyphs(t *testing.T) {
	g := NewGlyphs(color.White)

	for d, img := range g {
		if b := img.Bounds(); b.Dx() != 3*CharPixel || b.Dy() != 5*CharPixel {
			t.Fatalf("digit %d: bounds %v", d, b)
		}
	}

	lit := func(d, col, row int) bool {
		_, _, _, a := g[d].At(col*CharPixel+CharPixel/2, row*CharPixel+CharPixel/2).RGBA()
		return a != 0
	}

	// 0 has a hollow middle column, 1 is a single stroke.
	if !lit(0, 0, 0) || lit(0, 1, 1) || lit(0, 1, 3) || !lit(0, 1, 4) {
		t.Error("digit 0 rendered incorrectly")
	}
	if lit(1, 0, 2) || !lit(1, 1, 2) || lit(1, 2, 2) {
		t.Error("digit 1 rendered incorrectly")
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 3; col++ {
			if !lit(8, col, row) && !(col == 1 && (row == 1 || row == 3)) {
				t.Errorf("digit 8 missing cell (%d, %d)", col, row)
			}
		}
	}
}
