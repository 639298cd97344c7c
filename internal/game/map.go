package game

import "image/color"

const (
	// PaddleInset is the distance from each side wall to a paddle's center.
	PaddleInset = 30.0

	LaunchSpeed = 300.0
	Speedup     = 1.07
	// Spin is the width of the random vertical kick added on a paddle hit.
	Spin = 300.0

	ScoreTop = 20.0
)

var (
	BgColor  = color.RGBA{0x2a, 0x44, 0xaf, 0xff}
	ObjColor = color.White
)

// SpawnPoints returns the starting centers of both paddles on a w×h field.
func SpawnPoints(w, h float64) [2]Vec {
	return [2]Vec{
		{X: PaddleInset, Y: h / 2},
		{X: w - PaddleInset, Y: h / 2},
	}
}
