package game

const (
	PaddleWidth  = 10.0
	PaddleHeight = 100.0
	BallSize     = 10.0
)

type Paddle struct {
	Rect
	Score int
}

func NewPaddle() *Paddle {
	return &Paddle{Rect: NewRect(PaddleWidth, PaddleHeight)}
}

type Ball struct {
	Rect
	Vel Vec
}

func NewBall() *Ball {
	return &Ball{Rect: NewRect(BallSize, BallSize)}
}

// Idle reports whether the ball is waiting to be launched.
func (b *Ball) Idle() bool {
	return b.Vel.IsZero()
}
