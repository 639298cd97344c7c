package game

import (
	"image"
	"image/color"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Canvas is the surface a Pong draws onto.
type Canvas interface {
	Size() (w, h int)
	FillRect(x, y, w, h float64, c color.Color)
	DrawImage(img image.Image, x, y float64)
}

// Rand is the random source used for launches and paddle spin.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

type Option func(*Pong)

func WithRand(r Rand) Option {
	return func(p *Pong) { p.rnd = r }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Pong) { p.log = l }
}

// Pong is a two player match on a fixed field. It is not safe for
// concurrent use: hosts must deliver input and frames from one goroutine.
type Pong struct {
	canvas  Canvas
	w, h    float64
	ball    *Ball
	players [2]*Paddle
	glyphs  Glyphs
	rnd     Rand
	log     logrus.FieldLogger

	lastMillis float64
	ticking    bool
}

// New builds a match sized to c. Player 0 is the left paddle and follows the
// pointer; player 1 is the right paddle and follows the ball.
func New(c Canvas, opts ...Option) *Pong {
	w, h := c.Size()
	p := &Pong{
		canvas:  c,
		w:       float64(w),
		h:       float64(h),
		ball:    NewBall(),
		players: [2]*Paddle{NewPaddle(), NewPaddle()},
		glyphs:  NewGlyphs(ObjColor),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rnd == nil {
		p.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if p.log == nil {
		l := logrus.New()
		l.Out = io.Discard
		p.log = l
	}

	spawns := SpawnPoints(p.w, p.h)
	for i, player := range p.players {
		player.Pos = spawns[i]
	}
	p.Reset()
	return p
}

func (p *Pong) Ball() *Ball { return p.ball }

func (p *Pong) Player(i int) *Paddle { return p.players[i] }

func (p *Pong) Size() (w, h float64) { return p.w, p.h }

// Reset puts the ball back in the middle of the field, idle.
func (p *Pong) Reset() {
	p.ball.Pos = Vec{X: p.w / 2, Y: p.h / 2}
	p.ball.Vel = Vec{}
}

// Start launches an idle ball at LaunchSpeed in a random direction.
// It does nothing while the ball is in play.
func (p *Pong) Start() {
	if !p.ball.Idle() {
		return
	}
	dir := -1.0
	if p.rnd.Float64() > .5 {
		dir = 1
	}
	p.ball.Vel = Vec{
		X: LaunchSpeed * dir,
		Y: LaunchSpeed * (p.rnd.Float64()*2 - 1),
	}
	p.ball.Vel.SetLen(LaunchSpeed)

	p.log.WithFields(logrus.Fields{
		"vx": p.ball.Vel.X,
		"vy": p.ball.Vel.Y,
	}).Debug("Ball launched")
}

// Collide bounces the ball off player if their boxes overlap, adding some
// random spin and speeding the ball up.
func (p *Pong) Collide(player *Paddle) bool {
	if !player.Overlaps(p.ball.Rect) {
		return false
	}
	vel := &p.ball.Vel
	vel.X = -vel.X
	vel.Y += Spin * (p.rnd.Float64() - .5)
	vel.SetLen(vel.Len() * Speedup)
	return true
}

// Update advances the match by dt seconds and redraws it.
func (p *Pong) Update(dt float64) {
	b := p.ball
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	if b.Left() < 0 || b.Right() > p.w {
		id := 0
		if b.Vel.X < 0 {
			id = 1
		}
		p.players[id].Score++
		p.log.WithFields(logrus.Fields{
			"player": id,
			"score":  p.players[id].Score,
		}).Info("Point scored")
		p.Reset()
	}
	// Overlap with the wall is left as is; the flipped velocity carries the
	// ball back inside.
	if b.Top() < 0 || b.Bottom() > p.h {
		b.Vel.Y = -b.Vel.Y
	}

	p.players[1].Pos.Y = b.Pos.Y

	// Each paddle is tested on its own, so a ball inside both boxes would
	// bounce twice. The paddles are too far apart for that to happen.
	for _, player := range p.players {
		p.Collide(player)
	}

	p.Draw()
}

// Frame is the frame scheduler callback. millis must increase between calls.
// The first call only records the timestamp.
func (p *Pong) Frame(millis float64) {
	if p.ticking {
		p.Update((millis - p.lastMillis) / 1000)
	}
	p.lastMillis = millis
	p.ticking = true
}

// MovePointer places player 0 at the pointer's relative height. offsetY is
// measured in the displayed surface, which may be scaled from the field.
// The paddle is not kept inside the field.
func (p *Pong) MovePointer(offsetY, displayedHeight float64) {
	if displayedHeight <= 0 {
		return
	}
	p.players[0].Pos.Y = p.h * (offsetY / displayedHeight)
}

// Click is the activation input.
func (p *Pong) Click() {
	p.Start()
}

func (p *Pong) Draw() {
	p.canvas.FillRect(0, 0, p.w, p.h, BgColor)

	p.drawRect(p.ball.Rect)
	for _, player := range p.players {
		p.drawRect(player.Rect)
	}

	p.drawScore()
}

func (p *Pong) drawRect(r Rect) {
	p.canvas.FillRect(r.Left(), r.Top(), r.Size.X, r.Size.Y, ObjColor)
}

func (p *Pong) drawScore() {
	align := p.w / 3
	const cw = CharPixel * 4
	for i, player := range p.players {
		digits := strconv.Itoa(player.Score)
		offset := align*float64(i+1) - cw*float64(len(digits))/2 + CharPixel/2
		for k, d := range digits {
			p.canvas.DrawImage(p.glyphs[d-'0'], offset+float64(k)*cw, ScoreTop)
		}
	}
}
