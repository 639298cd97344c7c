package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"pong/internal/client"
	"pong/internal/config"
	"pong/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

type Game struct {
	pong       *game.Pong
	fb         *client.Framebuffer
	start      time.Time
	lastMouseY int
	debug      bool
}

func NewGame(cfg config.Config, log *logrus.Logger) *Game {
	fb := client.NewFramebuffer(client.ScreenWidth, client.ScreenHeight)
	return &Game{
		pong:  game.New(fb, game.WithRand(cfg.Rand()), game.WithLogger(log)),
		fb:    fb,
		start: time.Now(),
		debug: cfg.Debug,
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.handleInput()

	millis := float64(time.Since(g.start).Microseconds()) / 1000
	g.pong.Frame(millis)
	return nil
}

func (g *Game) handleInput() {
	// Layout matches the field, so the cursor is already in field units.
	_, my := ebiten.CursorPosition()
	if my != g.lastMouseY {
		g.pong.MovePointer(float64(my), client.ScreenHeight)
		g.lastMouseY = my
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pong.Click()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.fb.DrawTo(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return client.ScreenWidth, client.ScreenHeight
}

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		logrus.Fatal(err)
	}
	scale := flag.Float64("scale", 1, "window size multiplier")
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	log := cfg.Logger(os.Stderr)
	log.WithField("seed", cfg.Seed).Info("Starting pong")

	ebiten.SetWindowSize(int(client.ScreenWidth * *scale), int(client.ScreenHeight * *scale))
	ebiten.SetWindowTitle("Pong")

	if err := ebiten.RunGame(NewGame(cfg, log)); err != nil {
		log.Fatal(err)
	}
}
