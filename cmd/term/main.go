package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"pong/internal/config"
	"pong/internal/game"
	"pong/internal/term"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

func run(cfg config.Config, fps int, log *logrus.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := term.NewRunner(screen, fps, log, game.WithRand(cfg.Rand()))
	if err := r.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		logrus.Fatal(err)
	}
	logPath := flag.String("log", "pong.log", "log file; the terminal is owned by the game")
	fps := flag.Int("fps", term.DefaultFPS, "frames per second")
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logrus.Fatalf("Failed to open log file: %v", err)
	}
	defer f.Close()

	log := cfg.Logger(f)
	log.WithField("seed", cfg.Seed).Info("Starting pong")

	if err := run(cfg, *fps, log); err != nil {
		log.Fatal(err)
	}
}
