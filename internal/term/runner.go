package term

import (
	"context"
	"time"

	"pong/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

const (
	FieldWidth  = 800
	FieldHeight = 600
	DefaultFPS  = 60
)

// Runner hosts a Pong on a terminal. Frames and input are both handled on
// the goroutine that calls Run.
type Runner struct {
	screen  tcell.Screen
	pong    *game.Pong
	log     logrus.FieldLogger
	fps     int
	buttons tcell.ButtonMask
}

// NewRunner builds a match on screen, which must already be initialised.
func NewRunner(screen tcell.Screen, fps int, log logrus.FieldLogger, opts ...game.Option) *Runner {
	if fps <= 0 {
		fps = DefaultFPS
	}
	opts = append([]game.Option{game.WithLogger(log)}, opts...)
	return &Runner{
		screen: screen,
		pong:   game.New(NewCanvas(screen, FieldWidth, FieldHeight), opts...),
		log:    log,
		fps:    fps,
	}
}

func (r *Runner) Pong() *game.Pong { return r.pong }

// Run drives frames until the player quits, the screen is finalised or ctx
// is done. Quitting returns nil.
func (r *Runner) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(r.fps))
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				r.log.Debug("Screen closed")
				return nil
			}
			if r.HandleEvent(ev) {
				r.log.Info("Quit")
				return nil
			}

		case now := <-ticker.C:
			r.pong.Frame(float64(now.Sub(start).Microseconds()) / 1000)
			r.screen.Show()
		}
	}
}

// HandleEvent applies one terminal event and reports whether the player
// asked to quit.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyEnter:
			r.pong.Click()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				r.pong.Click()
			}
		}

	case *tcell.EventMouse:
		_, y := ev.Position()
		_, rows := r.screen.Size()
		// Aim at the middle of the row under the pointer.
		r.pong.MovePointer(float64(y)+.5, float64(rows))

		buttons := ev.Buttons()
		if buttons&tcell.Button1 != 0 && r.buttons&tcell.Button1 == 0 {
			r.pong.Click()
		}
		r.buttons = buttons

	case *tcell.EventResize:
		r.screen.Sync()
	}
	return false
}
