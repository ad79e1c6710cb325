package desktop

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ugaemi/chatbase-hero/internal/game"
	"github.com/ugaemi/chatbase-hero/internal/session"
)

const title = "Chatbase Hero"

// Ticker advances the simulation. *session.Session satisfies it.
type Ticker interface {
	Tick(in game.Input) *game.Frame
	Frame() *game.Frame
}

// Window is an ebiten frontend. ebiten's update loop runs at game.TickRate
// and drives the session, so Window is the session's clock as well as its
// input source and renderer.
type Window struct {
	ticker  Ticker
	devices devices
	input   session.InputSource

	frame atomic.Pointer[game.Frame]
	ctx   context.Context
}

// New creates a window around t. Extra sources are merged with the
// keyboard and mouse, so remote players can steer the same run.
func New(t Ticker, extra ...session.InputSource) *Window {
	w := &Window{
		ticker:  t,
		devices: ebitenDevices{},
		ctx:     context.Background(),
	}
	w.input = session.Combine(append([]session.InputSource{w}, extra...)...)
	w.frame.Store(t.Frame())
	return w
}

// Run opens the window and blocks until it closes or ctx is done.
func (w *Window) Run(ctx context.Context) error {
	w.ctx = ctx

	frame := w.frame.Load()
	ebiten.SetWindowSize(int(frame.Width), int(frame.Height))
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(game.TickRate)

	slog.Info("desktop window opened", "width", frame.Width, "height", frame.Height)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// Poll reads the local keyboard and mouse. It must be called from Update.
func (w *Window) Poll() game.Input {
	return readInput(w.devices, w.frame.Load().Mode)
}

// Render keeps frame for the next Draw.
func (w *Window) Render(frame *game.Frame) {
	w.frame.Store(frame)
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}
	if w.frame.Load().Mode != game.ModeEnterName && w.devices.IsKeyJustPressed(ebiten.KeyEscape) {
		slog.Info("quit from window")
		return ebiten.Termination
	}

	w.Render(w.ticker.Tick(w.input.Poll()))
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	draw(screen, w.frame.Load())
}

// Layout implements ebiten.Game. The arena is drawn at its native size and
// scaled by ebiten to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	frame := w.frame.Load()
	return int(frame.Width), int(frame.Height)
}
