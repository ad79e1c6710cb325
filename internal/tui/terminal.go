package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ugaemi/chatbase-hero/internal/game"
)

// Terminals report presses but not releases. A key counts as held for
// HoldWindow after its last press or auto-repeat.
const HoldWindow = 300 * time.Millisecond

// keyboardAimReach is how far ahead of the player keyboard fire aims.
const keyboardAimReach = 100.0

// ErrQuit is returned by Run when the player asks to leave.
var ErrQuit = errors.New("quit requested")

type action int

const (
	actLeft action = iota
	actRight
	actUp
	actDown
	actFire
	actSpecial
	numActions
)

// Terminal is a tcell frontend. It is both the session's input source and a
// renderer.
type Terminal struct {
	screen tcell.Screen
	now    func() time.Time

	mu      sync.Mutex
	mode    game.Mode
	view    viewport
	pressed [numActions]time.Time

	mouseAim   bool
	mouseDown  bool
	aimX, aimY float64

	// Facing from the last movement key, used when the mouse never aimed.
	dirX, dirY       float64
	playerX, playerY float64

	save, discard bool
	text          []game.TextEvent

	// Event forwarders started by Run
	pumps sync.WaitGroup
}

// New opens the terminal screen with mouse reporting.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	return NewWithScreen(screen), nil
}

// NewWithScreen wraps an initialized screen.
func NewWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		now:    time.Now,
		dirX:   1,
	}
}

// Close restores the terminal and waits for event forwarding to stop.
func (t *Terminal) Close() {
	t.screen.Fini()
	t.pumps.Wait()
}

// Run reads terminal events until ctx is done or the player quits, in which
// case it returns ErrQuit.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	t.pumps.Add(1)
	go func() {
		defer t.pumps.Done()
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case <-done:
				return
			default:
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if t.handleEvent(ev) {
				slog.Info("quit from terminal")
				return ErrQuit
			}
		}
	}
}

// Poll returns the controls for the next tick and clears one-shot presses.
func (t *Terminal) Poll() game.Input {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	held := func(a action) bool {
		p := t.pressed[a]
		return !p.IsZero() && now.Sub(p) < HoldWindow
	}

	in := game.Input{
		Left:    held(actLeft),
		Right:   held(actRight),
		Up:      held(actUp),
		Down:    held(actDown),
		Fire:    held(actFire) || t.mouseDown,
		Special: held(actSpecial),
		Save:    t.save,
		Discard: t.discard,
		Text:    t.text,
	}
	if t.mouseAim {
		in.AimX, in.AimY = t.aimX, t.aimY
	} else {
		in.AimX = t.playerX + t.dirX*keyboardAimReach
		in.AimY = t.playerY + t.dirY*keyboardAimReach
	}

	t.save, t.discard, t.text = false, false, nil
	return in
}

// handleEvent applies one terminal event and reports whether to quit.
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return true
		}

		t.mu.Lock()
		defer t.mu.Unlock()
		switch t.mode {
		case game.ModeEnterName:
			t.keyName(ev)
		case game.ModeGameOver:
			if ev.Key() == tcell.KeyEscape {
				return true
			}
			t.keyGameOver(ev)
		default:
			if ev.Key() == tcell.KeyEscape {
				return true
			}
			t.keyPlay(ev)
		}

	case *tcell.EventMouse:
		x, y := ev.Position()

		t.mu.Lock()
		defer t.mu.Unlock()
		t.aimX, t.aimY = t.view.toArena(x, y)
		t.mouseAim = true
		t.mouseDown = ev.Buttons()&tcell.Button1 != 0

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

func (t *Terminal) keyPlay(ev *tcell.EventKey) {
	now := t.now()
	press := func(a action) {
		t.pressed[a] = now
		switch a {
		case actLeft:
			t.dirX, t.dirY = -1, 0
		case actRight:
			t.dirX, t.dirY = 1, 0
		case actUp:
			t.dirX, t.dirY = 0, -1
		case actDown:
			t.dirX, t.dirY = 0, 1
		}
	}

	switch ev.Key() {
	case tcell.KeyLeft:
		press(actLeft)
	case tcell.KeyRight:
		press(actRight)
	case tcell.KeyUp:
		press(actUp)
	case tcell.KeyDown:
		press(actDown)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			press(actLeft)
		case 'd', 'D':
			press(actRight)
		case 'w', 'W':
			press(actUp)
		case 's', 'S':
			press(actDown)
		case 'f', 'F', 'j', 'J':
			press(actFire)
		case ' ':
			press(actSpecial)
		}
	}
}

func (t *Terminal) keyGameOver(ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyEnter:
		t.save = true
	case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
		t.discard = true
	}
}

func (t *Terminal) keyName(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		t.text = append(t.text, game.TextEvent{Kind: game.TextConfirm})
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		t.text = append(t.text, game.TextEvent{Kind: game.TextBackspace})
	case tcell.KeyRune:
		t.text = append(t.text, game.TextEvent{Kind: game.TextChar, Char: ev.Rune()})
	}
}

// Render draws frame and remembers the mode and layout for input handling.
func (t *Terminal) Render(frame *game.Frame) {
	cols, rows := t.screen.Size()
	view := newViewport(cols, rows, frame.Width, frame.Height)

	t.mu.Lock()
	t.mode = frame.Mode
	t.view = view
	for _, s := range frame.Sprites {
		if s.Kind == game.SpritePlayer {
			t.playerX, t.playerY = s.X, s.Y
		}
	}
	if frame.Mode != game.ModePlaying {
		t.pressed = [numActions]time.Time{}
		t.mouseDown = false
	}
	t.mu.Unlock()

	draw(t.screen, view, frame)
	t.screen.Show()
}
