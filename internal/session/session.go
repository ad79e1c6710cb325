package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/ugaemi/chatbase-hero/internal/game"
	"github.com/ugaemi/chatbase-hero/internal/leaderboard"
	"github.com/ugaemi/chatbase-hero/internal/metrics"
)

// InputSource yields the controls for the next tick.
type InputSource interface {
	Poll() game.Input
}

// Renderer draws a frame after every tick.
type Renderer interface {
	Render(frame *game.Frame)
}

// Listener receives the notification events raised by a tick.
type Listener interface {
	Notify(events []game.Event)
}

const saveTimeout = 2 * time.Second

// Session drives one game state through its modes and owns the leaderboard
// commit on game over.
type Session struct {
	state *game.State
	board *leaderboard.Board
	store leaderboard.Store

	// Name buffer while in ModeEnterName
	name []rune

	recovery  *rate.Limiter
	now       func() time.Time
	renderers []Renderer
	listeners []Listener

	frame atomic.Pointer[game.Frame]

	// Boards waiting for SaveLoop
	saves chan []leaderboard.Entry

	mu sync.Mutex
}

// Option configures a Session.
type Option func(*Session)

// WithRenderer adds a renderer called after every tick.
func WithRenderer(r Renderer) Option {
	return func(s *Session) { s.renderers = append(s.renderers, r) }
}

// WithListener adds a listener for tick events.
func WithListener(l Listener) Option {
	return func(s *Session) { s.listeners = append(s.listeners, l) }
}

// WithClock sets the clock used by the recovery limiter and entry dates.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New creates a session around state. store may be nil, in which case
// committed entries only live on the in-memory board. Otherwise SaveLoop
// must run for entries to reach the store.
func New(state *game.State, board *leaderboard.Board, store leaderboard.Store, opts ...Option) *Session {
	s := &Session{
		state:    state,
		board:    board,
		store:    store,
		now:      time.Now,
		recovery: rate.NewLimiter(rate.Every(time.Second), 1),
		saves:    make(chan []leaderboard.Entry, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.frame.Store(s.snapshot(nil))
	return s
}

// Tick advances the session by one tick using in and returns the new frame.
func (s *Session) Tick(in game.Input) *game.Frame {
	s.mu.Lock()
	start := time.Now()

	switch s.state.Mode {
	case game.ModePlaying:
		s.play(in)
	case game.ModeGameOver:
		s.gameOver(in)
	case game.ModeEnterName:
		s.enterName(in)
	}

	events := s.state.DrainEvents()
	frame := s.snapshot(events)
	s.frame.Store(frame)
	s.record(events, time.Since(start))
	s.mu.Unlock()

	for _, r := range s.renderers {
		r.Render(frame)
	}
	if len(events) > 0 {
		for _, l := range s.listeners {
			l.Notify(events)
		}
	}
	return frame
}

// Run ticks at game.TickRate with controls from src until ctx is done.
func (s *Session) Run(ctx context.Context, src InputSource) error {
	ticker := time.NewTicker(game.TickInterval)
	defer ticker.Stop()

	slog.Info("session started", "tick_rate", game.TickRate)
	for {
		select {
		case <-ctx.Done():
			slog.Info("session stopped", "ticks", s.Frame().Tick)
			return nil
		case <-ticker.C:
			s.Tick(src.Poll())
		}
	}
}

// Frame returns the most recent frame. It is safe to call from any goroutine.
func (s *Session) Frame() *game.Frame {
	return s.frame.Load()
}

// Leaderboard returns the current board entries, highest score first.
func (s *Session) Leaderboard() []leaderboard.Entry {
	return s.board.Entries()
}

// Mode returns the current mode.
func (s *Session) Mode() game.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Mode
}

// play runs one simulation step behind the recovery guard.
func (s *Session) play(in game.Input) {
	if err := s.step(in); err != nil {
		s.guard(err)
	}
}

// step converts a panic inside the simulation into an error.
func (s *Session) step(in game.Input) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tick panicked: %v", r)
		}
	}()
	return s.state.Step(in)
}

// guard clears the arena center and recenters the player, at most once per second.
func (s *Session) guard(err error) {
	if !s.recovery.AllowN(s.now(), 1) {
		slog.Debug("recovery suppressed", "error", err)
		return
	}

	reason := "unknown"
	switch {
	case errors.Is(err, game.ErrPlayerCorrupt):
		reason = "corrupt"
	case errors.Is(err, game.ErrPlayerOutOfBounds):
		reason = "out_of_bounds"
	}

	slog.Warn("recovering from tick failure", "reason", reason, "error", err)
	s.state.Recover()
	metrics.RecordRecovery(reason)
}

func (s *Session) gameOver(in game.Input) {
	switch {
	case in.Save:
		s.name = s.name[:0]
		s.state.Mode = game.ModeEnterName
	case in.Discard:
		s.state.Reset()
		slog.Info("run discarded")
	}
}

func (s *Session) enterName(in game.Input) {
	for _, ev := range in.Text {
		switch ev.Kind {
		case game.TextChar:
			if ev.Char >= 32 && ev.Char <= 126 && len(s.name) < leaderboard.MaxNameLength {
				s.name = append(s.name, ev.Char)
			}
		case game.TextBackspace:
			if len(s.name) > 0 {
				s.name = s.name[:len(s.name)-1]
			}
		case game.TextConfirm:
			if s.commit() {
				return
			}
		}
	}
}

// commit adds the finished run to the board and starts a new one. An empty
// name is ignored and keeps the session in name entry.
func (s *Session) commit() bool {
	entry, err := leaderboard.NewEntry(string(s.name), s.state.Score.Total, s.state.Level, s.now())
	if errors.Is(err, leaderboard.ErrEmptyName) {
		slog.Debug("empty name ignored")
		return false
	}

	rank := s.board.Add(entry)
	slog.Info("score saved", "name", entry.Name, "score", entry.Score, "level", entry.Level, "rank", rank)
	s.persist()

	s.name = s.name[:0]
	s.state.Reset()
	return true
}

// persist queues the board for SaveLoop. A board still waiting is replaced,
// the newer one already contains its entries.
func (s *Session) persist() {
	if s.store == nil {
		return
	}
	entries := s.board.Entries()
	for {
		select {
		case s.saves <- entries:
			return
		default:
		}
		select {
		case <-s.saves:
			slog.Debug("superseded pending leaderboard save")
		default:
		}
	}
}

// SaveLoop writes queued boards to the store until ctx is done, then flushes
// a board that is still pending. Saves never run on the tick goroutine.
func (s *Session) SaveLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			select {
			case entries := <-s.saves:
				s.save(entries)
			default:
			}
			return nil
		case entries := <-s.saves:
			s.save(entries)
		}
	}
}

func (s *Session) save(entries []leaderboard.Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	start := time.Now()
	if err := s.store.Save(ctx, entries); err != nil {
		slog.Error("failed to save leaderboard", "error", err)
		return
	}
	slog.Debug("leaderboard saved", "entries", len(entries), "elapsed", time.Since(start))
}

// snapshot builds the frame for the current mode. Caller must hold s.mu
// except during construction.
func (s *Session) snapshot(events []game.Event) *game.Frame {
	frame := s.state.Snapshot()
	frame.Name = string(s.name)
	frame.Events = events
	return frame
}

func (s *Session) record(events []game.Event, elapsed time.Duration) {
	metrics.RecordTick(elapsed)
	for _, e := range events {
		switch e.Kind {
		case game.EventLevelUp:
			metrics.IncrementLevelUps()
		case game.EventGameOver:
			metrics.IncrementGameOvers()
		}
	}

	st := s.state
	metrics.UpdatePopulation("customer", len(st.Customers))
	metrics.UpdatePopulation("doc", len(st.Docs))
	metrics.UpdatePopulation("bug", len(st.Bugs))
	metrics.UpdatePopulation("bullet", len(st.Bullets))
	metrics.UpdatePopulation("power_up", len(st.PowerUps))
	metrics.UpdateRun(st.Level, st.Score.Total)
}
