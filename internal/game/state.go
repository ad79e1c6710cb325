package game

import (
	"encoding/json"
	"math/rand"
	"time"
)

// Mode is the top-level state of a run.
type Mode int

const (
	ModePlaying Mode = iota
	ModeGameOver
	ModeEnterName
)

func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	case ModeEnterName:
		return "enter_name"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes Mode as a string.
func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// State owns every piece of simulation state for a run. All components
// operate on it; nothing is kept in package-level variables.
type State struct {
	Mode   Mode
	Field  *Field
	Player *Player

	Customers []*Customer
	Docs      []*Doc
	Bugs      []*Bug
	Bullets   []*Bullet
	PowerUps  []*PowerUp

	Score     Score
	Level     int
	LevelGoal float64
	BugSpeed  float64 // speed given to newly spawned bugs
	PowerUp   PowerUpSlot

	// Global immunity granted on reset, independent of the player's own.
	GlobalImmune  bool
	ImmunityTimer int

	Ticks uint64

	scheduler Scheduler
	events    []Event
	rng       *rand.Rand
	now       func() time.Time
	newField  func(rng *rand.Rand) *Field
	ambient   bool
}

// Option configures a State.
type Option func(*State)

// WithRand sets the random source used by generation and spawning.
func WithRand(rng *rand.Rand) Option {
	return func(s *State) { s.rng = rng }
}

// WithClock sets the wall clock used for stuck detection.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// WithFieldFactory replaces procedural obstacle generation.
func WithFieldFactory(fn func(rng *rand.Rand) *Field) Option {
	return func(s *State) { s.newField = fn }
}

// WithAmbientSpawns enables or disables the random per-tick spawns.
func WithAmbientSpawns(enabled bool) Option {
	return func(s *State) { s.ambient = enabled }
}

// NewState creates a state and resets it into a fresh run.
func NewState(opts ...Option) *State {
	s := &State{
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
		ambient: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.newField == nil {
		s.newField = func(rng *rand.Rand) *Field {
			return NewField(ArenaWidth, ArenaHeight, rng)
		}
	}
	s.Reset()
	return s
}

// Reset starts a new run: fresh arena, player, score, level and populations.
// Pending deferred spawns from the previous run are dropped.
func (s *State) Reset() {
	s.Mode = ModePlaying
	s.Score = Score{}
	s.Level = 1
	s.LevelGoal = InitialLevelGoal
	s.BugSpeed = BugSpeed
	s.PowerUp = PowerUpSlot{}

	s.Customers = nil
	s.Docs = nil
	s.Bugs = nil
	s.Bullets = nil
	s.PowerUps = nil
	s.scheduler.Clear()
	s.events = nil

	s.Field = s.newField(s.rng)
	cx, cy := s.Field.Width/2, s.Field.Height/2
	s.Field.ClearArea(cx, cy, StartClearRadius)
	s.Player = NewPlayer(cx, cy, s.now())

	s.GlobalImmune = true
	s.ImmunityTimer = ImmunityDuration

	for i := 0; i < InitialCustomers; i++ {
		s.spawnCustomer()
	}
	for i := 0; i < InitialDocs; i++ {
		s.spawnDoc(false)
	}
	for i := 0; i < InitialBugs; i++ {
		s.spawnBug()
	}
}

// PendingSpawns returns the number of deferred spawns waiting to fire.
func (s *State) PendingSpawns() int {
	return s.scheduler.Len()
}

// Immune reports whether damage is currently ignored.
func (s *State) Immune() bool {
	return s.Player.Immune || s.GlobalImmune
}
