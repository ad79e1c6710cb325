package game

import (
	"math/rand"
	"testing"
	"time"
)

var testEpoch = time.Unix(1_700_000_000, 0)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// newTestState returns a deterministic state on the given obstacle layout,
// with empty populations, no ambient spawns and no immunity.
func newTestState(t *testing.T, obstacles ...Obstacle) (*State, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: testEpoch}
	s := NewState(
		WithRand(rand.New(rand.NewSource(42))),
		WithClock(clock.Now),
		WithAmbientSpawns(false),
		WithFieldFactory(func(*rand.Rand) *Field {
			return NewFieldWithObstacles(ArenaWidth, ArenaHeight, obstacles)
		}),
	)
	s.Customers = nil
	s.Docs = nil
	s.Bugs = nil
	s.Bullets = nil
	s.PowerUps = nil
	s.Player.Immune = false
	s.Player.ImmuneTimer = 0
	s.GlobalImmune = false
	s.ImmunityTimer = 0
	return s, clock
}
