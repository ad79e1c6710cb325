package game

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerMove(t *testing.T) {
	tests := []struct {
		name           string
		in             Input
		dx, dy         float64
		expectedMoving bool
	}{
		{"right", Input{Right: true}, PlayerSpeed, 0, true},
		{"left", Input{Left: true}, -PlayerSpeed, 0, true},
		{"up", Input{Up: true}, 0, -PlayerSpeed, true},
		{"down", Input{Down: true}, 0, PlayerSpeed, true},
		{"diagonal normalized", Input{Right: true, Down: true}, PlayerSpeed / math.Sqrt2, PlayerSpeed / math.Sqrt2, true},
		{"opposing cancel", Input{Left: true, Right: true}, 0, 0, false},
		{"idle", Input{}, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFieldWithObstacles(ArenaWidth, ArenaHeight, nil)
			p := NewPlayer(400, 300, testEpoch)

			moved := p.Move(f, tt.in, testEpoch)

			assert.Equal(t, tt.expectedMoving, moved)
			assert.InDelta(t, 400+tt.dx, p.X, 0.0001)
			assert.InDelta(t, 300+tt.dy, p.Y, 0.0001)
		})
	}
}

func TestPlayerMove_DiagonalKeepsSpeed(t *testing.T) {
	f := NewFieldWithObstacles(ArenaWidth, ArenaHeight, nil)
	p := NewPlayer(400, 300, testEpoch)

	p.Move(f, Input{Left: true, Up: true}, testEpoch)

	assert.InDelta(t, PlayerSpeed, Distance(400, 300, p.X, p.Y), 0.0001)
}

func TestPlayerMove_SlidesAlongObstacle(t *testing.T) {
	// Blocks the lower 5 units of the path to the right.
	f := NewFieldWithObstacles(ArenaWidth, ArenaHeight, []Obstacle{{X: 452, Y: 345, W: 48, H: 55}})
	p := NewPlayer(400, 300, testEpoch)

	moved := p.Move(f, Input{Right: true}, testEpoch)

	assert.True(t, moved)
	assert.InDelta(t, 406, p.X, 0.0001)
	assert.InDelta(t, 300-SlideAmount, p.Y, 0.0001)
}

func TestPlayerMove_VerticalSlide(t *testing.T) {
	// Blocks the left 5 units of the path downward.
	f := NewFieldWithObstacles(ArenaWidth, ArenaHeight, []Obstacle{{X: 350, Y: 352, W: 55, H: 40}})
	p := NewPlayer(400, 300, testEpoch)

	moved := p.Move(f, Input{Down: true}, testEpoch)

	assert.True(t, moved)
	assert.InDelta(t, 400+SlideAmount, p.X, 0.0001)
	assert.InDelta(t, 306, p.Y, 0.0001)
}

func TestPlayerMove_UnstickByProbe(t *testing.T) {
	f := NewFieldWithObstacles(ArenaWidth, ArenaHeight, nil)
	p := NewPlayer(0, 0, testEpoch)
	now := testEpoch

	now = now.Add(time.Second)
	assert.False(t, p.Move(f, Input{Left: true}, now), "blocked by the arena edge")
	assert.Equal(t, 0.0, p.X)

	now = now.Add(1500 * time.Millisecond)
	assert.True(t, p.Move(f, Input{Left: true}, now))
	assert.InDelta(t, PlayerSize, p.X, 0.0001, "first free probe is at angle 0")
	assert.InDelta(t, 0, p.Y, 0.0001)
	assert.Equal(t, now, p.LastMoveTime)
}

func TestPlayerMove_UnstickClearsArea(t *testing.T) {
	// The player is embedded in an obstacle that also blocks every probe.
	f := NewFieldWithObstacles(ArenaWidth, ArenaHeight, []Obstacle{{X: 190, Y: 190, W: 70, H: 70}})
	p := NewPlayer(200, 200, testEpoch)

	assert.False(t, p.Move(f, Input{Right: true}, testEpoch.Add(3*time.Second)))

	assert.Empty(t, f.Obstacles())
	assert.Equal(t, 200.0, p.X)
	assert.Equal(t, 200.0, p.Y)
}

func TestPlayerMove_NoUnstickWithoutInput(t *testing.T) {
	f := NewFieldWithObstacles(ArenaWidth, ArenaHeight, []Obstacle{{X: 190, Y: 190, W: 70, H: 70}})
	p := NewPlayer(200, 200, testEpoch)

	p.Move(f, Input{}, testEpoch.Add(time.Minute))

	assert.Len(t, f.Obstacles(), 1)
}

func TestShooting(t *testing.T) {
	tests := []struct {
		name     string
		powerUp  PowerUpType
		expected int
	}{
		{"normal cooldown", PowerUpNone, 2},
		{"rapid fire", PowerUpRapidFire, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestState(t)
			if tt.powerUp != PowerUpNone {
				s.PowerUp.Activate(tt.powerUp, s.Player)
			}

			for i := 0; i < 11; i++ {
				require.NoError(t, s.updatePlayer(Input{Fire: true, AimX: s.Player.X + 100, AimY: s.Player.Y}))
			}

			assert.Len(t, s.Bullets, tt.expected)
		})
	}
}

func TestShoot_LeavesMuzzle(t *testing.T) {
	p := NewPlayer(100, 100, testEpoch)
	p.AimAt(100, 200)

	b := p.Shoot()

	assert.InDelta(t, math.Pi/2, b.Angle, 0.0001)
	assert.InDelta(t, 100, b.X, 0.0001)
	assert.InDelta(t, 100+MuzzleOffset, b.Y, 0.0001)
	assert.Equal(t, BulletSpeed, b.Speed)
}

func TestTakeDamage(t *testing.T) {
	t.Run("normal hit", func(t *testing.T) {
		s, _ := newTestState(t)
		s.Score.Total = 50

		s.TakeDamage(BugContactDamage)

		assert.Equal(t, 95, s.Player.Health)
		assert.Equal(t, 40, s.Score.Total)
		assert.Equal(t, ModePlaying, s.Mode)
	})

	t.Run("score floors at zero", func(t *testing.T) {
		s, _ := newTestState(t)
		s.Score.Total = 5

		s.TakeDamage(BugContactDamage)

		assert.Equal(t, 0, s.Score.Total)
	})

	t.Run("player immunity ignores hit", func(t *testing.T) {
		s, _ := newTestState(t)
		s.Player.Immune = true
		s.Score.Total = 50

		s.TakeDamage(BugContactDamage)

		assert.Equal(t, MaxHealth, s.Player.Health)
		assert.Equal(t, 50, s.Score.Total)
	})

	t.Run("global immunity ignores hit", func(t *testing.T) {
		s, _ := newTestState(t)
		s.GlobalImmune = true

		s.TakeDamage(50)

		assert.Equal(t, MaxHealth, s.Player.Health)
	})

	t.Run("shield absorbs exactly one hit", func(t *testing.T) {
		s, _ := newTestState(t)
		s.Player.Shielded = true

		s.TakeDamage(BugContactDamage)
		assert.Equal(t, MaxHealth, s.Player.Health)
		assert.False(t, s.Player.Shielded)

		s.TakeDamage(BugContactDamage)
		assert.Equal(t, 95, s.Player.Health)
	})

	t.Run("lethal hit ends the run", func(t *testing.T) {
		s, _ := newTestState(t)
		s.Player.Health = 3

		s.TakeDamage(BugContactDamage)

		assert.Equal(t, 0, s.Player.Health)
		assert.Equal(t, ModeGameOver, s.Mode)

		var kinds []EventKind
		for _, e := range s.DrainEvents() {
			kinds = append(kinds, e.Kind)
		}
		assert.Contains(t, kinds, EventGameOver)
	})
}

func TestPlayerHeal_Capped(t *testing.T) {
	p := NewPlayer(0, 0, testEpoch)
	p.Health = 98
	p.Heal(CustomerHeal)
	assert.Equal(t, MaxHealth, p.Health)
}

func TestPlayerImmunityExpires(t *testing.T) {
	p := NewPlayer(0, 0, testEpoch)
	for i := 0; i < ImmunityDuration-1; i++ {
		p.tickImmunity()
	}
	assert.True(t, p.Immune)
	p.tickImmunity()
	assert.False(t, p.Immune)
}
