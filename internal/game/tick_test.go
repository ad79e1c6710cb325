package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_LevelUpFromHelpedCustomers(t *testing.T) {
	s, _ := newTestState(t)
	p := s.Player
	for i := 0; i < 4; i++ {
		s.Docs = append(s.Docs, &Doc{X: p.X, Y: p.Y})
	}
	for i := 0; i < 3; i++ {
		c := NewCustomer(p.X+float64(i*10), p.Y, 0)
		c.Speed = 0
		s.Customers = append(s.Customers, c)
	}

	require.NoError(t, s.Step(Input{}))
	assert.Equal(t, 4*DocPoints, s.Score.Total)

	for i := 0; i < 98; i++ {
		require.NoError(t, s.Step(Input{}))
	}
	assert.Equal(t, 1, s.Level)

	require.NoError(t, s.Step(Input{}))

	assert.Equal(t, uint64(100), s.Ticks)
	assert.Equal(t, 3, s.Score.Customers)
	assert.Equal(t, 4*DocPoints+3*CustomerPoints, s.Score.Total)
	assert.Equal(t, 2, s.Level)
	assert.InDelta(t, InitialLevelGoal*LevelGoalFactor, s.LevelGoal, 0.0001)

	// The level-up tick also spawns the level 2 bugs and the reward docs.
	assert.Len(t, s.Bugs, 2)
	require.Len(t, s.Docs, LevelRewardDocs)
	for _, d := range s.Docs {
		assert.True(t, d.Special)
	}
}

func TestStep_OneLevelPerTick(t *testing.T) {
	s, _ := newTestState(t)
	s.Score.Total = 10_000

	require.NoError(t, s.Step(Input{}))
	assert.Equal(t, 2, s.Level)

	require.NoError(t, s.Step(Input{}))
	assert.Equal(t, 3, s.Level)
}

func TestLevelUp_Escalation(t *testing.T) {
	tests := []struct {
		name             string
		from             int
		expectedBugs     int
		expectedPowerUps int
		expectedSpeed    float64
	}{
		{"level 2 adds bugs", 1, 2, 0, 2.0},
		{"level 3 speeds bugs up", 2, 0, 0, 2.5},
		{"level 4 adds power-ups", 3, 0, 3, 2.0},
		{"level 5 swarm", 4, 3, 0, 2.5},
		{"level 6 expert", 5, 6, 0, 2.2},
		{"level 9 capped spawns", 8, MaxLevelBugSpawns, 0, 2.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestState(t)
			s.Level = tt.from
			goal := s.LevelGoal

			s.levelUp()

			assert.Equal(t, tt.from+1, s.Level)
			assert.InDelta(t, goal*LevelGoalFactor, s.LevelGoal, 0.0001)
			assert.Len(t, s.Bugs, tt.expectedBugs)
			assert.Len(t, s.PowerUps, tt.expectedPowerUps)
			assert.InDelta(t, tt.expectedSpeed, s.BugSpeed, 0.0001)

			require.Len(t, s.Docs, LevelRewardDocs)
			for _, d := range s.Docs {
				assert.True(t, d.Special)
			}
		})
	}
}

func TestLevelDescription(t *testing.T) {
	assert.Equal(t, "Bugs move faster now", LevelDescription(3))
	assert.Equal(t, "Expert level: 2", LevelDescription(7))
}

func TestStep_DeferredSpawnFiresLater(t *testing.T) {
	s, _ := newTestState(t)
	s.scheduler.Schedule(s.Ticks, 3, SpawnBug)

	require.NoError(t, s.Step(Input{}))
	require.NoError(t, s.Step(Input{}))
	assert.Empty(t, s.Bugs)

	require.NoError(t, s.Step(Input{}))
	assert.Len(t, s.Bugs, 1)
	assert.Zero(t, s.PendingSpawns())
}

func TestReset_DropsPendingSpawns(t *testing.T) {
	s, _ := newTestState(t)
	s.scheduler.Schedule(s.Ticks, 1, SpawnBug)
	s.BugSpeed = 4
	s.Score.Total = 300

	s.Reset()

	assert.Zero(t, s.PendingSpawns())
	assert.Equal(t, BugSpeed, s.BugSpeed)
	assert.Zero(t, s.Score.Total)
	assert.Len(t, s.Bugs, InitialBugs)
}

func TestStep_IgnoredOutsidePlaying(t *testing.T) {
	s, _ := newTestState(t)
	s.Mode = ModeGameOver

	require.NoError(t, s.Step(Input{Right: true}))

	assert.Zero(t, s.Ticks)
	assert.Equal(t, float64(ArenaWidth)/2, s.Player.X)
}

func TestStep_GlobalImmunityExpires(t *testing.T) {
	s, _ := newTestState(t)
	s.GlobalImmune = true
	s.ImmunityTimer = ImmunityDuration

	for i := 0; i < ImmunityDuration-1; i++ {
		require.NoError(t, s.Step(Input{}))
	}
	assert.True(t, s.GlobalImmune)

	require.NoError(t, s.Step(Input{}))
	assert.False(t, s.GlobalImmune)
}

func TestStep_PowerUpExpiryEvent(t *testing.T) {
	s, _ := newTestState(t)
	s.PowerUp.Activate(PowerUpSpeedBoost, s.Player)

	var expired []Event
	for i := 0; i < PowerUpDuration; i++ {
		require.NoError(t, s.Step(Input{}))
		for _, e := range s.DrainEvents() {
			if e.Kind == EventPowerUpExpired {
				expired = append(expired, e)
			}
		}
	}

	require.Len(t, expired, 1)
	assert.Equal(t, PowerUpSpeedBoost, expired[0].PowerUp)
	assert.Equal(t, PlayerSpeed, s.Player.Speed)
}

func TestStep_InvariantsHoldUnderRandomInput(t *testing.T) {
	s := NewState(WithRand(rand.New(rand.NewSource(7))))
	inputRng := rand.New(rand.NewSource(99))
	level := s.Level

	for i := 0; i < 5000 && s.Mode == ModePlaying; i++ {
		in := Input{
			Left:  inputRng.Intn(2) == 0,
			Right: inputRng.Intn(2) == 0,
			Up:    inputRng.Intn(2) == 0,
			Down:  inputRng.Intn(2) == 0,
			Fire:  inputRng.Intn(3) == 0,
			AimX:  inputRng.Float64() * ArenaWidth,
			AimY:  inputRng.Float64() * ArenaHeight,
		}
		if err := s.Step(in); err != nil {
			s.Recover()
		}

		require.GreaterOrEqual(t, s.Player.Health, 0)
		require.LessOrEqual(t, s.Player.Health, MaxHealth)
		require.GreaterOrEqual(t, s.Score.Total, 0)
		require.GreaterOrEqual(t, s.Level, level)
		level = s.Level
	}
}

func TestRecover(t *testing.T) {
	s, _ := newTestState(t, Obstacle{X: 390, Y: 290, W: 30, H: 30})
	s.Player.SetPosition(-20, 900)

	s.Recover()

	assert.Empty(t, s.Field.Obstacles())
	assert.Equal(t, float64(ArenaWidth)/2, s.Player.X)
	assert.Equal(t, float64(ArenaHeight)/2, s.Player.Y)
	assert.NoError(t, s.checkPlayer())
}
