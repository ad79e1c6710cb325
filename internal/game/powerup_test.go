package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRevertEffect(t *testing.T) {
	tests := []struct {
		name    string
		typ     PowerUpType
		applied func(t *testing.T, p *Player)
	}{
		{"speed boost", PowerUpSpeedBoost, func(t *testing.T, p *Player) {
			assert.InDelta(t, PlayerSpeed*SpeedBoostFactor, p.Speed, 0.0001)
		}},
		{"rapid fire", PowerUpRapidFire, func(t *testing.T, p *Player) {
			assert.Equal(t, RapidFireCooldown, p.FireCooldown)
		}},
		{"shield", PowerUpShield, func(t *testing.T, p *Player) {
			assert.True(t, p.Shielded)
		}},
		{"customer magnet", PowerUpCustomerMagnet, func(t *testing.T, p *Player) {
			assert.Equal(t, MagnetInteractionRange, p.InteractionRange)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(0, 0, testEpoch)
			base := *p

			ApplyEffect(tt.typ, p)
			tt.applied(t, p)

			RevertEffect(tt.typ, p)
			assert.Equal(t, base.Speed, p.Speed)
			assert.Equal(t, base.FireCooldown, p.FireCooldown)
			assert.Equal(t, base.Shielded, p.Shielded)
			assert.Equal(t, base.InteractionRange, p.InteractionRange)
		})
	}
}

func TestPowerUpSlot_ActivateRevertsPrevious(t *testing.T) {
	p := NewPlayer(0, 0, testEpoch)
	var slot PowerUpSlot

	slot.Activate(PowerUpSpeedBoost, p)
	slot.Timer = 10
	slot.Activate(PowerUpRapidFire, p)

	assert.Equal(t, PowerUpRapidFire, slot.Active)
	assert.Equal(t, PowerUpDuration, slot.Timer)
	assert.Equal(t, PlayerSpeed, p.Speed, "speed boost must be reverted")
	assert.Equal(t, RapidFireCooldown, p.FireCooldown)
}

func TestPowerUpSlot_RevertRunsBeforeApply(t *testing.T) {
	p := NewPlayer(0, 0, testEpoch)
	var slot PowerUpSlot

	slot.Activate(PowerUpShield, p)
	slot.Activate(PowerUpShield, p)

	// revert-then-apply leaves the shield up; apply-then-revert would drop it
	assert.True(t, p.Shielded)
}

func TestPowerUpSlot_ExpiresOnce(t *testing.T) {
	p := NewPlayer(0, 0, testEpoch)
	var slot PowerUpSlot
	slot.Activate(PowerUpSpeedBoost, p)

	expiries := 0
	for i := 0; i < PowerUpDuration+50; i++ {
		if slot.Tick(p) != PowerUpNone {
			expiries++
			assert.Equal(t, PowerUpDuration-1, i, "expires on the last tick of the duration")
		}
	}

	assert.Equal(t, 1, expiries)
	assert.False(t, slot.IsActive())
	assert.Equal(t, PlayerSpeed, p.Speed)
}

func TestPowerUpSlot_RemainingSeconds(t *testing.T) {
	slot := PowerUpSlot{Active: PowerUpShield, Timer: 400}
	assert.Equal(t, 7, slot.RemainingSeconds())

	slot.Timer = 60
	assert.Equal(t, 1, slot.RemainingSeconds())

	slot.Timer = 61
	assert.Equal(t, 2, slot.RemainingSeconds())

	assert.Equal(t, 0, (&PowerUpSlot{}).RemainingSeconds())
}

func TestPowerUpType_JSON(t *testing.T) {
	data, err := json.Marshal(PowerUpCustomerMagnet)
	require.NoError(t, err)
	assert.Equal(t, `"Customer Magnet"`, string(data))

	var typ PowerUpType
	require.NoError(t, json.Unmarshal([]byte(`"Rapid Fire"`), &typ))
	assert.Equal(t, PowerUpRapidFire, typ)
}

func TestPowerUpPickupActivatesEffect(t *testing.T) {
	s, _ := newTestState(t)
	p := s.Player
	s.PowerUps = []*PowerUp{{X: p.X + 10, Y: p.Y, Type: PowerUpShield}}

	s.updatePowerUps()

	assert.Empty(t, s.PowerUps)
	assert.Equal(t, PowerUpShield, s.PowerUp.Active)
	assert.True(t, p.Shielded)
}

func TestManualPowerUp(t *testing.T) {
	t.Run("spends docs for customer magnet", func(t *testing.T) {
		s, _ := newTestState(t)
		s.Score.Docs = 6

		require.NoError(t, s.updatePlayer(Input{Special: true}))

		assert.Equal(t, 1, s.Score.Docs)
		assert.Equal(t, PowerUpCustomerMagnet, s.PowerUp.Active)
		assert.Equal(t, MagnetInteractionRange, s.Player.InteractionRange)
	})

	t.Run("requires five docs", func(t *testing.T) {
		s, _ := newTestState(t)
		s.Score.Docs = 4

		require.NoError(t, s.updatePlayer(Input{Special: true}))

		assert.Equal(t, 4, s.Score.Docs)
		assert.False(t, s.PowerUp.IsActive())
	})

	t.Run("requires an empty slot", func(t *testing.T) {
		s, _ := newTestState(t)
		s.Score.Docs = 10
		s.PowerUp.Activate(PowerUpSpeedBoost, s.Player)

		require.NoError(t, s.updatePlayer(Input{Special: true}))

		assert.Equal(t, 10, s.Score.Docs)
		assert.Equal(t, PowerUpSpeedBoost, s.PowerUp.Active)
	})
}
