package game

import (
	"encoding/json"
	"image/color"
)

type PowerUpType int

const (
	PowerUpNone PowerUpType = iota
	PowerUpSpeedBoost
	PowerUpRapidFire
	PowerUpShield
	PowerUpCustomerMagnet
)

// PowerUpTypes lists the types that can appear as pickups.
var PowerUpTypes = []PowerUpType{
	PowerUpSpeedBoost,
	PowerUpRapidFire,
	PowerUpShield,
	PowerUpCustomerMagnet,
}

func (t PowerUpType) String() string {
	switch t {
	case PowerUpSpeedBoost:
		return "Speed Boost"
	case PowerUpRapidFire:
		return "Rapid Fire"
	case PowerUpShield:
		return "Shield"
	case PowerUpCustomerMagnet:
		return "Customer Magnet"
	default:
		return "none"
	}
}

// Color returns the display color of the power-up type.
func (t PowerUpType) Color() color.RGBA {
	switch t {
	case PowerUpSpeedBoost:
		return color.RGBA{R: 0, G: 255, B: 0, A: 255}
	case PowerUpRapidFire:
		return color.RGBA{R: 255, G: 0, B: 0, A: 255}
	case PowerUpShield:
		return color.RGBA{R: 0, G: 0, B: 255, A: 255}
	case PowerUpCustomerMagnet:
		return color.RGBA{R: 255, G: 255, B: 0, A: 255}
	default:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
}

// MarshalJSON serializes PowerUpType as its display name.
func (t PowerUpType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON deserializes PowerUpType from its display name.
func (t *PowerUpType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "Speed Boost":
		*t = PowerUpSpeedBoost
	case "Rapid Fire":
		*t = PowerUpRapidFire
	case "Shield":
		*t = PowerUpShield
	case "Customer Magnet":
		*t = PowerUpCustomerMagnet
	default:
		*t = PowerUpNone
	}
	return nil
}

// ApplyEffect applies the effect of t to the player.
func ApplyEffect(t PowerUpType, p *Player) {
	switch t {
	case PowerUpSpeedBoost:
		p.Speed = PlayerSpeed * SpeedBoostFactor
	case PowerUpRapidFire:
		p.FireCooldown = RapidFireCooldown
	case PowerUpShield:
		p.Shielded = true
	case PowerUpCustomerMagnet:
		p.InteractionRange = MagnetInteractionRange
	}
}

// RevertEffect undoes the effect of t on the player.
func RevertEffect(t PowerUpType, p *Player) {
	switch t {
	case PowerUpSpeedBoost:
		p.Speed = PlayerSpeed
	case PowerUpRapidFire:
		p.FireCooldown = FireCooldown
	case PowerUpShield:
		p.Shielded = false
	case PowerUpCustomerMagnet:
		p.InteractionRange = InteractionRange
	}
}

// PowerUpSlot holds the single active timed effect.
type PowerUpSlot struct {
	Active PowerUpType `json:"active"`
	Timer  int         `json:"timer"`
}

// IsActive reports whether an effect currently occupies the slot.
func (s *PowerUpSlot) IsActive() bool {
	return s.Active != PowerUpNone
}

// Activate reverts any active effect, then applies t and restarts the countdown.
func (s *PowerUpSlot) Activate(t PowerUpType, p *Player) {
	if s.IsActive() {
		RevertEffect(s.Active, p)
	}
	s.Active = t
	s.Timer = PowerUpDuration
	ApplyEffect(t, p)
}

// Tick decrements the countdown and reverts the effect when it reaches zero.
// It returns the type that expired, or PowerUpNone.
func (s *PowerUpSlot) Tick(p *Player) PowerUpType {
	if !s.IsActive() {
		return PowerUpNone
	}
	s.Timer--
	if s.Timer > 0 {
		return PowerUpNone
	}
	expired := s.Active
	RevertEffect(expired, p)
	s.Active = PowerUpNone
	s.Timer = 0
	return expired
}

// RemainingSeconds returns the countdown rounded up to whole seconds.
func (s *PowerUpSlot) RemainingSeconds() int {
	if !s.IsActive() || s.Timer <= 0 {
		return 0
	}
	return (s.Timer + TickRate - 1) / TickRate
}
