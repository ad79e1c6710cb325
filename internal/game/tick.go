package game

import "fmt"

// Step advances a playing run by one tick. Phases run in a fixed order and
// every spawn scheduled during a tick fires on a later one. Outside
// ModePlaying it does nothing.
func (s *State) Step(in Input) error {
	if s.Mode != ModePlaying {
		return nil
	}
	s.Ticks++

	// --- Deferred spawns ---
	for _, kind := range s.scheduler.Due(s.Ticks) {
		s.spawn(kind)
	}

	// --- Power-up countdown ---
	if expired := s.PowerUp.Tick(s.Player); expired != PowerUpNone {
		s.emit(Event{Kind: EventPowerUpExpired, X: s.Player.X, Y: s.Player.Y, PowerUp: expired})
	}

	// --- Populations ---
	s.updateDocs()
	s.updateCustomers()
	s.updateBugs()
	s.updateBullets()
	s.updatePowerUps()

	// --- Player ---
	if err := s.updatePlayer(in); err != nil {
		return fmt.Errorf("tick %d: %w", s.Ticks, err)
	}

	// --- Ambient spawns ---
	if s.ambient {
		s.spawnAmbient()
	}

	// --- Level ---
	s.checkLevelUp()

	// --- Global immunity ---
	if s.GlobalImmune {
		s.ImmunityTimer--
		if s.ImmunityTimer <= 0 {
			s.GlobalImmune = false
			s.ImmunityTimer = 0
		}
	}

	return nil
}

// Recover clears the arena center and puts the player back there.
func (s *State) Recover() {
	cx, cy := s.Field.Width/2, s.Field.Height/2
	s.Field.ClearArea(cx, cy, CenterSafeRadius)
	s.Player.SetPosition(cx, cy)
}
