package game

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrPlayerCorrupt is returned when the player position is no longer a finite number.
	ErrPlayerCorrupt = errors.New("player position is not finite")
	// ErrPlayerOutOfBounds is returned when the player box has left the arena.
	ErrPlayerOutOfBounds = errors.New("player outside arena")
)

// updatePlayer runs the player controller for one tick: movement, aim,
// shooting, immunity, manual power-up, then customer and doc passes.
func (s *State) updatePlayer(in Input) error {
	p := s.Player

	p.Move(s.Field, in, s.now())
	p.AimAt(in.AimX, in.AimY)

	if in.Fire && p.Cooldown <= 0 {
		s.Bullets = append(s.Bullets, p.Shoot())
		p.Cooldown = p.FireCooldown
	}
	if p.Cooldown > 0 {
		p.Cooldown--
	}

	p.tickImmunity()

	if in.Special && !s.PowerUp.IsActive() && s.Score.Docs >= SpecialDocCost {
		s.Score.Docs -= SpecialDocCost
		s.PowerUp.Activate(PowerUpCustomerMagnet, p)
		s.emit(Event{Kind: EventPowerUp, X: p.X, Y: p.Y, PowerUp: PowerUpCustomerMagnet})
	}

	s.interactWithCustomers()
	s.collectDocs()

	return s.checkPlayer()
}

// checkPlayer validates the player after the controller has run.
func (s *State) checkPlayer() error {
	p := s.Player
	if !finite(p.X) || !finite(p.Y) {
		return ErrPlayerCorrupt
	}
	if p.X < 0 || p.Y < 0 || p.X+PlayerSize > s.Field.Width || p.Y+PlayerSize > s.Field.Height {
		return fmt.Errorf("%w: (%.1f, %.1f)", ErrPlayerOutOfBounds, p.X, p.Y)
	}
	return nil
}

// interactWithCustomers accumulates help progress for customers in range and
// decays it for the rest. A customer whose progress reaches completion is
// helped and replaced after a delay.
func (s *State) interactWithCustomers() {
	p := s.Player
	rate := ProgressRate
	if s.PowerUp.Active == PowerUpCustomerMagnet {
		rate = MagnetProgressRate
	}

	kept := s.Customers[:0]
	for _, c := range s.Customers {
		if Distance(p.X, p.Y, c.X, c.Y) < p.InteractionRange {
			p.Progress[c.ID] += rate
			if p.Progress[c.ID] >= ProgressComplete {
				s.Score.Customers++
				s.Score.Total += CustomerPoints
				delete(p.Progress, c.ID)
				s.scheduler.Schedule(s.Ticks, CustomerRespawnDelay, SpawnCustomer)
				p.Heal(CustomerHeal)
				s.emit(Event{Kind: EventCustomerHelped, X: c.X, Y: c.Y})
				continue
			}
		} else if progress, ok := p.Progress[c.ID]; ok {
			progress -= ProgressDecay
			if progress <= 0 {
				delete(p.Progress, c.ID)
			} else {
				p.Progress[c.ID] = progress
			}
		}
		kept = append(kept, c)
	}
	clear(s.Customers[len(kept):])
	s.Customers = kept
}

// collectDocs picks up every doc within one player width.
func (s *State) collectDocs() {
	p := s.Player
	kept := s.Docs[:0]
	for _, d := range s.Docs {
		if Distance(p.X, p.Y, d.X, d.Y) < PlayerSize {
			s.Score.Docs++
			if d.Special {
				s.Score.Total += SpecialDocPoints
				p.Heal(SpecialDocHeal)
			} else {
				s.Score.Total += DocPoints
			}
			s.emit(Event{Kind: EventDocCollected, X: d.X, Y: d.Y, Special: d.Special})
			continue
		}
		kept = append(kept, d)
	}
	clear(s.Docs[len(kept):])
	s.Docs = kept
}

// TakeDamage applies a hit to the player. Immunity ignores it, a shield
// absorbs it once, otherwise health and score drop and the run may end.
func (s *State) TakeDamage(amount int) {
	p := s.Player
	if s.Immune() {
		s.emit(Event{Kind: EventCollision, X: p.X, Y: p.Y, Shielded: true})
		return
	}
	if p.Shielded {
		p.Shielded = false
		s.emit(Event{Kind: EventCollision, X: p.X, Y: p.Y, Shielded: true})
		return
	}

	p.Health = max(0, p.Health-amount)
	s.Score.Penalize(DamagePenalty)
	s.emit(Event{Kind: EventCollision, X: p.X, Y: p.Y})

	if p.Health <= 0 && s.Mode == ModePlaying {
		s.Mode = ModeGameOver
		slog.Info("game over", "score", s.Score.Total, "level", s.Level)
		s.emit(Event{Kind: EventGameOver, X: p.X, Y: p.Y})
	}
}
