package game

import (
	"log/slog"
	"math"
)

// floatOffset is the per-tick vertical bob of docs and power-ups.
func (s *State) floatOffset(phase float64) float64 {
	return math.Sin(float64(s.Ticks)*0.05+phase) * 0.5
}

func (s *State) updateDocs() {
	for _, d := range s.Docs {
		d.Y += s.floatOffset(d.Offset)
	}
}

// updateCustomers wanders each customer, re-rolling its heading periodically
// and whenever an axis is blocked.
func (s *State) updateCustomers() {
	for _, c := range s.Customers {
		if s.Ticks%WanderInterval == 0 || s.rng.Float64() < WanderChance {
			c.Angle = randAngle(s.rng)
		}

		dx := math.Cos(c.Angle) * c.Speed
		dy := math.Sin(c.Angle) * c.Speed

		if !s.Field.CheckCollision(c.X+dx, c.Y, CustomerSize, CustomerSize) {
			c.X += dx
		} else {
			c.Angle = randAngle(s.rng)
		}

		if !s.Field.CheckCollision(c.X, c.Y+dy, CustomerSize, CustomerSize) {
			c.Y += dy
		} else {
			c.Angle = randAngle(s.rng)
		}
	}
}

// updateBugs steers bugs at the player and resolves contact with the player
// and with bullets. A bug takes part in at most one collision per tick.
func (s *State) updateBugs() {
	p := s.Player
	kept := s.Bugs[:0]

	for _, b := range s.Bugs {
		angle := math.Atan2(p.Y-b.Y, p.X-b.X)
		b.X += math.Cos(angle) * b.Speed
		b.Y += math.Sin(angle) * b.Speed

		if InContactRange(b.X, b.Y, BugSize, p.X, p.Y, PlayerSize) {
			s.TakeDamage(BugContactDamage)
			s.Score.Penalize(ContactPenalty)
			s.scheduler.Schedule(s.Ticks, BugContactRespawnDelay, SpawnBug)
			continue
		}

		if s.hitByBullet(b) {
			s.Score.Total += BugKillPoints
			s.scheduler.Schedule(s.Ticks, BugKillRespawnDelay, SpawnBug)
			s.emit(Event{Kind: EventBugDeath, X: b.X, Y: b.Y})
			continue
		}

		kept = append(kept, b)
	}

	clear(s.Bugs[len(kept):])
	s.Bugs = kept
}

// hitByBullet removes the first bullet touching b and reports whether one did.
func (s *State) hitByBullet(b *Bug) bool {
	for i, bullet := range s.Bullets {
		if InContactRange(b.X, b.Y, BugSize, bullet.X, bullet.Y, BulletSize) {
			s.Bullets = append(s.Bullets[:i], s.Bullets[i+1:]...)
			return true
		}
	}
	return false
}

// updateBullets advances bullets and drops those that leave the arena or hit
// an obstacle.
func (s *State) updateBullets() {
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		b.X += math.Cos(b.Angle) * b.Speed
		b.Y += math.Sin(b.Angle) * b.Speed

		if b.X < 0 || b.X > s.Field.Width || b.Y < 0 || b.Y > s.Field.Height {
			continue
		}
		if s.Field.CheckCollision(b.X, b.Y, BulletSize, BulletSize) {
			continue
		}
		kept = append(kept, b)
	}
	clear(s.Bullets[len(kept):])
	s.Bullets = kept
}

func (s *State) updatePowerUps() {
	p := s.Player
	kept := s.PowerUps[:0]
	for _, pu := range s.PowerUps {
		pu.Y += s.floatOffset(pu.Offset)

		if Distance(p.X, p.Y, pu.X, pu.Y) < PlayerSize/2+PowerUpSize/2 {
			s.PowerUp.Activate(pu.Type, p)
			slog.Debug("power-up collected", "type", pu.Type.String())
			s.emit(Event{Kind: EventPowerUp, X: pu.X, Y: pu.Y, PowerUp: pu.Type})
			continue
		}
		kept = append(kept, pu)
	}
	clear(s.PowerUps[len(kept):])
	s.PowerUps = kept
}
