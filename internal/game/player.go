package game

import (
	"log/slog"
	"math"
	"time"
)

// Player is the avatar controlled by the user. Position is the origin of its
// collision box against the field and the reference point for range checks.
type Player struct {
	X                float64            `json:"x"`
	Y                float64            `json:"y"`
	Angle            float64            `json:"angle"`
	Speed            float64            `json:"speed"`
	FireCooldown     int                `json:"-"` // cooldown restored after each shot
	Cooldown         int                `json:"-"`
	Health           int                `json:"health"`
	Shielded         bool               `json:"shielded"`
	Immune           bool               `json:"immune"`
	ImmuneTimer      int                `json:"-"`
	InteractionRange float64            `json:"interaction_range"`
	Progress         map[string]float64 `json:"-"` // customer ID -> interaction progress
	LastMoveTime     time.Time          `json:"-"`
}

func NewPlayer(x, y float64, now time.Time) *Player {
	return &Player{
		X:                x,
		Y:                y,
		Speed:            PlayerSpeed,
		FireCooldown:     FireCooldown,
		Health:           MaxHealth,
		Immune:           true,
		ImmuneTimer:      ImmunityDuration,
		InteractionRange: InteractionRange,
		Progress:         make(map[string]float64),
		LastMoveTime:     now,
	}
}

func (p *Player) SetPosition(x, y float64) {
	p.X = x
	p.Y = y
}

// Heal raises health by amount, capped at MaxHealth.
func (p *Player) Heal(amount int) {
	p.Health = min(MaxHealth, p.Health+amount)
}

// AimAt points the player toward (x, y).
func (p *Player) AimAt(x, y float64) {
	p.Angle = math.Atan2(y-p.Y, x-p.X)
}

// Move applies one tick of directional input with wall sliding. It returns
// true when the player changed position.
func (p *Player) Move(f *Field, in Input, now time.Time) bool {
	dx, dy := 0.0, 0.0
	if in.Left {
		dx -= p.Speed
	}
	if in.Right {
		dx += p.Speed
	}
	if in.Up {
		dy -= p.Speed
	}
	if in.Down {
		dy += p.Speed
	}

	if dx != 0 && dy != 0 {
		length := math.Sqrt(dx*dx + dy*dy)
		dx = dx / length * p.Speed
		dy = dy / length * p.Speed
	}

	moved := false

	if dx != 0 {
		switch {
		case !f.CheckCollision(p.X+dx, p.Y, PlayerSize, PlayerSize):
			p.X += dx
			moved = true
		case !f.CheckCollision(p.X+dx, p.Y-SlideAmount, PlayerSize, PlayerSize):
			p.X += dx
			p.Y -= SlideAmount
			moved = true
		case !f.CheckCollision(p.X+dx, p.Y+SlideAmount, PlayerSize, PlayerSize):
			p.X += dx
			p.Y += SlideAmount
			moved = true
		}
	}

	if dy != 0 {
		switch {
		case !f.CheckCollision(p.X, p.Y+dy, PlayerSize, PlayerSize):
			p.Y += dy
			moved = true
		case !f.CheckCollision(p.X-SlideAmount, p.Y+dy, PlayerSize, PlayerSize):
			p.X -= SlideAmount
			p.Y += dy
			moved = true
		case !f.CheckCollision(p.X+SlideAmount, p.Y+dy, PlayerSize, PlayerSize):
			p.X += SlideAmount
			p.Y += dy
			moved = true
		}
	}

	if moved {
		p.LastMoveTime = now
		return true
	}
	if (dx != 0 || dy != 0) && now.Sub(p.LastMoveTime) > StuckTimeout {
		return p.unstick(f, now)
	}
	return false
}

// unstick probes eight points around the player and teleports to the first
// free one. When every probe is blocked the surrounding obstacles are removed.
func (p *Player) unstick(f *Field, now time.Time) bool {
	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		x := p.X + math.Cos(angle)*PlayerSize
		y := p.Y + math.Sin(angle)*PlayerSize
		if !f.CheckCollision(x, y, PlayerSize, PlayerSize) {
			slog.Debug("player unstuck by probe", "x", x, "y", y)
			p.SetPosition(x, y)
			p.LastMoveTime = now
			return true
		}
	}
	slog.Debug("player unstuck by clearing area", "x", p.X, "y", p.Y)
	f.ClearArea(p.X, p.Y, PlayerSize*2)
	return false
}

// Shoot returns a bullet leaving the muzzle along the current facing angle.
func (p *Player) Shoot() *Bullet {
	return &Bullet{
		X:     p.X + math.Cos(p.Angle)*MuzzleOffset,
		Y:     p.Y + math.Sin(p.Angle)*MuzzleOffset,
		Angle: p.Angle,
		Speed: BulletSpeed,
	}
}

// tickImmunity counts down the spawn immunity.
func (p *Player) tickImmunity() {
	if !p.Immune {
		return
	}
	p.ImmuneTimer--
	if p.ImmuneTimer <= 0 {
		p.Immune = false
		p.ImmuneTimer = 0
	}
}
