package game

import "encoding/json"

// SpriteKind identifies how a collaborator should draw an entity.
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteCustomer
	SpriteDoc
	SpriteBug
	SpriteBullet
	SpritePowerUp
)

func (k SpriteKind) String() string {
	switch k {
	case SpritePlayer:
		return "player"
	case SpriteCustomer:
		return "customer"
	case SpriteDoc:
		return "doc"
	case SpriteBug:
		return "bug"
	case SpriteBullet:
		return "bullet"
	case SpritePowerUp:
		return "power_up"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes SpriteKind as a string.
func (k SpriteKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Sprite is one drawable entity.
type Sprite struct {
	Kind     SpriteKind  `json:"kind"`
	X        float64     `json:"x"`
	Y        float64     `json:"y"`
	Angle    float64     `json:"angle"`
	Size     float64     `json:"size"`
	Special  bool        `json:"special,omitempty"`
	PowerUp  PowerUpType `json:"power_up,omitempty"`
	Progress float64     `json:"progress,omitempty"` // customer help progress
}

// HUD is the data shown around the arena.
type HUD struct {
	Score            Score       `json:"score"`
	ScoreText        string      `json:"score_text"`
	Level            int         `json:"level"`
	LevelGoal        float64     `json:"level_goal"`
	LevelDescription string      `json:"level_description"`
	Health           int         `json:"health"`
	PowerUp          PowerUpType `json:"power_up"`
	PowerUpSeconds   int         `json:"power_up_seconds"`
	Shielded         bool        `json:"shielded"`
	Immune           bool        `json:"immune"`
	InteractionRange float64     `json:"interaction_range"`
}

// Frame is an immutable view of the state for rendering.
type Frame struct {
	Mode      Mode       `json:"mode"`
	Tick      uint64     `json:"tick"`
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	Obstacles []Obstacle `json:"obstacles"`
	Sprites   []Sprite   `json:"sprites"`
	HUD       HUD        `json:"hud"`
	Name      string     `json:"name,omitempty"`
	Events    []Event    `json:"events,omitempty"`
}

// HealthBand returns the presentation band of a health value.
func HealthBand(health int) string {
	switch {
	case health > 60:
		return "good"
	case health > 30:
		return "warn"
	default:
		return "critical"
	}
}

// Snapshot copies the state into a Frame.
func (s *State) Snapshot() *Frame {
	p := s.Player
	f := &Frame{
		Mode:      s.Mode,
		Tick:      s.Ticks,
		Width:     s.Field.Width,
		Height:    s.Field.Height,
		Obstacles: s.Field.Obstacles(),
		HUD: HUD{
			Score:            s.Score,
			ScoreText:        FormatScore(s.Score.Total),
			Level:            s.Level,
			LevelGoal:        s.LevelGoal,
			LevelDescription: LevelDescription(s.Level),
			Health:           p.Health,
			PowerUp:          s.PowerUp.Active,
			PowerUpSeconds:   s.PowerUp.RemainingSeconds(),
			Shielded:         p.Shielded,
			Immune:           s.Immune(),
			InteractionRange: p.InteractionRange,
		},
	}

	sprites := make([]Sprite, 0, 1+len(s.Customers)+len(s.Docs)+len(s.Bugs)+len(s.Bullets)+len(s.PowerUps))
	for _, d := range s.Docs {
		sprites = append(sprites, Sprite{Kind: SpriteDoc, X: d.X, Y: d.Y, Size: DocSize, Special: d.Special})
	}
	for _, c := range s.Customers {
		sprites = append(sprites, Sprite{Kind: SpriteCustomer, X: c.X, Y: c.Y, Angle: c.Angle, Size: CustomerSize, Progress: p.Progress[c.ID]})
	}
	for _, b := range s.Bugs {
		sprites = append(sprites, Sprite{Kind: SpriteBug, X: b.X, Y: b.Y, Size: BugSize})
	}
	for _, b := range s.Bullets {
		sprites = append(sprites, Sprite{Kind: SpriteBullet, X: b.X, Y: b.Y, Angle: b.Angle, Size: BulletSize})
	}
	for _, pu := range s.PowerUps {
		sprites = append(sprites, Sprite{Kind: SpritePowerUp, X: pu.X, Y: pu.Y, Size: PowerUpSize, PowerUp: pu.Type})
	}
	sprites = append(sprites, Sprite{Kind: SpritePlayer, X: p.X, Y: p.Y, Angle: p.Angle, Size: PlayerSize})
	f.Sprites = sprites

	return f
}
