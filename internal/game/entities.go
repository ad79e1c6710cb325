package game

import "github.com/google/uuid"

// Customer wanders the arena waiting to be helped.
type Customer struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Speed float64 `json:"speed"`
	Angle float64 `json:"angle"`
}

// NewCustomer creates a customer with a freshly allocated identity.
func NewCustomer(x, y, angle float64) *Customer {
	return &Customer{
		ID:    uuid.New().String(),
		X:     x,
		Y:     y,
		Speed: CustomerSpeed,
		Angle: angle,
	}
}

// Doc is a collectible document. Special docs are worth more and heal more.
type Doc struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Offset  float64 `json:"-"` // float animation phase
	Special bool    `json:"special"`
}

// Bug seeks the player. Its speed is fixed at spawn time.
type Bug struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Speed float64 `json:"speed"`
}

// Bullet travels along a fixed heading until it leaves the arena or hits something.
type Bullet struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
	Speed float64 `json:"speed"`
}

// PowerUp is a pickup that activates its type when the player touches it.
type PowerUp struct {
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Offset float64     `json:"-"`
	Type   PowerUpType `json:"type"`
}
