package game

import (
	"encoding/json"
	"fmt"
)

type EventKind int

const (
	EventCollision EventKind = iota
	EventBugDeath
	EventLevelUp
	EventPowerUp
	EventPowerUpExpired
	EventCustomerHelped
	EventDocCollected
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventCollision:
		return "collision"
	case EventBugDeath:
		return "bug_death"
	case EventLevelUp:
		return "level_up"
	case EventPowerUp:
		return "power_up"
	case EventPowerUpExpired:
		return "power_up_expired"
	case EventCustomerHelped:
		return "customer_helped"
	case EventDocCollected:
		return "doc_collected"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes EventKind as a string.
func (k EventKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Event is a transient notification for the presentation layer.
type Event struct {
	Kind     EventKind   `json:"kind"`
	X        float64     `json:"x"`
	Y        float64     `json:"y"`
	Level    int         `json:"level,omitempty"`
	PowerUp  PowerUpType `json:"power_up,omitempty"`
	Shielded bool        `json:"shielded,omitempty"`
	Special  bool        `json:"special,omitempty"`
}

// Message returns the banner text shown for the event.
func (e Event) Message() string {
	switch e.Kind {
	case EventCollision:
		if e.Shielded {
			return "Blocked!"
		}
		return fmt.Sprintf("Ouch! -%d", DamagePenalty)
	case EventBugDeath:
		return fmt.Sprintf("Bug fixed +%d", BugKillPoints)
	case EventLevelUp:
		return fmt.Sprintf("LEVEL UP! Level %d", e.Level)
	case EventPowerUp:
		return e.PowerUp.String() + "!"
	case EventPowerUpExpired:
		return e.PowerUp.String() + " wore off"
	case EventCustomerHelped:
		return fmt.Sprintf("Customer helped +%d", CustomerPoints)
	case EventDocCollected:
		if e.Special {
			return fmt.Sprintf("Special doc +%d", SpecialDocPoints)
		}
		return fmt.Sprintf("Doc +%d", DocPoints)
	case EventGameOver:
		return "GAME OVER"
	default:
		return ""
	}
}

func (s *State) emit(e Event) {
	s.events = append(s.events, e)
}

// DrainEvents returns the notifications raised since the previous call.
func (s *State) DrainEvents() []Event {
	events := s.events
	s.events = nil
	return events
}
