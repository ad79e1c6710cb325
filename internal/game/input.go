package game

// TextKind identifies a name-entry keystroke.
type TextKind int

const (
	TextChar TextKind = iota
	TextBackspace
	TextConfirm
)

// TextEvent is a single keystroke delivered while entering a name.
type TextEvent struct {
	Kind TextKind `json:"kind"`
	Char rune     `json:"char,omitempty"`
}

// Input is the control state polled once per tick. Directional, fire and
// special controls are held states; Text carries the keystrokes that arrived
// since the previous poll.
type Input struct {
	Left    bool `json:"left"`
	Right   bool `json:"right"`
	Up      bool `json:"up"`
	Down    bool `json:"down"`
	Fire    bool `json:"fire"`
	Special bool `json:"special"`

	AimX float64 `json:"aim_x"`
	AimY float64 `json:"aim_y"`

	// Game-over screen controls.
	Save    bool `json:"save"`
	Discard bool `json:"discard"`

	Text []TextEvent `json:"text,omitempty"`
}

// Moving reports whether any directional control is held.
func (in Input) Moving() bool {
	return in.Left || in.Right || in.Up || in.Down
}
