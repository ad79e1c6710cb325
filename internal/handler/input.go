package handler

import (
	"sync"

	"github.com/ugaemi/chatbase-hero/internal/game"
)

// Controls are the held controls sent by a remote client.
type Controls struct {
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Fire    bool
	Special bool
	AimX    float64
	AimY    float64
}

// RemoteInput is an input source fed by WebSocket clients. Held controls
// persist until replaced; save, discard and keystrokes are delivered by
// exactly one Poll.
type RemoteInput struct {
	mu      sync.Mutex
	held    Controls
	owner   string // client that sent the current controls
	save    bool
	discard bool
	text    []game.TextEvent
}

func NewRemoteInput() *RemoteInput {
	return &RemoteInput{}
}

// SetControls replaces the held controls.
func (r *RemoteInput) SetControls(clientID string, c Controls) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.held = c
	r.owner = clientID
}

// PressSave queues the game-over save control.
func (r *RemoteInput) PressSave() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.save = true
}

// PressDiscard queues the game-over discard control.
func (r *RemoteInput) PressDiscard() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.discard = true
}

// PushText queues a name-entry keystroke.
func (r *RemoteInput) PushText(ev game.TextEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.text = append(r.text, ev)
}

// Release drops the held controls if clientID owns them.
func (r *RemoteInput) Release(clientID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.owner == clientID {
		r.held = Controls{}
		r.owner = ""
	}
}

// Poll returns the controls for the next tick and clears one-shot controls.
func (r *RemoteInput) Poll() game.Input {
	r.mu.Lock()
	defer r.mu.Unlock()

	in := game.Input{
		Left:    r.held.Left,
		Right:   r.held.Right,
		Up:      r.held.Up,
		Down:    r.held.Down,
		Fire:    r.held.Fire,
		Special: r.held.Special,
		AimX:    r.held.AimX,
		AimY:    r.held.AimY,
		Save:    r.save,
		Discard: r.discard,
		Text:    r.text,
	}
	r.save = false
	r.discard = false
	r.text = nil
	return in
}
