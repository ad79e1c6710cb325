package handler

import (
	"log/slog"
	"math"
	"unicode/utf8"

	"github.com/ugaemi/chatbase-hero/internal/game"
	"github.com/ugaemi/chatbase-hero/internal/ws"
)

// GameplayHandler handles in-game messages.
type GameplayHandler struct {
	input *RemoteInput
}

// NewGameplayHandler creates a new gameplay handler.
func NewGameplayHandler(input *RemoteInput) *GameplayHandler {
	return &GameplayHandler{input: input}
}

type inputRequest struct {
	Left    bool    `json:"left"`
	Right   bool    `json:"right"`
	Up      bool    `json:"up"`
	Down    bool    `json:"down"`
	Fire    bool    `json:"fire"`
	Special bool    `json:"special"`
	AimX    float64 `json:"aim_x"`
	AimY    float64 `json:"aim_y"`
	Save    bool    `json:"save"`
	Discard bool    `json:"discard"`
}

// HandleInput replaces the held controls and queues game-over controls.
func (h *GameplayHandler) HandleInput(client *ws.Client, msg ws.Message) {
	var req inputRequest
	if err := msg.Decode(&req); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid input data"))
		return
	}

	// Validate aim is within arena bounds
	if math.IsNaN(req.AimX) || math.IsNaN(req.AimY) ||
		req.AimX < 0 || req.AimX > game.ArenaWidth || req.AimY < 0 || req.AimY > game.ArenaHeight {
		client.SendMessage(ws.NewErrorMessage("aim out of bounds"))
		return
	}

	h.input.SetControls(client.ID, Controls{
		Left:    req.Left,
		Right:   req.Right,
		Up:      req.Up,
		Down:    req.Down,
		Fire:    req.Fire,
		Special: req.Special,
		AimX:    req.AimX,
		AimY:    req.AimY,
	})
	if req.Save {
		h.input.PressSave()
	}
	if req.Discard {
		h.input.PressDiscard()
	}
}

type textRequest struct {
	Kind string `json:"kind"` // "char", "backspace" or "confirm"
	Char string `json:"char,omitempty"`
}

// HandleText queues a name-entry keystroke.
func (h *GameplayHandler) HandleText(client *ws.Client, msg ws.Message) {
	var req textRequest
	if err := msg.Decode(&req); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid text data"))
		return
	}

	switch req.Kind {
	case "char":
		r, size := utf8.DecodeRuneInString(req.Char)
		if r == utf8.RuneError || size != len(req.Char) {
			client.SendMessage(ws.NewErrorMessage("char must be a single character"))
			return
		}
		h.input.PushText(game.TextEvent{Kind: game.TextChar, Char: r})
	case "backspace":
		h.input.PushText(game.TextEvent{Kind: game.TextBackspace})
	case "confirm":
		h.input.PushText(game.TextEvent{Kind: game.TextConfirm})
	default:
		client.SendMessage(ws.NewErrorMessage("unknown text kind: " + req.Kind))
		return
	}

	slog.Debug("text input", "client", client.ID, "kind", req.Kind)
}
