package handler

import (
	"log/slog"

	"github.com/ugaemi/chatbase-hero/internal/game"
	"github.com/ugaemi/chatbase-hero/internal/leaderboard"
	"github.com/ugaemi/chatbase-hero/internal/ws"
)

// DefaultFrameEvery sends a full frame at 10 Hz.
const DefaultFrameEvery = game.TickRate / 10

// Broadcaster sends a message to every connected client.
type Broadcaster interface {
	BroadcastMessage(msg ws.Message)
}

// Feed publishes frames and notifications to WebSocket clients. Full frames
// go out every frameEvery ticks; in between, a HUD update is sent on ticks
// that raised events.
type Feed struct {
	out        Broadcaster
	frameEvery uint64
	ticks      uint64

	lastMode    game.Mode
	leaderboard func() []leaderboard.Entry
}

func NewFeed(out Broadcaster, frameEvery int) *Feed {
	if frameEvery < 1 {
		frameEvery = 1
	}
	return &Feed{out: out, frameEvery: uint64(frameEvery)}
}

// WithLeaderboard makes the feed broadcast the board after each saved score.
func (f *Feed) WithLeaderboard(entries func() []leaderboard.Entry) *Feed {
	f.leaderboard = entries
	return f
}

type hudMessage struct {
	Mode game.Mode `json:"mode"`
	HUD  game.HUD  `json:"hud"`
	Name string    `json:"name,omitempty"`
}

type leaderboardMessage struct {
	Entries []leaderboard.Entry `json:"entries"`
}

type notificationMessage struct {
	Kind    game.EventKind `json:"kind"`
	Message string         `json:"message"`
	X       float64        `json:"x"`
	Y       float64        `json:"y"`
}

// Render implements session.Renderer.
func (f *Feed) Render(frame *game.Frame) {
	saved := f.lastMode == game.ModeEnterName && frame.Mode == game.ModePlaying
	f.lastMode = frame.Mode
	if saved && f.leaderboard != nil {
		f.send(ws.TypeLeaderboard, leaderboardMessage{Entries: f.leaderboard()})
	}

	f.ticks++
	if f.ticks%f.frameEvery == 0 {
		f.send(ws.TypeFrame, frame)
		return
	}
	if len(frame.Events) > 0 {
		f.send(ws.TypeHUD, hudMessage{Mode: frame.Mode, HUD: frame.HUD, Name: frame.Name})
	}
}

// Notify implements session.Listener.
func (f *Feed) Notify(events []game.Event) {
	for _, e := range events {
		f.send(ws.TypeNotification, notificationMessage{
			Kind:    e.Kind,
			Message: e.Message(),
			X:       e.X,
			Y:       e.Y,
		})
	}
}

func (f *Feed) send(msgType string, payload any) {
	msg, err := ws.NewMessage(msgType, payload)
	if err != nil {
		slog.Error("failed to encode feed message", "type", msgType, "error", err)
		return
	}
	f.out.BroadcastMessage(msg)
}
