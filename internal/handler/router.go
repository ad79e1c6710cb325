package handler

import (
	"log/slog"

	"github.com/ugaemi/chatbase-hero/internal/ws"
)

type messageHandler func(client *ws.Client, msg ws.Message)

// Router dispatches remote player messages to the gameplay handler.
type Router struct {
	input    *RemoteInput
	handlers map[string]messageHandler
}

// NewRouter creates a router whose handlers feed input.
func NewRouter(input *RemoteInput) *Router {
	gameplay := NewGameplayHandler(input)
	return &Router{
		input: input,
		handlers: map[string]messageHandler{
			ws.TypeInput: gameplay.HandleInput,
			ws.TypeText:  gameplay.HandleText,
		},
	}
}

// HandleMessage parses and routes an incoming client message.
func (r *Router) HandleMessage(cm *ws.ClientMessage) {
	msg, err := ws.ParseMessage(cm.Data)
	if err != nil {
		slog.Warn("invalid message format", "client", cm.Client.ID, "error", err)
		cm.Client.SendMessage(ws.NewErrorMessage("invalid message format"))
		return
	}

	handle, ok := r.handlers[msg.Type]
	if !ok {
		slog.Warn("unknown message type", "type", msg.Type, "client", cm.Client.ID)
		cm.Client.SendMessage(ws.NewErrorMessage("unknown message type: " + msg.Type))
		return
	}
	handle(cm.Client, msg)
}

// HandleDisconnect releases any controls the client was holding.
func (r *Router) HandleDisconnect(client *ws.Client) {
	r.input.Release(client.ID)
}
