package ws

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingType is returned by ParseMessage for an envelope without a type.
var ErrMissingType = errors.New("message type is required")

// Message represents a WebSocket message with type-based routing.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// ParseMessage decodes a raw client frame into its envelope.
func ParseMessage(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("decode envelope: %w", err)
	}
	if msg.Type == "" {
		return Message{}, ErrMissingType
	}
	return msg, nil
}

// Decode unmarshals the payload into v. An absent payload leaves v untouched.
func (m Message) Decode(v any) error {
	if len(m.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(m.Data, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", m.Type, err)
	}
	return nil
}

// Message types - Input (client to game)
const (
	TypeInput = "input"
	TypeText  = "text"
)

// Message types - Feed (game to client)
const (
	TypeFrame        = "frame"
	TypeHUD          = "hud"
	TypeNotification = "notification"
	TypeLeaderboard  = "leaderboard"
)

// Message types - System
const (
	TypeError = "error"
)

// ErrorMessage is sent when an error occurs.
type ErrorMessage struct {
	Message string `json:"message"`
}

// NewErrorMessage creates a Message with an error payload.
func NewErrorMessage(msg string) Message {
	data, _ := json.Marshal(ErrorMessage{Message: msg})
	return Message{Type: TypeError, Data: data}
}

// NewMessage creates a Message with a typed payload.
func NewMessage(msgType string, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: msgType, Data: data}, nil
}
