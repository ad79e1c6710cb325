package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/ugaemi/chatbase-hero/internal/metrics"
)

// Hub maintains the set of active clients and routes messages.
type Hub struct {
	Clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	Incoming   chan *ClientMessage
	mu         sync.RWMutex

	// Closed when Run returns.
	done chan struct{}

	// OnMessage is called for each incoming client message.
	OnMessage func(cm *ClientMessage)
	// OnDisconnect is called when a client disconnects.
	OnDisconnect func(client *Client)
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Incoming:   make(chan *ClientMessage, 256),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's main loop and returns when ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.Register:
			h.mu.Lock()
			h.Clients[client] = true
			count := len(h.Clients)
			h.mu.Unlock()
			metrics.UpdateWSConnections(count)
			slog.Info("client connected", "client", client.ID, "clients", count)

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
			}
			count := len(h.Clients)
			h.mu.Unlock()
			metrics.UpdateWSConnections(count)
			slog.Info("client disconnected", "client", client.ID, "clients", count)
			if h.OnDisconnect != nil {
				h.OnDisconnect(client)
			}

		case cm := <-h.Incoming:
			// A read pump can queue frames and then unregister. Once its
			// client is gone the frames must not reach OnMessage: replies
			// would hit a closed Send and input would outlive the disconnect.
			if !h.registered(cm.Client) {
				slog.Debug("dropping message from disconnected client", "client", cm.Client.ID)
				continue
			}
			if h.OnMessage != nil {
				h.OnMessage(cm)
			}
		}
	}
}

func (h *Hub) registered(client *Client) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.Clients[client]
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.Clients {
		delete(h.Clients, client)
		close(client.Send)
	}
	metrics.UpdateWSConnections(0)
}

// Broadcast sends a message to all connected clients.
func (h *Hub) Broadcast(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.Clients {
		select {
		case client.Send <- data:
		default:
			slog.Warn("broadcast: client send buffer full", "client", client.ID)
		}
	}
}

// BroadcastMessage encodes msg once and sends it to all connected clients.
func (h *Hub) BroadcastMessage(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to marshal message", "error", err)
		return
	}
	h.Broadcast(data)
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.Clients)
}
