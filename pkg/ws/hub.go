// Package ws pushes server events to connected dashboard clients. Only the
// connection lifecycle and a broadcast fan-out are implemented; clients do
// not send application messages.
package ws

import (
	"sync"

	"github.com/rs/zerolog"
)

// Event is the JSON frame pushed to every connected client.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	log        zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 256),
		log:        log,
	}
}

// Run owns the client set; call it once from main in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			n := len(h.clients)
			h.mu.Unlock()
			h.log.Info().Int("clients", n).Msg("ws client connected")
		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			n := len(h.clients)
			h.mu.Unlock()
			h.log.Info().Int("clients", n).Msg("ws client disconnected")
		case ev := <-h.broadcast:
			h.mu.RLock()
			for c := range h.clients {
				select {
				case c.send <- ev:
				default:
					// slow consumer, drop the frame
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast queues an event for every connected client. Never blocks the
// caller; if the hub queue is full the event is dropped.
func (h *Hub) Broadcast(ev Event) {
	select {
	case h.broadcast <- ev:
	default:
		h.log.Warn().Str("type", ev.Type).Msg("ws broadcast queue full, dropping")
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
