package ws_catalog

import (
	"log/slog"
	"sync"

	"github.com/cinerec/core/internal/model"
)

type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type Hub struct {
	logger *slog.Logger

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		logger:     slog.Default(),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

// Publish feeds a catalog change into the broadcast loop.
func (h *Hub) Publish(e model.CatalogEvent) {
	h.broadcast <- Event{
		Type: string(e.Type),
		Payload: map[string]any{
			"id":    e.Movie.ID,
			"title": e.Movie.Title,
			"year":  e.Movie.Year,
		},
	}
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	h.logger.Info("catalog feed client registered", "clients", len(h.clients))
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}

	h.logger.Info("catalog feed client unregistered", "clients", len(h.clients))
}

func (h *Hub) broadcastEvent(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.send <- event:
		default:
			close(client.send)
			delete(h.clients, client)
		}
	}
}
