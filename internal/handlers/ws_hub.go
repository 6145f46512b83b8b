package handlers

import (
	"sync"
)

// Hub tracks connected live displays.
type Hub struct {
	mu      sync.RWMutex
	clients map[*WSClient]bool
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*WSClient]bool),
	}
}

func (h *Hub) Register(client *WSClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
}

func (h *Hub) Unregister(client *WSClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
