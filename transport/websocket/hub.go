package websocket

import (
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

// Hub - registry of live connections and of the session group each one belongs to.
type Hub struct {
	logger *slog.Logger

	mu       sync.RWMutex
	clients  map[string]*client
	sessions map[string]string
	groups   map[string]map[string]struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:   logger.With("component", "hub"),
		clients:  make(map[string]*client),
		sessions: make(map[string]string),
		groups:   make(map[string]map[string]struct{}),
	}
}

func (that *Hub) SendTo(connID string, event entity.Event) {
	data, err := encodeEvent(event)
	if err != nil {
		that.logger.Error("failed to encode event", "event", event.Name, "error", err)
		return
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	that.deliver(connID, data)
}

func (that *Hub) Broadcast(sessionID string, event entity.Event) {
	data, err := encodeEvent(event)
	if err != nil {
		that.logger.Error("failed to encode event", "event", event.Name, "error", err)
		return
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	for connID := range that.groups[sessionID] {
		that.deliver(connID, data)
	}
}

// Join - adds connID to the group of sessionID.
func (that *Hub) Join(connID, sessionID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.clients[connID]; !ok {
		return
	}

	group, ok := that.groups[sessionID]
	if !ok {
		group = make(map[string]struct{}, 2)
		that.groups[sessionID] = group
	}

	group[connID] = struct{}{}
	that.sessions[connID] = sessionID
}

// Release - drops the group of sessionID. Its members stay connected without a session.
func (that *Hub) Release(sessionID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for connID := range that.groups[sessionID] {
		if that.sessions[connID] == sessionID {
			delete(that.sessions, connID)
		}
	}

	delete(that.groups, sessionID)
}

func (that *Hub) SessionOf(connID string) string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.sessions[connID]
}

func (that *Hub) Connections() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.clients)
}

func (that *Hub) register(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.clients[c.id] = c
}

// unregister - forgets the connection and closes its outbound queue.
func (that *Hub) unregister(connID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	c, ok := that.clients[connID]
	if !ok {
		return
	}

	if sessionID, ok := that.sessions[connID]; ok {
		delete(that.groups[sessionID], connID)
		if len(that.groups[sessionID]) == 0 {
			delete(that.groups, sessionID)
		}
		delete(that.sessions, connID)
	}

	delete(that.clients, connID)
	close(c.send)
}

// dropAll - closes every live socket. Each read pump then reports its disconnect.
func (that *Hub) dropAll() {
	that.mu.RLock()
	defer that.mu.RUnlock()

	for _, c := range that.clients {
		c.drop()
	}
}

// deliver - must be called with mu held.
func (that *Hub) deliver(connID string, data []byte) {
	c, ok := that.clients[connID]
	if !ok {
		that.logger.Warn("connection not found", "connID", connID)
		return
	}

	select {
	case c.send <- data:
	default:
		that.logger.Error("outbound queue is full, dropping connection", "connID", connID)
		c.drop()
	}
}
