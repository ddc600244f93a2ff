package loop

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Registry is the interface sessions use to announce themselves.
// Decouples Session from the concrete Hub so tests can observe registration.
type Registry interface {
	Register(username string) *Handle
	Unregister(id int)
}

// Notice is a message from the hub to a running session.
type Notice int

const (
	NoticeShutdown Notice = iota // the server is going down
)

// Handle represents a session's registration with the hub.
type Handle struct {
	ID       int
	Username string
	Notices  chan Notice
}

// Hub tracks active sessions. Each session runs its own game; the hub only
// exists to broadcast notices and to wait for sessions to leave.
type Hub struct {
	mu       sync.RWMutex
	sessions map[int]*Handle
	nextID   int
	log      *log.Logger
}

// Compile-time check that Hub implements Registry.
var _ Registry = (*Hub)(nil)

// NewHub creates an empty hub. A nil logger discards logs.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = discardLogger()
	}
	return &Hub{
		sessions: make(map[int]*Handle),
		nextID:   1,
		log:      logger,
	}
}

// Register adds a session and returns its handle.
func (h *Hub) Register(username string) *Handle {
	h.mu.Lock()
	defer h.mu.Unlock()

	handle := &Handle{
		ID:       h.nextID,
		Username: username,
		Notices:  make(chan Notice, 4),
	}
	h.nextID++
	h.sessions[handle.ID] = handle
	h.log.Info("session registered", "id", handle.ID, "user", username, "active", len(h.sessions))
	return handle
}

// Unregister removes a session. Unknown ids are ignored.
func (h *Hub) Unregister(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[id]; !ok {
		return
	}
	delete(h.sessions, id)
	h.log.Info("session unregistered", "id", id, "active", len(h.sessions))
}

// Count returns the number of active sessions.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Shutdown notifies every session that the server is stopping and waits for
// them to disconnect, up to timeout. It reports whether all sessions left.
func (h *Hub) Shutdown(timeout time.Duration) bool {
	h.mu.RLock()
	for _, handle := range h.sessions {
		select {
		case handle.Notices <- NoticeShutdown:
		default:
		}
	}
	h.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if h.Count() == 0 {
			return true
		}
		select {
		case <-deadline:
			h.log.Warn("shutdown timed out", "remaining", h.Count())
			return false
		case <-ticker.C:
		}
	}
}
