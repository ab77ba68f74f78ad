// Package sessions keeps live cart sessions in memory, keyed by the
// session ID handed to the client when the cart is opened. Sessions exist
// only between opening a cart and submitting the order; nothing here
// outlives the process.
package sessions

import (
	"sync"

	"tableside/internal/core/domain/model/cart"
	"tableside/internal/pkg/errs"

	"github.com/google/uuid"
)

// Registry is a concurrency-safe store of open cart sessions.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*cart.Session
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*cart.Session),
	}
}

// Open creates a fresh session and tracks it until it is removed.
func (r *Registry) Open() *cart.Session {
	session := cart.NewSession()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID()] = session

	return session
}

// Session returns the tracked session for the given ID.
// Returns errs.ErrObjectNotFound if no such session exists.
func (r *Registry) Session(id uuid.UUID) (*cart.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("sessionId", id.String())
	}
	return session, nil
}

// Remove forgets the session with the given ID. Removing an unknown ID
// is a no-op.
func (r *Registry) Remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Count reports how many sessions are currently open.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
