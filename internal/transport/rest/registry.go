package rest

import (
	"errors"
	"sync"

	"github.com/imoreno/wellscreen/internal/catalog"
	"github.com/imoreno/wellscreen/internal/result"
	"github.com/imoreno/wellscreen/internal/session"
)

// ErrSessionNotFound is returned for unknown session ids.
var ErrSessionNotFound = errors.New("session not found")

// entry pairs a live session with the identity captured at registration.
type entry struct {
	sess     *session.Session
	identity result.Identity
}

// Registry is the in-memory store of live sessions, keyed by session id.
// There is no persistence behind it: sessions live exactly as long as the
// process, matching the engine's single-in-memory-session model. The
// registry mutex serializes all state transitions, which keeps each
// session effectively single-threaded as the engine requires.
type Registry struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	sessions map[string]*entry
}

// NewRegistry creates an empty registry over the given catalog.
func NewRegistry(cat *catalog.Catalog) *Registry {
	return &Registry{
		catalog:  cat,
		sessions: make(map[string]*entry),
	}
}

// Create registers a new session with the supplied identity and returns it.
func (r *Registry) Create(identity result.Identity) *session.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := session.New(r.catalog)
	r.sessions[s.ID()] = &entry{sess: s, identity: identity}
	return s
}

// With runs fn against the session with the given id while holding the
// registry lock, so every navigation operation runs to completion before
// the next one is admitted.
func (r *Registry) With(id string, fn func(s *session.Session, identity result.Identity) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	return fn(e.sess, e.identity)
}

// Reset restarts the session with the given id. The session generates a
// fresh id, so the registry re-keys the entry; the old id is forgotten and
// never reused. Returns the restarted session.
func (r *Registry) Reset(id string) (*session.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	delete(r.sessions, id)
	e.sess.Reset()
	r.sessions[e.sess.ID()] = e
	return e.sess, nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
