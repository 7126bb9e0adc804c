package api

import (
	"sync"
	"time"

	"github.com/abhisek/mathdrill/internal/session"
)

// entry guards one quiz. Handlers hold mu for each read-modify-write of
// state and release it before calling out to an LLM.
type entry struct {
	mu       sync.Mutex
	state    *session.SessionState
	lastSeen time.Time
}

// registry keeps live quizzes in memory. Quizzes idle longer than ttl are
// dropped the next time one is added.
type registry struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*entry
	now      func() time.Time
}

func newRegistry(ttl time.Duration) *registry {
	return &registry{ttl: ttl, sessions: make(map[string]*entry), now: time.Now}
}

func (r *registry) add(state *session.SessionState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, e := range r.sessions {
		if now.Sub(e.lastSeen) > r.ttl {
			delete(r.sessions, id)
		}
	}
	r.sessions[state.SessionID] = &entry{state: state, lastSeen: now}
}

func (r *registry) get(id string) (*entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if ok {
		e.lastSeen = r.now()
	}
	return e, ok
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
