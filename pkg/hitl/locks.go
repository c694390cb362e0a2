package hitl

import "sync"

// sessionLocks serializes state-changing operations per session. TryAcquire
// is non-blocking: of two conflicting actions against the same session, one
// proceeds and the other fails fast with a state conflict.
type sessionLocks struct {
	mu   sync.Mutex
	held map[string]bool
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{held: make(map[string]bool)}
}

// TryAcquire takes the session lock if free and returns a release func, or
// nil when another operation holds it.
func (l *sessionLocks) TryAcquire(sessionID string) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[sessionID] {
		return nil
	}
	l.held[sessionID] = true
	return func() {
		l.mu.Lock()
		delete(l.held, sessionID)
		l.mu.Unlock()
	}
}
