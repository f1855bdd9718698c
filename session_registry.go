package f1telemetry

import (
	"sync"

	"github.com/NourAymanZaghloul/f1telemetry/internal/provider"
)

// SessionRegistry keeps loaded sessions in memory so a comparison request
// does not reload from the provider. One dashboard process, one registry.
type SessionRegistry struct {
	mutex    sync.RWMutex
	sessions map[string]*provider.Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*provider.Session),
	}
}

// Add stores the session under its own ID and returns that ID.
func (r *SessionRegistry) Add(session *provider.Session) string {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.sessions[session.ID] = session

	return session.ID
}

func (r *SessionRegistry) Get(id string) (*provider.Session, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	session, ok := r.sessions[id]

	return session, ok
}
