package session

import (
	"context"
	"sync"
	"time"

	"estimaflow/internal/domain/entities"
	"estimaflow/internal/logger"
	"estimaflow/internal/usecase/interfaces"
)

// MemoryStore keeps sessions in process memory. Expired sessions are dropped
// lazily on Get and periodically by the janitor started with StartJanitor.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entities.Session
	now      func() time.Time
}

var _ interfaces.ISessionStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]entities.Session), now: time.Now}
}

func (s *MemoryStore) Save(_ context.Context, sess entities.Session) error {
	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (entities.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return entities.Session{}, nil
	}
	if sess.Expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return entities.Session{}, nil
	}
	return sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// Len reports how many sessions are held, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes every expired session and returns how many were dropped.
func (s *MemoryStore) Sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for token, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, token)
			n++
		}
	}
	return n
}

// StartJanitor sweeps every interval until ctx is cancelled.
func (s *MemoryStore) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					logger.Global().Debug().Int("removed", n).Msg("expired sessions swept")
				}
			}
		}
	}()
}
