package store

import (
	"context"
	"sync"

	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/ai-engine/internal/domain"
)

// MemorySessionStore keeps conversation history in-process. Lifetime equals
// the process lifetime; no eviction, no capacity bound. Appends for one
// session are serialized by the store mutex, cross-request ordering between
// racing turns stays caller-defined.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string][]domain.Turn
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string][]domain.Turn),
	}
}

func (s *MemorySessionStore) GetOrCreate(_ context.Context, sessionID string) ([]domain.Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns, ok := s.sessions[sessionID]
	if !ok {
		s.sessions[sessionID] = []domain.Turn{}
		return []domain.Turn{}, nil
	}

	// Copy so callers never observe later appends through a shared slice.
	out := make([]domain.Turn, len(turns))
	copy(out, turns)
	return out, nil
}

func (s *MemorySessionStore) Append(_ context.Context, sessionID string, turn domain.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = append(s.sessions[sessionID], turn)
	return nil
}
