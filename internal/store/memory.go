package store

import (
	"context"
	"sync"

	"github.com/jonathan/career-coach/internal/types"
)

// MemoryStore keeps state in process memory. Used in tests and for runs
// where persistence is explicitly disabled.
type MemoryStore struct {
	mu       sync.Mutex
	contexts map[string]*types.ConversationContext
	sessions map[string]*types.InterviewSession
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		contexts: map[string]*types.ConversationContext{},
		sessions: map[string]*types.InterviewSession{},
	}
}

func (s *MemoryStore) LoadContexts(context.Context) (map[string]*types.ConversationContext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]*types.ConversationContext, len(s.contexts))
	for k, v := range s.contexts {
		out[k] = v
	}
	return out, nil
}

func (s *MemoryStore) SaveContexts(_ context.Context, contexts map[string]*types.ConversationContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contexts = make(map[string]*types.ConversationContext, len(contexts))
	for k, v := range contexts {
		s.contexts[k] = v
	}
	return nil
}

func (s *MemoryStore) LoadSessions(context.Context) (map[string]*types.InterviewSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]*types.InterviewSession, len(s.sessions))
	for k, v := range s.sessions {
		out[k] = v
	}
	return out, nil
}

func (s *MemoryStore) SaveSessions(_ context.Context, sessions map[string]*types.InterviewSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = make(map[string]*types.InterviewSession, len(sessions))
	for k, v := range sessions {
		s.sessions[k] = v
	}
	return nil
}

func (s *MemoryStore) Close() error { return nil }
