// Package store persists per-user conversation contexts and interview
// sessions. Two implementations exist: a JSON file store with timestamped
// backups for single-node deployments, and a Postgres store for shared ones.
package store

import (
	"context"
	"fmt"

	"github.com/jonathan/career-coach/internal/types"
)

// Store loads and saves the full per-user state maps. Implementations
// overwrite whole collections; callers own in-memory mutation and decide
// when to flush.
type Store interface {
	LoadContexts(ctx context.Context) (map[string]*types.ConversationContext, error)
	SaveContexts(ctx context.Context, contexts map[string]*types.ConversationContext) error
	LoadSessions(ctx context.Context) (map[string]*types.InterviewSession, error)
	SaveSessions(ctx context.Context, sessions map[string]*types.InterviewSession) error
	Close() error
}

// SaveError wraps a failed persistence attempt with the collection involved.
type SaveError struct {
	Collection string
	Cause      error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save %s: %v", e.Collection, e.Cause)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}

// LoadError wraps a failed load with the collection involved.
type LoadError struct {
	Collection string
	Cause      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Collection, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
