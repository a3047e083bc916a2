package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/career-coach/internal/types"
)

// PostgresStore keeps per-user state as JSONB rows keyed by user ID.
// Expected schema:
//
//	CREATE TABLE IF NOT EXISTS user_contexts (
//	    user_id    TEXT PRIMARY KEY,
//	    content    JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
//	CREATE TABLE IF NOT EXISTS interview_sessions (
//	    user_id    TEXT PRIMARY KEY,
//	    content    JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects a pool and verifies the connection.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// LoadContexts reads every stored conversation context.
func (s *PostgresStore) LoadContexts(ctx context.Context) (map[string]*types.ConversationContext, error) {
	rows, err := s.pool.Query(ctx, `SELECT user_id, content FROM user_contexts`)
	if err != nil {
		return nil, &LoadError{Collection: "user contexts", Cause: err}
	}
	defer rows.Close()

	contexts := map[string]*types.ConversationContext{}
	for rows.Next() {
		var userID string
		var content []byte
		if err := rows.Scan(&userID, &content); err != nil {
			return nil, &LoadError{Collection: "user contexts", Cause: err}
		}
		var cc types.ConversationContext
		if err := json.Unmarshal(content, &cc); err != nil {
			return nil, &LoadError{Collection: "user contexts", Cause: err}
		}
		contexts[userID] = &cc
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Collection: "user contexts", Cause: err}
	}
	return contexts, nil
}

// SaveContexts upserts every context and removes rows for absent users, all
// in one transaction.
func (s *PostgresStore) SaveContexts(ctx context.Context, contexts map[string]*types.ConversationContext) error {
	return s.saveAll(ctx, "user_contexts", "user contexts", toJSONMap(contexts))
}

// LoadSessions reads every stored interview session.
func (s *PostgresStore) LoadSessions(ctx context.Context) (map[string]*types.InterviewSession, error) {
	rows, err := s.pool.Query(ctx, `SELECT user_id, content FROM interview_sessions`)
	if err != nil {
		return nil, &LoadError{Collection: "interview sessions", Cause: err}
	}
	defer rows.Close()

	sessions := map[string]*types.InterviewSession{}
	for rows.Next() {
		var userID string
		var content []byte
		if err := rows.Scan(&userID, &content); err != nil {
			return nil, &LoadError{Collection: "interview sessions", Cause: err}
		}
		var is types.InterviewSession
		if err := json.Unmarshal(content, &is); err != nil {
			return nil, &LoadError{Collection: "interview sessions", Cause: err}
		}
		sessions[userID] = &is
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Collection: "interview sessions", Cause: err}
	}
	return sessions, nil
}

// SaveSessions upserts every session and removes rows for absent users.
func (s *PostgresStore) SaveSessions(ctx context.Context, sessions map[string]*types.InterviewSession) error {
	return s.saveAll(ctx, "interview_sessions", "interview sessions", toJSONMap(sessions))
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

func toJSONMap[T any](m map[string]*T) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *PostgresStore) saveAll(ctx context.Context, table, collection string, values map[string]any) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return &SaveError{Collection: collection, Cause: err}
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM `+table); err != nil {
		return &SaveError{Collection: collection, Cause: err}
	}

	for userID, value := range values {
		content, err := json.Marshal(value)
		if err != nil {
			return &SaveError{Collection: collection, Cause: err}
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO `+table+` (user_id, content, updated_at)
			 VALUES ($1, $2, NOW())
			 ON CONFLICT (user_id) DO UPDATE SET content = $2, updated_at = NOW()`,
			userID, content,
		)
		if err != nil {
			return &SaveError{Collection: collection, Cause: err}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return &SaveError{Collection: collection, Cause: err}
	}
	return nil
}
