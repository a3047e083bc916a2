package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/career-coach/internal/types"
)

const maxBackupsPerFile = 10

// FileStore persists state as pretty-printed JSON files under a data
// directory. Before each overwrite the previous file is copied into
// data/backups with a timestamp suffix; only the newest ten backups per file
// are kept.
type FileStore struct {
	dataDir   string
	backupDir string
	logger    *zap.Logger
	now       func() time.Time
}

// NewFileStore creates the data and backup directories if needed.
func NewFileStore(dataDir string, logger *zap.Logger) (*FileStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	backupDir := filepath.Join(dataDir, "backups")
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	logger.Info("file store initialized", zap.String("data_dir", dataDir))
	return &FileStore{
		dataDir:   dataDir,
		backupDir: backupDir,
		logger:    logger,
		now:       time.Now,
	}, nil
}

func (s *FileStore) contextsPath() string { return filepath.Join(s.dataDir, "user_contexts.json") }
func (s *FileStore) sessionsPath() string {
	return filepath.Join(s.dataDir, "interview_sessions.json")
}

type contextsFile struct {
	SavedAt   time.Time                             `json:"saved_at"`
	UserCount int                                   `json:"user_count"`
	Contexts  map[string]*types.ConversationContext `json:"contexts"`
}

type sessionsFile struct {
	SavedAt        time.Time                          `json:"saved_at"`
	ActiveSessions int                                `json:"active_sessions"`
	Sessions       map[string]*types.InterviewSession `json:"sessions"`
}

// LoadContexts reads the contexts file. A missing file is an empty map, not
// an error.
func (s *FileStore) LoadContexts(_ context.Context) (map[string]*types.ConversationContext, error) {
	var file contextsFile
	found, err := s.readJSON(s.contextsPath(), &file)
	if err != nil {
		return nil, &LoadError{Collection: "user contexts", Cause: err}
	}
	if !found || file.Contexts == nil {
		return map[string]*types.ConversationContext{}, nil
	}

	s.logger.Info("loaded user contexts",
		zap.Int("count", len(file.Contexts)),
		zap.Time("saved_at", file.SavedAt))
	return file.Contexts, nil
}

// SaveContexts writes all contexts, backing up the previous file first.
func (s *FileStore) SaveContexts(_ context.Context, contexts map[string]*types.ConversationContext) error {
	file := contextsFile{
		SavedAt:   s.now(),
		UserCount: len(contexts),
		Contexts:  contexts,
	}
	if err := s.writeJSON(s.contextsPath(), file); err != nil {
		return &SaveError{Collection: "user contexts", Cause: err}
	}

	s.logger.Info("saved user contexts", zap.Int("count", len(contexts)))
	return nil
}

// LoadSessions reads the interview sessions file.
func (s *FileStore) LoadSessions(_ context.Context) (map[string]*types.InterviewSession, error) {
	var file sessionsFile
	found, err := s.readJSON(s.sessionsPath(), &file)
	if err != nil {
		return nil, &LoadError{Collection: "interview sessions", Cause: err}
	}
	if !found || file.Sessions == nil {
		return map[string]*types.InterviewSession{}, nil
	}

	s.logger.Info("loaded interview sessions",
		zap.Int("count", len(file.Sessions)),
		zap.Time("saved_at", file.SavedAt))
	return file.Sessions, nil
}

// SaveSessions writes all interview sessions, backing up the previous file
// first.
func (s *FileStore) SaveSessions(_ context.Context, sessions map[string]*types.InterviewSession) error {
	file := sessionsFile{
		SavedAt:        s.now(),
		ActiveSessions: len(sessions),
		Sessions:       sessions,
	}
	if err := s.writeJSON(s.sessionsPath(), file); err != nil {
		return &SaveError{Collection: "interview sessions", Cause: err}
	}

	s.logger.Info("saved interview sessions", zap.Int("count", len(sessions)))
	return nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) readJSON(path string, out any) (found bool, err error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("corrupt data file %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

func (s *FileStore) writeJSON(path string, data any) error {
	if _, err := os.Stat(path); err == nil {
		if err := s.backup(path); err != nil {
			s.logger.Warn("failed to back up data file", zap.String("file", path), zap.Error(err))
		}
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

func (s *FileStore) backup(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	stem := strings.TrimSuffix(filepath.Base(path), ".json")
	name := fmt.Sprintf("%s_%s.json", stem, s.now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(s.backupDir, name), raw, 0o644); err != nil {
		return err
	}

	return s.pruneBackups(stem)
}

func (s *FileStore) pruneBackups(stem string) error {
	matches, err := filepath.Glob(filepath.Join(s.backupDir, stem+"_*.json"))
	if err != nil {
		return err
	}
	if len(matches) <= maxBackupsPerFile {
		return nil
	}

	// Timestamped names sort chronologically.
	sort.Strings(matches)
	for _, old := range matches[:len(matches)-maxBackupsPerFile] {
		if err := os.Remove(old); err != nil {
			return err
		}
	}
	return nil
}

// FileInfo describes one data file for Stats.
type FileInfo struct {
	Exists    bool      `json:"exists"`
	SizeBytes int64     `json:"size_bytes,omitempty"`
	Modified  time.Time `json:"modified,omitempty"`
}

// Stats summarizes the store's on-disk footprint.
type Stats struct {
	DataDirectory  string              `json:"data_directory"`
	Files          map[string]FileInfo `json:"files"`
	TotalSizeBytes int64               `json:"total_size_bytes"`
	BackupCount    int                 `json:"backup_count"`
}

// Stats reports sizes and ages of the data files and the backup count.
func (s *FileStore) Stats() Stats {
	stats := Stats{
		DataDirectory: s.dataDir,
		Files:         make(map[string]FileInfo),
	}

	for _, path := range []string{s.contextsPath(), s.sessionsPath()} {
		name := filepath.Base(path)
		info, err := os.Stat(path)
		if err != nil {
			stats.Files[name] = FileInfo{Exists: false}
			continue
		}
		stats.Files[name] = FileInfo{
			Exists:    true,
			SizeBytes: info.Size(),
			Modified:  info.ModTime(),
		}
		stats.TotalSizeBytes += info.Size()
	}

	if backups, err := filepath.Glob(filepath.Join(s.backupDir, "*.json")); err == nil {
		stats.BackupCount = len(backups)
	}
	return stats
}
