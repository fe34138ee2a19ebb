// Package filestore persists the client session as a JSON file.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/SscSPs/finance_client/internal/core/ports/gateways"
	"github.com/spf13/afero"
)

// SessionFileName is the file written under the state directory.
const SessionFileName = "session.json"

// SessionStore implements gateways.SessionRepository on an afero filesystem.
type SessionStore struct {
	fs   afero.Fs
	path string
	mu   sync.Mutex
}

// NewSessionStore stores the session in dir on fs. A nil fs uses the OS filesystem.
func NewSessionStore(fs afero.Fs, dir string) *SessionStore {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &SessionStore{fs: fs, path: filepath.Join(dir, SessionFileName)}
}

// Path returns the session file location.
func (s *SessionStore) Path() string {
	return s.path
}

func (s *SessionStore) Load(ctx context.Context) (gateways.PersistedSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var session gateways.PersistedSession
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, os.ErrNotExist) {
		return session, nil
	}
	if err != nil {
		return session, fmt.Errorf("reading session file: %w", err)
	}
	if len(data) == 0 {
		return session, nil
	}
	if err := json.Unmarshal(data, &session); err != nil {
		return gateways.PersistedSession{}, fmt.Errorf("decoding session file: %w", err)
	}
	return session, nil
}

// Save writes to a temporary file and renames it over the old one.
func (s *SessionStore) Save(ctx context.Context, session gateways.PersistedSession) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing session file: %w", err)
	}
	return nil
}

// Clear removes the session file. A missing file is not an error.
func (s *SessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}

var _ gateways.SessionRepository = (*SessionStore)(nil)
