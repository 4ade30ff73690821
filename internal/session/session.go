// Package session manages the persisted login session for the moderation API.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Session is the authenticated identity: a bearer token and the email it was
// issued for. Both fields are always persisted and cleared together.
type Session struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// state is the on-disk shape. The last analyzed record id rides along so
// follow-up commands (favorite, report) can target the most recent analysis;
// it is overwritten by each analysis and removed wholesale on logout.
type state struct {
	Token        string `json:"token"`
	Email        string `json:"email"`
	LastRecordID string `json:"last_record_id,omitempty"`
}

// Store persists session state as a JSON file in the config directory.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted state. A missing file is not an error: it means
// no session exists (guest mode).
func (s *Store) Load() (state, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return state{}, nil
		}
		return state{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		// A corrupted session file is treated as no session rather than
		// locking the user out of the tool.
		return state{}, nil
	}
	return st, nil
}

// Save writes the state atomically: temp file then rename, so a crash can
// never leave the token without the email or vice versa.
func (s *Store) Save(st state) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("failed to create temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to set session file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close session file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}

// Clear removes the session file. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// Manager is the sole access path to session state. Components never touch
// the store directly; login, logout and the 401-forced teardown are the only
// mutation paths.
type Manager struct {
	store *Store
	st    state
	mu    sync.RWMutex
}

// NewManager loads the persisted session and returns a manager over it.
func NewManager(store *Store) (*Manager, error) {
	st, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Manager{store: store, st: st}, nil
}

// Current returns the active session, or nil in guest mode. A session is
// active only when both token and email are present.
func (m *Manager) Current() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.st.Token == "" || m.st.Email == "" {
		return nil
	}
	return &Session{Token: m.st.Token, Email: m.st.Email}
}

// IsAuthenticated reports whether a session is active.
func (m *Manager) IsAuthenticated() bool {
	return m.Current() != nil
}

// Token returns the bearer token, or "" in guest mode.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.st.Token == "" || m.st.Email == "" {
		return ""
	}
	return m.st.Token
}

// Login persists the token and email together and activates the session.
func (m *Manager) Login(token, email string) error {
	if token == "" || email == "" {
		return fmt.Errorf("token and email are both required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	st := state{Token: token, Email: email}
	if err := m.store.Save(st); err != nil {
		return err
	}
	m.st = st
	return nil
}

// Logout clears the session and everything that rides along with it,
// including the last analyzed record id.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		return err
	}
	m.st = state{}
	return nil
}

// LastRecordID returns the identifier of the most recent analysis, if any.
func (m *Manager) LastRecordID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.st.LastRecordID
}

// SetLastRecordID records the identifier of the most recent analysis. Each
// new analysis overwrites the previous value.
func (m *Manager) SetLastRecordID(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.st
	st.LastRecordID = id
	if err := m.store.Save(st); err != nil {
		return err
	}
	m.st = st
	return nil
}
