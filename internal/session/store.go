package session

import (
	"encoding/json"
	"os"
	"sync"

	"voltswap_client/internal/models"
)

// Store holds the bearer token and cached profile between calls. It is the
// explicit stand-in for browser local/session storage: the memory store
// lives for one run, the file store survives restarts ("remember me").
type Store interface {
	Token() string
	SetToken(token string) error
	Profile() *models.Account
	SetProfile(acc *models.Account) error
	Clear() error
}

type MemoryStore struct {
	mu      sync.Mutex
	token   string
	profile *models.Account
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Profile() *models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

func (s *MemoryStore) SetProfile(acc *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = acc
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.profile = nil
	return nil
}

type fileState struct {
	Token   string          `json:"token"`
	Profile *models.Account `json:"profile,omitempty"`
}

// FileStore persists the session as JSON on every write.
type FileStore struct {
	mu    sync.Mutex
	path  string
	state fileState
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, &s.state); err != nil {
		// Corrupt session file: start over rather than refuse to boot.
		s.state = fileState{}
	}
	return s, nil
}

func (s *FileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = token
	return s.flush()
}

func (s *FileStore) Profile() *models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Profile
}

func (s *FileStore) SetProfile(acc *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Profile = acc
	return s.flush()
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fileState{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *FileStore) flush() error {
	b, err := json.Marshal(s.state)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0600)
}
