package calcana

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Storage keys, kept identical to the ones the web frontend used in
// localStorage so both clients can describe the same persisted layout.
const (
	credentialKey   = "calcana_token"
	logoutReasonKey = "calcana_logout_reason"
)

// TokenStore owns durability of the raw credential string plus the one-shot
// logout-reason slot. Operations are total: a store that cannot read reports
// the value as absent, and clearing an already-empty store is a no-op.
//
// The store never interprets the credential; decoding belongs to
// DeriveClaims.
type TokenStore interface {
	// Save writes the credential, replacing any previous one.
	Save(credential string)
	// Load returns the stored credential, or ok == false when absent.
	Load() (credential string, ok bool)
	// Clear removes the credential. Safe to call repeatedly.
	Clear()

	// SetLogoutReason fills the transient reason slot shown by the login
	// entry point on its next render.
	SetLogoutReason(reason string)
	// ConsumeLogoutReason reads and removes the pending reason, if any.
	ConsumeLogoutReason() (reason string, ok bool)
}

// FileTokenStore persists each key as a small file under a directory,
// surviving process restarts until explicitly cleared.
type FileTokenStore struct {
	dir string
}

// NewFileTokenStore builds a store rooted at dir. An empty dir selects
// the user config directory (e.g. ~/.config/calcana).
func NewFileTokenStore(dir string) *FileTokenStore {
	if dir == "" {
		if base, err := os.UserConfigDir(); err == nil {
			dir = filepath.Join(base, "calcana")
		} else {
			dir = ".calcana"
		}
	}
	return &FileTokenStore{dir: dir}
}

func (s *FileTokenStore) Save(credential string) { s.write(credentialKey, credential) }

func (s *FileTokenStore) Load() (string, bool) { return s.read(credentialKey) }

func (s *FileTokenStore) Clear() { s.remove(credentialKey) }

func (s *FileTokenStore) SetLogoutReason(reason string) { s.write(logoutReasonKey, reason) }

func (s *FileTokenStore) ConsumeLogoutReason() (string, bool) {
	reason, ok := s.read(logoutReasonKey)
	if ok {
		s.remove(logoutReasonKey)
	}
	return reason, ok
}

func (s *FileTokenStore) write(key, value string) {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return
	}
	_ = os.WriteFile(filepath.Join(s.dir, key), []byte(value), 0o600)
}

func (s *FileTokenStore) read(key string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(string(data))
	if value == "" {
		return "", false
	}
	return value, true
}

func (s *FileTokenStore) remove(key string) {
	_ = os.Remove(filepath.Join(s.dir, key))
}

// MemoryTokenStore keeps the credential in process memory. Useful for
// embedding the SDK in services that manage their own persistence, and for
// tests.
type MemoryTokenStore struct {
	mu         sync.Mutex
	credential string
	reason     string
	hasCred    bool
	hasReason  bool
}

// NewMemoryTokenStore returns an empty in-memory store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Save(credential string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = credential
	s.hasCred = credential != ""
}

func (s *MemoryTokenStore) Load() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential, s.hasCred
}

func (s *MemoryTokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = ""
	s.hasCred = false
}

func (s *MemoryTokenStore) SetLogoutReason(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reason = reason
	s.hasReason = true
}

func (s *MemoryTokenStore) ConsumeLogoutReason() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reason, ok := s.reason, s.hasReason
	s.reason = ""
	s.hasReason = false
	return reason, ok
}
