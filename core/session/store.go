package session

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github.com/siakad-id/siakad/core"
)

var errIncomplete = errors.New("session: identity and token are both required")

// Store is the single source of truth for who is logged in and the
// credential used to authorize API calls. A session is authenticated iff
// both identity and token are present; partial state is never visible.
type Store struct {
	mu       sync.RWMutex
	keyring  Keyring
	logger   core.Logger
	identity *Identity
	token    string
}

// NewStore restores any persisted session from the keyring. Missing keys,
// malformed identity records and keyring read failures all leave the store
// cleared; restoration never fails.
func NewStore(keyring Keyring, logger core.Logger) *Store {
	s := &Store{keyring: keyring, logger: logger}
	s.restore()
	return s
}

func (s *Store) restore() {
	token, err := s.keyring.Get(KeyToken)
	if err != nil {
		if err != ErrKeyNotFound {
			s.logger.Warn("session: reading persisted token", err)
		}
		// identity without token is treated as unauthenticated
		s.Clear()
		return
	}

	raw, err := s.keyring.Get(KeyCurrentUser)
	if err != nil {
		if err != ErrKeyNotFound {
			s.logger.Warn("session: reading persisted identity", err)
		}
		// token without identity is treated as unauthenticated
		s.Clear()
		return
	}

	var idt Identity
	if err = json.Unmarshal([]byte(raw), &idt); err != nil {
		s.logger.Warn("session: discarding malformed persisted identity", err)
		s.Clear()
		return
	}
	if token == "" || !idt.WellFormed() {
		s.Clear()
		return
	}

	s.mu.Lock()
	s.identity = &idt
	s.token = token
	s.mu.Unlock()
}

// Set stores the identity and token in memory and in the keyring.
// On persistence failure the store is left cleared, never half-populated.
func (s *Store) Set(idt Identity, token string) error {
	if token == "" || !idt.WellFormed() {
		return errIncomplete
	}

	raw, err := json.Marshal(idt)
	if err != nil {
		return errors.Wrap(err, "encoding identity")
	}

	if err = s.keyring.Set(KeyToken, token); err != nil {
		s.Clear()
		return errors.Wrap(err, "persisting token")
	}
	if err = s.keyring.Set(KeyCurrentUser, string(raw)); err != nil {
		s.Clear()
		return errors.Wrap(err, "persisting identity")
	}

	s.mu.Lock()
	s.identity = &idt
	s.token = token
	s.mu.Unlock()
	return nil
}

// Clear removes the session from memory and from the keyring. It is
// idempotent; persistence failures are reported for diagnostics only.
func (s *Store) Clear() {
	s.mu.Lock()
	s.identity = nil
	s.token = ""
	s.mu.Unlock()

	for _, key := range []string{KeyToken, KeyCurrentUser} {
		if err := s.keyring.Delete(key); err != nil && err != ErrKeyNotFound {
			s.logger.Warn("session: clearing persisted "+key, err)
		}
	}
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil && s.token != ""
}

// Identity returns a copy of the current identity, if any.
func (s *Store) Identity() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

// Token returns the current credential token, or "" when logged out.
// It is meant to be passed as a token source to the HTTP client.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) HasRole(name string) bool {
	idt, ok := s.Identity()
	return ok && idt.HasRole(name)
}

func (s *Store) HasPermission(name string) bool {
	idt, ok := s.Identity()
	return ok && idt.HasPermission(name)
}
