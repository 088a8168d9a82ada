// Package session implements the in-memory session store that maps opaque
// session identifiers to user IDs. The store is the only shared mutable state
// in the process: it is built once in main and injected into the components
// that need it, so tests can spin up isolated stores per test case.
//
// Sessions have no expiry and do not survive a restart. The cookie carrying
// the identifier has a client-side Max-Age, but the server keeps an entry
// until it is explicitly deleted (logout, re-login, or a dangling session
// whose user row is gone).
package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// IDLength is the length of a generated session identifier in hex characters.
const IDLength = 32

// Store is a thread-safe mapping from session identifier to user ID.
// A single mutex guards the whole map; each critical section is one map
// operation, so contention is negligible at this scale.
type Store struct {
	mu       sync.Mutex
	sessions map[string]int
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]int),
	}
}

// GenerateID produces a uniformly random 128-bit identifier, hex-encoded into
// a 32-character lowercase string. The bytes come from crypto/rand, so two
// identifiers colliding over the lifetime of the process is not a realistic
// event; Put therefore overwrites without checking.
func GenerateID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Put inserts or overwrites the mapping from id to userID.
func (s *Store) Put(id string, userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = userID
}

// Get returns the user ID mapped to id. A miss is a normal outcome, reported
// through the second return value rather than an error.
func (s *Store) Get(id string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, ok := s.sessions[id]
	return userID, ok
}

// Delete removes the mapping for id if present. Deleting an absent id is a
// no-op, so the operation is idempotent.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len reports the number of live sessions. Used by tests and diagnostics.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
