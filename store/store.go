package store

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrCredentialNotFound is an exported constant or variable used by the credential store.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrStoreUnavailable is an exported constant or variable used by the credential store.
	ErrStoreUnavailable = errors.New("credential store unavailable")
)

// CredentialStore defines a public type used by goPassword APIs.
//
// Load returns the encoded credential for identity or an error wrapping
// [ErrCredentialNotFound]. Save overwrites the stored credential. All
// implementations must be safe for concurrent use.
type CredentialStore interface {
	Load(ctx context.Context, identity string) (string, error)
	Save(ctx context.Context, identity, encoded string) error
	Delete(ctx context.Context, identity string) error
}

// MemoryStore defines a public type used by goPassword APIs.
//
// MemoryStore instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MemoryStore struct {
	mu          sync.RWMutex
	credentials map[string]string
}

// NewMemoryStore describes the newmemorystore operation and its observable behavior.
//
// NewMemoryStore does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		credentials: make(map[string]string),
	}
}

// Load describes the load operation and its observable behavior.
//
// Load may return an error when input validation, dependency calls, or security checks fail.
// Load does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *MemoryStore) Load(_ context.Context, identity string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	encoded, ok := s.credentials[identity]
	if !ok {
		return "", ErrCredentialNotFound
	}
	return encoded, nil
}

// Save describes the save operation and its observable behavior.
//
// Save may return an error when input validation, dependency calls, or security checks fail.
// Save does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *MemoryStore) Save(_ context.Context, identity, encoded string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credentials[identity] = encoded
	return nil
}

// Delete describes the delete operation and its observable behavior.
//
// Delete may return an error when input validation, dependency calls, or security checks fail.
// Delete does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *MemoryStore) Delete(_ context.Context, identity string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.credentials, identity)
	return nil
}
