package hash

import "crypto/subtle"

// Noop defines a public type used by goPassword APIs.
//
// Noop instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// Noop stores the plaintext unchanged. It exists to keep pre-migration
// plaintext fixtures verifiable while they are upgraded; the builder refuses
// it as the preferred algorithm unless the insecure override is set.
type Noop struct{}

// NewNoop describes the newnoop operation and its observable behavior.
//
// NewNoop does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewNoop() *Noop {
	return &Noop{}
}

// Hash describes the hash operation and its observable behavior.
//
// Hash does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (*Noop) Hash(plaintext string) (string, error) {
	return plaintext, nil
}

// Verify describes the verify operation and its observable behavior.
//
// Verify does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (*Noop) Verify(plaintext, payload string) (bool, error) {
	return subtle.ConstantTimeCompare([]byte(plaintext), []byte(payload)) == 1, nil
}

// InsecurePlaintext reports that this hasher performs no one-way
// transformation. The delegating encoder's builder checks for this marker
// when validating the preferred algorithm.
func (*Noop) InsecurePlaintext() bool {
	return true
}
