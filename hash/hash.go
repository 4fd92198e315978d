package hash

import (
	"crypto/rand"
	"errors"
	"io"
)

var (
	// ErrMalformedPayload is an exported constant or variable used by the credential hashers.
	ErrMalformedPayload = errors.New("malformed hash payload")
	// ErrInvalidParams is an exported constant or variable used by the credential hashers.
	ErrInvalidParams = errors.New("invalid hash parameters")
)

// Hasher defines a public type used by goPassword APIs.
//
// Hasher instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// Hash produces a self-describing payload for the given plaintext with a
// fresh random salt. Verify recomputes the digest using the salt and cost
// parameters parsed out of payload and reports whether plaintext matches.
// Verify returns (false, nil) for a well-formed mismatch and a non-nil error
// wrapping [ErrMalformedPayload] when payload cannot be parsed.
//
// All implementations are safe for concurrent use.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, payload string) (bool, error)
}

func randomSalt(length uint32) ([]byte, error) {
	salt := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}
