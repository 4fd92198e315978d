package hash

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultBcryptCost is an exported constant or variable used by the credential hashers.
	//
	// Cost 12 lands near the middle of the 100-500 ms verification window on
	// current server hardware. Raise it (under a new algorithm id) as
	// hardware improves.
	DefaultBcryptCost = 12
)

// BcryptParams defines a public type used by goPassword APIs.
//
// BcryptParams instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type BcryptParams struct {
	Cost int
}

// DefaultBcryptParams describes the defaultbcryptparams operation and its observable behavior.
//
// DefaultBcryptParams does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func DefaultBcryptParams() BcryptParams {
	return BcryptParams{Cost: DefaultBcryptCost}
}

// Bcrypt defines a public type used by goPassword APIs.
//
// Bcrypt instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// The bcrypt payload is the modular crypt format string produced by the
// algorithm itself; salt generation and cost embedding are handled inside
// the primitive, and comparison inside the primitive is constant-time.
type Bcrypt struct {
	params BcryptParams
}

// NewBcrypt describes the newbcrypt operation and its observable behavior.
//
// NewBcrypt may return an error when input validation, dependency calls, or security checks fail.
// NewBcrypt does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewBcrypt(params BcryptParams) (*Bcrypt, error) {
	if params.Cost < bcrypt.MinCost || params.Cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: bcrypt cost %d must be in [%d, %d]",
			ErrInvalidParams, params.Cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &Bcrypt{params: params}, nil
}

// Hash describes the hash operation and its observable behavior.
//
// Hash may return an error when input validation, dependency calls, or security checks fail.
// Hash does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	// bcrypt rejects inputs over 72 bytes rather than silently truncating.
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.params.Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify describes the verify operation and its observable behavior.
//
// Verify may return an error when input validation, dependency calls, or security checks fail.
// Verify does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Bcrypt) Verify(plaintext, payload string) (bool, error) {
	if !looksLikeBcrypt(payload) {
		return false, fmt.Errorf("%w: not a bcrypt payload", ErrMalformedPayload)
	}

	err := bcrypt.CompareHashAndPassword([]byte(payload), []byte(plaintext))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	return true, nil
}

func looksLikeBcrypt(payload string) bool {
	return strings.HasPrefix(payload, "$2a$") ||
		strings.HasPrefix(payload, "$2b$") ||
		strings.HasPrefix(payload, "$2y$")
}
