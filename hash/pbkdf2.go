package hash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	minPBKDF2Iterations = 100_000
	minPBKDF2SaltLength = 16
	minPBKDF2KeyLength  = 16
	pbkdf2PayloadTag    = "pbkdf2-sha256"
)

// PBKDF2Params defines a public type used by goPassword APIs.
//
// PBKDF2Params instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type PBKDF2Params struct {
	Iterations int
	SaltLength uint32
	KeyLength  uint32
}

// DefaultPBKDF2Params describes the defaultpbkdf2params operation and its observable behavior.
//
// DefaultPBKDF2Params does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func DefaultPBKDF2Params() PBKDF2Params {
	return PBKDF2Params{
		Iterations: 600_000,
		SaltLength: 16,
		KeyLength:  32,
	}
}

// PBKDF2 defines a public type used by goPassword APIs.
//
// PBKDF2 instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// The digest function is fixed to SHA-256. A deployment that wants a
// different digest registers a separate hasher under a separate algorithm id.
type PBKDF2 struct {
	params PBKDF2Params
}

// NewPBKDF2 describes the newpbkdf2 operation and its observable behavior.
//
// NewPBKDF2 may return an error when input validation, dependency calls, or security checks fail.
// NewPBKDF2 does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewPBKDF2(params PBKDF2Params) (*PBKDF2, error) {
	if params.Iterations < minPBKDF2Iterations {
		return nil, fmt.Errorf("%w: pbkdf2 iterations must be >= %d",
			ErrInvalidParams, minPBKDF2Iterations)
	}
	if params.SaltLength < minPBKDF2SaltLength {
		return nil, fmt.Errorf("%w: pbkdf2 salt length must be >= 16", ErrInvalidParams)
	}
	if params.KeyLength < minPBKDF2KeyLength {
		return nil, fmt.Errorf("%w: pbkdf2 key length must be >= 16", ErrInvalidParams)
	}

	return &PBKDF2{params: params}, nil
}

// Hash describes the hash operation and its observable behavior.
//
// Hash may return an error when input validation, dependency calls, or security checks fail.
// Hash does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (p *PBKDF2) Hash(plaintext string) (string, error) {
	salt, err := randomSalt(p.params.SaltLength)
	if err != nil {
		return "", err
	}

	hash := pbkdf2.Key([]byte(plaintext), salt, p.params.Iterations, int(p.params.KeyLength), sha256.New)

	saltEncoded := base64.StdEncoding.EncodeToString(salt)
	hashEncoded := base64.StdEncoding.EncodeToString(hash)

	return fmt.Sprintf(
		"$%s$i=%d$%s$%s",
		pbkdf2PayloadTag,
		p.params.Iterations,
		saltEncoded,
		hashEncoded,
	), nil
}

// Verify describes the verify operation and its observable behavior.
//
// Verify may return an error when input validation, dependency calls, or security checks fail.
// Verify does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (p *PBKDF2) Verify(plaintext, payload string) (bool, error) {
	parts := strings.Split(payload, "$")
	if len(parts) != 5 || parts[0] != "" {
		return false, fmt.Errorf("%w: invalid pbkdf2 format", ErrMalformedPayload)
	}
	if parts[1] != pbkdf2PayloadTag {
		return false, fmt.Errorf("%w: unsupported algorithm tag", ErrMalformedPayload)
	}

	if !strings.HasPrefix(parts[2], "i=") {
		return false, fmt.Errorf("%w: missing iteration count", ErrMalformedPayload)
	}
	iterations, err := strconv.Atoi(strings.TrimPrefix(parts[2], "i="))
	if err != nil || iterations < 1 {
		return false, fmt.Errorf("%w: invalid iteration count", ErrMalformedPayload)
	}

	salt, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil {
		return false, fmt.Errorf("%w: invalid salt encoding", ErrMalformedPayload)
	}
	if len(salt) < minPBKDF2SaltLength {
		return false, fmt.Errorf("%w: invalid salt length", ErrMalformedPayload)
	}

	hash, err := base64.StdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: invalid hash encoding", ErrMalformedPayload)
	}
	if len(hash) == 0 {
		return false, fmt.Errorf("%w: invalid hash length", ErrMalformedPayload)
	}

	computed := pbkdf2.Key([]byte(plaintext), salt, iterations, len(hash), sha256.New)

	return subtle.ConstantTimeCompare(computed, hash) == 1, nil
}
