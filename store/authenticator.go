package store

import (
	"context"
	"errors"
	"fmt"

	goPassword "github.com/MrEthical07/goPassword"
)

// Authenticator defines a public type used by goPassword APIs.
//
// Authenticator instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// Authenticator binds a delegating encoder to a credential store for the
// login sequence: load the stored credential, verify the supplied plaintext,
// and opportunistically persist a preferred-algorithm re-encoding when the
// stored credential was produced by a non-preferred algorithm.
type Authenticator struct {
	encoder *goPassword.Encoder
	store   CredentialStore
}

// NewAuthenticator describes the newauthenticator operation and its observable behavior.
//
// NewAuthenticator may return an error when input validation, dependency calls, or security checks fail.
// NewAuthenticator does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewAuthenticator(encoder *goPassword.Encoder, credStore CredentialStore) (*Authenticator, error) {
	if encoder == nil {
		return nil, errors.New("encoder required")
	}
	if credStore == nil {
		return nil, errors.New("credential store required")
	}
	return &Authenticator{
		encoder: encoder,
		store:   credStore,
	}, nil
}

// Authenticate describes the authenticate operation and its observable behavior.
//
// Authenticate may return an error when input validation, dependency calls, or security checks fail.
// Authenticate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Unknown identity and wrong password both return (false, nil): the response
// shape must not allow identity enumeration. Resolution failures (unknown or
// missing algorithm id, malformed payload) propagate as errors so the caller
// fails closed and operators are alerted; they are configuration gaps, not
// wrong guesses. A failed upgrade persist does not revoke a successful
// authentication: the error wraps goPassword.ErrUpgradePersist alongside
// matched == true.
func (a *Authenticator) Authenticate(ctx context.Context, identity, plaintext string) (bool, error) {
	stored, err := a.store.Load(ctx, identity)
	if errors.Is(err, ErrCredentialNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return a.encoder.VerifyAndUpgrade(ctx, plaintext, stored, func(ctx context.Context, encoded string) error {
		return a.store.Save(ctx, identity, encoded)
	})
}

// Register describes the register operation and its observable behavior.
//
// Register may return an error when input validation, dependency calls, or security checks fail.
// Register does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Register encodes plaintext with the preferred algorithm and stores it for
// identity. It is called on registration and password change.
func (a *Authenticator) Register(ctx context.Context, identity, plaintext string) error {
	encoded, err := a.encoder.Encode(ctx, plaintext)
	if err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}
	return a.store.Save(ctx, identity, encoded)
}
