package goPassword

import "errors"

var (
	// ErrUnknownAlgorithm is an exported constant or variable used by the credential encoder.
	//
	// The stored credential names an algorithm id with no registered hasher.
	// This is a credential-migration gap, not a wrong password; callers must
	// fail closed and alert operators.
	ErrUnknownAlgorithm = errors.New("unknown algorithm id")
	// ErrMissingAlgorithmID is an exported constant or variable used by the credential encoder.
	//
	// The stored credential carries no algorithm id and no fallback algorithm
	// is configured for matching.
	ErrMissingAlgorithmID = errors.New("missing algorithm id")
	// ErrMalformedPayload is an exported constant or variable used by the credential encoder.
	ErrMalformedPayload = errors.New("malformed credential payload")
	// ErrUpgradePersist is an exported constant or variable used by the credential encoder.
	ErrUpgradePersist = errors.New("credential upgrade persist failed")

	// ErrNoHashers is an exported constant or variable used by the credential encoder.
	ErrNoHashers = errors.New("no hashers registered")
	// ErrInvalidAlgorithmID is an exported constant or variable used by the credential encoder.
	ErrInvalidAlgorithmID = errors.New("invalid algorithm id")
	// ErrDuplicateAlgorithm is an exported constant or variable used by the credential encoder.
	ErrDuplicateAlgorithm = errors.New("algorithm id already registered")
	// ErrNilHasher is an exported constant or variable used by the credential encoder.
	ErrNilHasher = errors.New("hasher must not be nil")
	// ErrPreferredNotRegistered is an exported constant or variable used by the credential encoder.
	ErrPreferredNotRegistered = errors.New("preferred algorithm not registered")
	// ErrInsecurePreferred is an exported constant or variable used by the credential encoder.
	ErrInsecurePreferred = errors.New("insecure hasher selected as preferred algorithm")
	// ErrFallbackNotRegistered is an exported constant or variable used by the credential encoder.
	ErrFallbackNotRegistered = errors.New("fallback algorithm not registered")
)
