package goPassword

import "context"

// AlgorithmID identifies one registered hashing algorithm. An id is a short
// stable key, unique in the registry and immutable once registered; changing
// a registered algorithm's cost parameters requires minting a new id.
//
// Ids must not contain '{' or '}' because they are embedded in the stored
// credential prefix.
type AlgorithmID string

const (
	// AlgorithmArgon2 is an exported constant or variable used by the credential encoder.
	AlgorithmArgon2 AlgorithmID = "argon2id"
	// AlgorithmBcrypt is an exported constant or variable used by the credential encoder.
	AlgorithmBcrypt AlgorithmID = "bcrypt"
	// AlgorithmScrypt is an exported constant or variable used by the credential encoder.
	AlgorithmScrypt AlgorithmID = "scrypt"
	// AlgorithmPBKDF2 is an exported constant or variable used by the credential encoder.
	AlgorithmPBKDF2 AlgorithmID = "pbkdf2-sha256"
	// AlgorithmNoop is an exported constant or variable used by the credential encoder.
	AlgorithmNoop AlgorithmID = "noop"
)

// MatchResult defines a public type used by goPassword APIs.
//
// MatchResult instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// NeedsUpgrade is only set on a successful match: it reports that the stored
// credential was produced by a registered algorithm other than the preferred
// one and should be re-encoded while the plaintext is still on the call
// stack.
type MatchResult struct {
	Matched      bool
	NeedsUpgrade bool
	Algorithm    AlgorithmID
}

// PersistFunc defines a public type used by goPassword APIs.
//
// PersistFunc receives the freshly encoded credential produced during an
// opportunistic upgrade and must write it to the caller's account store.
type PersistFunc func(ctx context.Context, encoded string) error
