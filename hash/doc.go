// Package hash implements the concrete password hashing algorithms dispatched
// to by the goPassword delegating encoder.
//
// # Payload formats
//
// Every adaptive hasher produces a self-describing payload: the salt and the
// cost parameters used at hash time are serialized into the payload itself,
// so Verify never needs externally supplied metadata.
//
//	Argon2:  $argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<hash>
//	Bcrypt:  $2a$<cost>$<salt+hash>          (modular crypt format)
//	Scrypt:  $scrypt$ln=<log2 N>,r=<r>,p=<p>$<salt>$<hash>
//	PBKDF2:  $pbkdf2-sha256$i=<iterations>$<salt>$<hash>
//
// Verification always recomputes the digest with the parameters parsed from
// the stored payload and compares with a constant-time comparison.
//
// # Parameter immutability
//
// A hasher's parameters are fixed at construction and validated there. The
// delegating encoder registers each hasher under a stable algorithm id;
// raising cost parameters means constructing a new hasher and registering it
// under a new id, never mutating an existing one.
//
// # Architecture boundaries
//
// This package owns hashing and verification only. Algorithm selection,
// migration, and credential storage are the concern of the root package and
// its collaborators.
//
// # What this package must NOT do
//
//   - Store or retrieve credentials — callers supply plaintext and receive payloads.
//   - Import any other goPassword package.
//   - Log plaintext passwords or hash parameters at runtime.
package hash
