// Package store implements the account-store collaborator consumed by the
// goPassword encoder: durable storage of encoded credentials keyed by
// identity, plus an Authenticator that binds an encoder to a store for the
// common load-verify-upgrade login sequence.
//
// Two implementations ship with the package: [RedisStore] for deployments
// and [MemoryStore] for tests and embedding. Both persist the encoded
// credential string bit-exact; the storage format is owned by the root
// package and is opaque here.
//
// # What this package must NOT do
//
//   - Inspect or parse encoded credentials.
//   - See plaintext passwords outside of [Authenticator.Authenticate]'s
//     pass-through to the encoder.
package store
