// Package goPassword provides algorithm-agile password hashing and
// verification built around a delegating encoder: credentials are stored as
// {id}payload, matched by the algorithm the id names, and opportunistically
// re-encoded with the preferred algorithm on successful authentication.
//
// The package is designed for concurrent server workloads: Encoder methods
// are safe to call from multiple goroutines after initialization through
// [Builder.Build]. The algorithm registry is frozen at Build and never
// mutated, so verification requests share no mutable state.
//
// # Storage format
//
// An encoded credential is the ASCII prefix '{' + algorithm id + '}'
// followed by an algorithm-specific, fully self-describing payload:
//
//	{argon2id}$argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>
//	{bcrypt}$2a$12$...
//
// The payload embeds the salt and the cost parameters used at encode time,
// so cost parameters can be raised for new credentials (under a new id)
// without invalidating old ones.
//
// # Architecture boundaries
//
// goPassword is the public surface. It exposes [Encoder], [Builder],
// [Config], and value types (MatchResult, MetricsSnapshot, AuditEvent).
// Algorithm primitives live in hash/; the account-store collaborator in
// store/; metric export in metrics/export/.
//
// # What this package must NOT do
//
//   - Issue sessions or tokens, enforce password policy, or rate-limit
//     verification attempts — those belong to calling collaborators.
//   - Log or audit plaintext passwords, salts, or digests.
//   - Treat an unresolvable algorithm id as a wrong password: resolution
//     failures are typed errors so callers fail closed and alert loudly.
//
// # Performance contract
//
// Encode and Matches perform CPU- and memory-bound work proportional to the
// resolved algorithm's cost factor (target 100-500 ms per verification).
// Callers on latency-critical dispatch loops must run them on a worker pool.
// Neither operation observes cancellation mid-hash; a caller-imposed timeout
// is a failed authentication, not an interrupted one.
package goPassword
