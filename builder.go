package goPassword

import (
	"errors"
	"fmt"

	"github.com/MrEthical07/goPassword/hash"
)

type insecureHasher interface {
	InsecurePlaintext() bool
}

type pendingHasher struct {
	id     AlgorithmID
	hasher hash.Hasher
}

// Builder defines a public type used by goPassword APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config  Config
	pending []pendingHasher

	auditSink AuditSink

	err   error
	built bool
}

// New describes the new operation and its observable behavior.
//
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithHasher describes the withhasher operation and its observable behavior.
//
// WithHasher does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Registrations are validated at Build. Registering the same id twice fails
// there: an id's hasher, cost parameters included, is immutable once
// registered, and new parameters require a new id.
func (b *Builder) WithHasher(id AlgorithmID, h hash.Hasher) *Builder {
	b.pending = append(b.pending, pendingHasher{id: id, hasher: h})
	return b
}

// WithDefaultHashers describes the withdefaulthashers operation and its observable behavior.
//
// WithDefaultHashers does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// WithDefaultHashers registers argon2id, bcrypt, scrypt, and pbkdf2-sha256
// with their recommended default parameters under the standard ids.
func (b *Builder) WithDefaultHashers() *Builder {
	argon2H, err := hash.NewArgon2(hash.DefaultArgon2Params())
	if err != nil {
		b.recordError(fmt.Errorf("default argon2 hasher: %w", err))
		return b
	}
	bcryptH, err := hash.NewBcrypt(hash.DefaultBcryptParams())
	if err != nil {
		b.recordError(fmt.Errorf("default bcrypt hasher: %w", err))
		return b
	}
	scryptH, err := hash.NewScrypt(hash.DefaultScryptParams())
	if err != nil {
		b.recordError(fmt.Errorf("default scrypt hasher: %w", err))
		return b
	}
	pbkdf2H, err := hash.NewPBKDF2(hash.DefaultPBKDF2Params())
	if err != nil {
		b.recordError(fmt.Errorf("default pbkdf2 hasher: %w", err))
		return b
	}

	return b.
		WithHasher(AlgorithmArgon2, argon2H).
		WithHasher(AlgorithmBcrypt, bcryptH).
		WithHasher(AlgorithmScrypt, scryptH).
		WithHasher(AlgorithmPBKDF2, pbkdf2H)
}

// WithPreferred describes the withpreferred operation and its observable behavior.
//
// WithPreferred does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithPreferred(id AlgorithmID) *Builder {
	b.config.Matching.Preferred = id
	return b
}

// WithFallbackAlgorithm describes the withfallbackalgorithm operation and its observable behavior.
//
// WithFallbackAlgorithm does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithFallbackAlgorithm(id AlgorithmID) *Builder {
	b.config.Matching.FallbackAlgorithm = id
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Build freezes the registry and validates the configuration invariants: the
// preferred id must resolve, a plaintext hasher as preferred requires the
// explicit insecure override, and a configured fallback must resolve. Any
// violation is fatal at startup; none is recoverable at match time.
func (b *Builder) Build() (*Encoder, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}
	if b.err != nil {
		return nil, b.err
	}

	if len(b.pending) == 0 {
		return nil, ErrNoHashers
	}

	hashers := make(map[AlgorithmID]hash.Hasher, len(b.pending))
	for _, p := range b.pending {
		if p.hasher == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilHasher, p.id)
		}
		if !validAlgorithmID(p.id) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAlgorithmID, p.id)
		}
		if _, exists := hashers[p.id]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAlgorithm, p.id)
		}
		hashers[p.id] = p.hasher
	}

	cfg := b.config

	preferred, ok := hashers[cfg.Matching.Preferred]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPreferredNotRegistered, cfg.Matching.Preferred)
	}

	if ih, isInsecure := preferred.(insecureHasher); isInsecure && ih.InsecurePlaintext() {
		if !cfg.Matching.AllowInsecurePreferred {
			return nil, fmt.Errorf("%w: %q", ErrInsecurePreferred, cfg.Matching.Preferred)
		}
	}

	if cfg.Matching.FallbackAlgorithm != "" {
		if _, ok := hashers[cfg.Matching.FallbackAlgorithm]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrFallbackNotRegistered, cfg.Matching.FallbackAlgorithm)
		}
	}

	encoder := &Encoder{
		config:    cfg,
		registry:  &registry{hashers: hashers},
		preferred: preferred,
		audit:     newAuditDispatcher(cfg.Audit, b.auditSink),
		metrics:   NewMetrics(cfg.Metrics),
	}

	b.built = true
	return encoder, nil
}

func (b *Builder) recordError(err error) {
	if b.err == nil {
		b.err = err
	}
}
