package goPassword

import (
	"errors"
	"testing"

	"github.com/MrEthical07/goPassword/hash"
)

func TestBuildRequiresHashers(t *testing.T) {
	if _, err := New().Build(); !errors.Is(err, ErrNoHashers) {
		t.Fatalf("expected ErrNoHashers, got %v", err)
	}
}

func TestBuildRequiresRegisteredPreferred(t *testing.T) {
	_, err := New().
		WithHasher(AlgorithmBcrypt, fastBcrypt(t)).
		WithPreferred("argon2id").
		Build()
	if !errors.Is(err, ErrPreferredNotRegistered) {
		t.Fatalf("expected ErrPreferredNotRegistered, got %v", err)
	}
}

func TestBuildRejectsInsecurePreferred(t *testing.T) {
	_, err := New().
		WithHasher(AlgorithmNoop, hash.NewNoop()).
		WithPreferred(AlgorithmNoop).
		Build()
	if !errors.Is(err, ErrInsecurePreferred) {
		t.Fatalf("expected ErrInsecurePreferred, got %v", err)
	}
}

func TestBuildAllowsInsecurePreferredWithOverride(t *testing.T) {
	cfg := defaultConfig()
	cfg.Matching.Preferred = AlgorithmNoop
	cfg.Matching.AllowInsecurePreferred = true

	encoder, err := New().
		WithConfig(cfg).
		WithHasher(AlgorithmNoop, hash.NewNoop()).
		Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	defer encoder.Close()

	if encoder.Preferred() != AlgorithmNoop {
		t.Fatalf("unexpected preferred id: %q", encoder.Preferred())
	}
}

func TestBuildRejectsDuplicateAlgorithm(t *testing.T) {
	// Re-registering an id is how cost parameters would silently change, so
	// it must fail; new parameters require a new id.
	_, err := New().
		WithHasher(AlgorithmBcrypt, fastBcrypt(t)).
		WithHasher(AlgorithmBcrypt, fastBcrypt(t)).
		WithPreferred(AlgorithmBcrypt).
		Build()
	if !errors.Is(err, ErrDuplicateAlgorithm) {
		t.Fatalf("expected ErrDuplicateAlgorithm, got %v", err)
	}
}

func TestBuildRejectsInvalidAlgorithmID(t *testing.T) {
	for _, id := range []AlgorithmID{"", "bad{id", "bad}id"} {
		_, err := New().
			WithHasher(id, fastBcrypt(t)).
			WithPreferred(id).
			Build()
		if !errors.Is(err, ErrInvalidAlgorithmID) {
			t.Fatalf("id %q: expected ErrInvalidAlgorithmID, got %v", id, err)
		}
	}
}

func TestBuildRejectsNilHasher(t *testing.T) {
	_, err := New().
		WithHasher(AlgorithmBcrypt, nil).
		WithPreferred(AlgorithmBcrypt).
		Build()
	if !errors.Is(err, ErrNilHasher) {
		t.Fatalf("expected ErrNilHasher, got %v", err)
	}
}

func TestBuildRequiresRegisteredFallback(t *testing.T) {
	_, err := New().
		WithHasher(AlgorithmBcrypt, fastBcrypt(t)).
		WithPreferred(AlgorithmBcrypt).
		WithFallbackAlgorithm(AlgorithmNoop).
		Build()
	if !errors.Is(err, ErrFallbackNotRegistered) {
		t.Fatalf("expected ErrFallbackNotRegistered, got %v", err)
	}
}

func TestBuilderSingleUse(t *testing.T) {
	b := New().
		WithHasher(AlgorithmBcrypt, fastBcrypt(t)).
		WithPreferred(AlgorithmBcrypt)

	encoder, err := b.Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	defer encoder.Close()

	if _, err := b.Build(); err == nil {
		t.Fatal("expected second Build to fail")
	}
}

func TestWithDefaultHashers(t *testing.T) {
	encoder, err := New().
		WithDefaultHashers().
		Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	defer encoder.Close()

	ids := encoder.Algorithms()
	if len(ids) != 4 {
		t.Fatalf("expected 4 default algorithms, got %v", ids)
	}
	if encoder.Preferred() != AlgorithmArgon2 {
		t.Fatalf("expected argon2id default preferred, got %q", encoder.Preferred())
	}
}
