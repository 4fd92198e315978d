package store

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})

	return NewRedisStore(rdb, "credtest")
}

func TestRedisStoreRoundTrip(t *testing.T) {
	s := newTestRedisStore(t)
	ctx := context.Background()

	const encoded = "{bcrypt}$2a$12$abcdefghijklmnopqrstuv"
	if err := s.Save(ctx, "user-1", encoded); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := s.Load(ctx, "user-1")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != encoded {
		t.Fatalf("expected bit-exact round trip, got %q", got)
	}
}

func TestRedisStoreNotFound(t *testing.T) {
	s := newTestRedisStore(t)

	if _, err := s.Load(context.Background(), "missing"); !errors.Is(err, ErrCredentialNotFound) {
		t.Fatalf("expected ErrCredentialNotFound, got %v", err)
	}
}

func TestRedisStoreOverwrite(t *testing.T) {
	s := newTestRedisStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "user-1", "{noop}old"); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := s.Save(ctx, "user-1", "{bcrypt}new"); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := s.Load(ctx, "user-1")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != "{bcrypt}new" {
		t.Fatalf("expected overwritten credential, got %q", got)
	}
}

func TestRedisStoreDelete(t *testing.T) {
	s := newTestRedisStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "user-1", "{bcrypt}x"); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := s.Delete(ctx, "user-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := s.Load(ctx, "user-1"); !errors.Is(err, ErrCredentialNotFound) {
		t.Fatalf("expected ErrCredentialNotFound after delete, got %v", err)
	}
}

func TestRedisStoreKeyIsolation(t *testing.T) {
	s := newTestRedisStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "user-1", "{bcrypt}first"); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := s.Save(ctx, "user-2", "{bcrypt}second"); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := s.Load(ctx, "user-1")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != "{bcrypt}first" {
		t.Fatalf("expected user-1 credential, got %q", got)
	}
}
