package hash

import (
	"errors"
	"strings"
	"testing"
)

func TestPBKDF2HashAndVerify(t *testing.T) {
	hasher, err := NewPBKDF2(PBKDF2Params{Iterations: 100_000, SaltLength: 16, KeyLength: 32})
	if err != nil {
		t.Fatalf("NewPBKDF2 error: %v", err)
	}

	payload, err := hasher.Hash("Secr3t!")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if !strings.HasPrefix(payload, "$pbkdf2-sha256$i=100000$") {
		t.Fatalf("unexpected payload prefix: %s", payload)
	}

	ok, err := hasher.Verify("Secr3t!", payload)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatal("expected password verification to succeed")
	}

	ok, err = hasher.Verify("wrong", payload)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ok {
		t.Fatal("expected wrong password verification to fail")
	}
}

func TestPBKDF2VerifyUsesStoredIterations(t *testing.T) {
	old, err := NewPBKDF2(PBKDF2Params{Iterations: 100_000, SaltLength: 16, KeyLength: 32})
	if err != nil {
		t.Fatalf("NewPBKDF2(old) error: %v", err)
	}

	payload, err := old.Hash("test-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	current, err := NewPBKDF2(PBKDF2Params{Iterations: 200_000, SaltLength: 16, KeyLength: 32})
	if err != nil {
		t.Fatalf("NewPBKDF2(current) error: %v", err)
	}

	ok, err := current.Verify("test-password", payload)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatal("expected verification with stored iteration count to succeed")
	}
}

func TestPBKDF2MalformedPayload(t *testing.T) {
	hasher, err := NewPBKDF2(PBKDF2Params{Iterations: 100_000, SaltLength: 16, KeyLength: 32})
	if err != nil {
		t.Fatalf("NewPBKDF2 error: %v", err)
	}

	cases := []string{
		"",
		"plaintext",
		"$pbkdf2-sha256$i=abc$c2FsdHNhbHRzYWx0c2FsdA==$aGFzaA==",
		"$pbkdf2-sha256$c2FsdHNhbHRzYWx0c2FsdA==$aGFzaA==",
		"$pbkdf2-sha256$i=100000$%%%$aGFzaA==",
		"$scrypt$ln=10,r=8,p=1$c2FsdHNhbHRzYWx0c2FsdA==$aGFzaA==",
	}

	for _, payload := range cases {
		if _, err := hasher.Verify("password", payload); !errors.Is(err, ErrMalformedPayload) {
			t.Fatalf("payload %q: expected ErrMalformedPayload, got %v", payload, err)
		}
	}
}

func TestPBKDF2ParamValidation(t *testing.T) {
	cases := []PBKDF2Params{
		{Iterations: 1000, SaltLength: 16, KeyLength: 32},
		{Iterations: 100_000, SaltLength: 4, KeyLength: 32},
		{Iterations: 100_000, SaltLength: 16, KeyLength: 4},
	}

	for i, params := range cases {
		if _, err := NewPBKDF2(params); !errors.Is(err, ErrInvalidParams) {
			t.Fatalf("case %d: expected ErrInvalidParams, got %v", i, err)
		}
	}
}

func TestNoopRoundTrip(t *testing.T) {
	hasher := NewNoop()

	payload, err := hasher.Hash("plain")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if payload != "plain" {
		t.Fatalf("expected identity payload, got %q", payload)
	}

	ok, err := hasher.Verify("plain", payload)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatal("expected identity verification to succeed")
	}

	ok, err = hasher.Verify("other", payload)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ok {
		t.Fatal("expected mismatched identity verification to fail")
	}

	if !hasher.InsecurePlaintext() {
		t.Fatal("expected noop hasher to report the insecure marker")
	}
}
