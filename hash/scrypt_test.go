package hash

import (
	"errors"
	"strings"
	"testing"
)

func testScryptParams() ScryptParams {
	return ScryptParams{
		LogN:       10,
		R:          8,
		P:          1,
		SaltLength: 16,
		KeyLength:  32,
	}
}

func TestScryptHashAndVerify(t *testing.T) {
	hasher, err := NewScrypt(testScryptParams())
	if err != nil {
		t.Fatalf("NewScrypt error: %v", err)
	}

	payload, err := hasher.Hash("Secr3t!")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if !strings.HasPrefix(payload, "$scrypt$ln=10,r=8,p=1$") {
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

func TestScryptVerifyUsesStoredParams(t *testing.T) {
	weak, err := NewScrypt(testScryptParams())
	if err != nil {
		t.Fatalf("NewScrypt(weak) error: %v", err)
	}

	payload, err := weak.Hash("test-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	strong, err := NewScrypt(ScryptParams{LogN: 12, R: 8, P: 2, SaltLength: 16, KeyLength: 32})
	if err != nil {
		t.Fatalf("NewScrypt(strong) error: %v", err)
	}

	ok, err := strong.Verify("test-password", payload)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatal("expected verification with stored parameters to succeed")
	}
}

func TestScryptMalformedPayload(t *testing.T) {
	hasher, err := NewScrypt(testScryptParams())
	if err != nil {
		t.Fatalf("NewScrypt error: %v", err)
	}

	cases := []string{
		"",
		"plaintext",
		"$scrypt$ln=10,r=8$c2FsdHNhbHRzYWx0c2FsdA==$aGFzaA==",
		"$scrypt$ln=99,r=8,p=1$c2FsdHNhbHRzYWx0c2FsdA==$aGFzaA==",
		"$scrypt$ln=10,r=8,p=1$%%%$aGFzaA==",
		"$pbkdf2-sha256$i=100000$c2FsdHNhbHRzYWx0c2FsdA==$aGFzaA==",
	}

	for _, payload := range cases {
		if _, err := hasher.Verify("password", payload); !errors.Is(err, ErrMalformedPayload) {
			t.Fatalf("payload %q: expected ErrMalformedPayload, got %v", payload, err)
		}
	}
}

func TestScryptParamValidation(t *testing.T) {
	cases := []ScryptParams{
		{LogN: 2, R: 8, P: 1, SaltLength: 16, KeyLength: 32},
		{LogN: 10, R: 0, P: 1, SaltLength: 16, KeyLength: 32},
		{LogN: 10, R: 8, P: 0, SaltLength: 16, KeyLength: 32},
		{LogN: 10, R: 8, P: 1, SaltLength: 4, KeyLength: 32},
		{LogN: 10, R: 8, P: 1, SaltLength: 16, KeyLength: 4},
	}

	for i, params := range cases {
		if _, err := NewScrypt(params); !errors.Is(err, ErrInvalidParams) {
			t.Fatalf("case %d: expected ErrInvalidParams, got %v", i, err)
		}
	}
}
