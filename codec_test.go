package goPassword

import "testing"

func TestCodecRoundTrip(t *testing.T) {
	cases := []struct {
		id      AlgorithmID
		payload string
	}{
		{AlgorithmBcrypt, "$2a$12$abcdefghijklmnopqrstuv"},
		{AlgorithmArgon2, "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA==$aGFzaA=="},
		{"custom-algo", ""},
		{"", "payload-after-empty-id"},
	}

	for _, tc := range cases {
		encoded := EncodeCredential(tc.id, tc.payload)

		id, payload, prefixed := DecodeCredential(encoded)
		if !prefixed {
			t.Fatalf("EncodeCredential(%q, %q): expected prefixed decode", tc.id, tc.payload)
		}
		if id != tc.id || payload != tc.payload {
			t.Fatalf("round trip (%q, %q): got (%q, %q)", tc.id, tc.payload, id, payload)
		}
	}
}

func TestDecodeUnprefixed(t *testing.T) {
	id, payload, prefixed := DecodeCredential("plainpassword")
	if prefixed {
		t.Fatal("expected unprefixed decode")
	}
	if id != "" || payload != "plainpassword" {
		t.Fatalf("unexpected decode: (%q, %q)", id, payload)
	}
}

func TestDecodeUnterminatedPrefix(t *testing.T) {
	// A '{' with no closing '}' is not a valid prefix; the whole string is payload.
	id, payload, prefixed := DecodeCredential("{bcrypt-no-close")
	if prefixed {
		t.Fatal("expected unprefixed decode for unterminated prefix")
	}
	if id != "" || payload != "{bcrypt-no-close" {
		t.Fatalf("unexpected decode: (%q, %q)", id, payload)
	}
}

func TestDecodeEmptyIDAndPayload(t *testing.T) {
	id, payload, prefixed := DecodeCredential("{}")
	if !prefixed {
		t.Fatal("expected prefixed decode for empty braces")
	}
	if id != "" || payload != "" {
		t.Fatalf("unexpected decode: (%q, %q)", id, payload)
	}

	id, payload, prefixed = DecodeCredential("{bcrypt}")
	if !prefixed || id != AlgorithmBcrypt || payload != "" {
		t.Fatalf("unexpected decode: (%q, %q, %v)", id, payload, prefixed)
	}
}
