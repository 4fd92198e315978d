package goPassword

import "strings"

// Storage format: ASCII '{' + algorithm id + '}' + algorithm payload.
// Decoding only inspects the leading character, so no escaping is needed.
const (
	idPrefix = "{"
	idSuffix = "}"
)

// EncodeCredential describes the encodecredential operation and its observable behavior.
//
// EncodeCredential does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func EncodeCredential(id AlgorithmID, payload string) string {
	return idPrefix + string(id) + idSuffix + payload
}

// DecodeCredential describes the decodecredential operation and its observable behavior.
//
// DecodeCredential does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// When stored begins with '{', the substring up to the first '}' is the
// algorithm id (possibly empty) and everything after it is the payload, with
// prefixed reporting true. A stored value without a leading '{', or with an
// unterminated prefix, is returned whole as the payload with prefixed false.
func DecodeCredential(stored string) (id AlgorithmID, payload string, prefixed bool) {
	if !strings.HasPrefix(stored, idPrefix) {
		return "", stored, false
	}

	end := strings.Index(stored, idSuffix)
	if end < 0 {
		return "", stored, false
	}

	return AlgorithmID(stored[len(idPrefix):end]), stored[end+len(idSuffix):], true
}
