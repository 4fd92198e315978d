package hash

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	minScryptLogN       = 10
	maxScryptLogN       = 30
	minScryptR          = 1
	minScryptP          = 1
	minScryptSaltLength = 16
	minScryptKeyLength  = 16
	scryptPayloadTag    = "scrypt"
)

// ScryptParams defines a public type used by goPassword APIs.
//
// ScryptParams instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ScryptParams struct {
	LogN       int // CPU/memory cost, N = 1 << LogN
	R          int
	P          int
	SaltLength uint32
	KeyLength  uint32
}

// DefaultScryptParams describes the defaultscryptparams operation and its observable behavior.
//
// DefaultScryptParams does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func DefaultScryptParams() ScryptParams {
	return ScryptParams{
		LogN:       16,
		R:          8,
		P:          1,
		SaltLength: 16,
		KeyLength:  32,
	}
}

// Scrypt defines a public type used by goPassword APIs.
//
// Scrypt instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Scrypt struct {
	params ScryptParams
}

type parsedScrypt struct {
	logN int
	r    int
	p    int
	salt []byte
	hash []byte
}

// NewScrypt describes the newscrypt operation and its observable behavior.
//
// NewScrypt may return an error when input validation, dependency calls, or security checks fail.
// NewScrypt does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewScrypt(params ScryptParams) (*Scrypt, error) {
	if params.LogN < minScryptLogN || params.LogN > maxScryptLogN {
		return nil, fmt.Errorf("%w: scrypt log2(N) must be in [%d, %d]",
			ErrInvalidParams, minScryptLogN, maxScryptLogN)
	}
	if params.R < minScryptR {
		return nil, fmt.Errorf("%w: scrypt r must be >= 1", ErrInvalidParams)
	}
	if params.P < minScryptP {
		return nil, fmt.Errorf("%w: scrypt p must be >= 1", ErrInvalidParams)
	}
	if params.SaltLength < minScryptSaltLength {
		return nil, fmt.Errorf("%w: scrypt salt length must be >= 16", ErrInvalidParams)
	}
	if params.KeyLength < minScryptKeyLength {
		return nil, fmt.Errorf("%w: scrypt key length must be >= 16", ErrInvalidParams)
	}

	return &Scrypt{params: params}, nil
}

// Hash describes the hash operation and its observable behavior.
//
// Hash may return an error when input validation, dependency calls, or security checks fail.
// Hash does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *Scrypt) Hash(plaintext string) (string, error) {
	salt, err := randomSalt(s.params.SaltLength)
	if err != nil {
		return "", err
	}

	hash, err := scrypt.Key(
		[]byte(plaintext),
		salt,
		1<<s.params.LogN,
		s.params.R,
		s.params.P,
		int(s.params.KeyLength),
	)
	if err != nil {
		return "", err
	}

	saltEncoded := base64.StdEncoding.EncodeToString(salt)
	hashEncoded := base64.StdEncoding.EncodeToString(hash)

	return fmt.Sprintf(
		"$%s$ln=%d,r=%d,p=%d$%s$%s",
		scryptPayloadTag,
		s.params.LogN,
		s.params.R,
		s.params.P,
		saltEncoded,
		hashEncoded,
	), nil
}

// Verify describes the verify operation and its observable behavior.
//
// Verify may return an error when input validation, dependency calls, or security checks fail.
// Verify does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *Scrypt) Verify(plaintext, payload string) (bool, error) {
	parsed, err := parseScryptPayload(payload)
	if err != nil {
		return false, err
	}

	computed, err := scrypt.Key(
		[]byte(plaintext),
		parsed.salt,
		1<<parsed.logN,
		parsed.r,
		parsed.p,
		len(parsed.hash),
	)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	return subtle.ConstantTimeCompare(computed, parsed.hash) == 1, nil
}

func parseScryptPayload(payload string) (*parsedScrypt, error) {
	parts := strings.Split(payload, "$")
	if len(parts) != 5 || parts[0] != "" {
		return nil, fmt.Errorf("%w: invalid scrypt format", ErrMalformedPayload)
	}
	if parts[1] != scryptPayloadTag {
		return nil, fmt.Errorf("%w: unsupported algorithm tag", ErrMalformedPayload)
	}

	pairs := strings.Split(parts[2], ",")
	if len(pairs) != 3 {
		return nil, fmt.Errorf("%w: invalid parameter format", ErrMalformedPayload)
	}

	var (
		parsed                 parsedScrypt
		logNSet, rSet, pSet bool
	)

	for _, pair := range pairs {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("%w: invalid parameter entry", ErrMalformedPayload)
		}

		switch kv[0] {
		case "ln":
			v, err := strconv.Atoi(kv[1])
			if err != nil || v < minScryptLogN || v > maxScryptLogN {
				return nil, fmt.Errorf("%w: invalid cost parameter", ErrMalformedPayload)
			}
			parsed.logN = v
			logNSet = true
		case "r":
			v, err := strconv.Atoi(kv[1])
			if err != nil || v < minScryptR {
				return nil, fmt.Errorf("%w: invalid block size parameter", ErrMalformedPayload)
			}
			parsed.r = v
			rSet = true
		case "p":
			v, err := strconv.Atoi(kv[1])
			if err != nil || v < minScryptP {
				return nil, fmt.Errorf("%w: invalid parallelism parameter", ErrMalformedPayload)
			}
			parsed.p = v
			pSet = true
		default:
			return nil, fmt.Errorf("%w: unsupported parameter", ErrMalformedPayload)
		}
	}

	if !logNSet || !rSet || !pSet {
		return nil, fmt.Errorf("%w: missing parameters", ErrMalformedPayload)
	}

	salt, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid salt encoding", ErrMalformedPayload)
	}
	if len(salt) < minScryptSaltLength {
		return nil, fmt.Errorf("%w: invalid salt length", ErrMalformedPayload)
	}

	hash, err := base64.StdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hash encoding", ErrMalformedPayload)
	}
	if len(hash) == 0 {
		return nil, fmt.Errorf("%w: invalid hash length", ErrMalformedPayload)
	}

	parsed.salt = salt
	parsed.hash = hash
	return &parsed, nil
}
