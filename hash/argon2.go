package hash

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	minArgon2MemoryKB    uint32 = 8 * 1024
	minArgon2TimeCost    uint32 = 1
	minArgon2Parallelism uint8  = 1
	minArgon2SaltLength  uint32 = 16
	minArgon2KeyLength   uint32 = 16
	argon2PayloadTag            = "argon2id"
)

// Argon2Params defines a public type used by goPassword APIs.
//
// Argon2Params instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Argon2Params struct {
	Memory      uint32 // in KB
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params describes the defaultargon2params operation and its observable behavior.
//
// DefaultArgon2Params does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Memory:      64 * 1024,
		Time:        3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// Argon2 defines a public type used by goPassword APIs.
//
// Argon2 instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Argon2 struct {
	params Argon2Params
}

type parsedArgon2 struct {
	memory      uint32
	time        uint32
	parallelism uint8
	salt        []byte
	hash        []byte
	keyLength   uint32
}

// NewArgon2 describes the newargon2 operation and its observable behavior.
//
// NewArgon2 may return an error when input validation, dependency calls, or security checks fail.
// NewArgon2 does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewArgon2(params Argon2Params) (*Argon2, error) {
	if err := validateArgon2Params(params); err != nil {
		return nil, err
	}

	return &Argon2{params: params}, nil
}

// Hash describes the hash operation and its observable behavior.
//
// Hash may return an error when input validation, dependency calls, or security checks fail.
// Hash does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (a *Argon2) Hash(plaintext string) (string, error) {
	// Plaintext bytes are used exactly as provided (no Unicode normalization).
	salt, err := randomSalt(a.params.SaltLength)
	if err != nil {
		return "", err
	}

	hash := argon2.IDKey(
		[]byte(plaintext),
		salt,
		a.params.Time,
		a.params.Memory,
		a.params.Parallelism,
		a.params.KeyLength,
	)

	saltEncoded := base64.StdEncoding.EncodeToString(salt)
	hashEncoded := base64.StdEncoding.EncodeToString(hash)

	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2PayloadTag,
		argon2.Version,
		a.params.Memory,
		a.params.Time,
		a.params.Parallelism,
		saltEncoded,
		hashEncoded,
	), nil
}

// Verify describes the verify operation and its observable behavior.
//
// Verify may return an error when input validation, dependency calls, or security checks fail.
// Verify does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (a *Argon2) Verify(plaintext, payload string) (bool, error) {
	parsed, err := parseArgon2Payload(payload)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey(
		[]byte(plaintext),
		parsed.salt,
		parsed.time,
		parsed.memory,
		parsed.parallelism,
		parsed.keyLength,
	)

	return subtle.ConstantTimeCompare(computed, parsed.hash) == 1, nil
}

func parseArgon2Payload(payload string) (*parsedArgon2, error) {
	parts := strings.Split(payload, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, fmt.Errorf("%w: invalid PHC format", ErrMalformedPayload)
	}

	if parts[1] != argon2PayloadTag {
		return nil, fmt.Errorf("%w: unsupported algorithm tag", ErrMalformedPayload)
	}

	versionPart := parts[2]
	if !strings.HasPrefix(versionPart, "v=") {
		return nil, fmt.Errorf("%w: missing argon2 version", ErrMalformedPayload)
	}

	version, err := strconv.Atoi(strings.TrimPrefix(versionPart, "v="))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid argon2 version", ErrMalformedPayload)
	}
	if version != argon2.Version {
		return nil, fmt.Errorf("%w: unsupported argon2 version", ErrMalformedPayload)
	}

	params, err := parseArgon2Costs(parts[3])
	if err != nil {
		return nil, err
	}

	salt, err := base64.StdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid salt encoding", ErrMalformedPayload)
	}
	if len(salt) < int(minArgon2SaltLength) {
		return nil, fmt.Errorf("%w: invalid salt length", ErrMalformedPayload)
	}

	hash, err := base64.StdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hash encoding", ErrMalformedPayload)
	}
	if len(hash) == 0 {
		return nil, fmt.Errorf("%w: invalid hash length", ErrMalformedPayload)
	}

	return &parsedArgon2{
		memory:      params.memory,
		time:        params.time,
		parallelism: params.parallelism,
		salt:        salt,
		hash:        hash,
		keyLength:   uint32(len(hash)),
	}, nil
}

type parsedArgon2Costs struct {
	memory      uint32
	time        uint32
	parallelism uint8
}

func parseArgon2Costs(part string) (*parsedArgon2Costs, error) {
	pairs := strings.Split(part, ",")
	if len(pairs) != 3 {
		return nil, fmt.Errorf("%w: invalid parameter format", ErrMalformedPayload)
	}

	var (
		memorySet, timeSet, parallelismSet bool
		params                             parsedArgon2Costs
	)

	for _, pair := range pairs {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("%w: invalid parameter entry", ErrMalformedPayload)
		}

		switch kv[0] {
		case "m":
			v, err := strconv.ParseUint(kv[1], 10, 32)
			if err != nil || v < uint64(minArgon2MemoryKB) {
				return nil, fmt.Errorf("%w: invalid memory parameter", ErrMalformedPayload)
			}
			params.memory = uint32(v)
			memorySet = true
		case "t":
			v, err := strconv.ParseUint(kv[1], 10, 32)
			if err != nil || v < uint64(minArgon2TimeCost) {
				return nil, fmt.Errorf("%w: invalid time parameter", ErrMalformedPayload)
			}
			params.time = uint32(v)
			timeSet = true
		case "p":
			v, err := strconv.ParseUint(kv[1], 10, 8)
			if err != nil || v < uint64(minArgon2Parallelism) {
				return nil, fmt.Errorf("%w: invalid parallelism parameter", ErrMalformedPayload)
			}
			params.parallelism = uint8(v)
			parallelismSet = true
		default:
			return nil, fmt.Errorf("%w: unsupported parameter", ErrMalformedPayload)
		}
	}

	if !memorySet || !timeSet || !parallelismSet {
		return nil, fmt.Errorf("%w: missing parameters", ErrMalformedPayload)
	}

	return &params, nil
}

func validateArgon2Params(params Argon2Params) error {
	if params.Memory < minArgon2MemoryKB {
		return fmt.Errorf("%w: argon2 memory must be >= 8192 KB", ErrInvalidParams)
	}
	if params.Time < minArgon2TimeCost {
		return fmt.Errorf("%w: argon2 time must be >= 1", ErrInvalidParams)
	}
	if params.Parallelism < minArgon2Parallelism {
		return fmt.Errorf("%w: argon2 parallelism must be >= 1", ErrInvalidParams)
	}
	if params.SaltLength < minArgon2SaltLength {
		return fmt.Errorf("%w: argon2 salt length must be >= 16", ErrInvalidParams)
	}
	if params.KeyLength < minArgon2KeyLength {
		return fmt.Errorf("%w: argon2 key length must be >= 16", ErrInvalidParams)
	}

	return nil
}
