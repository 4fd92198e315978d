package goPassword

import (
	"context"
	"fmt"
)

// VerifyAndUpgrade describes the verifyandupgrade operation and its observable behavior.
//
// VerifyAndUpgrade may return an error when input validation, dependency calls, or security checks fail.
// VerifyAndUpgrade does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// VerifyAndUpgrade delegates to Matches and, on a successful match of a
// credential hashed with a non-preferred algorithm, re-encodes the plaintext
// with the preferred algorithm and synchronously invokes persist before
// returning. The upgrade piggybacks on the caller's own successful
// authentication, so the plaintext never outlives this call stack. There is
// no background processing.
//
// The first return value reports whether the plaintext matched. When the
// match succeeded but the upgrade could not be persisted, it is true and the
// error wraps ErrUpgradePersist; authentication stands, the stored
// credential is simply upgraded on a later login instead.
func (e *Encoder) VerifyAndUpgrade(ctx context.Context, plaintext, stored string, persist PersistFunc) (bool, error) {
	result, err := e.Matches(ctx, plaintext, stored)
	if err != nil {
		return false, err
	}
	if !result.Matched {
		return false, nil
	}
	if !result.NeedsUpgrade || persist == nil {
		return true, nil
	}

	encoded, err := e.Encode(ctx, plaintext)
	if err != nil {
		e.metrics.Inc(MetricUpgradePersistFailure)
		return true, fmt.Errorf("%w: re-encode: %v", ErrUpgradePersist, err)
	}

	if err := persist(ctx, encoded); err != nil {
		e.metrics.Inc(MetricUpgradePersistFailure)
		e.emit(ctx, AuditEvent{
			EventType: EventUpgrade,
			Algorithm: string(e.config.Matching.Preferred),
			Success:   false,
			Error:     err.Error(),
			Metadata:  map[string]string{"from_algorithm": string(result.Algorithm)},
		})
		return true, fmt.Errorf("%w: %v", ErrUpgradePersist, err)
	}

	e.metrics.Inc(MetricUpgradePersisted)
	e.emit(ctx, AuditEvent{
		EventType: EventUpgrade,
		Algorithm: string(e.config.Matching.Preferred),
		Success:   true,
		Metadata:  map[string]string{"from_algorithm": string(result.Algorithm)},
	})

	return true, nil
}
