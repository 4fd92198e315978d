package goPassword

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrEthical07/goPassword/hash"
)

// Encoder defines a public type used by goPassword APIs.
//
// Encoder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// Encoder is the delegating root component: it owns the frozen algorithm
// registry and the preferred algorithm id, routes Matches calls by the id
// embedded in the stored credential, and wraps new hashes in the
// self-describing {id}payload storage format. All methods are safe for
// unbounded concurrent use after Build.
type Encoder struct {
	config    Config
	registry  *registry
	preferred hash.Hasher
	audit     *auditDispatcher
	metrics   *Metrics
}

// Encode describes the encode operation and its observable behavior.
//
// Encode may return an error when input validation, dependency calls, or security checks fail.
// Encode does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Encode hashes plaintext with the preferred algorithm and returns the
// encoded credential for persistence. Hashing always runs to completion;
// ctx is consulted for audit emission only.
func (e *Encoder) Encode(ctx context.Context, plaintext string) (string, error) {
	start := time.Now()

	payload, err := e.preferred.Hash(plaintext)
	if err != nil {
		e.metrics.Inc(MetricEncodeFailure)
		e.emit(ctx, AuditEvent{
			EventType: EventEncode,
			Algorithm: string(e.config.Matching.Preferred),
			Success:   false,
			Error:     err.Error(),
		})
		return "", err
	}

	encoded := EncodeCredential(e.config.Matching.Preferred, payload)

	e.metrics.Inc(MetricEncodeSuccess)
	e.metrics.Observe(MetricEncodeLatency, time.Since(start))
	e.emit(ctx, AuditEvent{
		EventType: EventEncode,
		Algorithm: string(e.config.Matching.Preferred),
		Success:   true,
	})

	return encoded, nil
}

// Matches describes the matches operation and its observable behavior.
//
// Matches may return an error when input validation, dependency calls, or security checks fail.
// Matches does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// A well-formed mismatch is (MatchResult{Matched: false}, nil). A non-nil
// error always means the comparison could not be performed: the stored id is
// unknown (ErrUnknownAlgorithm), absent with no fallback configured
// (ErrMissingAlgorithmID), or the payload is corrupt (ErrMalformedPayload).
// Callers must fail closed on any error and surface it distinctly from a
// wrong password.
func (e *Encoder) Matches(ctx context.Context, plaintext, stored string) (MatchResult, error) {
	start := time.Now()

	id, payload, prefixed := DecodeCredential(stored)

	resolvedID := id
	if !prefixed || id == "" {
		fallback := e.config.Matching.FallbackAlgorithm
		if fallback == "" {
			e.metrics.Inc(MetricUnresolvedMissingID)
			e.emit(ctx, AuditEvent{
				EventType: EventUnresolved,
				Success:   false,
				Error:     ErrMissingAlgorithmID.Error(),
			})
			return MatchResult{}, ErrMissingAlgorithmID
		}
		resolvedID = fallback
	}

	hasher, ok := e.registry.resolve(resolvedID)
	if !ok {
		e.metrics.Inc(MetricUnresolvedUnknownID)
		e.emit(ctx, AuditEvent{
			EventType: EventUnresolved,
			Algorithm: string(resolvedID),
			Success:   false,
			Error:     ErrUnknownAlgorithm.Error(),
		})
		return MatchResult{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, resolvedID)
	}

	matched, err := hasher.Verify(plaintext, payload)
	if err != nil {
		e.metrics.Inc(MetricMalformedPayload)
		e.emit(ctx, AuditEvent{
			EventType: EventMalformed,
			Algorithm: string(resolvedID),
			Success:   false,
			Error:     err.Error(),
		})
		return MatchResult{Algorithm: resolvedID},
			fmt.Errorf("%w: algorithm %q: %v", ErrMalformedPayload, resolvedID, err)
	}

	result := MatchResult{
		Matched:   matched,
		Algorithm: resolvedID,
	}
	if matched {
		result.NeedsUpgrade = resolvedID != e.config.Matching.Preferred
		e.metrics.Inc(MetricMatchSuccess)
		if result.NeedsUpgrade {
			e.metrics.Inc(MetricUpgradeNeeded)
		}
	} else {
		e.metrics.Inc(MetricMatchFailure)
	}

	e.metrics.Observe(MetricMatchLatency, time.Since(start))
	e.emit(ctx, AuditEvent{
		EventType: EventMatch,
		Algorithm: string(resolvedID),
		Success:   matched,
	})

	return result, nil
}

// Preferred describes the preferred operation and its observable behavior.
//
// Preferred does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Encoder) Preferred() AlgorithmID {
	return e.config.Matching.Preferred
}

// Algorithms describes the algorithms operation and its observable behavior.
//
// Algorithms does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Encoder) Algorithms() []AlgorithmID {
	return e.registry.ids()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Encoder) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Encoder) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// Close describes the close operation and its observable behavior.
//
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Encoder) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

func (e *Encoder) emit(ctx context.Context, event AuditEvent) {
	if e.audit == nil {
		return
	}
	event.EventID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	e.audit.Emit(ctx, event)
}
