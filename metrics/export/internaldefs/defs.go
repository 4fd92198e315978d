package internaldefs

import (
	goPassword "github.com/MrEthical07/goPassword"
)

// CounterDef defines a public type used by goPassword APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   goPassword.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by goPassword APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   goPassword.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the credential encoder.
var CounterDefs = []CounterDef{
	{ID: goPassword.MetricEncodeSuccess, Name: "gopassword_encode_success_total", Help: "Successful credential encodings."},
	{ID: goPassword.MetricEncodeFailure, Name: "gopassword_encode_failure_total", Help: "Failed credential encodings."},
	{ID: goPassword.MetricMatchSuccess, Name: "gopassword_match_success_total", Help: "Successful credential matches."},
	{ID: goPassword.MetricMatchFailure, Name: "gopassword_match_failure_total", Help: "Well-formed comparisons that did not match."},
	{ID: goPassword.MetricUnresolvedUnknownID, Name: "gopassword_unresolved_unknown_id_total", Help: "Stored credentials naming an unregistered algorithm id."},
	{ID: goPassword.MetricUnresolvedMissingID, Name: "gopassword_unresolved_missing_id_total", Help: "Stored credentials without an algorithm id and no fallback configured."},
	{ID: goPassword.MetricMalformedPayload, Name: "gopassword_malformed_payload_total", Help: "Stored credentials with an unparseable payload."},
	{ID: goPassword.MetricUpgradeNeeded, Name: "gopassword_upgrade_needed_total", Help: "Successful matches against a non-preferred algorithm."},
	{ID: goPassword.MetricUpgradePersisted, Name: "gopassword_upgrade_persisted_total", Help: "Opportunistic credential upgrades persisted."},
	{ID: goPassword.MetricUpgradePersistFailure, Name: "gopassword_upgrade_persist_failure_total", Help: "Opportunistic credential upgrades that failed to persist."},
}

// HistogramDefs is an exported constant or variable used by the credential encoder.
var HistogramDefs = []HistogramDef{
	{ID: goPassword.MetricEncodeLatency, Name: "gopassword_encode_latency_seconds", Help: "Encode latency histogram."},
	{ID: goPassword.MetricMatchLatency, Name: "gopassword_match_latency_seconds", Help: "Match latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the credential encoder.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the credential encoder.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets may return an error when input validation, dependency calls, or security checks fail.
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets may return an error when input validation, dependency calls, or security checks fail.
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
