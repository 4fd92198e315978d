package goPassword

import "strings"

// Config defines a public type used by goPassword APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Matching MatchingConfig
	Audit    AuditConfig
	Metrics  MetricsConfig
}

/*
====================================
MATCHING CONFIG
====================================
*/

// MatchingConfig defines a public type used by goPassword APIs.
//
// MatchingConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MatchingConfig struct {
	// Preferred names the algorithm used for all new Encode calls. It must
	// be registered; Build fails otherwise.
	Preferred AlgorithmID
	// FallbackAlgorithm, when set, routes stored credentials without an
	// algorithm id to the named registered algorithm. When empty (the
	// default), such credentials fail matching with ErrMissingAlgorithmID.
	FallbackAlgorithm AlgorithmID
	// AllowInsecurePreferred permits a plaintext identity hasher as the
	// preferred algorithm. Intended for tests and pre-migration fixtures
	// only; Build refuses the combination without this flag.
	AllowInsecurePreferred bool
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig defines a public type used by goPassword APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by goPassword APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

func defaultConfig() Config {
	return Config{
		Matching: MatchingConfig{
			Preferred: AlgorithmArgon2,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func validAlgorithmID(id AlgorithmID) bool {
	if id == "" {
		return false
	}
	return !strings.ContainsAny(string(id), idPrefix+idSuffix)
}
