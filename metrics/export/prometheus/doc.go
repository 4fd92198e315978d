// Package prometheus provides Prometheus collectors for goPassword metrics.
//
// [NewPrometheusExporter] accepts an [goPassword.Encoder] and exposes an [http.Handler]
// that renders all goPassword counters and histograms in Prometheus text exposition format.
// Counter names are prefixed gopassword_*_total; the histograms are
// gopassword_encode_latency_seconds and gopassword_match_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate encoder state.
package prometheus
