// Package otel provides OpenTelemetry metric exporter bindings for goPassword counters and
// histograms.
//
// [NewOTelExporter] registers Int64ObservableCounter instruments for each goPassword metric
// and Int64ObservableGauge per histogram bucket. A single callback reads
// [goPassword.Encoder.MetricsSnapshot] on each collection cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider — callers supply the Meter.
//   - Mutate encoder state.
package otel
