package prometheus

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goPassword "github.com/MrEthical07/goPassword"
)

type fakeSource struct {
	snapshot goPassword.MetricsSnapshot
	dropped  uint64
}

func (f fakeSource) MetricsSnapshot() goPassword.MetricsSnapshot { return f.snapshot }
func (f fakeSource) AuditDropped() uint64                        { return f.dropped }

func TestRenderEmptyWhenMetricsDisabled(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: goPassword.MetricsSnapshot{
			Counters:   map[goPassword.MetricID]uint64{},
			Histograms: map[goPassword.MetricID][]uint64{},
		},
		dropped: 0,
	})

	if got := exp.Render(); got != "" {
		t.Fatalf("expected empty output for disabled metrics, got:\n%s", got)
	}
}

func TestRenderDeterministicIncludesCounterAndHistogram(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: goPassword.MetricsSnapshot{
			Counters: map[goPassword.MetricID]uint64{
				goPassword.MetricMatchSuccess: 7,
			},
			Histograms: map[goPassword.MetricID][]uint64{
				goPassword.MetricMatchLatency: {1, 2, 3, 4, 5, 6, 7, 8},
			},
		},
		dropped: 2,
	})

	out := exp.Render()
	if !strings.Contains(out, "gopassword_match_success_total 7") {
		t.Fatalf("expected match_success counter in output, got:\n%s", out)
	}
	if !strings.Contains(out, "gopassword_match_latency_seconds_bucket{le=\"0.005\"} 1") {
		t.Fatalf("expected first histogram bucket in output, got:\n%s", out)
	}
	if !strings.Contains(out, "gopassword_match_latency_seconds_bucket{le=\"+Inf\"} 36") {
		t.Fatalf("expected +Inf cumulative bucket in output, got:\n%s", out)
	}
	if !strings.Contains(out, "gopassword_audit_dropped_total 2") {
		t.Fatalf("expected audit dropped counter in output, got:\n%s", out)
	}
}

func TestHandlerWritesPrometheusContentType(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: goPassword.MetricsSnapshot{
			Counters:   map[goPassword.MetricID]uint64{goPassword.MetricMatchSuccess: 1},
			Histograms: map[goPassword.MetricID][]uint64{},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	exp.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("Content-Type"); !strings.Contains(got, "text/plain") {
		t.Fatalf("expected prometheus content type, got %q", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func BenchmarkRender(b *testing.B) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: goPassword.MetricsSnapshot{
			Counters: map[goPassword.MetricID]uint64{
				goPassword.MetricEncodeSuccess:         1000,
				goPassword.MetricEncodeFailure:         4,
				goPassword.MetricMatchSuccess:          800,
				goPassword.MetricMatchFailure:          40,
				goPassword.MetricUpgradeNeeded:         120,
				goPassword.MetricUpgradePersisted:      118,
				goPassword.MetricUpgradePersistFailure: 2,
			},
			Histograms: map[goPassword.MetricID][]uint64{
				goPassword.MetricEncodeLatency: {10, 20, 30, 40, 50, 60, 70, 80},
				goPassword.MetricMatchLatency:  {10, 20, 30, 40, 50, 60, 70, 80},
			},
		},
		dropped: 0,
	})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = exp.Render()
	}
}
