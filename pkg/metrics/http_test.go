package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestHTTPMetricsExportsRequestHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewHTTPMetrics(reg)
	metrics.ObserveRequest("GET", "/api/v1/catalog/products", 200, 120*time.Millisecond)
	metrics.ObserveRequest("GET", "/api/v1/catalog/products", 200, 80*time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	mf := findMetricFamily(mfs, "http_request_duration_seconds")
	if mf == nil {
		t.Fatal("http_request_duration_seconds not exported")
	}
	for _, metric := range mf.GetMetric() {
		if !matchesLabel(metric.GetLabel(), "route", "/api/v1/catalog/products") {
			continue
		}
		if !matchesLabel(metric.GetLabel(), "method", "GET") || !matchesLabel(metric.GetLabel(), "status", "200") {
			t.Fatalf("unexpected labels: %v", metric.GetLabel())
		}
		if got := metric.GetHistogram().GetSampleCount(); got != 2 {
			t.Fatalf("expected 2 samples, got %d", got)
		}
		return
	}
	t.Fatal("no sample recorded for the route")
}

func TestHTTPMetricsNilRegistererIsNoop(t *testing.T) {
	metrics := NewHTTPMetrics(nil)
	metrics.ObserveRequest("GET", "/", 200, time.Second)
}
