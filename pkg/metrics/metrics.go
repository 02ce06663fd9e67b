package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AssistantMetrics records outcomes of calls to the assistant gateway.
type AssistantMetrics struct {
	duration *prometheus.HistogramVec
	ok       *prometheus.CounterVec
	fallback *prometheus.CounterVec
}

// NewAssistantMetrics registers the assistant metrics on the provided registerer.
func NewAssistantMetrics(reg prometheus.Registerer) *AssistantMetrics {
	if reg == nil {
		return &AssistantMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "assistant_call_duration_seconds",
		Help:    "Duration of assistant endpoint calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	ok := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_call_success",
		Help: "Assistant calls answered by the endpoint.",
	}, []string{"operation"})
	fallback := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_call_fallback",
		Help: "Assistant calls served by the static fallback.",
	}, []string{"operation"})
	reg.MustRegister(duration, ok, fallback)
	return &AssistantMetrics{
		duration: duration,
		ok:       ok,
		fallback: fallback,
	}
}

// ObserveDuration records the duration for the named operation.
func (a *AssistantMetrics) ObserveDuration(operation string, duration time.Duration) {
	if a == nil || a.duration == nil {
		return
	}
	a.duration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named operation.
func (a *AssistantMetrics) IncSuccess(operation string) {
	if a == nil || a.ok == nil {
		return
	}
	a.ok.WithLabelValues(normalizeLabel(operation)).Inc()
}

// IncFallback increments the fallback counter for the named operation.
func (a *AssistantMetrics) IncFallback(operation string) {
	if a == nil || a.fallback == nil {
		return
	}
	a.fallback.WithLabelValues(normalizeLabel(operation)).Inc()
}

func normalizeLabel(operation string) string {
	if operation == "" {
		return "unknown"
	}
	return operation
}
