package provider

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "talkscript"

// Operation labels.
const (
	OperationTranscribe = "transcribe"
	OperationGenerate   = "generate"
)

// Metrics holds the Prometheus collectors for provider calls.
type Metrics struct {
	Requests *prometheus.CounterVec
	Failures *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
}

// NewMetrics creates and registers provider metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "requests_total",
			Help:      "Total number of provider calls by outcome",
		}, []string{"provider", "operation", "outcome"}),
		Failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "failures_total",
			Help:      "Total number of failed provider calls by error code",
		}, []string{"provider", "operation", "code"}),
		Latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "latency_seconds",
			Help:      "Latency of provider calls in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60, 120, 300},
		}, []string{"provider", "operation"}),
	}
}

// RecordSuccess records a successful call.
func (m *Metrics) RecordSuccess(provider, operation string, latency time.Duration) {
	m.Requests.WithLabelValues(provider, operation, "success").Inc()
	m.Latency.WithLabelValues(provider, operation).Observe(latency.Seconds())
}

// RecordFailure records a failed call.
func (m *Metrics) RecordFailure(provider, operation string, latency time.Duration, err error) {
	m.Requests.WithLabelValues(provider, operation, "failure").Inc()
	m.Failures.WithLabelValues(provider, operation, ErrorCode(err)).Inc()
	m.Latency.WithLabelValues(provider, operation).Observe(latency.Seconds())
}

// Instrument wraps p so every call is recorded in m.
func Instrument(p Provider, m *Metrics) Provider {
	if m == nil {
		return p
	}
	return &instrumentedProvider{Provider: p, metrics: m}
}

type instrumentedProvider struct {
	Provider
	metrics *Metrics
}

func (ip *instrumentedProvider) Transcribe(ctx context.Context, audio Audio, language string) (string, error) {
	start := time.Now()
	text, err := ip.Provider.Transcribe(ctx, audio, language)
	ip.record(OperationTranscribe, start, err)
	return text, err
}

func (ip *instrumentedProvider) GenerateJSON(ctx context.Context, systemPrompt, userText string) (string, error) {
	start := time.Now()
	content, err := ip.Provider.GenerateJSON(ctx, systemPrompt, userText)
	ip.record(OperationGenerate, start, err)
	return content, err
}

func (ip *instrumentedProvider) record(operation string, start time.Time, err error) {
	if err != nil {
		ip.metrics.RecordFailure(ip.Name(), operation, time.Since(start), err)
		return
	}
	ip.metrics.RecordSuccess(ip.Name(), operation, time.Since(start))
}
