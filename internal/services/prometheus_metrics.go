package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	proposalsTotal            *prometheus.CounterVec
	providerRequestsTotal     *prometheus.CounterVec
	providerRequestDuration   prometheus.Histogram
	confirmationsTotal        *prometheus.CounterVec
	confirmationDuration      prometheus.Histogram
	webhookEventsTotal        *prometheus.CounterVec
	webhookBatchSize          prometheus.Histogram
	authenticationEventsTotal *prometheus.CounterVec
}

// NewPrometheusMetrics registers the service metrics with reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		proposalsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "proposals_total",
				Help: "Total number of propose calls by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		providerRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ai_provider_requests_total",
				Help: "Total number of AI provider requests",
			},
			[]string{"provider", "status"},
		),
		providerRequestDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ai_provider_request_duration_seconds",
				Help:    "AI provider request duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
			},
		),
		confirmationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "proposal_confirmations_total",
				Help: "Total number of confirm calls by resulting status",
			},
			[]string{"status"},
		),
		confirmationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "proposal_confirmation_duration_milliseconds",
				Help:    "Confirmation transaction duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		webhookEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhook_events_total",
				Help: "Total number of webhook deliveries by outcome",
			},
			[]string{"outcome"},
		),
		webhookBatchSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "webhook_batch_size",
				Help:    "Number of transaction facts per ingested webhook",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "proposals_total":
		m.proposalsTotal.WithLabelValues(tags["provider"], tags["outcome"]).Inc()
	case "provider_request":
		m.providerRequestsTotal.WithLabelValues(tags["provider"], tags["status"]).Inc()
	case "confirmations_total":
		if status := tags["status"]; status != "" {
			m.confirmationsTotal.WithLabelValues(status).Inc()
		}
	case "webhook_events_total":
		if outcome := tags["outcome"]; outcome != "" {
			m.webhookEventsTotal.WithLabelValues(outcome).Inc()
		}
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "provider_request":
		m.providerRequestDuration.Observe(duration.Seconds())
	case "confirmation":
		m.confirmationDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "webhook_batch_size":
		m.webhookBatchSize.Observe(value)
	}
}
