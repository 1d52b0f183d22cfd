// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// WebhookMetrics counts payment-provider webhook deliveries by what
// happened to them, plus the rejected ones that never reach the use case.
type WebhookMetrics struct {
	// Deliveries counts verified deliveries by event type and outcome
	// (processed, ignored, duplicate).
	Deliveries *prometheus.CounterVec

	// Rejected counts deliveries dropped before processing, by reason
	// (bad_signature, bad_payload).
	Rejected *prometheus.CounterVec
}

// NewWebhookMetrics registers the webhook counters on the default registry.
func NewWebhookMetrics() *WebhookMetrics {
	return &WebhookMetrics{
		Deliveries: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "webhook",
			Name:      "deliveries_total",
			Help:      "Verified webhook deliveries by event type and outcome.",
		}, []string{"event_type", "outcome"}),
		Rejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "webhook",
			Name:      "rejected_total",
			Help:      "Webhook deliveries rejected before processing, by reason.",
		}, []string{"reason"}),
	}
}
