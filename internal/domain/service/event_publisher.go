package service

import (
	"context"
)

// OrderEvent represents a commerce event published for downstream
// consumers (fulfilment, analytics). Events are fire-and-forget: a
// publish failure is logged but never fails the originating request.
type OrderEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing.
	Kind      string `json:"kind"`                 // e.g. "order.created", "subscription.updated".
	OrderID   string `json:"order_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	Total     int64  `json:"total,omitempty"` // In cents.
}

// Event kinds published by the use case layer.
const (
	OrderEventCreated         = "order.created"
	OrderEventInvoicePaid     = "invoice.paid"
	OrderEventSubscription    = "subscription.updated"
	OrderEventSubscriptionEnd = "subscription.canceled"
)

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishOrderEvent publishes a commerce event for async processing.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
