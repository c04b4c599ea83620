package service

import (
	"context"
)

// DeliveryEvent summarizes a terminal dispatcher outcome for downstream
// consumers (analytics, audit). Publishing is best-effort and never blocks
// or fails the delivery path.
type DeliveryEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string `json:"notification_id"`
	RecipientID    string `json:"recipient_id"`
	RecipientKind  string `json:"recipient_kind"`
	Type           string `json:"type"`
	Channel        string `json:"channel"` // session, device, push or none.
	Delivered      bool   `json:"delivered"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDeliveryEvent publishes a delivery outcome event.
	PublishDeliveryEvent(ctx context.Context, event *DeliveryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
