package usecase

import (
	"context"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationInput carries the content of a single notification to create.
type NotificationInput struct {
	RecipientID    uuid.UUID            `json:"recipient_id"`
	RecipientKind  entity.RecipientKind `json:"recipient_kind"`
	Type           string               `json:"type"`
	Title          string               `json:"title"`
	Message        string               `json:"message"`
	Data           map[string]any       `json:"data,omitempty"`
	ImageURL       string               `json:"image_url,omitempty"`
	ActionURL      string               `json:"action_url,omitempty"`
	TargetDeviceID string               `json:"target_device_id,omitempty"`
}

// BroadcastResult reports a broadcast fan-out: sent counts recipients
// reached on any channel, failed counts the unreachable ones. sent+failed
// always equals the number of attempted recipients.
type BroadcastResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// NotificationUsecase defines the interface for notification creation and
// read-state use cases.
type NotificationUsecase interface {
	// Create validates and persists a notification, then detaches the
	// delivery attempt. The call returns as soon as the record is stored;
	// delivery outcome is observable only via the record's flags and logs.
	Create(ctx context.Context, input *NotificationInput) (*entity.Notification, error)

	// Broadcast runs the single-recipient creation+dispatch path once per
	// recipient, synchronously, isolating per-recipient failures.
	// input.RecipientID is ignored; recipients provides the target set.
	Broadcast(ctx context.Context, input *NotificationInput, recipients []uuid.UUID) (*BroadcastResult, error)

	// MarkRead sets the read flag of a notification. The flag is monotonic:
	// marking an already-read notification is a no-op.
	MarkRead(ctx context.Context, id uuid.UUID) (*entity.Notification, error)
}
