// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecipientKind identifies the entity type owning a notification.
type RecipientKind string

const (
	// RecipientUser is an end-user of the platform.
	RecipientUser RecipientKind = "user"
	// RecipientProvider is a service provider.
	RecipientProvider RecipientKind = "provider"
	// RecipientOperator is an operator/admin account.
	RecipientOperator RecipientKind = "operator"
)

// Valid reports whether the kind is one of the known recipient kinds.
func (k RecipientKind) Valid() bool {
	switch k {
	case RecipientUser, RecipientProvider, RecipientOperator:
		return true
	}

	return false
}

// Notification represents a single notification addressed to one recipient.
//
// Delivery flags are set-once: SocketDelivered and PushDelivered never revert
// to false, and IsRead never reverts to false.
type Notification struct {
	ID            uuid.UUID      `json:"id"`             // The Global Unique Identifier (GUID) for the notification.
	RecipientID   uuid.UUID      `json:"recipient_id"`   // The ID of the recipient this notification is addressed to.
	RecipientKind RecipientKind  `json:"recipient_kind"` // The kind of the recipient (user, provider, operator).
	Type          string         `json:"type"`           // Open notification type string, resolved against the type registry.
	Title         string         `json:"title"`          // Short title shown to the recipient.
	Message       string         `json:"message"`        // Body text of the notification.
	Data          map[string]any `json:"data,omitempty"` // Structured payload attached to the notification.
	ImageURL      string         `json:"image_url,omitempty"`
	ActionURL     string         `json:"action_url,omitempty"`
	Priority      string         `json:"priority"` // Priority resolved from the type registry at creation time.

	IsRead bool       `json:"is_read"` // Read state, monotonic false -> true.
	ReadAt *time.Time `json:"read_at,omitempty"`

	SocketDelivered   bool       `json:"socket_delivered"` // Delivered over a live realtime channel.
	SocketDeliveredAt *time.Time `json:"socket_delivered_at,omitempty"`
	PushDelivered     bool       `json:"push_delivered"` // Delivered via the out-of-band push provider.
	PushDeliveredAt   *time.Time `json:"push_delivered_at,omitempty"`

	Broadcast      bool   `json:"broadcast"`                  // True when this record was created by a broadcast fan-out.
	TargetDeviceID string `json:"target_device_id,omitempty"` // When set, the device channel routes to this device only.

	CreatedAt time.Time `json:"created_at"`
}
