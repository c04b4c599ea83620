// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device represents a recipient's device registered for push notifications.
// Device registrations are owned by the device-registry collaborator; this
// subsystem only reads active push tokens and reports invalid ones back for
// pruning.
type Device struct {
	ID            uuid.UUID     `json:"id"`
	RecipientID   uuid.UUID     `json:"recipient_id"`
	RecipientKind RecipientKind `json:"recipient_kind"`
	FCMToken      string        `json:"fcm_token"` // Firebase Cloud Messaging token for push notifications.
	DeviceID      string        `json:"device_id"` // Unique device identifier from the client.
	Platform      string        `json:"platform"`  // Device platform (ios, android).
	IsActive      bool          `json:"is_active"` // Indicates if this device is active for notifications.
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
