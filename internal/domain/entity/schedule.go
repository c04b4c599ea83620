// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleStatus is the lifecycle state of a scheduled notification.
// The only non-terminal state is pending; sent, failed and cancelled are
// terminal and transitions are one-way.
type ScheduleStatus string

const (
	ScheduleStatusPending   ScheduleStatus = "pending"
	ScheduleStatusSent      ScheduleStatus = "sent"
	ScheduleStatusFailed    ScheduleStatus = "failed"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
)

// RecipientTarget selects how the recipient set of a scheduled notification
// is resolved at dispatch time.
type RecipientTarget string

const (
	// TargetAllUsers resolves to every end-user with at least one active device.
	TargetAllUsers RecipientTarget = "all_users"
	// TargetAllProviders resolves to every provider with at least one active device.
	TargetAllProviders RecipientTarget = "all_providers"
	// TargetSpecificList uses the explicit recipient ID list stored on the schedule.
	TargetSpecificList RecipientTarget = "specific_list"
	// TargetFollowers resolves to all followers of the referenced entity.
	TargetFollowers RecipientTarget = "followers"
)

// Valid reports whether the target is one of the known recipient targets.
func (t RecipientTarget) Valid() bool {
	switch t {
	case TargetAllUsers, TargetAllProviders, TargetSpecificList, TargetFollowers:
		return true
	}

	return false
}

// ScheduledNotification is a notification to be fanned out at a future
// instant. ScheduledFor must be strictly in the future at creation time.
type ScheduledNotification struct {
	ID           uuid.UUID      `json:"id"`
	ScheduledFor time.Time      `json:"scheduled_for"`
	Status       ScheduleStatus `json:"status"`

	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	ImageURL  string         `json:"image_url,omitempty"`
	ActionURL string         `json:"action_url,omitempty"`

	Target        RecipientTarget `json:"target"`
	RecipientKind RecipientKind   `json:"recipient_kind"`          // Kind of the resolved recipients (specific_list, followers).
	RecipientIDs  []uuid.UUID     `json:"recipient_ids,omitempty"` // Explicit list for TargetSpecificList.
	EntityID      *uuid.UUID      `json:"entity_id,omitempty"`     // Referenced entity for TargetFollowers.

	CreatedBy     uuid.UUID  `json:"created_by"`
	SentAt        *time.Time `json:"sent_at,omitempty"`        // Set only on the pending -> sent transition.
	FailureReason string     `json:"failure_reason,omitempty"` // Set only on the pending -> failed transition.

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
