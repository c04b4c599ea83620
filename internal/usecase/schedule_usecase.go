package usecase

import (
	"context"
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ScheduleInput carries a scheduled notification to create.
type ScheduleInput struct {
	ScheduledFor  time.Time              `json:"scheduled_for"`
	Target        entity.RecipientTarget `json:"target"`
	RecipientKind entity.RecipientKind   `json:"recipient_kind,omitempty"`
	RecipientIDs  []uuid.UUID            `json:"recipient_ids,omitempty"`
	EntityID      *uuid.UUID             `json:"entity_id,omitempty"`
	Type          string                 `json:"type"`
	Title         string                 `json:"title"`
	Message       string                 `json:"message"`
	Data          map[string]any         `json:"data,omitempty"`
	ImageURL      string                 `json:"image_url,omitempty"`
	ActionURL     string                 `json:"action_url,omitempty"`
	CreatedBy     uuid.UUID              `json:"created_by"`
}

// ScheduleUsecase defines the interface for scheduled-notification use cases.
type ScheduleUsecase interface {
	// CreateSchedule validates and persists a pending schedule. The
	// scheduled time must be strictly in the future.
	CreateSchedule(ctx context.Context, input *ScheduleInput) (*entity.ScheduledNotification, error)

	// CancelSchedule transitions a pending schedule to cancelled. Cancelling
	// a schedule in any terminal state is rejected.
	CancelSchedule(ctx context.Context, id uuid.UUID) (*entity.ScheduledNotification, error)

	// UpcomingSchedules returns pending schedules due within the next 24
	// hours, ordered by scheduled time ascending.
	UpcomingSchedules(ctx context.Context) ([]*entity.ScheduledNotification, error)

	// ProcessDueSchedules resolves and dispatches every due pending
	// schedule. One recipient's failure never aborts the rest of a
	// schedule's recipient set, and one schedule's failure never aborts its
	// siblings in the same batch. Returns the number of schedules processed.
	ProcessDueSchedules(ctx context.Context) (int, error)
}
