// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for scheduled-notification persistence.
var (
	// ErrScheduleNotFound is returned when a scheduled notification is not found.
	ErrScheduleNotFound = errors.New("scheduled notification not found")
	// ErrScheduleNotPending is returned when a terminal-state transition is
	// attempted on a schedule that is no longer pending.
	ErrScheduleNotPending = errors.New("scheduled notification is not pending")
)

// ScheduleRepository defines the interface for scheduled-notification database operations.
//
// Known limitation: FindDue followed by a status update is not atomic. With
// more than one scheduler instance polling concurrently the same record can
// be claimed twice. A hardened design would replace FindDue with a single
// conditional claim update.
type ScheduleRepository interface {
	// CreateSchedule persists a new scheduled notification in pending state.
	CreateSchedule(ctx context.Context, schedule *entity.ScheduledNotification) error

	// FindScheduleByID retrieves a scheduled notification by its unique ID.
	FindScheduleByID(ctx context.Context, id uuid.UUID) (*entity.ScheduledNotification, error)

	// FindDueSchedules retrieves pending schedules with scheduledFor <= now.
	FindDueSchedules(ctx context.Context, now time.Time) ([]*entity.ScheduledNotification, error)

	// FindUpcomingSchedules retrieves pending schedules with scheduledFor in
	// [from, until), ordered ascending.
	FindUpcomingSchedules(ctx context.Context, from, until time.Time) ([]*entity.ScheduledNotification, error)

	// MarkSent transitions pending -> sent and records sentAt.
	MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error

	// MarkFailed transitions pending -> failed and records the failure reason.
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error

	// CancelPending transitions pending -> cancelled. Returns
	// ErrScheduleNotPending when the schedule exists but is already terminal,
	// ErrScheduleNotFound when it does not exist.
	CancelPending(ctx context.Context, id uuid.UUID) error
}
