// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotification persists a new notification record.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// MarkSocketDelivered sets the socket-delivered flag. The flag is
	// set-once: marking an already-delivered record is a no-op.
	MarkSocketDelivered(ctx context.Context, id uuid.UUID) error

	// MarkPushDelivered sets the push-delivered flag. Set-once, same as above.
	MarkPushDelivered(ctx context.Context, id uuid.UUID) error

	// MarkRead sets the read flag and timestamp. IsRead never reverts;
	// marking an already-read record is a no-op.
	MarkRead(ctx context.Context, id uuid.UUID) error
}
