// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new notification record.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingContent.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// MarkSocketDelivered sets the socket-delivered flag. The conditional WHERE
// keeps the flag set-once: a record already marked is left untouched.
func (repo *notificationRepository) MarkSocketDelivered(ctx context.Context, id uuid.UUID) error {
	return repo.markOnce(ctx, id, "socket_delivered", map[string]interface{}{
		"socket_delivered":    true,
		"socket_delivered_at": time.Now(),
	})
}

// MarkPushDelivered sets the push-delivered flag. Set-once, same as above.
func (repo *notificationRepository) MarkPushDelivered(ctx context.Context, id uuid.UUID) error {
	return repo.markOnce(ctx, id, "push_delivered", map[string]interface{}{
		"push_delivered":    true,
		"push_delivered_at": time.Now(),
	})
}

// MarkRead sets the read flag and timestamp. IsRead never reverts.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return repo.markOnce(ctx, id, "is_read", map[string]interface{}{
		"is_read": true,
		"read_at": time.Now(),
	})
}

// markOnce applies a monotonic flag update. Zero rows affected means either
// the record does not exist or the flag is already set; the two are told
// apart with a follow-up existence check.
func (repo *notificationRepository) markOnce(ctx context.Context, id uuid.UUID, flagColumn string, updates map[string]interface{}) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND "+flagColumn+" = ?", id, false).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update %s", flagColumn)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.NotificationModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check notification existence")
		}
		if count == 0 {
			return repository.ErrNotificationNotFound
		}
	}

	return nil
}

// fromNotificationDomain converts a domain entity to its GORM model.
func fromNotificationDomain(notification *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:                notification.ID,
		RecipientID:       notification.RecipientID,
		RecipientKind:     string(notification.RecipientKind),
		Type:              notification.Type,
		Title:             notification.Title,
		Message:           notification.Message,
		Data:              datatypes.JSONMap(notification.Data),
		ImageURL:          notification.ImageURL,
		ActionURL:         notification.ActionURL,
		Priority:          notification.Priority,
		IsRead:            notification.IsRead,
		ReadAt:            notification.ReadAt,
		SocketDelivered:   notification.SocketDelivered,
		SocketDeliveredAt: notification.SocketDeliveredAt,
		PushDelivered:     notification.PushDelivered,
		PushDeliveredAt:   notification.PushDeliveredAt,
		Broadcast:         notification.Broadcast,
		TargetDeviceID:    notification.TargetDeviceID,
		CreatedAt:         notification.CreatedAt,
	}
}

// toNotificationDomain converts a GORM model to its domain entity.
func toNotificationDomain(notificationM *model.NotificationModel) *entity.Notification {
	return &entity.Notification{
		ID:                notificationM.ID,
		RecipientID:       notificationM.RecipientID,
		RecipientKind:     entity.RecipientKind(notificationM.RecipientKind),
		Type:              notificationM.Type,
		Title:             notificationM.Title,
		Message:           notificationM.Message,
		Data:              map[string]any(notificationM.Data),
		ImageURL:          notificationM.ImageURL,
		ActionURL:         notificationM.ActionURL,
		Priority:          notificationM.Priority,
		IsRead:            notificationM.IsRead,
		ReadAt:            notificationM.ReadAt,
		SocketDelivered:   notificationM.SocketDelivered,
		SocketDeliveredAt: notificationM.SocketDeliveredAt,
		PushDelivered:     notificationM.PushDelivered,
		PushDeliveredAt:   notificationM.PushDeliveredAt,
		Broadcast:         notificationM.Broadcast,
		TargetDeviceID:    notificationM.TargetDeviceID,
		CreatedAt:         notificationM.CreatedAt,
	}
}
