// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// FindActiveTokens retrieves the active push tokens for one recipient.
func (repo *deviceRepository) FindActiveTokens(ctx context.Context, recipientID uuid.UUID, kind entity.RecipientKind) ([]string, error) {
	var tokens []string

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("recipient_id = ? AND recipient_kind = ? AND is_active = ?", recipientID, string(kind), true).
		Pluck("fcm_token", &tokens).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active tokens")
	}

	return tokens, nil
}

// FindRecipientIDsWithActiveDevice retrieves the distinct recipient IDs of
// the given kind that have at least one active device.
func (repo *deviceRepository) FindRecipientIDsWithActiveDevice(ctx context.Context, kind entity.RecipientKind) ([]uuid.UUID, error) {
	var recipientIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Distinct("recipient_id").
		Where("recipient_kind = ? AND is_active = ?", string(kind), true).
		Pluck("recipient_id", &recipientIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipients with active devices")
	}

	return recipientIDs, nil
}

// DeactivateByTokens deactivates the devices carrying the given tokens.
func (repo *deviceRepository) DeactivateByTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("fcm_token IN ?", tokens).
		Update("is_active", false).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate devices by tokens")
	}

	return nil
}
