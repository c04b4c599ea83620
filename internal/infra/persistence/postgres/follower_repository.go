// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// followerRepository implements the repository.FollowerRepository interface.
type followerRepository struct {
	db *gorm.DB
}

// NewFollowerRepository is the constructor for followerRepository.
func NewFollowerRepository(db *gorm.DB) repository.FollowerRepository {
	return &followerRepository{
		db: db,
	}
}

// FindFollowerIDs retrieves the IDs of all followers of the given entity.
func (repo *followerRepository) FindFollowerIDs(ctx context.Context, entityID uuid.UUID) ([]uuid.UUID, error) {
	var followerIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.FollowerModel{}).
		Where("entity_id = ?", entityID).
		Pluck("follower_id", &followerIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find follower IDs")
	}

	return followerIDs, nil
}
