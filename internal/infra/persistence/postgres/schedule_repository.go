// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
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

// scheduleRepository implements the repository.ScheduleRepository interface.
type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository is the constructor for scheduleRepository.
func NewScheduleRepository(db *gorm.DB) repository.ScheduleRepository {
	return &scheduleRepository{
		db: db,
	}
}

// CreateSchedule persists a new scheduled notification in pending state.
func (repo *scheduleRepository) CreateSchedule(ctx context.Context, schedule *entity.ScheduledNotification) error {
	scheduleM, err := fromScheduleDomain(schedule)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(scheduleM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingContent.WrapMessage("missing required schedule information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create scheduled notification")
	}

	// Update the entity with generated values
	schedule.ID = scheduleM.ID
	schedule.Status = entity.ScheduleStatus(scheduleM.Status)
	schedule.CreatedAt = scheduleM.CreatedAt
	schedule.UpdatedAt = scheduleM.UpdatedAt

	return nil
}

// FindScheduleByID retrieves a scheduled notification by its unique ID.
func (repo *scheduleRepository) FindScheduleByID(ctx context.Context, id uuid.UUID) (*entity.ScheduledNotification, error) {
	var scheduleM model.ScheduleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&scheduleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrScheduleNotFound
		}

		return nil, errors.Wrap(err, "failed to find schedule by ID")
	}

	return toScheduleDomain(&scheduleM)
}

// FindDueSchedules retrieves pending schedules with scheduledFor <= now.
func (repo *scheduleRepository) FindDueSchedules(ctx context.Context, now time.Time) ([]*entity.ScheduledNotification, error) {
	var scheduleModels []*model.ScheduleModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND scheduled_for <= ?", string(entity.ScheduleStatusPending), now).
		Order("scheduled_for ASC").
		Find(&scheduleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due schedules")
	}

	return toScheduleDomainList(scheduleModels)
}

// FindUpcomingSchedules retrieves pending schedules with scheduledFor in
// [from, until), ordered ascending.
func (repo *scheduleRepository) FindUpcomingSchedules(ctx context.Context, from, until time.Time) ([]*entity.ScheduledNotification, error) {
	var scheduleModels []*model.ScheduleModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND scheduled_for >= ? AND scheduled_for < ?", string(entity.ScheduleStatusPending), from, until).
		Order("scheduled_for ASC").
		Find(&scheduleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find upcoming schedules")
	}

	return toScheduleDomainList(scheduleModels)
}

// MarkSent transitions pending -> sent and records sentAt.
func (repo *scheduleRepository) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	return repo.transition(ctx, id, map[string]interface{}{
		"status":  string(entity.ScheduleStatusSent),
		"sent_at": sentAt,
	})
}

// MarkFailed transitions pending -> failed and records the failure reason.
func (repo *scheduleRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	return repo.transition(ctx, id, map[string]interface{}{
		"status":         string(entity.ScheduleStatusFailed),
		"failure_reason": reason,
	})
}

// CancelPending transitions pending -> cancelled.
func (repo *scheduleRepository) CancelPending(ctx context.Context, id uuid.UUID) error {
	return repo.transition(ctx, id, map[string]interface{}{
		"status": string(entity.ScheduleStatusCancelled),
	})
}

// transition applies a terminal-state update guarded on the pending state.
// Zero rows affected means the schedule is either missing or already
// terminal; an existence check tells the two apart.
func (repo *scheduleRepository) transition(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ScheduleModel{}).
		Where("id = ? AND status = ?", id, string(entity.ScheduleStatusPending)).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update schedule status")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.ScheduleModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check schedule existence")
		}
		if count == 0 {
			return repository.ErrScheduleNotFound
		}

		return repository.ErrScheduleNotPending
	}

	return nil
}

// fromScheduleDomain converts a domain entity to its GORM model.
func fromScheduleDomain(schedule *entity.ScheduledNotification) (*model.ScheduleModel, error) {
	var recipientIDs datatypes.JSON
	if len(schedule.RecipientIDs) > 0 {
		raw, err := json.Marshal(schedule.RecipientIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode recipient IDs")
		}
		recipientIDs = datatypes.JSON(raw)
	}

	return &model.ScheduleModel{
		ID:            schedule.ID,
		ScheduledFor:  schedule.ScheduledFor,
		Status:        string(entity.ScheduleStatusPending),
		Type:          schedule.Type,
		Title:         schedule.Title,
		Message:       schedule.Message,
		Data:          datatypes.JSONMap(schedule.Data),
		ImageURL:      schedule.ImageURL,
		ActionURL:     schedule.ActionURL,
		Target:        string(schedule.Target),
		RecipientKind: string(schedule.RecipientKind),
		RecipientIDs:  recipientIDs,
		EntityID:      schedule.EntityID,
		CreatedBy:     schedule.CreatedBy,
		CreatedAt:     schedule.CreatedAt,
		UpdatedAt:     schedule.UpdatedAt,
	}, nil
}

// toScheduleDomain converts a GORM model to its domain entity.
func toScheduleDomain(scheduleM *model.ScheduleModel) (*entity.ScheduledNotification, error) {
	var recipientIDs []uuid.UUID
	if len(scheduleM.RecipientIDs) > 0 {
		if err := json.Unmarshal(scheduleM.RecipientIDs, &recipientIDs); err != nil {
			return nil, errors.Wrap(err, "failed to decode recipient IDs")
		}
	}

	return &entity.ScheduledNotification{
		ID:            scheduleM.ID,
		ScheduledFor:  scheduleM.ScheduledFor,
		Status:        entity.ScheduleStatus(scheduleM.Status),
		Type:          scheduleM.Type,
		Title:         scheduleM.Title,
		Message:       scheduleM.Message,
		Data:          map[string]any(scheduleM.Data),
		ImageURL:      scheduleM.ImageURL,
		ActionURL:     scheduleM.ActionURL,
		Target:        entity.RecipientTarget(scheduleM.Target),
		RecipientKind: entity.RecipientKind(scheduleM.RecipientKind),
		RecipientIDs:  recipientIDs,
		EntityID:      scheduleM.EntityID,
		CreatedBy:     scheduleM.CreatedBy,
		SentAt:        scheduleM.SentAt,
		FailureReason: scheduleM.FailureReason,
		CreatedAt:     scheduleM.CreatedAt,
		UpdatedAt:     scheduleM.UpdatedAt,
	}, nil
}

// toScheduleDomainList converts a slice of GORM models to domain entities.
func toScheduleDomainList(scheduleModels []*model.ScheduleModel) ([]*entity.ScheduledNotification, error) {
	schedules := make([]*entity.ScheduledNotification, 0, len(scheduleModels))
	for _, scheduleM := range scheduleModels {
		schedule, err := toScheduleDomain(scheduleM)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	return schedules, nil
}
