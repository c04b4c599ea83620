package impl

import (
	"context"
	"log/slog"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const upcomingWindow = 24 * time.Hour

type scheduleService struct {
	logger        *slog.Logger
	scheduleRepo  repository.ScheduleRepository
	deviceRepo    repository.DeviceRepository
	followerRepo  repository.FollowerRepository
	notifications usecase.NotificationUsecase
	now           func() time.Time
}

// NewScheduleService creates the scheduled-notification use case.
func NewScheduleService(
	logger *slog.Logger,
	scheduleRepo repository.ScheduleRepository,
	deviceRepo repository.DeviceRepository,
	followerRepo repository.FollowerRepository,
	notifications usecase.NotificationUsecase,
) usecase.ScheduleUsecase {
	return &scheduleService{
		logger:        logger,
		scheduleRepo:  scheduleRepo,
		deviceRepo:    deviceRepo,
		followerRepo:  followerRepo,
		notifications: notifications,
		now:           time.Now,
	}
}

// CreateSchedule validates and persists a pending schedule.
func (s *scheduleService) CreateSchedule(ctx context.Context, input *usecase.ScheduleInput) (*entity.ScheduledNotification, error) {
	if err := s.validateScheduleInput(input); err != nil {
		return nil, err
	}

	schedule := &entity.ScheduledNotification{
		ID:            uuid.New(),
		ScheduledFor:  input.ScheduledFor,
		Status:        entity.ScheduleStatusPending,
		Type:          input.Type,
		Title:         input.Title,
		Message:       input.Message,
		Data:          input.Data,
		ImageURL:      input.ImageURL,
		ActionURL:     input.ActionURL,
		Target:        input.Target,
		RecipientKind: input.RecipientKind,
		RecipientIDs:  input.RecipientIDs,
		EntityID:      input.EntityID,
		CreatedBy:     input.CreatedBy,
		CreatedAt:     s.now(),
		UpdatedAt:     s.now(),
	}

	if err := s.scheduleRepo.CreateSchedule(ctx, schedule); err != nil {
		return nil, errors.Wrap(err, "failed to store schedule")
	}

	return schedule, nil
}

// CancelSchedule transitions a pending schedule to cancelled. Terminal
// schedules are rejected.
func (s *scheduleService) CancelSchedule(ctx context.Context, id uuid.UUID) (*entity.ScheduledNotification, error) {
	if err := s.scheduleRepo.CancelPending(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrScheduleNotFound):
			return nil, domainerrors.ErrScheduleNotFound
		case errors.Is(err, repository.ErrScheduleNotPending):
			return nil, domainerrors.ErrScheduleNotPending
		default:
			return nil, errors.Wrap(err, "failed to cancel schedule")
		}
	}

	schedule, err := s.scheduleRepo.FindScheduleByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch cancelled schedule")
	}

	return schedule, nil
}

// UpcomingSchedules returns pending schedules due within the next 24 hours,
// soonest first.
func (s *scheduleService) UpcomingSchedules(ctx context.Context) ([]*entity.ScheduledNotification, error) {
	now := s.now()

	schedules, err := s.scheduleRepo.FindUpcomingSchedules(ctx, now, now.Add(upcomingWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch upcoming schedules")
	}

	return schedules, nil
}

// ProcessDueSchedules drains due pending schedules. Each schedule is
// processed in isolation; a failing schedule is marked failed and its
// siblings continue.
func (s *scheduleService) ProcessDueSchedules(ctx context.Context) (int, error) {
	due, err := s.scheduleRepo.FindDueSchedules(ctx, s.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to fetch due schedules")
	}

	for _, schedule := range due {
		s.processSchedule(ctx, schedule)
	}

	return len(due), nil
}

func (s *scheduleService) processSchedule(ctx context.Context, schedule *entity.ScheduledNotification) {
	recipients, kind, err := s.resolveRecipients(ctx, schedule)
	if err != nil {
		s.logger.Error("schedule recipient resolution failed",
			slog.String("schedule_id", schedule.ID.String()),
			slog.String("target", string(schedule.Target)),
			slog.Any("error", err),
		)
		s.markFailed(ctx, schedule.ID, err.Error())

		return
	}

	if len(recipients) == 0 {
		s.logger.Info("schedule resolved to no recipients",
			slog.String("schedule_id", schedule.ID.String()),
			slog.String("target", string(schedule.Target)),
		)
		s.markSent(ctx, schedule.ID)

		return
	}

	var failed int

	// Each recipient goes through the same creation path as a direct send,
	// so delivery routing and persistence behave identically.
	for _, recipientID := range recipients {
		input := &usecase.NotificationInput{
			RecipientID:   recipientID,
			RecipientKind: kind,
			Type:          schedule.Type,
			Title:         schedule.Title,
			Message:       schedule.Message,
			Data:          schedule.Data,
			ImageURL:      schedule.ImageURL,
			ActionURL:     schedule.ActionURL,
		}

		if _, err := s.notifications.Create(ctx, input); err != nil {
			s.logger.Error("scheduled notification creation failed",
				slog.String("schedule_id", schedule.ID.String()),
				slog.String("recipient_id", recipientID.String()),
				slog.Any("error", err),
			)
			failed++
		}
	}

	s.logger.Info("schedule processed",
		slog.String("schedule_id", schedule.ID.String()),
		slog.Int("recipients", len(recipients)),
		slog.Int("failed", failed),
	)

	s.markSent(ctx, schedule.ID)
}

// resolveRecipients expands a schedule's target into concrete recipient IDs
// plus the kind those IDs belong to.
func (s *scheduleService) resolveRecipients(ctx context.Context, schedule *entity.ScheduledNotification) ([]uuid.UUID, entity.RecipientKind, error) {
	switch schedule.Target {
	case entity.TargetAllUsers:
		ids, err := s.deviceRepo.FindRecipientIDsWithActiveDevice(ctx, entity.RecipientUser)
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to resolve all users")
		}

		return ids, entity.RecipientUser, nil

	case entity.TargetAllProviders:
		ids, err := s.deviceRepo.FindRecipientIDsWithActiveDevice(ctx, entity.RecipientProvider)
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to resolve all providers")
		}

		return ids, entity.RecipientProvider, nil

	case entity.TargetSpecificList:
		return schedule.RecipientIDs, schedule.RecipientKind, nil

	case entity.TargetFollowers:
		if schedule.EntityID == nil {
			return nil, "", errors.New("schedule has no entity reference")
		}

		ids, err := s.followerRepo.FindFollowerIDs(ctx, *schedule.EntityID)
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to resolve followers")
		}

		kind := schedule.RecipientKind
		if kind == "" {
			kind = entity.RecipientUser
		}

		return ids, kind, nil

	default:
		return nil, "", errors.Errorf("unknown recipient target: %s", schedule.Target)
	}
}

func (s *scheduleService) markSent(ctx context.Context, id uuid.UUID) {
	if err := s.scheduleRepo.MarkSent(ctx, id, s.now()); err != nil {
		s.logger.Error("failed to mark schedule sent",
			slog.String("schedule_id", id.String()),
			slog.Any("error", err),
		)
	}
}

func (s *scheduleService) markFailed(ctx context.Context, id uuid.UUID, reason string) {
	if err := s.scheduleRepo.MarkFailed(ctx, id, reason); err != nil {
		s.logger.Error("failed to mark schedule failed",
			slog.String("schedule_id", id.String()),
			slog.Any("error", err),
		)
	}
}

func (s *scheduleService) validateScheduleInput(input *usecase.ScheduleInput) error {
	if !input.Target.Valid() {
		return domainerrors.ErrInvalidRecipientTarget
	}
	if !input.ScheduledFor.After(s.now()) {
		return domainerrors.ErrScheduleTimePast
	}
	if input.Title == "" || input.Message == "" {
		return domainerrors.ErrMissingContent
	}

	switch input.Target {
	case entity.TargetSpecificList:
		if len(input.RecipientIDs) == 0 {
			return domainerrors.ErrMissingRecipientList
		}
		if !input.RecipientKind.Valid() {
			return domainerrors.ErrInvalidRecipientKind
		}
	case entity.TargetFollowers:
		if input.EntityID == nil || *input.EntityID == uuid.Nil {
			return domainerrors.ErrMissingEntityReference
		}
	}

	return nil
}
