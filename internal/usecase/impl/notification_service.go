package impl

import (
	"context"
	"log/slog"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/notiftype"
	"pulse/internal/domain/repository"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// Upper bound on a detached delivery attempt after creation returns.
	dispatchTimeout = 30 * time.Second
)

type notificationService struct {
	logger           *slog.Logger
	notificationRepo repository.NotificationRepository
	dispatcher       usecase.DispatchUsecase
}

// NewNotificationService creates the notification creation and read-state
// use case.
func NewNotificationService(
	logger *slog.Logger,
	notificationRepo repository.NotificationRepository,
	dispatcher usecase.DispatchUsecase,
) usecase.NotificationUsecase {
	return &notificationService{
		logger:           logger,
		notificationRepo: notificationRepo,
		dispatcher:       dispatcher,
	}
}

// Create persists the notification and hands it to the dispatcher in a
// detached goroutine. The caller observes only the stored record; delivery
// outcome shows up later on the record's flags.
func (s *notificationService) Create(ctx context.Context, input *usecase.NotificationInput) (*entity.Notification, error) {
	notification, err := s.create(ctx, input, false)
	if err != nil {
		return nil, err
	}

	// The dispatch attempt must not be cancelled by the caller's request
	// lifecycle, but it still needs an upper bound.
	detached, cancel := context.WithTimeout(context.WithoutCancel(ctx), dispatchTimeout)
	go func() {
		defer cancel()

		if _, dispatchErr := s.dispatcher.Dispatch(detached, notification); dispatchErr != nil {
			s.logger.Error("detached dispatch failed",
				slog.String("notification_id", notification.ID.String()),
				slog.Any("error", dispatchErr),
			)
		}
	}()

	return notification, nil
}

// Broadcast runs the single-recipient path once per recipient,
// synchronously. A recipient whose record cannot be stored or delivered
// counts as failed without aborting the rest.
func (s *notificationService) Broadcast(ctx context.Context, input *usecase.NotificationInput, recipients []uuid.UUID) (*usecase.BroadcastResult, error) {
	if len(recipients) == 0 {
		return nil, domainerrors.ErrMissingRecipient
	}

	result := &usecase.BroadcastResult{}

	for _, recipientID := range recipients {
		perRecipient := *input
		perRecipient.RecipientID = recipientID

		notification, err := s.create(ctx, &perRecipient, true)
		if err != nil {
			s.logger.Error("broadcast recipient creation failed",
				slog.String("recipient_id", recipientID.String()),
				slog.Any("error", err),
			)
			result.Failed++

			continue
		}

		outcome, err := s.dispatcher.Dispatch(ctx, notification)
		if err != nil {
			s.logger.Error("broadcast recipient dispatch failed",
				slog.String("notification_id", notification.ID.String()),
				slog.Any("error", err),
			)
		}

		if outcome != nil && outcome.Delivered {
			result.Sent++
		} else {
			result.Failed++
		}
	}

	return result, nil
}

// MarkRead sets the read flag. Marking an already-read notification returns
// the record unchanged.
func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch notification")
	}

	if notification.IsRead {
		return notification, nil
	}

	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to mark notification read")
	}

	now := time.Now()
	notification.IsRead = true
	notification.ReadAt = &now

	return notification, nil
}

func (s *notificationService) create(ctx context.Context, input *usecase.NotificationInput, broadcast bool) (*entity.Notification, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	notification := &entity.Notification{
		Broadcast:      broadcast,
		ID:             uuid.New(),
		RecipientID:    input.RecipientID,
		RecipientKind:  input.RecipientKind,
		Type:           input.Type,
		Title:          input.Title,
		Message:        input.Message,
		Data:           input.Data,
		ImageURL:       input.ImageURL,
		ActionURL:      input.ActionURL,
		Priority:       string(notiftype.Lookup(input.Type).Priority),
		TargetDeviceID: input.TargetDeviceID,
		CreatedAt:      time.Now(),
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to store notification")
	}

	return notification, nil
}

func validateInput(input *usecase.NotificationInput) error {
	if !input.RecipientKind.Valid() {
		return domainerrors.ErrInvalidRecipientKind
	}
	if input.RecipientID == uuid.Nil {
		return domainerrors.ErrMissingRecipient
	}
	if input.Title == "" || input.Message == "" {
		return domainerrors.ErrMissingContent
	}

	return nil
}
