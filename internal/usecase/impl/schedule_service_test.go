package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/notiftype"
	"pulse/internal/domain/repository"
	mockRepo "pulse/internal/mocks/repository"
	mockUC "pulse/internal/mocks/usecase"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestScheduleService(t *testing.T) (
	*scheduleService,
	*mockRepo.MockScheduleRepository,
	*mockRepo.MockDeviceRepository,
	*mockRepo.MockFollowerRepository,
	*mockUC.MockNotificationUsecase,
) {
	scheduleRepo := mockRepo.NewMockScheduleRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	followerRepo := mockRepo.NewMockFollowerRepository(t)
	notifications := mockUC.NewMockNotificationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewScheduleService(logger, scheduleRepo, deviceRepo, followerRepo, notifications).(*scheduleService)

	return service, scheduleRepo, deviceRepo, followerRepo, notifications
}

func testScheduleInput(scheduledFor time.Time) *usecase.ScheduleInput {
	return &usecase.ScheduleInput{
		ScheduledFor:  scheduledFor,
		Target:        entity.TargetSpecificList,
		RecipientKind: entity.RecipientUser,
		RecipientIDs:  []uuid.UUID{uuid.New()},
		Type:          notiftype.TypeEventReminder,
		Title:         "Reminder",
		Message:       "Event starts soon",
		CreatedBy:     uuid.New(),
	}
}

func TestScheduleService_CreateSchedule_Success(t *testing.T) {
	service, scheduleRepo, _, _, _ := createTestScheduleService(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return base }

	ctx := context.Background()
	input := testScheduleInput(base.Add(time.Hour))

	scheduleRepo.EXPECT().CreateSchedule(ctx, mock.Anything).Return(nil)

	schedule, err := service.CreateSchedule(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.ScheduleStatusPending, schedule.Status)
	assert.Equal(t, input.ScheduledFor, schedule.ScheduledFor)
}

func TestScheduleService_CreateSchedule_TimeNotFuture(t *testing.T) {
	service, _, _, _, _ := createTestScheduleService(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return base }

	for name, at := range map[string]time.Time{
		"past":    base.Add(-time.Minute),
		"present": base,
	} {
		t.Run(name, func(t *testing.T) {
			schedule, err := service.CreateSchedule(context.Background(), testScheduleInput(at))

			assert.ErrorIs(t, err, domainerrors.ErrScheduleTimePast)
			assert.Nil(t, schedule)
		})
	}
}

func TestScheduleService_CreateSchedule_InvalidTarget(t *testing.T) {
	service, _, _, _, _ := createTestScheduleService(t)

	input := testScheduleInput(time.Now().Add(time.Hour))
	input.Target = "everyone"

	schedule, err := service.CreateSchedule(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRecipientTarget)
	assert.Nil(t, schedule)
}

func TestScheduleService_CreateSchedule_SpecificListWithoutRecipients(t *testing.T) {
	service, _, _, _, _ := createTestScheduleService(t)

	input := testScheduleInput(time.Now().Add(time.Hour))
	input.RecipientIDs = nil

	schedule, err := service.CreateSchedule(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrMissingRecipientList)
	assert.Nil(t, schedule)
}

func TestScheduleService_CreateSchedule_FollowersWithoutEntity(t *testing.T) {
	service, _, _, _, _ := createTestScheduleService(t)

	input := testScheduleInput(time.Now().Add(time.Hour))
	input.Target = entity.TargetFollowers
	input.EntityID = nil

	schedule, err := service.CreateSchedule(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrMissingEntityReference)
	assert.Nil(t, schedule)
}

func TestScheduleService_CancelSchedule_Success(t *testing.T) {
	service, scheduleRepo, _, _, _ := createTestScheduleService(t)

	ctx := context.Background()
	id := uuid.New()
	cancelled := &entity.ScheduledNotification{ID: id, Status: entity.ScheduleStatusCancelled}

	scheduleRepo.EXPECT().CancelPending(ctx, id).Return(nil)
	scheduleRepo.EXPECT().FindScheduleByID(ctx, id).Return(cancelled, nil)

	schedule, err := service.CancelSchedule(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, entity.ScheduleStatusCancelled, schedule.Status)
}

func TestScheduleService_CancelSchedule_NotFound(t *testing.T) {
	service, scheduleRepo, _, _, _ := createTestScheduleService(t)

	ctx := context.Background()
	id := uuid.New()

	scheduleRepo.EXPECT().CancelPending(ctx, id).Return(repository.ErrScheduleNotFound)

	schedule, err := service.CancelSchedule(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrScheduleNotFound)
	assert.Nil(t, schedule)
}

func TestScheduleService_CancelSchedule_AlreadyTerminal(t *testing.T) {
	service, scheduleRepo, _, _, _ := createTestScheduleService(t)

	ctx := context.Background()
	id := uuid.New()

	scheduleRepo.EXPECT().CancelPending(ctx, id).Return(repository.ErrScheduleNotPending)

	schedule, err := service.CancelSchedule(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrScheduleNotPending)
	assert.Nil(t, schedule)
}

func TestScheduleService_UpcomingSchedules_Window(t *testing.T) {
	service, scheduleRepo, _, _, _ := createTestScheduleService(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return base }

	ctx := context.Background()
	expected := []*entity.ScheduledNotification{{ID: uuid.New()}}

	scheduleRepo.EXPECT().
		FindUpcomingSchedules(ctx, base, base.Add(24*time.Hour)).
		Return(expected, nil)

	schedules, err := service.UpcomingSchedules(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, schedules)
}

func TestScheduleService_ProcessDueSchedules_SpecificList(t *testing.T) {
	service, scheduleRepo, _, _, notifications := createTestScheduleService(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return base }

	ctx := context.Background()
	recipientA := uuid.New()
	recipientB := uuid.New()
	schedule := &entity.ScheduledNotification{
		ID:            uuid.New(),
		Status:        entity.ScheduleStatusPending,
		Target:        entity.TargetSpecificList,
		RecipientKind: entity.RecipientUser,
		RecipientIDs:  []uuid.UUID{recipientA, recipientB},
		Type:          notiftype.TypeEventReminder,
		Title:         "Reminder",
		Message:       "Soon",
	}

	scheduleRepo.EXPECT().FindDueSchedules(ctx, base).Return([]*entity.ScheduledNotification{schedule}, nil)

	notifications.EXPECT().
		Create(ctx, mock.MatchedBy(func(in *usecase.NotificationInput) bool {
			return (in.RecipientID == recipientA || in.RecipientID == recipientB) &&
				in.RecipientKind == entity.RecipientUser &&
				in.Title == schedule.Title
		})).
		Return(&entity.Notification{ID: uuid.New()}, nil).
		Times(2)

	scheduleRepo.EXPECT().MarkSent(ctx, schedule.ID, base).Return(nil)

	processed, err := service.ProcessDueSchedules(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestScheduleService_ProcessDueSchedules_AllUsers(t *testing.T) {
	service, scheduleRepo, deviceRepo, _, notifications := createTestScheduleService(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return base }

	ctx := context.Background()
	recipient := uuid.New()
	schedule := &entity.ScheduledNotification{
		ID:      uuid.New(),
		Status:  entity.ScheduleStatusPending,
		Target:  entity.TargetAllUsers,
		Type:    notiftype.TypeSystem,
		Title:   "Maintenance",
		Message: "Tonight at 2am",
	}

	scheduleRepo.EXPECT().FindDueSchedules(ctx, base).Return([]*entity.ScheduledNotification{schedule}, nil)
	deviceRepo.EXPECT().
		FindRecipientIDsWithActiveDevice(ctx, entity.RecipientUser).
		Return([]uuid.UUID{recipient}, nil)
	notifications.EXPECT().
		Create(ctx, mock.MatchedBy(func(in *usecase.NotificationInput) bool {
			return in.RecipientID == recipient && in.RecipientKind == entity.RecipientUser
		})).
		Return(&entity.Notification{ID: uuid.New()}, nil)
	scheduleRepo.EXPECT().MarkSent(ctx, schedule.ID, base).Return(nil)

	processed, err := service.ProcessDueSchedules(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestScheduleService_ProcessDueSchedules_Followers(t *testing.T) {
	service, scheduleRepo, _, followerRepo, notifications := createTestScheduleService(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return base }

	ctx := context.Background()
	entityID := uuid.New()
	follower := uuid.New()
	schedule := &entity.ScheduledNotification{
		ID:       uuid.New(),
		Status:   entity.ScheduleStatusPending,
		Target:   entity.TargetFollowers,
		EntityID: &entityID,
		Type:     notiftype.TypeEventStarted,
		Title:    "Live now",
		Message:  "The event started",
	}

	scheduleRepo.EXPECT().FindDueSchedules(ctx, base).Return([]*entity.ScheduledNotification{schedule}, nil)
	followerRepo.EXPECT().FindFollowerIDs(ctx, entityID).Return([]uuid.UUID{follower}, nil)
	notifications.EXPECT().
		Create(ctx, mock.MatchedBy(func(in *usecase.NotificationInput) bool {
			return in.RecipientID == follower && in.RecipientKind == entity.RecipientUser
		})).
		Return(&entity.Notification{ID: uuid.New()}, nil)
	scheduleRepo.EXPECT().MarkSent(ctx, schedule.ID, base).Return(nil)

	processed, err := service.ProcessDueSchedules(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestScheduleService_ProcessDueSchedules_ResolutionFailureMarksFailed(t *testing.T) {
	service, scheduleRepo, deviceRepo, _, _ := createTestScheduleService(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return base }

	ctx := context.Background()
	schedule := &entity.ScheduledNotification{
		ID:      uuid.New(),
		Status:  entity.ScheduleStatusPending,
		Target:  entity.TargetAllProviders,
		Type:    notiftype.TypeSystem,
		Title:   "Update",
		Message: "New terms",
	}

	scheduleRepo.EXPECT().FindDueSchedules(ctx, base).Return([]*entity.ScheduledNotification{schedule}, nil)
	deviceRepo.EXPECT().
		FindRecipientIDsWithActiveDevice(ctx, entity.RecipientProvider).
		Return(nil, errors.New("db error"))
	scheduleRepo.EXPECT().
		MarkFailed(ctx, schedule.ID, mock.MatchedBy(func(reason string) bool { return reason != "" })).
		Return(nil)

	processed, err := service.ProcessDueSchedules(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestScheduleService_ProcessDueSchedules_RecipientFailureIsolated(t *testing.T) {
	service, scheduleRepo, _, _, notifications := createTestScheduleService(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return base }

	ctx := context.Background()
	failing := uuid.New()
	healthy := uuid.New()
	schedule := &entity.ScheduledNotification{
		ID:            uuid.New(),
		Status:        entity.ScheduleStatusPending,
		Target:        entity.TargetSpecificList,
		RecipientKind: entity.RecipientUser,
		RecipientIDs:  []uuid.UUID{failing, healthy},
		Type:          notiftype.TypeEventReminder,
		Title:         "Reminder",
		Message:       "Soon",
	}

	scheduleRepo.EXPECT().FindDueSchedules(ctx, base).Return([]*entity.ScheduledNotification{schedule}, nil)
	notifications.EXPECT().
		Create(ctx, mock.MatchedBy(func(in *usecase.NotificationInput) bool { return in.RecipientID == failing })).
		Return(nil, errors.New("store failed"))
	notifications.EXPECT().
		Create(ctx, mock.MatchedBy(func(in *usecase.NotificationInput) bool { return in.RecipientID == healthy })).
		Return(&entity.Notification{ID: uuid.New()}, nil)
	scheduleRepo.EXPECT().MarkSent(ctx, schedule.ID, base).Return(nil)

	processed, err := service.ProcessDueSchedules(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestScheduleService_ProcessDueSchedules_EmptyResolutionStillSent(t *testing.T) {
	service, scheduleRepo, deviceRepo, _, _ := createTestScheduleService(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return base }

	ctx := context.Background()
	schedule := &entity.ScheduledNotification{
		ID:      uuid.New(),
		Status:  entity.ScheduleStatusPending,
		Target:  entity.TargetAllUsers,
		Type:    notiftype.TypeSystem,
		Title:   "Notice",
		Message: "Nothing to see",
	}

	scheduleRepo.EXPECT().FindDueSchedules(ctx, base).Return([]*entity.ScheduledNotification{schedule}, nil)
	deviceRepo.EXPECT().FindRecipientIDsWithActiveDevice(ctx, entity.RecipientUser).Return(nil, nil)
	scheduleRepo.EXPECT().MarkSent(ctx, schedule.ID, base).Return(nil)

	processed, err := service.ProcessDueSchedules(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestScheduleService_ProcessDueSchedules_FetchError(t *testing.T) {
	service, scheduleRepo, _, _, _ := createTestScheduleService(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return base }

	ctx := context.Background()
	scheduleRepo.EXPECT().FindDueSchedules(ctx, base).Return(nil, errors.New("db offline"))

	processed, err := service.ProcessDueSchedules(ctx)

	assert.Error(t, err)
	assert.Zero(t, processed)
}
