package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pulse/internal/domain/constants"
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

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
	*mockUC.MockDispatchUsecase,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	dispatcher := mockUC.NewMockDispatchUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewNotificationService(logger, notificationRepo, dispatcher)

	return service, notificationRepo, dispatcher
}

func testInput() *usecase.NotificationInput {
	return &usecase.NotificationInput{
		RecipientID:   uuid.New(),
		RecipientKind: entity.RecipientUser,
		Type:          notiftype.TypeMessageDirect,
		Title:         "New message",
		Message:       "Hello there",
	}
}

func TestNotificationService_Create_Success(t *testing.T) {
	service, notificationRepo, dispatcher := createTestNotificationService(t)

	ctx := context.Background()
	input := testInput()

	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)

	dispatched := make(chan struct{})
	dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *entity.Notification) (*usecase.DeliveryOutcome, error) {
			close(dispatched)
			return &usecase.DeliveryOutcome{Channel: constants.DeliveryChannelSession, Delivered: true}, nil
		})

	notification, err := service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.RecipientID, notification.RecipientID)
	assert.Equal(t, string(notiftype.PriorityHigh), notification.Priority)
	assert.False(t, notification.Broadcast)

	select {
	case <-dispatched:
	case <-time.After(time.Second):
		t.Fatal("dispatch was never invoked")
	}
}

func TestNotificationService_Create_ReturnsBeforeDispatchCompletes(t *testing.T) {
	service, notificationRepo, dispatcher := createTestNotificationService(t)

	ctx := context.Background()
	input := testInput()

	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)

	release := make(chan struct{})
	done := make(chan struct{})
	dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *entity.Notification) (*usecase.DeliveryOutcome, error) {
			<-release
			close(done)
			return &usecase.DeliveryOutcome{Channel: constants.DeliveryChannelNone}, nil
		})

	notification, err := service.Create(ctx, input)

	// Creation returns while the dispatch goroutine is still blocked.
	require.NoError(t, err)
	assert.NotNil(t, notification)

	close(release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatch never finished")
	}
}

func TestNotificationService_Create_InvalidKind(t *testing.T) {
	service, _, _ := createTestNotificationService(t)

	input := testInput()
	input.RecipientKind = "ghost"

	notification, err := service.Create(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRecipientKind)
	assert.Nil(t, notification)
}

func TestNotificationService_Create_MissingRecipient(t *testing.T) {
	service, _, _ := createTestNotificationService(t)

	input := testInput()
	input.RecipientID = uuid.Nil

	notification, err := service.Create(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrMissingRecipient)
	assert.Nil(t, notification)
}

func TestNotificationService_Create_MissingContent(t *testing.T) {
	service, _, _ := createTestNotificationService(t)

	input := testInput()
	input.Message = ""

	notification, err := service.Create(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrMissingContent)
	assert.Nil(t, notification)
}

func TestNotificationService_Create_StoreError(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	input := testInput()

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		Return(errors.New("db connection failed"))

	notification, err := service.Create(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, notification)
	assert.Contains(t, err.Error(), "failed to store notification")
}

func TestNotificationService_Broadcast_CountsOutcomes(t *testing.T) {
	service, notificationRepo, dispatcher := createTestNotificationService(t)

	ctx := context.Background()
	input := testInput()
	reachable := uuid.New()
	unreachable := uuid.New()

	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil).Times(2)

	dispatcher.EXPECT().
		Dispatch(ctx, mock.MatchedBy(func(n *entity.Notification) bool { return n.RecipientID == reachable })).
		Return(&usecase.DeliveryOutcome{Channel: constants.DeliveryChannelSession, Delivered: true}, nil)
	dispatcher.EXPECT().
		Dispatch(ctx, mock.MatchedBy(func(n *entity.Notification) bool { return n.RecipientID == unreachable })).
		Return(&usecase.DeliveryOutcome{Channel: constants.DeliveryChannelNone}, nil)

	result, err := service.Broadcast(ctx, input, []uuid.UUID{reachable, unreachable})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
}

func TestNotificationService_Broadcast_RecipientIsolation(t *testing.T) {
	service, notificationRepo, dispatcher := createTestNotificationService(t)

	ctx := context.Background()
	input := testInput()
	first := uuid.New()
	second := uuid.New()

	// The first recipient's record cannot be stored; the second still goes out.
	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool { return n.RecipientID == first })).
		Return(errors.New("insert failed"))
	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool { return n.RecipientID == second })).
		Return(nil)

	dispatcher.EXPECT().
		Dispatch(ctx, mock.MatchedBy(func(n *entity.Notification) bool { return n.RecipientID == second })).
		Return(&usecase.DeliveryOutcome{Channel: constants.DeliveryChannelPush, Delivered: true}, nil)

	result, err := service.Broadcast(ctx, input, []uuid.UUID{first, second})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
}

func TestNotificationService_Broadcast_MarksRecordsAsBroadcast(t *testing.T) {
	service, notificationRepo, dispatcher := createTestNotificationService(t)

	ctx := context.Background()
	input := testInput()
	recipient := uuid.New()

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool { return n.Broadcast })).
		Return(nil)
	dispatcher.EXPECT().
		Dispatch(ctx, mock.Anything).
		Return(&usecase.DeliveryOutcome{Channel: constants.DeliveryChannelSession, Delivered: true}, nil)

	result, err := service.Broadcast(ctx, input, []uuid.UUID{recipient})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}

func TestNotificationService_Broadcast_EmptyRecipients(t *testing.T) {
	service, _, _ := createTestNotificationService(t)

	result, err := service.Broadcast(context.Background(), testInput(), nil)

	assert.ErrorIs(t, err, domainerrors.ErrMissingRecipient)
	assert.Nil(t, result)
}

func TestNotificationService_MarkRead_Success(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	id := uuid.New()

	notificationRepo.EXPECT().
		FindNotificationByID(ctx, id).
		Return(&entity.Notification{ID: id, IsRead: false}, nil)
	notificationRepo.EXPECT().MarkRead(ctx, id).Return(nil)

	notification, err := service.MarkRead(ctx, id)

	require.NoError(t, err)
	assert.True(t, notification.IsRead)
	assert.NotNil(t, notification.ReadAt)
}

func TestNotificationService_MarkRead_AlreadyRead(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	id := uuid.New()
	readAt := time.Now().Add(-time.Hour)

	notificationRepo.EXPECT().
		FindNotificationByID(ctx, id).
		Return(&entity.Notification{ID: id, IsRead: true, ReadAt: &readAt}, nil)

	notification, err := service.MarkRead(ctx, id)

	require.NoError(t, err)
	assert.True(t, notification.IsRead)
	assert.Equal(t, &readAt, notification.ReadAt)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	id := uuid.New()

	notificationRepo.EXPECT().
		FindNotificationByID(ctx, id).
		Return(nil, repository.ErrNotificationNotFound)

	notification, err := service.MarkRead(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
	assert.Nil(t, notification)
}
