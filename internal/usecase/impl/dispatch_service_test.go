package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"pulse/internal/domain/constants"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/notiftype"
	domainsvc "pulse/internal/domain/service"
	mockRepo "pulse/internal/mocks/repository"
	mockSvc "pulse/internal/mocks/service"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDispatchService(t *testing.T) (
	usecase.DispatchUsecase,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockDeviceRepository,
	*mockSvc.MockRealtimeGateway,
	*mockSvc.MockPushSender,
	*mockSvc.MockEventPublisher,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	gateway := mockSvc.NewMockRealtimeGateway(t)
	pushSender := mockSvc.NewMockPushSender(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewDispatchService(logger, notificationRepo, deviceRepo, gateway, pushSender, publisher)

	return service, notificationRepo, deviceRepo, gateway, pushSender, publisher
}

func testNotification(notificationType string) *entity.Notification {
	return &entity.Notification{
		ID:            uuid.New(),
		RecipientID:   uuid.New(),
		RecipientKind: entity.RecipientUser,
		Type:          notificationType,
		Title:         "Test Title",
		Message:       "Test Message",
		CreatedAt:     time.Now(),
	}
}

func TestDispatchService_Dispatch_SessionChannel(t *testing.T) {
	service, notificationRepo, _, gateway, _, publisher := createTestDispatchService(t)

	ctx := context.Background()
	n := testNotification(notiftype.TypeSystem)

	gateway.EXPECT().
		PushToSession(n.RecipientID, entity.RecipientUser, constants.EventSessionNotification, n).
		Return(true)
	notificationRepo.EXPECT().MarkSocketDelivered(ctx, n.ID).Return(nil)
	gateway.EXPECT().MirrorToOperators(constants.EventOperatorMirror, mock.Anything).Return()
	publisher.EXPECT().PublishDeliveryEvent(ctx, mock.Anything).Return(nil)

	outcome, err := service.Dispatch(ctx, n)

	require.NoError(t, err)
	assert.Equal(t, constants.DeliveryChannelSession, outcome.Channel)
	assert.True(t, outcome.Delivered)
	assert.True(t, n.SocketDelivered)
	assert.NotNil(t, n.SocketDeliveredAt)
}

func TestDispatchService_Dispatch_DeviceChannelFallback(t *testing.T) {
	service, notificationRepo, _, gateway, _, publisher := createTestDispatchService(t)

	ctx := context.Background()
	n := testNotification(notiftype.TypeMessageDirect)

	gateway.EXPECT().
		PushToSession(n.RecipientID, entity.RecipientUser, constants.EventSessionNotification, n).
		Return(false)
	gateway.EXPECT().
		PushToDevices(n.RecipientID, "", constants.EventDeviceNotification, n).
		Return(2)
	notificationRepo.EXPECT().MarkSocketDelivered(ctx, n.ID).Return(nil)
	gateway.EXPECT().MirrorToOperators(constants.EventOperatorMirror, mock.Anything).Return()
	publisher.EXPECT().PublishDeliveryEvent(ctx, mock.Anything).Return(nil)

	outcome, err := service.Dispatch(ctx, n)

	require.NoError(t, err)
	assert.Equal(t, constants.DeliveryChannelDevice, outcome.Channel)
	assert.True(t, outcome.Delivered)
}

func TestDispatchService_Dispatch_DeviceChannelSkippedForNonRealtimeType(t *testing.T) {
	service, _, deviceRepo, gateway, _, publisher := createTestDispatchService(t)

	ctx := context.Background()
	n := testNotification(notiftype.TypeSystem)

	gateway.EXPECT().
		PushToSession(n.RecipientID, entity.RecipientUser, constants.EventSessionNotification, n).
		Return(false)
	// No PushToDevices expectation: a system notification must never take
	// the device channel.
	deviceRepo.EXPECT().FindActiveTokens(ctx, n.RecipientID, entity.RecipientUser).Return(nil, nil)
	gateway.EXPECT().MirrorToOperators(constants.EventOperatorMirror, mock.Anything).Return()
	publisher.EXPECT().PublishDeliveryEvent(ctx, mock.Anything).Return(nil)

	outcome, err := service.Dispatch(ctx, n)

	require.NoError(t, err)
	assert.Equal(t, constants.DeliveryChannelNone, outcome.Channel)
	assert.False(t, outcome.Delivered)
}

func TestDispatchService_Dispatch_PushFanoutSuccess(t *testing.T) {
	service, notificationRepo, deviceRepo, gateway, pushSender, publisher := createTestDispatchService(t)

	ctx := context.Background()
	n := testNotification(notiftype.TypePaymentUpdate)

	gateway.EXPECT().
		PushToSession(n.RecipientID, entity.RecipientUser, constants.EventSessionNotification, n).
		Return(false)
	deviceRepo.EXPECT().
		FindActiveTokens(ctx, n.RecipientID, entity.RecipientUser).
		Return([]string{"token-1", "token-2"}, nil)

	pushSender.EXPECT().
		Multicast(ctx, mock.MatchedBy(func(msg *domainsvc.PushMessage) bool {
			return len(msg.Tokens) == 2 && msg.Title == n.Title && msg.Data["type"] == n.Type
		})).
		Return(&domainsvc.PushResult{SuccessCount: 2, FailureCount: 0}, nil)

	notificationRepo.EXPECT().MarkPushDelivered(ctx, n.ID).Return(nil)
	gateway.EXPECT().MirrorToOperators(constants.EventOperatorMirror, mock.Anything).Return()
	publisher.EXPECT().PublishDeliveryEvent(ctx, mock.Anything).Return(nil)

	outcome, err := service.Dispatch(ctx, n)

	require.NoError(t, err)
	assert.Equal(t, constants.DeliveryChannelPush, outcome.Channel)
	assert.True(t, outcome.Delivered)
	assert.True(t, n.PushDelivered)
}

func TestDispatchService_Dispatch_PushFanoutAllFailed(t *testing.T) {
	service, _, deviceRepo, gateway, pushSender, publisher := createTestDispatchService(t)

	ctx := context.Background()
	n := testNotification(notiftype.TypePaymentUpdate)

	gateway.EXPECT().
		PushToSession(n.RecipientID, entity.RecipientUser, constants.EventSessionNotification, n).
		Return(false)
	deviceRepo.EXPECT().
		FindActiveTokens(ctx, n.RecipientID, entity.RecipientUser).
		Return([]string{"token-1"}, nil)
	pushSender.EXPECT().
		Multicast(ctx, mock.Anything).
		Return(&domainsvc.PushResult{SuccessCount: 0, FailureCount: 1}, nil)
	gateway.EXPECT().MirrorToOperators(constants.EventOperatorMirror, mock.Anything).Return()
	publisher.EXPECT().PublishDeliveryEvent(ctx, mock.Anything).Return(nil)

	outcome, err := service.Dispatch(ctx, n)

	require.NoError(t, err)
	assert.Equal(t, constants.DeliveryChannelPush, outcome.Channel)
	assert.False(t, outcome.Delivered)
	assert.False(t, n.PushDelivered)
}

func TestDispatchService_Dispatch_InvalidTokensDeactivated(t *testing.T) {
	service, notificationRepo, deviceRepo, gateway, pushSender, publisher := createTestDispatchService(t)

	ctx := context.Background()
	n := testNotification(notiftype.TypeEventReminder)

	gateway.EXPECT().
		PushToSession(n.RecipientID, entity.RecipientUser, constants.EventSessionNotification, n).
		Return(false)
	deviceRepo.EXPECT().
		FindActiveTokens(ctx, n.RecipientID, entity.RecipientUser).
		Return([]string{"good-token", "stale-token"}, nil)
	pushSender.EXPECT().
		Multicast(ctx, mock.Anything).
		Return(&domainsvc.PushResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"stale-token"}}, nil)
	deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"stale-token"}).Return(nil)
	notificationRepo.EXPECT().MarkPushDelivered(ctx, n.ID).Return(nil)
	gateway.EXPECT().MirrorToOperators(constants.EventOperatorMirror, mock.Anything).Return()
	publisher.EXPECT().PublishDeliveryEvent(ctx, mock.Anything).Return(nil)

	outcome, err := service.Dispatch(ctx, n)

	require.NoError(t, err)
	assert.True(t, outcome.Delivered)
}

func TestDispatchService_Dispatch_NoTokens(t *testing.T) {
	service, _, deviceRepo, gateway, _, publisher := createTestDispatchService(t)

	ctx := context.Background()
	n := testNotification(notiftype.TypeEventStarted)

	gateway.EXPECT().
		PushToSession(n.RecipientID, entity.RecipientUser, constants.EventSessionNotification, n).
		Return(false)
	deviceRepo.EXPECT().
		FindActiveTokens(ctx, n.RecipientID, entity.RecipientUser).
		Return([]string{}, nil)
	gateway.EXPECT().MirrorToOperators(constants.EventOperatorMirror, mock.Anything).Return()
	publisher.EXPECT().PublishDeliveryEvent(ctx, mock.Anything).Return(nil)

	outcome, err := service.Dispatch(ctx, n)

	require.NoError(t, err)
	assert.Equal(t, constants.DeliveryChannelNone, outcome.Channel)
	assert.False(t, outcome.Delivered)
}

func TestDispatchService_Dispatch_TokenFetchError(t *testing.T) {
	service, _, deviceRepo, gateway, _, publisher := createTestDispatchService(t)

	ctx := context.Background()
	n := testNotification(notiftype.TypeSystem)

	gateway.EXPECT().
		PushToSession(n.RecipientID, entity.RecipientUser, constants.EventSessionNotification, n).
		Return(false)
	deviceRepo.EXPECT().
		FindActiveTokens(ctx, n.RecipientID, entity.RecipientUser).
		Return(nil, errors.New("db error"))
	gateway.EXPECT().MirrorToOperators(constants.EventOperatorMirror, mock.Anything).Return()
	publisher.EXPECT().PublishDeliveryEvent(ctx, mock.Anything).Return(nil)

	outcome, err := service.Dispatch(ctx, n)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch active tokens")
	assert.Equal(t, constants.DeliveryChannelNone, outcome.Channel)
}

func TestDispatchService_Dispatch_AlreadyDelivered(t *testing.T) {
	service, _, _, gateway, _, publisher := createTestDispatchService(t)

	ctx := context.Background()
	n := testNotification(notiftype.TypeMessageDirect)
	n.SocketDelivered = true

	// Only the operator mirror and the outcome event fire; no channel is
	// touched again.
	gateway.EXPECT().MirrorToOperators(constants.EventOperatorMirror, mock.Anything).Return()
	publisher.EXPECT().PublishDeliveryEvent(ctx, mock.Anything).Return(nil)

	outcome, err := service.Dispatch(ctx, n)

	require.NoError(t, err)
	assert.Equal(t, constants.DeliveryChannelNone, outcome.Channel)
	assert.False(t, outcome.Delivered)
}

func TestDispatchService_Dispatch_PublisherFailureSwallowed(t *testing.T) {
	service, notificationRepo, _, gateway, _, publisher := createTestDispatchService(t)

	ctx := context.Background()
	n := testNotification(notiftype.TypeSystem)

	gateway.EXPECT().
		PushToSession(n.RecipientID, entity.RecipientUser, constants.EventSessionNotification, n).
		Return(true)
	notificationRepo.EXPECT().MarkSocketDelivered(ctx, n.ID).Return(nil)
	gateway.EXPECT().MirrorToOperators(constants.EventOperatorMirror, mock.Anything).Return()
	publisher.EXPECT().PublishDeliveryEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	outcome, err := service.Dispatch(ctx, n)

	require.NoError(t, err)
	assert.True(t, outcome.Delivered)
}

func TestBuildPushData_StringifiesValues(t *testing.T) {
	n := testNotification(notiftype.TypeMessageDirect)
	n.ActionURL = "app://chat/42"
	n.Data = map[string]any{
		"count":  3,
		"sender": "alice",
		"meta":   map[string]any{"room": "general"},
	}

	data := buildPushData(n)

	assert.Equal(t, "3", data["count"])
	assert.Equal(t, "alice", data["sender"])
	assert.Equal(t, n.ID.String(), data["notification_id"])
	assert.Equal(t, n.Type, data["type"])
	assert.Equal(t, "app://chat/42", data["action_url"])

	var meta map[string]string
	require.NoError(t, json.Unmarshal([]byte(data["meta"]), &meta))
	assert.Equal(t, "general", meta["room"])
}
