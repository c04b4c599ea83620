package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/constants"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/notiftype"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/usecase"

	"github.com/pkg/errors"
)

const (
	// Provider batch size limit per multicast call.
	pushBatchSize = 500
)

type dispatchService struct {
	logger           *slog.Logger
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	gateway          service.RealtimeGateway
	pushSender       service.PushSender
	publisher        service.EventPublisher
}

// NewDispatchService creates the delivery router. It consults the presence
// registry first and falls back to push fan-out, in the strict order
// session channel, device channel, push.
func NewDispatchService(
	logger *slog.Logger,
	notificationRepo repository.NotificationRepository,
	deviceRepo repository.DeviceRepository,
	gateway service.RealtimeGateway,
	pushSender service.PushSender,
	publisher service.EventPublisher,
) usecase.DispatchUsecase {
	return &dispatchService{
		logger:           logger,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		gateway:          gateway,
		pushSender:       pushSender,
		publisher:        publisher,
	}
}

// Dispatch routes one persisted notification. Exactly one channel is
// reached per invocation; the operator mirror is attempted independently of
// the primary outcome and its failures are swallowed.
func (s *dispatchService) Dispatch(ctx context.Context, n *entity.Notification) (*usecase.DeliveryOutcome, error) {
	outcome, err := s.deliver(ctx, n)
	if outcome == nil {
		outcome = &usecase.DeliveryOutcome{Channel: constants.DeliveryChannelNone}
	}

	s.mirrorToOperators(n, outcome)
	s.publishOutcome(ctx, n, outcome)

	return outcome, err
}

func (s *dispatchService) deliver(ctx context.Context, n *entity.Notification) (*usecase.DeliveryOutcome, error) {
	// Delivery flags are set-once. A record that already carries a flag was
	// delivered by an earlier invocation; nothing may be re-sent.
	if n.SocketDelivered || n.PushDelivered {
		s.logger.Debug("skipping dispatch of already-delivered notification",
			slog.String("notification_id", n.ID.String()),
			slog.Bool("socket_delivered", n.SocketDelivered),
			slog.Bool("push_delivered", n.PushDelivered),
		)

		return &usecase.DeliveryOutcome{Channel: constants.DeliveryChannelNone}, nil
	}

	// Step 1: session channel.
	if s.gateway.PushToSession(n.RecipientID, n.RecipientKind, constants.EventSessionNotification, n) {
		if err := s.markSocketDelivered(ctx, n); err != nil {
			return &usecase.DeliveryOutcome{Channel: constants.DeliveryChannelSession, Delivered: true}, err
		}

		return &usecase.DeliveryOutcome{Channel: constants.DeliveryChannelSession, Delivered: true}, nil
	}

	// Step 2: device channel, only for types that prefer realtime delivery.
	if notiftype.PrefersRealtime(n.Type) {
		if reached := s.gateway.PushToDevices(n.RecipientID, n.TargetDeviceID, constants.EventDeviceNotification, n); reached > 0 {
			if err := s.markSocketDelivered(ctx, n); err != nil {
				return &usecase.DeliveryOutcome{Channel: constants.DeliveryChannelDevice, Delivered: true}, err
			}

			return &usecase.DeliveryOutcome{Channel: constants.DeliveryChannelDevice, Delivered: true}, nil
		}
	}

	// Step 3: push fan-out.
	return s.deliverPush(ctx, n)
}

func (s *dispatchService) deliverPush(ctx context.Context, n *entity.Notification) (*usecase.DeliveryOutcome, error) {
	tokens, err := s.deviceRepo.FindActiveTokens(ctx, n.RecipientID, n.RecipientKind)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch active tokens")
	}

	// An empty token set is not an error: the recipient simply has no
	// reachable channel right now.
	if len(tokens) == 0 {
		s.logger.Info("no live channel and no active tokens, leaving notification undelivered",
			slog.String("notification_id", n.ID.String()),
			slog.String("recipient_id", n.RecipientID.String()),
		)

		return &usecase.DeliveryOutcome{Channel: constants.DeliveryChannelNone}, nil
	}

	msg := &service.PushMessage{
		Title:    n.Title,
		Body:     n.Message,
		Data:     buildPushData(n),
		ImageURL: n.ImageURL,
		Config:   notiftype.Lookup(n.Type),
	}

	var (
		totalSuccess  int
		totalFailure  int
		invalidTokens []string
	)

	for i := 0; i < len(tokens); i += pushBatchSize {
		end := min(i+pushBatchSize, len(tokens))
		msg.Tokens = tokens[i:end]

		result, sendErr := s.pushSender.Multicast(ctx, msg)
		if sendErr != nil {
			s.logger.Error("push multicast failed",
				slog.String("notification_id", n.ID.String()),
				slog.Int("batch_size", len(msg.Tokens)),
				slog.Any("error", sendErr),
			)
			totalFailure += len(msg.Tokens)

			continue
		}

		totalSuccess += result.SuccessCount
		totalFailure += result.FailureCount
		invalidTokens = append(invalidTokens, result.InvalidTokens...)
	}

	// Pruning invalid tokens is the device registry's operation; the
	// dispatcher only reports what the provider flagged.
	if len(invalidTokens) > 0 {
		if err := s.deviceRepo.DeactivateByTokens(ctx, invalidTokens); err != nil {
			s.logger.Warn("failed to deactivate invalid tokens",
				slog.Int("token_count", len(invalidTokens)),
				slog.Any("error", err),
			)
		}
	}

	s.logger.Info("push fan-out completed",
		slog.String("notification_id", n.ID.String()),
		slog.Int("success", totalSuccess),
		slog.Int("failure", totalFailure),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	if totalSuccess == 0 {
		return &usecase.DeliveryOutcome{Channel: constants.DeliveryChannelPush}, nil
	}

	if err := s.markPushDelivered(ctx, n); err != nil {
		return &usecase.DeliveryOutcome{Channel: constants.DeliveryChannelPush, Delivered: true}, err
	}

	return &usecase.DeliveryOutcome{Channel: constants.DeliveryChannelPush, Delivered: true}, nil
}

func (s *dispatchService) markSocketDelivered(ctx context.Context, n *entity.Notification) error {
	if err := s.notificationRepo.MarkSocketDelivered(ctx, n.ID); err != nil {
		s.logger.Error("failed to persist socket-delivered flag",
			slog.String("notification_id", n.ID.String()),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to mark socket delivered")
	}

	now := time.Now()
	n.SocketDelivered = true
	n.SocketDeliveredAt = &now

	return nil
}

func (s *dispatchService) markPushDelivered(ctx context.Context, n *entity.Notification) error {
	if err := s.notificationRepo.MarkPushDelivered(ctx, n.ID); err != nil {
		s.logger.Error("failed to persist push-delivered flag",
			slog.String("notification_id", n.ID.String()),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to mark push delivered")
	}

	now := time.Now()
	n.PushDelivered = true
	n.PushDeliveredAt = &now

	return nil
}

// operatorMirror is the summarized payload mirrored to connected operator
// sessions after every dispatch attempt.
type operatorMirror struct {
	NotificationID string `json:"notification_id"`
	RecipientID    string `json:"recipient_id"`
	RecipientKind  string `json:"recipient_kind"`
	Type           string `json:"type"`
	Title          string `json:"title"`
	Channel        string `json:"channel"`
	Delivered      bool   `json:"delivered"`
}

func (s *dispatchService) mirrorToOperators(n *entity.Notification, outcome *usecase.DeliveryOutcome) {
	s.gateway.MirrorToOperators(constants.EventOperatorMirror, &operatorMirror{
		NotificationID: n.ID.String(),
		RecipientID:    n.RecipientID.String(),
		RecipientKind:  string(n.RecipientKind),
		Type:           n.Type,
		Title:          n.Title,
		Channel:        outcome.Channel,
		Delivered:      outcome.Delivered,
	})
}

func (s *dispatchService) publishOutcome(ctx context.Context, n *entity.Notification, outcome *usecase.DeliveryOutcome) {
	event := &service.DeliveryEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: n.ID.String(),
		RecipientID:    n.RecipientID.String(),
		RecipientKind:  string(n.RecipientKind),
		Type:           n.Type,
		Channel:        outcome.Channel,
		Delivered:      outcome.Delivered,
	}

	if err := s.publisher.PublishDeliveryEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish delivery event",
			slog.String("notification_id", n.ID.String()),
			slog.Any("error", err),
		)
	}
}

// buildPushData projects the notification payload into the provider's
// string-only wire format.
func buildPushData(n *entity.Notification) map[string]string {
	data := make(map[string]string, len(n.Data)+3)
	for key, value := range n.Data {
		data[key] = stringifyValue(value)
	}

	data["notification_id"] = n.ID.String()
	data["type"] = n.Type
	if n.ActionURL != "" {
		data["action_url"] = n.ActionURL
	}

	return data
}

func stringifyValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case nil:
		return ""
	case bool, int, int32, int64, float32, float64:
		return fmt.Sprint(v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return string(encoded)
	}
}
