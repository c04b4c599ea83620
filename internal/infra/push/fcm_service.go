// Package push adapts the Firebase Cloud Messaging client to the domain
// PushSender interface.
package push

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"pulse/internal/domain/notiftype"
	"pulse/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type fcmService struct {
	client *messaging.Client
}

// NewFCMService creates a Firebase push sender from a service account
// credentials file.
func NewFCMService(ctx context.Context, credentialsPath string) (service.PushSender, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmService{client: client}, nil
}

// Multicast sends one message to all tokens via SendEachForMulticast and
// aggregates the per-token responses. Tokens the provider reports as invalid
// or unregistered are returned for pruning.
func (s *fcmService) Multicast(ctx context.Context, msg *service.PushMessage) (*service.PushResult, error) {
	if len(msg.Tokens) == 0 {
		return &service.PushResult{}, nil
	}

	response, err := s.client.SendEachForMulticast(ctx, buildMulticastMessage(msg))
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.PushResult{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
	}

	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) ||
			messaging.IsUnregistered(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, msg.Tokens[idx])
		}
	}

	return result, nil
}

func buildMulticastMessage(msg *service.PushMessage) *messaging.MulticastMessage {
	imageURL := sanitizeImageURL(msg.ImageURL)

	data := msg.Data
	if msg.Config.FullScreen {
		// Android clients read this flag to launch a full-screen intent
		// instead of posting a tray notification.
		data = make(map[string]string, len(msg.Data)+1)
		for key, value := range msg.Data {
			data[key] = value
		}
		data["full_screen"] = "true"
	}

	return &messaging.MulticastMessage{
		Tokens: msg.Tokens,
		Notification: &messaging.Notification{
			Title:    msg.Title,
			Body:     msg.Body,
			ImageURL: imageURL,
		},
		Data:    data,
		Android: buildAndroidConfig(msg.Config, imageURL),
		APNS:    buildAPNSConfig(msg.Config),
	}
}

func buildAndroidConfig(cfg notiftype.Config, imageURL string) *messaging.AndroidConfig {
	priority := "normal"
	if cfg.Priority == notiftype.PriorityHigh || cfg.Priority == notiftype.PriorityCritical {
		priority = "high"
	}

	notification := &messaging.AndroidNotification{
		ChannelID: cfg.ChannelID,
		Sound:     cfg.Sound,
		ImageURL:  imageURL,
	}
	if cfg.Vibrate {
		notification.DefaultVibrateTimings = true
	}

	return &messaging.AndroidConfig{
		Priority:     priority,
		Notification: notification,
	}
}

func buildAPNSConfig(cfg notiftype.Config) *messaging.APNSConfig {
	aps := &messaging.Aps{
		Category: cfg.ChannelID,
	}
	if cfg.Sound != "" {
		aps.Sound = cfg.Sound
	}
	if cfg.Foreground == notiftype.BehaviorSilent {
		aps.ContentAvailable = true
	}
	if cfg.FullScreen {
		// Full-screen types break through Focus modes and ring at full
		// volume even when the device is silenced.
		aps.CustomData = map[string]interface{}{
			"interruption-level": "time-sensitive",
		}
		if cfg.Sound != "" {
			aps.Sound = ""
			aps.CriticalSound = &messaging.CriticalSound{
				Critical: true,
				Name:     cfg.Sound,
				Volume:   1.0,
			}
		}
	}

	return &messaging.APNSConfig{
		Payload: &messaging.APNSPayload{Aps: aps},
	}
}

// sanitizeImageURL returns the URL when it is a well-formed http or https
// URL, empty string otherwise. The provider rejects other schemes, so a bad
// image URL silently degrades to a text-only notification.
func sanitizeImageURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return ""
	}
	if parsed.Host == "" {
		return ""
	}

	return raw
}

type disabledSender struct {
	logger *slog.Logger
}

// NewDisabledSender is the sender used when no push credentials are
// configured. Every multicast deterministically reports all tokens as
// failed without contacting any provider, so the dispatcher's accounting
// stays intact in environments without Firebase access.
func NewDisabledSender(logger *slog.Logger) service.PushSender {
	logger.Warn("push provider not configured, push delivery disabled")

	return &disabledSender{logger: logger}
}

func (s *disabledSender) Multicast(_ context.Context, msg *service.PushMessage) (*service.PushResult, error) {
	s.logger.Debug("push delivery skipped, provider disabled",
		slog.Int("token_count", len(msg.Tokens)),
	)

	return &service.PushResult{FailureCount: len(msg.Tokens)}, nil
}
