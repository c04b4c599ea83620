package push

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pulse/internal/domain/notiftype"
	"pulse/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeImageURL(t *testing.T) {
	cases := map[string]struct {
		in   string
		want string
	}{
		"https":          {"https://cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		"http":           {"http://cdn.example.com/a.png", "http://cdn.example.com/a.png"},
		"empty":          {"", ""},
		"ftp":            {"ftp://cdn.example.com/a.png", ""},
		"file":           {"file:///etc/passwd", ""},
		"no host":        {"https://", ""},
		"relative path":  {"/images/a.png", ""},
		"mixed case":     {"HTTPS://cdn.example.com/a.png", "HTTPS://cdn.example.com/a.png"},
		"data uri":       {"data:image/png;base64,AAAA", ""},
		"plain garbage":  {"not a url at all", ""},
		"custom scheme":  {"app://images/1", ""},
		"missing scheme": {"cdn.example.com/a.png", ""},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, sanitizeImageURL(tc.in))
		})
	}
}

func TestBuildMulticastMessage_ProjectsTypeConfig(t *testing.T) {
	msg := &service.PushMessage{
		Title:    "Incoming call",
		Body:     "Alice is calling",
		Tokens:   []string{"t1"},
		ImageURL: "https://cdn.example.com/avatar.png",
		Data:     map[string]string{"type": notiftype.TypeCallIncoming},
		Config:   notiftype.Lookup(notiftype.TypeCallIncoming),
	}

	out := buildMulticastMessage(msg)

	require.NotNil(t, out.Android)
	assert.Equal(t, "high", out.Android.Priority)
	assert.Equal(t, "calls", out.Android.Notification.ChannelID)
	assert.Equal(t, "ringtone", out.Android.Notification.Sound)
	assert.True(t, out.Android.Notification.DefaultVibrateTimings)

	require.NotNil(t, out.APNS)
	assert.Equal(t, "calls", out.APNS.Payload.Aps.Category)
	require.NotNil(t, out.APNS.Payload.Aps.CriticalSound)
	assert.Equal(t, "ringtone", out.APNS.Payload.Aps.CriticalSound.Name)
	assert.True(t, out.APNS.Payload.Aps.CriticalSound.Critical)

	assert.Equal(t, "https://cdn.example.com/avatar.png", out.Notification.ImageURL)
}

func TestBuildMulticastMessage_FullScreenType(t *testing.T) {
	msg := &service.PushMessage{
		Title:  "Incoming call",
		Body:   "Alice is calling",
		Tokens: []string{"t1"},
		Data:   map[string]string{"call_id": "c1"},
		Config: notiftype.Lookup(notiftype.TypeCallIncoming),
	}

	out := buildMulticastMessage(msg)

	assert.Equal(t, "true", out.Data["full_screen"])
	assert.Equal(t, "c1", out.Data["call_id"])
	// The caller's map stays untouched.
	assert.NotContains(t, msg.Data, "full_screen")

	require.NotNil(t, out.APNS)
	assert.Equal(t, "time-sensitive", out.APNS.Payload.Aps.CustomData["interruption-level"])
	assert.Empty(t, out.APNS.Payload.Aps.Sound)
	require.NotNil(t, out.APNS.Payload.Aps.CriticalSound)
	assert.Equal(t, "ringtone", out.APNS.Payload.Aps.CriticalSound.Name)
	assert.InDelta(t, 1.0, out.APNS.Payload.Aps.CriticalSound.Volume, 0.001)
}

func TestBuildMulticastMessage_NonFullScreenTypeCarriesNoFlag(t *testing.T) {
	msg := &service.PushMessage{
		Title:  "New message",
		Body:   "hi",
		Tokens: []string{"t1"},
		Data:   map[string]string{"thread": "t9"},
		Config: notiftype.Lookup(notiftype.TypeMessageDirect),
	}

	out := buildMulticastMessage(msg)

	assert.NotContains(t, out.Data, "full_screen")
	assert.Nil(t, out.APNS.Payload.Aps.CustomData)
	assert.Nil(t, out.APNS.Payload.Aps.CriticalSound)
}

func TestBuildMulticastMessage_SilentType(t *testing.T) {
	msg := &service.PushMessage{
		Title:  "Logged out",
		Body:   "Session revoked",
		Tokens: []string{"t1"},
		Config: notiftype.Lookup(notiftype.TypeForceLogout),
	}

	out := buildMulticastMessage(msg)

	assert.True(t, out.APNS.Payload.Aps.ContentAvailable)
	assert.Equal(t, "high", out.Android.Priority)
}

func TestBuildMulticastMessage_UnknownTypeUsesDefaults(t *testing.T) {
	msg := &service.PushMessage{
		Title:  "Hello",
		Body:   "World",
		Tokens: []string{"t1"},
		Config: notiftype.Lookup("something_new"),
	}

	out := buildMulticastMessage(msg)

	assert.Equal(t, "normal", out.Android.Priority)
	assert.Equal(t, "default", out.Android.Notification.ChannelID)
}

func TestDisabledSender_ReportsAllTokensFailed(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sender := NewDisabledSender(logger)

	result, err := sender.Multicast(context.Background(), &service.PushMessage{
		Tokens: []string{"a", "b", "c"},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 3, result.FailureCount)
	assert.Empty(t, result.InvalidTokens)
}
