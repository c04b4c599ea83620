package realtime

import (
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"

	"pulse/internal/domain/constants"
	"pulse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRegistry(t *testing.T, cfg *Config) *Registry {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return New(logger, cfg)
}

func receiveEnvelope(t *testing.T, c *Client) envelope {
	t.Helper()

	select {
	case frame := <-c.send:
		var env envelope
		require.NoError(t, json.Unmarshal(frame, &env))
		return env
	default:
		t.Fatal("no frame enqueued")
		return envelope{}
	}
}

func TestRegistry_SessionLifecycle(t *testing.T) {
	r := createTestRegistry(t, nil)
	recipientID := uuid.New()

	assert.False(t, r.SessionOnline(recipientID, entity.RecipientUser))

	c := r.RegisterSession(nil, recipientID, entity.RecipientUser)

	assert.True(t, r.SessionOnline(recipientID, entity.RecipientUser))
	// Same recipient, different kind: separate presence entry.
	assert.False(t, r.SessionOnline(recipientID, entity.RecipientProvider))

	r.Unregister(c.Handle())
	assert.False(t, r.SessionOnline(recipientID, entity.RecipientUser))

	// Unregistering a dead handle is harmless.
	r.Unregister(c.Handle())
}

func TestRegistry_PushToSession(t *testing.T) {
	r := createTestRegistry(t, nil)
	recipientID := uuid.New()

	c := r.RegisterSession(nil, recipientID, entity.RecipientUser)

	ok := r.PushToSession(recipientID, entity.RecipientUser, constants.EventSessionNotification, map[string]string{"title": "hi"})

	require.True(t, ok)
	env := receiveEnvelope(t, c)
	assert.Equal(t, constants.EventSessionNotification, env.Event)

	// No connection for this kind.
	assert.False(t, r.PushToSession(recipientID, entity.RecipientProvider, constants.EventSessionNotification, nil))
}

func TestRegistry_PushToDevices_TargetsSpecificDevice(t *testing.T) {
	r := createTestRegistry(t, nil)
	recipientID := uuid.New()

	phone := r.RegisterDevice(nil, recipientID, entity.RecipientUser, "phone-1")
	tablet := r.RegisterDevice(nil, recipientID, entity.RecipientUser, "tablet-1")

	delivered := r.PushToDevices(recipientID, "phone-1", constants.EventDeviceNotification, nil)

	assert.Equal(t, 1, delivered)
	receiveEnvelope(t, phone)
	assert.Empty(t, tablet.send)
}

func TestRegistry_PushToDevices_AllDevices(t *testing.T) {
	r := createTestRegistry(t, nil)
	recipientID := uuid.New()

	r.RegisterDevice(nil, recipientID, entity.RecipientUser, "phone-1")
	r.RegisterDevice(nil, recipientID, entity.RecipientUser, "tablet-1")

	delivered := r.PushToDevices(recipientID, "", constants.EventDeviceNotification, nil)

	assert.Equal(t, 2, delivered)
	assert.True(t, r.DeviceOnline(recipientID))
}

func TestRegistry_PushToDevices_UnknownDevice(t *testing.T) {
	r := createTestRegistry(t, nil)
	recipientID := uuid.New()

	r.RegisterDevice(nil, recipientID, entity.RecipientUser, "phone-1")

	assert.Zero(t, r.PushToDevices(recipientID, "ghost-device", constants.EventDeviceNotification, nil))
	assert.Zero(t, r.PushToDevices(uuid.New(), "", constants.EventDeviceNotification, nil))
}

func TestRegistry_MirrorToOperators(t *testing.T) {
	r := createTestRegistry(t, nil)

	op := r.RegisterSession(nil, uuid.New(), entity.RecipientOperator)
	user := r.RegisterSession(nil, uuid.New(), entity.RecipientUser)

	r.MirrorToOperators(constants.EventOperatorMirror, map[string]string{"channel": "push"})

	env := receiveEnvelope(t, op)
	assert.Equal(t, constants.EventOperatorMirror, env.Event)
	assert.Empty(t, user.send)

	r.Unregister(op.Handle())
	// After the operator leaves, mirroring is a no-op.
	r.MirrorToOperators(constants.EventOperatorMirror, nil)
}

func TestRegistry_SlowSessionClientEvicted(t *testing.T) {
	r := createTestRegistry(t, &Config{SendBufferSize: 1})
	recipientID := uuid.New()

	r.RegisterSession(nil, recipientID, entity.RecipientUser)

	// First frame fills the buffer (no pump is draining a nil conn).
	require.True(t, r.PushToSession(recipientID, entity.RecipientUser, "e1", nil))
	// Second frame finds the buffer full; the client is evicted.
	assert.False(t, r.PushToSession(recipientID, entity.RecipientUser, "e2", nil))
	assert.False(t, r.SessionOnline(recipientID, entity.RecipientUser))
}

func TestRegistry_CountOnline(t *testing.T) {
	r := createTestRegistry(t, nil)

	alice := uuid.New()
	bob := uuid.New()

	r.RegisterSession(nil, alice, entity.RecipientUser)
	r.RegisterSession(nil, alice, entity.RecipientUser) // second tab, same bucket
	r.RegisterSession(nil, bob, entity.RecipientProvider)
	r.RegisterDevice(nil, alice, entity.RecipientUser, "phone-1")

	assert.Equal(t, 2, r.CountOnline(constants.ChannelSession))
	assert.Equal(t, 1, r.CountOnline(constants.ChannelDevice))
}

func TestRegistry_MultipleConnectionsPerRecipient(t *testing.T) {
	r := createTestRegistry(t, nil)
	recipientID := uuid.New()

	first := r.RegisterSession(nil, recipientID, entity.RecipientUser)
	second := r.RegisterSession(nil, recipientID, entity.RecipientUser)

	require.True(t, r.PushToSession(recipientID, entity.RecipientUser, "e", nil))
	receiveEnvelope(t, first)
	receiveEnvelope(t, second)

	r.Unregister(first.Handle())
	assert.True(t, r.SessionOnline(recipientID, entity.RecipientUser))

	r.Unregister(second.Handle())
	assert.False(t, r.SessionOnline(recipientID, entity.RecipientUser))
}

func TestClient_EnqueueAfterCloseIsRejected(t *testing.T) {
	r := createTestRegistry(t, nil)
	recipientID := uuid.New()

	client := r.RegisterSession(nil, recipientID, entity.RecipientUser)
	client.Close()

	assert.False(t, client.enqueue([]byte(`{}`)))
	client.Close() // second close stays a no-op
}

func TestRegistry_ConcurrentPushAndUnregister(t *testing.T) {
	r := createTestRegistry(t, nil)
	recipientID := uuid.New()

	// A recipient disconnecting while a dispatch is in flight must never
	// panic with a send on the closed channel.
	const rounds = 200
	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		client := r.RegisterSession(nil, recipientID, entity.RecipientUser)

		wg.Add(2)
		go func() {
			defer wg.Done()
			r.PushToSession(recipientID, entity.RecipientUser, "e", nil)
		}()
		go func() {
			defer wg.Done()
			r.Unregister(client.Handle())
		}()
		wg.Wait()
	}

	assert.False(t, r.SessionOnline(recipientID, entity.RecipientUser))
}
