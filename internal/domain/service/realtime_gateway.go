package service

import (
	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// RealtimeGateway is the presence registry's emission surface used by the
// dispatcher. Presence is process-local and transient: entries exist only
// while a websocket connection is open.
type RealtimeGateway interface {
	// SessionOnline reports whether the recipient has at least one open
	// session-channel connection for the given kind.
	SessionOnline(recipientID uuid.UUID, kind entity.RecipientKind) bool

	// DeviceOnline reports whether the recipient has at least one open
	// device-channel connection.
	DeviceOnline(recipientID uuid.UUID) bool

	// PushToSession emits an event on every open session channel of the
	// recipient+kind. Returns true when at least one connection accepted it.
	PushToSession(recipientID uuid.UUID, kind entity.RecipientKind, event string, payload any) bool

	// PushToDevices emits an event on the recipient's device channels. When
	// deviceID is non-empty only that device is targeted, otherwise all of
	// the recipient's connected devices. Returns the number of connections
	// the event was handed to.
	PushToDevices(recipientID uuid.UUID, deviceID string, event string, payload any) int

	// MirrorToOperators best-effort emits a summarized event to every
	// connected operator session. Failures are swallowed.
	MirrorToOperators(event string, payload any)

	// CountOnline reports the number of recipients with at least one open
	// connection in the given pool (constants.ChannelSession or
	// constants.ChannelDevice).
	CountOnline(pool string) int
}
