// Package constants holds shared constant values used across layers.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider selectors.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Realtime channel pools. The session pool carries one logical session per
// recipient+kind; the device pool carries one entry per connected device.
const (
	ChannelSession = "session"
	ChannelDevice  = "device"
)

// Realtime event names emitted over the websocket channels.
const (
	// EventConnected acknowledges a successful handshake on either pool.
	EventConnected = "connection.ack"
	// EventSessionNotification carries a full notification on the session pool.
	EventSessionNotification = "session.notification"
	// EventDeviceNotification carries a full notification on the device pool.
	EventDeviceNotification = "device.notification"
	// EventOperatorMirror carries a summarized delivery mirror to operator sessions.
	EventOperatorMirror = "monitor.notification"
)

// Delivery outcome channels reported by the dispatcher.
const (
	DeliveryChannelSession = "session"
	DeliveryChannelDevice  = "device"
	DeliveryChannelPush    = "push"
	DeliveryChannelNone    = "none"
)
