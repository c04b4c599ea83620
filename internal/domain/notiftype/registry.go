// Package notiftype is the static notification-type configuration registry.
// It is a pure lookup table with no dependencies: resolving an unknown type
// never fails, it falls back to a fixed default configuration.
package notiftype

// Priority of a notification type, carried into the push payload as the
// provider priority escalation.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Behavior describes how a client should present the notification while the
// app is in the foreground.
type Behavior string

const (
	// BehaviorBanner shows a transient banner.
	BehaviorBanner Behavior = "banner"
	// BehaviorSilent delivers data only, no visible surface.
	BehaviorSilent Behavior = "silent"
	// BehaviorFullScreen requests a full-screen interruption (incoming call).
	BehaviorFullScreen Behavior = "full_screen"
)

// Known notification types. The type field of a notification is an open
// string; these are the types the registry has explicit configuration for.
const (
	TypeMessageDirect = "message_direct"
	TypeMessageGroup  = "message_group"
	TypeCallIncoming  = "call_incoming"
	TypeCallMissed    = "call_missed"
	TypeEventReminder = "event_reminder"
	TypeEventStarted  = "event_started"
	TypePaymentUpdate = "payment_update"
	TypeSystem        = "system"
	TypeForceLogout   = "force_logout"
)

// Config is the delivery configuration of a notification type.
type Config struct {
	Priority   Priority
	Sound      string
	ChannelID  string // Android notification channel / APNs category.
	FullScreen bool
	Vibrate    bool
	Foreground Behavior
}

// defaultConfig is returned for any type the registry does not know about.
var defaultConfig = Config{
	Priority:   PriorityMedium,
	Sound:      "default",
	ChannelID:  "default",
	Foreground: BehaviorBanner,
}

var registry = map[string]Config{
	TypeMessageDirect: {
		Priority:   PriorityHigh,
		Sound:      "message",
		ChannelID:  "messages",
		Vibrate:    true,
		Foreground: BehaviorBanner,
	},
	TypeMessageGroup: {
		Priority:   PriorityMedium,
		Sound:      "message",
		ChannelID:  "messages",
		Vibrate:    true,
		Foreground: BehaviorBanner,
	},
	TypeCallIncoming: {
		Priority:   PriorityCritical,
		Sound:      "ringtone",
		ChannelID:  "calls",
		FullScreen: true,
		Vibrate:    true,
		Foreground: BehaviorFullScreen,
	},
	TypeCallMissed: {
		Priority:   PriorityHigh,
		Sound:      "default",
		ChannelID:  "calls",
		Foreground: BehaviorBanner,
	},
	TypeEventReminder: {
		Priority:   PriorityMedium,
		Sound:      "default",
		ChannelID:  "events",
		Foreground: BehaviorBanner,
	},
	TypeEventStarted: {
		Priority:   PriorityHigh,
		Sound:      "default",
		ChannelID:  "events",
		Vibrate:    true,
		Foreground: BehaviorBanner,
	},
	TypePaymentUpdate: {
		Priority:   PriorityHigh,
		Sound:      "default",
		ChannelID:  "payments",
		Foreground: BehaviorBanner,
	},
	TypeSystem: {
		Priority:   PriorityMedium,
		Sound:      "default",
		ChannelID:  "system",
		Foreground: BehaviorBanner,
	},
	TypeForceLogout: {
		Priority:   PriorityCritical,
		Sound:      "",
		ChannelID:  "system",
		Foreground: BehaviorSilent,
	},
}

// Lookup resolves the configuration for a notification type. Unknown types
// resolve to the default configuration; Lookup never fails.
func Lookup(notificationType string) Config {
	if cfg, ok := registry[notificationType]; ok {
		return cfg
	}

	return defaultConfig
}

// PrefersRealtime reports whether the dispatcher should try the device
// channel pool before falling back to push. Only conversational types prefer
// the realtime channel; calls, events and system types go straight to push
// when no session channel is open, regardless of priority.
func PrefersRealtime(notificationType string) bool {
	switch notificationType {
	case TypeMessageDirect, TypeMessageGroup:
		return true
	}

	return false
}
