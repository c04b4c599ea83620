// Package service defines the interfaces of external collaborators.
package service

import (
	"context"

	"pulse/internal/domain/notiftype"
)

// PushMessage is the canonical push payload handed to the provider adapter.
// Data values must already be stringified: the provider wire format is
// string-only.
type PushMessage struct {
	Title    string
	Body     string
	Data     map[string]string
	ImageURL string // Optional; must be http/https, otherwise it is omitted.
	Tokens   []string
	Config   notiftype.Config
}

// PushResult aggregates the provider's multicast response.
type PushResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string // Tokens the provider reported as invalid or unregistered.
}

// PushSender wraps the external push provider's multicast operation. An
// unconfigured provider degrades to a deterministic disabled mode that
// reports every token as failed instead of erroring.
type PushSender interface {
	// Multicast sends one push message to all tokens in a single provider call.
	Multicast(ctx context.Context, msg *PushMessage) (*PushResult, error)
}
