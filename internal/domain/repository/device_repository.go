// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRepository is the read side of the external device registry. Device
// registrations are created and owned elsewhere; this subsystem reads active
// push tokens and reports invalid tokens back for pruning.
type DeviceRepository interface {
	// FindActiveTokens retrieves the active push tokens for one recipient.
	FindActiveTokens(ctx context.Context, recipientID uuid.UUID, kind entity.RecipientKind) ([]string, error)

	// FindRecipientIDsWithActiveDevice retrieves the distinct recipient IDs of
	// the given kind that have at least one active device. Used by bulk
	// (all-users / all-providers) schedule resolution.
	FindRecipientIDsWithActiveDevice(ctx context.Context, kind entity.RecipientKind) ([]uuid.UUID, error)

	// DeactivateByTokens deactivates the devices carrying the given tokens.
	// This is the registry's own pruning operation, invoked with the invalid
	// tokens the push provider reported.
	DeactivateByTokens(ctx context.Context, tokens []string) error
}
