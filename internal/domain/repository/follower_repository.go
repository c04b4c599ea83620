// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/google/uuid"
)

// FollowerRepository resolves the follower set of an entity for
// followers-targeted schedules. Follow relationships are owned elsewhere;
// this subsystem only reads them.
type FollowerRepository interface {
	// FindFollowerIDs retrieves the IDs of all followers of the given entity.
	FindFollowerIDs(ctx context.Context, entityID uuid.UUID) ([]uuid.UUID, error)
}
