package model

import (
	"time"

	"github.com/google/uuid"
)

// FollowerModel is the GORM-specific struct for the 'entity_followers' table.
// Follow relationships are owned by another subsystem; only reads happen here.
type FollowerModel struct {
	EntityID   uuid.UUID `gorm:"type:uuid;primary_key"`
	FollowerID uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FollowerModel) TableName() string {
	return "entity_followers"
}
