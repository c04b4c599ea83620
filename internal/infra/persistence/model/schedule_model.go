package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ScheduleModel is the GORM-specific struct for the 'scheduled_notifications'
// table. Status transitions are one-way: pending is the only non-terminal
// state, enforced by the repository's conditional updates.
type ScheduleModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ScheduledFor time.Time `gorm:"not null;index:idx_scheduled_notifications_due"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending';index:idx_scheduled_notifications_due"`

	Type      string            `gorm:"type:varchar(100);not null"`
	Title     string            `gorm:"type:text;not null"`
	Message   string            `gorm:"type:text;not null"`
	Data      datatypes.JSONMap `gorm:"type:jsonb"`
	ImageURL  string            `gorm:"type:text"`
	ActionURL string            `gorm:"type:text"`

	Target        string         `gorm:"type:varchar(20);not null"`
	RecipientKind string         `gorm:"type:varchar(20)"`
	RecipientIDs  datatypes.JSON `gorm:"type:jsonb"`
	EntityID      *uuid.UUID     `gorm:"type:uuid"`

	CreatedBy     uuid.UUID  `gorm:"type:uuid;not null"`
	SentAt        *time.Time `gorm:""`
	FailureReason string     `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ScheduleModel) TableName() string {
	return "scheduled_notifications"
}
