package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It represents a single notification record addressed to one recipient.
type NotificationModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipientID   uuid.UUID         `gorm:"type:uuid;not null;index:idx_notifications_recipient"`
	RecipientKind string            `gorm:"type:varchar(20);not null;index:idx_notifications_recipient"`
	Type          string            `gorm:"type:varchar(100);not null"`
	Title         string            `gorm:"type:text;not null"`
	Message       string            `gorm:"type:text;not null"`
	Data          datatypes.JSONMap `gorm:"type:jsonb"`
	ImageURL      string            `gorm:"type:text"`
	ActionURL     string            `gorm:"type:text"`
	Priority      string            `gorm:"type:varchar(20);not null;default:'normal'"`

	IsRead bool       `gorm:"not null;default:false"`
	ReadAt *time.Time `gorm:""`

	SocketDelivered   bool       `gorm:"not null;default:false"`
	SocketDeliveredAt *time.Time `gorm:""`
	PushDelivered     bool       `gorm:"not null;default:false"`
	PushDeliveredAt   *time.Time `gorm:""`

	Broadcast      bool   `gorm:"not null;default:false"`
	TargetDeviceID string `gorm:"type:varchar(255)"`

	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
