package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceModel is the GORM-specific struct for the 'recipient_devices' table.
// It represents a recipient's device registered for push notifications.
// Registrations are owned by the device-registry collaborator; this subsystem
// reads active tokens and deactivates the ones the push provider rejects.
type DeviceModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipientID   uuid.UUID `gorm:"type:uuid;not null;index:idx_recipient_devices_recipient"`
	RecipientKind string    `gorm:"type:varchar(20);not null;index:idx_recipient_devices_recipient"`
	FCMToken      string    `gorm:"type:varchar(255);not null;index"`
	DeviceID      string    `gorm:"type:varchar(255);not null"`
	Platform      string    `gorm:"type:varchar(50);not null"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "recipient_devices"
}
