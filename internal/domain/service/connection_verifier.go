package service

import (
	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// Identity is the verified identity of an inbound realtime connection.
type Identity struct {
	RecipientID   uuid.UUID
	RecipientKind entity.RecipientKind
	DeviceID      string // Present for device-channel connections.
}

// ConnectionVerifier validates the credential presented during a realtime
// handshake. A connection is registered with the presence registry only
// after the verifier accepts it.
type ConnectionVerifier interface {
	Verify(credential string) (*Identity, error)
}
