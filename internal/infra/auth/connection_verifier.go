// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtVerifier validates the signed token presented during a realtime
// handshake. Tokens are issued elsewhere; this subsystem only verifies them.
type jwtVerifier struct {
	secret string
}

// NewConnectionVerifier is the constructor for jwtVerifier.
func NewConnectionVerifier(cfg *config.Config) (service.ConnectionVerifier, error) {
	if cfg.SecretKey.Connection == "" {
		return nil, errors.New("connection secret must be provided")
	}

	return &jwtVerifier{secret: cfg.SecretKey.Connection}, nil
}

// Verify parses and validates the credential and extracts the connection
// identity from its claims. Expected claims: sub (recipient UUID), kind
// (recipient kind), device_id (optional, device-channel connections only).
func (s *jwtVerifier) Verify(credential string) (*service.Identity, error) {
	token, err := jwt.Parse(credential, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid connection token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected token claims")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "token has no subject")
	}

	recipientID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(err, "token subject is not a valid recipient id")
	}

	kindClaim, _ := claims["kind"].(string)
	kind := entity.RecipientKind(kindClaim)
	if !kind.Valid() {
		return nil, errors.Errorf("token carries unknown recipient kind: %q", kindClaim)
	}

	deviceID, _ := claims["device_id"].(string)

	return &service.Identity{
		RecipientID:   recipientID,
		RecipientKind: kind,
		DeviceID:      deviceID,
	}, nil
}
