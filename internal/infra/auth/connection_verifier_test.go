package auth

import (
	"testing"
	"time"

	"pulse/config"
	"pulse/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-connection-secret"

func createTestVerifier(t *testing.T) *jwtVerifier {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Connection = testSecret

	verifier, err := NewConnectionVerifier(cfg)
	require.NoError(t, err)

	return verifier.(*jwtVerifier)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestNewConnectionVerifier_RequiresSecret(t *testing.T) {
	_, err := NewConnectionVerifier(&config.Config{})

	assert.Error(t, err)
}

func TestJWTVerifier_Verify_Success(t *testing.T) {
	verifier := createTestVerifier(t)
	recipientID := uuid.New()

	credential := signToken(t, testSecret, jwt.MapClaims{
		"sub":       recipientID.String(),
		"kind":      string(entity.RecipientUser),
		"device_id": "phone-1",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	identity, err := verifier.Verify(credential)

	require.NoError(t, err)
	assert.Equal(t, recipientID, identity.RecipientID)
	assert.Equal(t, entity.RecipientUser, identity.RecipientKind)
	assert.Equal(t, "phone-1", identity.DeviceID)
}

func TestJWTVerifier_Verify_NoDeviceID(t *testing.T) {
	verifier := createTestVerifier(t)

	credential := signToken(t, testSecret, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"kind": string(entity.RecipientProvider),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	identity, err := verifier.Verify(credential)

	require.NoError(t, err)
	assert.Empty(t, identity.DeviceID)
}

func TestJWTVerifier_Verify_WrongSecret(t *testing.T) {
	verifier := createTestVerifier(t)

	credential := signToken(t, "other-secret", jwt.MapClaims{
		"sub":  uuid.New().String(),
		"kind": string(entity.RecipientUser),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	identity, err := verifier.Verify(credential)

	assert.Error(t, err)
	assert.Nil(t, identity)
}

func TestJWTVerifier_Verify_Expired(t *testing.T) {
	verifier := createTestVerifier(t)

	credential := signToken(t, testSecret, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"kind": string(entity.RecipientUser),
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})

	identity, err := verifier.Verify(credential)

	assert.Error(t, err)
	assert.Nil(t, identity)
}

func TestJWTVerifier_Verify_BadSubject(t *testing.T) {
	verifier := createTestVerifier(t)

	credential := signToken(t, testSecret, jwt.MapClaims{
		"sub":  "not-a-uuid",
		"kind": string(entity.RecipientUser),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	identity, err := verifier.Verify(credential)

	assert.Error(t, err)
	assert.Nil(t, identity)
}

func TestJWTVerifier_Verify_UnknownKind(t *testing.T) {
	verifier := createTestVerifier(t)

	credential := signToken(t, testSecret, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"kind": "ghost",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	identity, err := verifier.Verify(credential)

	assert.Error(t, err)
	assert.Nil(t, identity)
}
