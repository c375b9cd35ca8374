package auth

import (
	"context"
	"testing"
	"time"

	"waffer/internal/domain/entity"
	domainerrors "waffer/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key_very_long_for_testing"

func TestJWTService_IdentifyDevToken(t *testing.T) {
	provider, err := NewJWTService(testSecret)
	require.NoError(t, err)

	token, err := IssueDevToken(testSecret, entity.Identity{UID: "u1", Email: "Amel@Example.com", Name: "Amel"}, time.Hour)
	require.NoError(t, err)

	identity, err := provider.Identify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u1", identity.UID)
	assert.Equal(t, "Amel", identity.Name)
	assert.Equal(t, "amel@example.com", identity.Key())
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	provider, err := NewJWTService(testSecret)
	require.NoError(t, err)

	expired, err := IssueDevToken(testSecret, entity.Identity{Email: "a@example.com"}, -time.Minute)
	require.NoError(t, err)
	otherSecret, err := IssueDevToken("another_secret", entity.Identity{Email: "a@example.com"}, time.Hour)
	require.NoError(t, err)
	noEmail, err := IssueDevToken(testSecret, entity.Identity{UID: "u1"}, time.Hour)
	require.NoError(t, err)
	wrongIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, DevClaims{
		Email: "a@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := map[string]string{
		"expired":      expired,
		"other secret": otherSecret,
		"no email":     noEmail,
		"wrong issuer": wrongIssuer,
		"garbage":      "not.a.token",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			identity, err := provider.Identify(context.Background(), token)
			assert.Nil(t, identity)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService("")
	assert.Error(t, err)
}
