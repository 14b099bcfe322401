package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "dutyout-test")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "hana")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "hana", claims.Username)
	assert.Equal(t, "dutyout-test", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", "dutyout-test").GenerateToken(uuid.New(), "hana")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", "dutyout-test").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", "dutyout-test")

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
