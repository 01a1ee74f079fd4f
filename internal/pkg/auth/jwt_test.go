package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusspace/backend/internal/app/models"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "campus-space.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)
	user := &models.User{ID: 42, Email: "jane@campus-space.app", IsAdmin: true}

	token, expiresIn, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jane@campus-space.app", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "campus-space.test", claims.Issuer)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)
	user := &models.User{ID: 42, Email: "jane@campus-space.app"}

	token, _, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	other := NewJWTService(JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour})

	token, _, err := svc.GenerateAccessToken(&models.User{ID: 1, Email: "a@b.c"})
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateAndExtractClaimsEmptyToken(t *testing.T) {
	svc := newTestService(time.Hour)

	_, err := svc.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// A bare token is accepted as-is.
	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
