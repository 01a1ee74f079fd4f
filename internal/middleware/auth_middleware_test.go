package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusspace/backend/internal/app/models"
	"github.com/campusspace/backend/internal/pkg/auth"
)

func newTestJWTService(tokenExp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: tokenExp,
		TokenIssuer:    "campus-space-test",
	})
}

// authTestRouter returns a router with one protected route that echoes the
// caller attached by JWTAuth.
func authTestRouter(jwtService *auth.JWTService, captured **models.CallerIdentity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	authMiddleware := NewAuthMiddleware(jwtService)
	router.GET("/protected", authMiddleware.JWTAuth(), func(c *gin.Context) {
		*captured = GetCaller(c)
		c.Status(http.StatusOK)
	})

	return router
}

func TestJWTAuthMissingHeader(t *testing.T) {
	var caller *models.CallerIdentity
	router := authTestRouter(newTestJWTService(time.Hour), &caller)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "User not verified")
	assert.Nil(t, caller)
}

func TestJWTAuthMalformedToken(t *testing.T) {
	var caller *models.CallerIdentity
	router := authTestRouter(newTestJWTService(time.Hour), &caller)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "User not verified")
	assert.Nil(t, caller)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	jwtService := newTestJWTService(-time.Minute)
	token, _, err := jwtService.GenerateAccessToken(&models.User{
		ID:    7,
		Email: "teacher@example.com",
	})
	require.NoError(t, err)

	var caller *models.CallerIdentity
	router := authTestRouter(jwtService, &caller)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Token has expired")
	assert.Nil(t, caller)
}

func TestJWTAuthAttachesCaller(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	token, _, err := jwtService.GenerateAccessToken(&models.User{
		ID:      42,
		Email:   "admin@example.com",
		IsAdmin: true,
	})
	require.NoError(t, err)

	var caller *models.CallerIdentity
	router := authTestRouter(jwtService, &caller)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, caller)
	assert.Equal(t, int64(42), caller.UserID)
	assert.Equal(t, "admin@example.com", caller.Email)
	assert.True(t, caller.IsAdmin)
}

func TestGetCallerAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Nil(t, GetCaller(c))
}
