//go:build unit
// +build unit

package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jack0rich/BigdataServer/internal/domain/users"
	"github.com/jack0rich/BigdataServer/internal/infrastructure/cryptography"
	"github.com/jack0rich/BigdataServer/internal/pkg/config"
	"github.com/jack0rich/BigdataServer/internal/pkg/logger"
)

type mockUserService struct {
	mock.Mock
	users.UserService
}

func (m *mockUserService) VerifyAPIKey(ctx context.Context, apiKey string) (*users.User, error) {
	args := m.Called(ctx, apiKey)
	user, _ := args.Get(0).(*users.User)
	return user, args.Error(1)
}

func testLogger() logger.Logger {
	return logger.NewConsoleLogger(config.LogLevelError)
}

func newAuthedRouter(t *testing.T, auth gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/guarded", auth, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetString(ContextUserIDKey),
			"username": c.GetString(ContextUsernameKey),
		})
	})
	return r
}

func TestAPIKeyAuth_MissingKey(t *testing.T) {
	service := new(mockUserService)
	r := newAuthedRouter(t, NewAPIKeyAuth(service, "X-API-Key", testLogger()))

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/guarded", nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	service.AssertNotCalled(t, "VerifyAPIKey", mock.Anything, mock.Anything)
}

func TestAPIKeyAuth_InvalidKey(t *testing.T) {
	service := new(mockUserService)
	service.On("VerifyAPIKey", mock.Anything, "sk_bad").Return(nil, users.ErrInvalidCredentials)

	r := newAuthedRouter(t, NewAPIKeyAuth(service, "X-API-Key", testLogger()))

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/guarded", nil)
	require.NoError(t, err)
	req.Header.Set("X-API-Key", "sk_bad")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAPIKeyAuth_ValidKeySetsUserContext(t *testing.T) {
	service := new(mockUserService)
	service.
		On("VerifyAPIKey", mock.Anything, "sk_good").
		Return(&users.User{ID: "id-1", Username: "ops-admin"}, nil)

	r := newAuthedRouter(t, NewAPIKeyAuth(service, "X-API-Key", testLogger()))

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/guarded", nil)
	require.NoError(t, err)
	req.Header.Set("X-API-Key", "sk_good")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ops-admin")
}

func TestAPIKeyAuth_CustomHeader(t *testing.T) {
	service := new(mockUserService)
	service.
		On("VerifyAPIKey", mock.Anything, "sk_good").
		Return(&users.User{ID: "id-1", Username: "ops-admin"}, nil)

	r := newAuthedRouter(t, NewAPIKeyAuth(service, "X-Gateway-Key", testLogger()))

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/guarded", nil)
	require.NoError(t, err)
	req.Header.Set("X-Gateway-Key", "sk_good")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func newTestIssuer(t *testing.T) users.TokenIssuer {
	t.Helper()

	rawSecret := make([]byte, 32)
	_, err := rand.Read(rawSecret)
	require.NoError(t, err)

	issuer, err := cryptography.NewJWTIssuer(base64.StdEncoding.EncodeToString(rawSecret), time.Hour)
	require.NoError(t, err)
	return issuer
}

func TestBearerAuth_MissingToken(t *testing.T) {
	r := newAuthedRouter(t, NewBearerAuth(newTestIssuer(t), testLogger()))

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/guarded", nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBearerAuth_InvalidToken(t *testing.T) {
	r := newAuthedRouter(t, NewBearerAuth(newTestIssuer(t), testLogger()))

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/guarded", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBearerAuth_ValidToken(t *testing.T) {
	issuer := newTestIssuer(t)
	session, err := issuer.Issue("id-1", "ops-admin")
	require.NoError(t, err)

	r := newAuthedRouter(t, NewBearerAuth(issuer, testLogger()))

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/guarded", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "id-1")
}
