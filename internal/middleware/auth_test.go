package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagehub/garagehub-api/internal/auth"
	"github.com/garagehub/garagehub-api/internal/config"
	"github.com/garagehub/garagehub-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubChecker struct {
	has bool
	err error
}

func (s stubChecker) Has(ctx context.Context, sessionID string) (bool, error) {
	return s.has, s.err
}

func gateConfig() *config.Config {
	return &config.Config{
		AccessTokenSecret: "access-secret",
		AccessTokenTTL:    15 * time.Minute,
	}
}

func gatedRouter(cfg *config.Config, sessions SessionChecker) *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthMiddleware(cfg, sessions), func(c *gin.Context) {
		identity, _ := IdentityFrom(c)
		c.JSON(http.StatusOK, gin.H{"userId": identity.UserID})
	})
	return r
}

func mintToken(t *testing.T, cfg *config.Config) string {
	t.Helper()

	raw, err := auth.NewAccessToken(cfg, &models.User{ID: 9, Role: models.RoleCustomer}, "sess-1")
	require.NoError(t, err)
	return raw
}

func TestAuthMiddlewareBearer(t *testing.T) {
	cfg := gateConfig()
	r := gatedRouter(cfg, stubChecker{has: true})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, cfg))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":9`)
}

func TestAuthMiddlewareCookie(t *testing.T) {
	cfg := gateConfig()
	r := gatedRouter(cfg, stubChecker{has: true})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: mintToken(t, cfg)})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareNoToken(t *testing.T) {
	r := gatedRouter(gateConfig(), stubChecker{has: true})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized request")
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	r := gatedRouter(gateConfig(), stubChecker{has: true})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid access token")
}

func TestAuthMiddlewareRevokedSession(t *testing.T) {
	cfg := gateConfig()
	r := gatedRouter(cfg, stubChecker{has: false})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, cfg))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Session expired")
}
