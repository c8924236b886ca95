package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/garagehub/garagehub-api/internal/auth"
	dbpkg "github.com/garagehub/garagehub-api/internal/db"
	"github.com/garagehub/garagehub-api/internal/middleware"
	"github.com/garagehub/garagehub-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupHandlerDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

// asIdentity replaces the auth gate in handler tests.
func asIdentity(identity auth.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetIdentity(c, identity)
		c.Next()
	}
}

func asUser(u *models.User) gin.HandlerFunc {
	return asIdentity(auth.Identity{UserID: u.ID, Role: u.Role, SessionID: "sess-test"})
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doForm(t *testing.T, r *gin.Engine, method, path string, form map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	values := url.Values{}
	for k, v := range form {
		values.Set(k, v)
	}

	req := httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --------------------------------------------------
// Seed helpers
// --------------------------------------------------

func seedUser(t *testing.T, db *gorm.DB, email, username, role, password string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	u := &models.User{
		Name:         "Test " + username,
		Email:        email,
		Username:     username,
		PasswordHash: string(hashed),
		Phone:        "03001234567",
		Role:         role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedShop(t *testing.T, db *gorm.DB, owner *models.User, name string) *models.Shop {
	t.Helper()

	addr := models.Address{Street: "1 Workshop Ln", Area: "Saddar", City: "Karachi", Province: "Sindh"}
	require.NoError(t, db.Create(&addr).Error)

	shop := &models.Shop{
		OwnerID:         owner.ID,
		Name:            name,
		AddressID:       &addr.ID,
		ServicesOffered: []string{models.ServiceTirePuncture},
	}
	require.NoError(t, db.Create(shop).Error)
	return shop
}

// --------------------------------------------------
// Stubs
// --------------------------------------------------

type stubImages struct {
	url       string
	uploads   int
	deleted   []string
	uploadErr error
}

func (s *stubImages) UploadImage(ctx context.Context, localPath string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	s.uploads++
	if s.url == "" {
		return "https://cdn.test/images/stub.webp", nil
	}
	return s.url, nil
}

func (s *stubImages) DeleteImage(ctx context.Context, publicURL string) error {
	s.deleted = append(s.deleted, publicURL)
	return nil
}

type stubSessions struct {
	created int
	deleted []string
	err     error
}

func (s *stubSessions) Create(ctx context.Context, userID uint) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.created++
	return fmt.Sprintf("sess-%d", s.created), nil
}

func (s *stubSessions) Delete(ctx context.Context, sessionID string) error {
	s.deleted = append(s.deleted, sessionID)
	return nil
}

var _ SessionStore = (*stubSessions)(nil)

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) envelope {
	t.Helper()
	require.Equal(t, want, w.Code, w.Body.String())
	env := decodeEnvelope(t, w)
	require.Equal(t, want, env.StatusCode)
	require.Equal(t, want < http.StatusBadRequest, env.Success)
	return env
}
