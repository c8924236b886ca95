package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/garagehub/garagehub-api/internal/auth"
	"github.com/garagehub/garagehub-api/internal/config"
	"github.com/garagehub/garagehub-api/internal/httperr"
	"github.com/garagehub/garagehub-api/internal/httpresp"
	"github.com/garagehub/garagehub-api/internal/logger"
	"github.com/garagehub/garagehub-api/internal/middleware"
	"github.com/garagehub/garagehub-api/internal/models"
	"github.com/garagehub/garagehub-api/internal/storage"
	"github.com/garagehub/garagehub-api/internal/validators"
)

// SessionStore is the slice of the session store the auth flow needs.
type SessionStore interface {
	Create(ctx context.Context, userID uint) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	sessions SessionStore
	images   storage.ImageStore

	// Swappable because the real check hits DNS.
	emailDomainOK func(string) bool
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, sessions SessionStore, images storage.ImageStore) *AuthHandler {
	return &AuthHandler{
		db:            db,
		config:        cfg,
		sessions:      sessions,
		images:        images,
		emailDomainOK: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register creates a user from a multipart form; the avatar image is
// optional and already staged by the upload middleware.
func (h *AuthHandler) Register(c *gin.Context) {
	name := c.PostForm("name")
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	username := strings.ToLower(strings.TrimSpace(c.PostForm("username")))
	password := c.PostForm("password")
	phone := c.PostForm("phone")
	role := c.PostForm("role")

	if validators.AnyBlank(name, email, username, password, phone) {
		httperr.BadRequest(c, "All fields are required")
		return
	}

	if role == "" {
		role = models.RoleCustomer
	}
	if role != models.RoleCustomer && role != models.RoleShopOwner {
		httperr.BadRequest(c, "Role must be customer or shopOwner")
		return
	}

	if !validators.IsValidPhone(phone) {
		httperr.BadRequest(c, "Only Pakistani phone numbers are allowed")
		return
	}

	if !h.emailDomainOK(email) {
		httperr.BadRequest(c, "The email domain does not look valid")
		return
	}

	var count int64
	h.db.Model(&models.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "Username or email already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "Failed to hash password")
		return
	}

	var imageURL string
	if staged, ok := middleware.StagedFile(c); ok {
		imageURL, err = h.images.UploadImage(c.Request.Context(), staged)
		if err != nil {
			logger.L().Errorf("avatar upload failed: %v", err)
			httperr.Internal(c, "Failed to upload image")
			return
		}
		removeStaged(staged)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		Username:     username,
		PasswordHash: string(hashed),
		Phone:        phone,
		Role:         role,
		ImageURL:     imageURL,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "Something went wrong while registering a user")
		return
	}

	httpresp.Created(c, user, "User registered successfully")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "All fields are required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "User does not exist")
			return
		}
		httperr.Internal(c, "Something went wrong")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "Invalid user credentials")
		return
	}

	accessToken, refreshToken, err := h.issueTokens(c, &user)
	if err != nil {
		httperr.Internal(c, "Something went wrong while generating access and refresh token")
		return
	}

	httpresp.OK(c, gin.H{
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	}, "User logged in successfully")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		httperr.Unauthorized(c, "Unauthorized request")
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", identity.UserID).
		Update("refresh_token", "").Error; err != nil {
		httperr.Internal(c, "Something went wrong")
		return
	}

	if identity.SessionID != "" {
		if err := h.sessions.Delete(c.Request.Context(), identity.SessionID); err != nil {
			logger.L().Errorf("session delete failed: %v", err)
		}
	}

	clearAuthCookies(c)
	httpresp.OK(c, gin.H{}, "User logged out successfully")
}

// RefreshToken rotates both credentials after comparing the presented
// refresh token against the one stored on the user.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	incoming, err := c.Cookie("refreshToken")
	if err != nil || incoming == "" {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.RefreshToken == "" {
			httperr.Unauthorized(c, "Unauthorized request")
			return
		}
		incoming = body.RefreshToken
	}

	userID, err := auth.ParseRefreshToken(h.config, incoming)
	if err != nil {
		httperr.Unauthorized(c, "Invalid refresh token")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Unauthorized(c, "Invalid refresh token")
		return
	}

	if user.RefreshToken == "" || user.RefreshToken != incoming {
		httperr.Unauthorized(c, "Invalid refresh token")
		return
	}

	accessToken, refreshToken, err := h.issueTokens(c, &user)
	if err != nil {
		httperr.Internal(c, "Something went wrong while generating access and refresh token")
		return
	}

	httpresp.OK(c, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	}, "Access token refreshed successfully")
}

// --------- Token plumbing ---------

func (h *AuthHandler) issueTokens(c *gin.Context, user *models.User) (string, string, error) {
	sessionID, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		return "", "", err
	}

	accessToken, err := auth.NewAccessToken(h.config, user, sessionID)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := auth.NewRefreshToken(h.config, user.ID)
	if err != nil {
		return "", "", err
	}

	if err := h.db.Model(user).Update("refresh_token", refreshToken).Error; err != nil {
		return "", "", err
	}

	setAuthCookies(c, h.config, accessToken, refreshToken)
	return accessToken, refreshToken, nil
}

func setAuthCookies(c *gin.Context, cfg *config.Config, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie("accessToken", accessToken, int(cfg.AccessTokenTTL.Seconds()), "/", "", true, true)
	c.SetCookie("refreshToken", refreshToken, int(cfg.RefreshTokenTTL.Seconds()), "/", "", true, true)
}

func clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie("accessToken", "", -1, "/", "", true, true)
	c.SetCookie("refreshToken", "", -1, "/", "", true, true)
}
