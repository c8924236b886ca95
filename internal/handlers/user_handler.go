package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/garagehub/garagehub-api/internal/httperr"
	"github.com/garagehub/garagehub-api/internal/httpresp"
	"github.com/garagehub/garagehub-api/internal/logger"
	"github.com/garagehub/garagehub-api/internal/middleware"
	"github.com/garagehub/garagehub-api/internal/models"
	"github.com/garagehub/garagehub-api/internal/storage"
	"github.com/garagehub/garagehub-api/internal/validators"
)

type UserHandler struct {
	db     *gorm.DB
	images storage.ImageStore
}

func NewUserHandler(db *gorm.DB, images storage.ImageStore) *UserHandler {
	return &UserHandler{db: db, images: images}
}

func (h *UserHandler) Profile(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var user models.User
	if err := h.db.Preload("Address").Preload("Payment").First(&user, identity.UserID).Error; err != nil {
		httperr.NotFound(c, "User not found")
		return
	}

	httpresp.OK(c, user, "Current user fetched successfully")
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Current and new password is required")
		return
	}

	var user models.User
	if err := h.db.First(&user, identity.UserID).Error; err != nil {
		httperr.Unauthorized(c, "Unauthorized request")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		httperr.BadRequest(c, "Invalid password")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "Failed to hash password")
		return
	}

	if err := h.db.Model(&user).Update("password_hash", string(hashed)).Error; err != nil {
		httperr.Internal(c, "Something went wrong")
		return
	}

	httpresp.OK(c, gin.H{}, "Password changed successfully")
}

type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
}

// UpdateProfile applies a partial update; blank fields keep their
// current value.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	var user models.User
	if err := h.db.First(&user, identity.UserID).Error; err != nil {
		httperr.Unauthorized(c, "Unauthorized request")
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.Username != "" {
		user.Username = strings.ToLower(strings.TrimSpace(req.Username))
	}
	if req.Phone != "" {
		if !validators.IsValidPhone(req.Phone) {
			httperr.BadRequest(c, "Only Pakistani phone numbers are allowed")
			return
		}
		user.Phone = req.Phone
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "Something went wrong")
		return
	}

	httpresp.OK(c, gin.H{"user": user}, "User details updated successfully")
}

func (h *UserHandler) UpdateProfilePicture(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	staged, ok := middleware.StagedFile(c)
	if !ok {
		httperr.BadRequest(c, "Image file is required")
		return
	}

	var user models.User
	if err := h.db.First(&user, identity.UserID).Error; err != nil {
		httperr.Unauthorized(c, "Unauthorized request")
		return
	}

	imageURL, err := h.images.UploadImage(c.Request.Context(), staged)
	if err != nil {
		logger.L().Errorf("avatar upload failed: %v", err)
		httperr.Internal(c, "Failed to upload image")
		return
	}
	removeStaged(staged)

	oldImage := user.ImageURL
	if err := h.db.Model(&user).Update("image_url", imageURL).Error; err != nil {
		httperr.Internal(c, "Something went wrong")
		return
	}

	if oldImage != "" {
		if err := h.images.DeleteImage(c.Request.Context(), oldImage); err != nil {
			logger.L().Warnf("failed to delete previous avatar: %v", err)
		}
	}

	httpresp.OK(c, user, "Image updated successfully")
}
