package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/garagehub/garagehub-api/internal/authz"
	"github.com/garagehub/garagehub-api/internal/httperr"
	"github.com/garagehub/garagehub-api/internal/httpresp"
	"github.com/garagehub/garagehub-api/internal/models"
	"github.com/garagehub/garagehub-api/internal/validators"
)

type AddressHandler struct {
	db *gorm.DB
}

func NewAddressHandler(db *gorm.DB) *AddressHandler {
	return &AddressHandler{db: db}
}

type AddressRequest struct {
	Street   string `json:"street"`
	Area     string `json:"area"`
	City     string `json:"city"`
	Province string `json:"province"`
}

// Upsert updates the user's address in place or creates and links one.
// Both writes run inside a single transaction so a crash can't leave
// an orphaned address or a dangling reference.
func (h *AddressHandler) Upsert(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "All address fields are required")
		return
	}

	if validators.AnyBlank(req.Street, req.Area, req.City, req.Province) {
		httperr.BadRequest(c, "All address fields are required")
		return
	}

	var user models.User
	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Address").First(&user, identity.UserID).Error; err != nil {
			return httperr.ErrUnauthorized("Unauthorized request")
		}

		if user.Address != nil {
			user.Address.Street = req.Street
			user.Address.Area = req.Area
			user.Address.City = req.City
			user.Address.Province = req.Province
			return tx.Save(user.Address).Error
		}

		address := models.Address{
			Street:   req.Street,
			Area:     req.Area,
			City:     req.City,
			Province: req.Province,
		}
		if err := tx.Create(&address).Error; err != nil {
			return err
		}

		user.AddressID = &address.ID
		user.Address = &address
		return tx.Model(&models.User{}).
			Where("id = ?", user.ID).
			Update("address_id", address.ID).Error
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, user, "Address updated successfully")
}

// Delete removes the address row and nulls the user's reference in the
// same transaction.
func (h *AddressHandler) Delete(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	addressID, ok := paramID(c, "addressId", "Invalid address ID")
	if !ok {
		return
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		var address models.Address
		if err := tx.First(&address, addressID).Error; err != nil {
			return httperr.ErrNotFound("Address not found")
		}

		var user models.User
		if err := tx.First(&user, identity.UserID).Error; err != nil {
			return httperr.ErrUnauthorized("Unauthorized request")
		}

		var ownerRef uint
		if user.AddressID != nil {
			ownerRef = *user.AddressID
		}
		if err := authz.RequireOwner(addressID, ownerRef, "You are not authorized to delete this address"); err != nil {
			return err
		}

		if err := tx.Delete(&address).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).
			Where("id = ?", user.ID).
			Update("address_id", nil).Error
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, nil, "Address deleted successfully")
}
