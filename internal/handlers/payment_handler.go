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

type PaymentHandler struct {
	db *gorm.DB
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{db: db}
}

type PaymentRequest struct {
	PaymentMethod  string `json:"paymentMethod"`
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CardHolderName string `json:"cardHolderName"`
}

// Upsert mirrors the address upsert: card fields are only required for
// non-cash methods, and both writes share one transaction.
func (h *PaymentHandler) Upsert(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "All payment fields are required")
		return
	}

	if !models.IsValidPaymentMethod(req.PaymentMethod) {
		httperr.BadRequest(c, "Unknown payment method")
		return
	}

	if req.PaymentMethod != models.PaymentMethodCash {
		if validators.AnyBlank(req.CardNumber, req.ExpiryDate, req.CardHolderName) {
			httperr.BadRequest(c, "All payment fields are required")
			return
		}
		if !validators.IsValidExpiry(req.ExpiryDate) {
			httperr.BadRequest(c, "Expiry date must be in MM/YY format")
			return
		}
	}

	var user models.User
	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Payment").First(&user, identity.UserID).Error; err != nil {
			return httperr.ErrUnauthorized("Unauthorized request")
		}

		if user.Payment != nil {
			user.Payment.Method = req.PaymentMethod
			user.Payment.CardNumber = req.CardNumber
			user.Payment.ExpiryDate = req.ExpiryDate
			user.Payment.CardHolderName = req.CardHolderName
			return tx.Save(user.Payment).Error
		}

		payment := models.Payment{
			Method:         req.PaymentMethod,
			CardNumber:     req.CardNumber,
			ExpiryDate:     req.ExpiryDate,
			CardHolderName: req.CardHolderName,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		user.PaymentID = &payment.ID
		user.Payment = &payment
		return tx.Model(&models.User{}).
			Where("id = ?", user.ID).
			Update("payment_id", payment.ID).Error
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, user, "Payment method updated successfully")
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	paymentID, ok := paramID(c, "paymentId", "Invalid payment ID")
	if !ok {
		return
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		if err := tx.First(&payment, paymentID).Error; err != nil {
			return httperr.ErrNotFound("Payment method not found")
		}

		var user models.User
		if err := tx.First(&user, identity.UserID).Error; err != nil {
			return httperr.ErrUnauthorized("Unauthorized request")
		}

		var ownerRef uint
		if user.PaymentID != nil {
			ownerRef = *user.PaymentID
		}
		if err := authz.RequireOwner(paymentID, ownerRef, "You are not authorized to delete this payment method"); err != nil {
			return err
		}

		if err := tx.Delete(&payment).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).
			Where("id = ?", user.ID).
			Update("payment_id", nil).Error
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, nil, "Payment method deleted successfully")
}
