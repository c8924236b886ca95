package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/garagehub/garagehub-api/internal/domain/booking"
	"github.com/garagehub/garagehub-api/internal/httperr"
	"github.com/garagehub/garagehub-api/internal/httpresp"
	"github.com/garagehub/garagehub-api/internal/models"
)

type ReviewHandler struct {
	db *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

type CreateReviewRequest struct {
	BookingID uint   `json:"bookingId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// Create inserts the review and rewrites the shop's mean rating in the
// same transaction, so the derived value never drifts from the rows it
// is computed over.
func (h *ReviewHandler) Create(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Rating is required and should be between 1 and 5")
		return
	}

	if req.Rating < 1 || req.Rating > 5 {
		httperr.BadRequest(c, "Rating is required and should be between 1 and 5")
		return
	}

	var review models.Review
	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Where(
			"id = ? AND customer_id = ? AND status = ?",
			req.BookingID, identity.UserID, string(domain.StatusCompleted),
		).First(&booking).Error; err != nil {
			return httperr.ErrNotFound("Booking not found or not completed")
		}

		var count int64
		if err := tx.Model(&models.Review{}).
			Where("booking_id = ? AND customer_id = ?", req.BookingID, identity.UserID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrConflict("You have already reviewed this booking")
		}

		var shop models.Shop
		if err := tx.First(&shop, booking.ShopID).Error; err != nil {
			return httperr.ErrNotFound("Shop not found")
		}

		review = models.Review{
			BookingID:  booking.ID,
			CustomerID: identity.UserID,
			ShopID:     shop.ID,
			Rating:     req.Rating,
			Comment:    req.Comment,
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		// Full rescan, not incremental: the mean is exactly the mean of
		// what is in the table.
		var reviews []models.Review
		if err := tx.Where("shop_id = ?", shop.ID).Find(&reviews).Error; err != nil {
			return err
		}

		total := 0
		for _, r := range reviews {
			total += r.Rating
		}

		return tx.Model(&shop).
			Update("rating", float64(total)/float64(len(reviews))).Error
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, review, "Review created successfully and shop rating updated")
}

func (h *ReviewHandler) GetAllShopReviews(c *gin.Context) {
	shopID, ok := paramID(c, "shopId", "Invalid shop ID")
	if !ok {
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.NotFound(c, "Shop not found")
		return
	}

	var reviews []models.Review
	if err := h.db.Preload("Customer").
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "Something went wrong")
		return
	}

	httpresp.OK(c, reviews, "Shop reviews fetched successfully")
}

func (h *ReviewHandler) GetOwnerShopReviews(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var shop models.Shop
	if err := h.db.Where("owner_id = ?", identity.UserID).First(&shop).Error; err != nil {
		httperr.NotFound(c, "Shop not found or you do not own any shop")
		return
	}

	var reviews []models.Review
	if err := h.db.Preload("Customer").
		Where("shop_id = ?", shop.ID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "Something went wrong")
		return
	}

	httpresp.OK(c, reviews, "Shop reviews fetched successfully")
}
