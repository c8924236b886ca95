package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/garagehub/garagehub-api/internal/authz"
	domain "github.com/garagehub/garagehub-api/internal/domain/booking"
	"github.com/garagehub/garagehub-api/internal/httperr"
	"github.com/garagehub/garagehub-api/internal/httpresp"
	"github.com/garagehub/garagehub-api/internal/logger"
	"github.com/garagehub/garagehub-api/internal/middleware"
	"github.com/garagehub/garagehub-api/internal/models"
	"github.com/garagehub/garagehub-api/internal/storage"
	ucBooking "github.com/garagehub/garagehub-api/internal/usecase/booking"
	"github.com/garagehub/garagehub-api/internal/validators"
)

type ShopHandler struct {
	db         *gorm.DB
	images     storage.ImageStore
	shopOrders *ucBooking.ListShopOrders
}

func NewShopHandler(db *gorm.DB, images storage.ImageStore, shopOrders *ucBooking.ListShopOrders) *ShopHandler {
	return &ShopHandler{db: db, images: images, shopOrders: shopOrders}
}

// Create registers the owner's single shop from a multipart form. The
// shop address is created alongside and linked in the same transaction.
func (h *ShopHandler) Create(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	if !identity.IsShopOwner() {
		httperr.Forbidden(c, "Only shop owners can create a shop")
		return
	}

	shopName := c.PostForm("shopName")
	street := c.PostForm("street")
	area := c.PostForm("area")
	city := c.PostForm("city")
	province := c.PostForm("province")
	services := c.PostForm("servicesOffered")
	workers := c.PostForm("numberOfWorkers")
	openTime := c.PostForm("openTime")
	closeTime := c.PostForm("closeTime")

	if validators.AnyBlank(shopName, street, area, city, province, services, workers, openTime, closeTime) {
		httperr.BadRequest(c, "All shop details are required and cannot be empty")
		return
	}

	numberOfWorkers, err := strconv.Atoi(workers)
	if err != nil || numberOfWorkers <= 0 {
		httperr.BadRequest(c, "Number of workers must be a positive number")
		return
	}

	var count int64
	h.db.Model(&models.Shop{}).Where("owner_id = ?", identity.UserID).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "You already own a shop. You can only open one shop")
		return
	}

	h.db.Model(&models.Shop{}).Where("name = ?", shopName).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "Shop with this name already exists")
		return
	}

	var imageURL string
	if staged, ok := middleware.StagedFile(c); ok {
		imageURL, err = h.images.UploadImage(c.Request.Context(), staged)
		if err != nil {
			logger.L().Errorf("shop image upload failed: %v", err)
			httperr.Internal(c, "Failed to upload image")
			return
		}
		removeStaged(staged)
	}

	var shop models.Shop
	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		address := models.Address{
			Street:   street,
			Area:     area,
			City:     city,
			Province: province,
		}
		if err := tx.Create(&address).Error; err != nil {
			return err
		}

		shop = models.Shop{
			OwnerID:         identity.UserID,
			Name:            shopName,
			AddressID:       &address.ID,
			ImageURL:        imageURL,
			ServicesOffered: splitServices(services),
			NumberOfWorkers: numberOfWorkers,
			OpenTime:        openTime,
			CloseTime:       closeTime,
		}
		return tx.Create(&shop).Error
	})
	if err != nil {
		httperr.Internal(c, "Something went wrong while creating the shop")
		return
	}

	httpresp.Created(c, shop, "Shop created successfully")
}

func (h *ShopHandler) Delete(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	shopID, ok := paramID(c, "id", "Invalid shop id")
	if !ok {
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.NotFound(c, "Shop not found")
		return
	}

	if err := authz.RequireOwner(identity.UserID, shop.OwnerID, "You are not authorized to delete this shop"); err != nil {
		httperr.From(c, err)
		return
	}

	if err := h.db.Delete(&shop).Error; err != nil {
		httperr.Internal(c, "Something went wrong")
		return
	}

	httpresp.OK(c, nil, "Shop deleted successfully")
}

func (h *ShopHandler) ViewDetails(c *gin.Context) {
	shopID, ok := paramID(c, "id", "Invalid shop id")
	if !ok {
		return
	}

	var shop models.Shop
	if err := h.db.Preload("Address").First(&shop, shopID).Error; err != nil {
		httperr.NotFound(c, "Shop not found")
		return
	}

	httpresp.OK(c, shop, "Shop details retrieved successfully")
}

type UpdateShopInfoRequest struct {
	ShopName        string   `json:"shopName"`
	ServicesOffered []string `json:"servicesOffered"`
	NumberOfWorkers *int     `json:"numberOfWorkers"`
	OpenTime        string   `json:"openTime"`
	CloseTime       string   `json:"closeTime"`
}

func (h *ShopHandler) UpdateInfo(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	shopID, ok := paramID(c, "id", "Invalid shop id")
	if !ok {
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.NotFound(c, "Shop not found")
		return
	}

	if err := authz.RequireOwner(identity.UserID, shop.OwnerID, "You are not authorized to update this shop"); err != nil {
		httperr.From(c, err)
		return
	}

	var req UpdateShopInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	if req.ShopName != "" {
		shop.Name = req.ShopName
	}
	if len(req.ServicesOffered) > 0 {
		shop.ServicesOffered = req.ServicesOffered
	}
	if req.NumberOfWorkers != nil {
		if *req.NumberOfWorkers <= 0 {
			httperr.BadRequest(c, "Number of workers must be a positive number")
			return
		}
		shop.NumberOfWorkers = *req.NumberOfWorkers
	}
	if req.OpenTime != "" {
		shop.OpenTime = req.OpenTime
	}
	if req.CloseTime != "" {
		shop.CloseTime = req.CloseTime
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "Something went wrong")
		return
	}

	httpresp.OK(c, shop, "Shop updated successfully")
}

func (h *ShopHandler) UpdateAddress(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	shopID, ok := paramID(c, "id", "Invalid shop id")
	if !ok {
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Fields cannot contain empty values")
		return
	}

	if validators.AnyBlank(req.Street, req.Area, req.City, req.Province) {
		httperr.BadRequest(c, "Fields cannot contain empty values")
		return
	}

	var shop models.Shop
	if err := h.db.Preload("Address").First(&shop, shopID).Error; err != nil {
		httperr.NotFound(c, "Shop not found")
		return
	}

	if err := authz.RequireOwner(identity.UserID, shop.OwnerID, "You are not authorized to update this shop address"); err != nil {
		httperr.From(c, err)
		return
	}

	if shop.Address == nil {
		httperr.NotFound(c, "Shop address not found")
		return
	}

	shop.Address.Street = req.Street
	shop.Address.Area = req.Area
	shop.Address.City = req.City
	shop.Address.Province = req.Province

	if err := h.db.Save(shop.Address).Error; err != nil {
		httperr.Internal(c, "Something went wrong")
		return
	}

	httpresp.OK(c, shop.Address, "Shop address updated successfully")
}

func (h *ShopHandler) UpdateImage(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	shopID, ok := paramID(c, "id", "Invalid shop ID")
	if !ok {
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.NotFound(c, "Shop not found")
		return
	}

	if err := authz.RequireOwner(identity.UserID, shop.OwnerID, "You are not authorized to update this shop"); err != nil {
		httperr.From(c, err)
		return
	}

	staged, ok := middleware.StagedFile(c)
	if !ok {
		httperr.BadRequest(c, "Shop image is required")
		return
	}

	imageURL, err := h.images.UploadImage(c.Request.Context(), staged)
	if err != nil {
		logger.L().Errorf("shop image upload failed: %v", err)
		httperr.Internal(c, "Failed to upload image")
		return
	}
	removeStaged(staged)

	oldImage := shop.ImageURL
	if err := h.db.Model(&shop).Update("image_url", imageURL).Error; err != nil {
		httperr.Internal(c, "Something went wrong")
		return
	}

	if oldImage != "" {
		if err := h.images.DeleteImage(c.Request.Context(), oldImage); err != nil {
			logger.L().Warnf("failed to delete previous shop image: %v", err)
		}
	}

	httpresp.OK(c, shop, "Shop image updated successfully")
}

func (h *ShopHandler) CompletedOrders(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	orders, err := h.shopOrders.Execute(c.Request.Context(), identity.UserID, []string{
		string(domain.StatusCompleted),
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, orders, "Completed orders fetched successfully")
}

func (h *ShopHandler) CompletedAndCancelledOrders(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	orders, err := h.shopOrders.Execute(c.Request.Context(), identity.UserID, []string{
		string(domain.StatusCompleted),
		string(domain.StatusCancelled),
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, orders, "Completed and cancelled orders fetched successfully")
}

func splitServices(raw string) []string {
	parts := strings.Split(raw, ",")
	services := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			services = append(services, s)
		}
	}
	return services
}
