package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/garagehub/garagehub-api/internal/models"
)

type reviewFixture struct {
	db       *gorm.DB
	customer *models.User
	owner    *models.User
	shop     *models.Shop
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()

	db := setupHandlerDB(t)
	return &reviewFixture{
		db:       db,
		customer: seedUser(t, db, "cust@example.com", "cust", models.RoleCustomer, "secret123"),
		owner:    seedUser(t, db, "owner@example.com", "owner", models.RoleShopOwner, "secret123"),
	}
}

func (f *reviewFixture) withShop(t *testing.T) *reviewFixture {
	t.Helper()
	f.shop = seedShop(t, f.db, f.owner, "Karachi Autos")
	return f
}

func (f *reviewFixture) seedCompletedBooking(t *testing.T, customer *models.User) *models.Booking {
	t.Helper()

	addr := models.Address{Street: "1 A St", Area: "B", City: "C", Province: "D"}
	require.NoError(t, f.db.Create(&addr).Error)

	b := &models.Booking{
		CustomerID:        customer.ID,
		ShopID:            f.shop.ID,
		Service:           models.ServiceTirePuncture,
		Status:            "Completed",
		CustomerAddressID: addr.ID,
		ShopAddressID:     *f.shop.AddressID,
		AppointmentAt:     time.Now().Add(-time.Hour),
	}
	require.NoError(t, f.db.Create(b).Error)
	return b
}

func (f *reviewFixture) router(actor *models.User) *gin.Engine {
	h := NewReviewHandler(f.db)

	r := gin.New()
	r.POST("/create-review", asUser(actor), h.Create)
	r.GET("/:shopId/get-all-reviews", asUser(actor), h.GetAllShopReviews)
	r.GET("/get-owner-shop-reviews", asUser(actor), h.GetOwnerShopReviews)
	return r
}

func TestCreateReviewUpdatesShopRating(t *testing.T) {
	f := newReviewFixture(t).withShop(t)
	b := f.seedCompletedBooking(t, f.customer)
	r := f.router(f.customer)

	w := doJSON(t, r, http.MethodPost, "/create-review", gin.H{
		"bookingId": b.ID, "rating": 4, "comment": "quick fix",
	})
	env := requireStatus(t, w, http.StatusCreated)
	assert.Equal(t, "Review created successfully and shop rating updated", env.Message)

	var shop models.Shop
	require.NoError(t, f.db.First(&shop, f.shop.ID).Error)
	assert.InDelta(t, 4.0, shop.Rating, 0.001)
}

func TestCreateReviewMeanOverAllReviews(t *testing.T) {
	f := newReviewFixture(t).withShop(t)
	other := seedUser(t, f.db, "other@example.com", "other", models.RoleCustomer, "secret123")

	b1 := f.seedCompletedBooking(t, f.customer)
	b2 := f.seedCompletedBooking(t, other)

	w := doJSON(t, f.router(f.customer), http.MethodPost, "/create-review", gin.H{
		"bookingId": b1.ID, "rating": 5,
	})
	requireStatus(t, w, http.StatusCreated)

	w = doJSON(t, f.router(other), http.MethodPost, "/create-review", gin.H{
		"bookingId": b2.ID, "rating": 2,
	})
	requireStatus(t, w, http.StatusCreated)

	var shop models.Shop
	require.NoError(t, f.db.First(&shop, f.shop.ID).Error)
	assert.InDelta(t, 3.5, shop.Rating, 0.001)
}

func TestCreateReviewDuplicate(t *testing.T) {
	f := newReviewFixture(t).withShop(t)
	b := f.seedCompletedBooking(t, f.customer)
	r := f.router(f.customer)

	requireStatus(t, doJSON(t, r, http.MethodPost, "/create-review", gin.H{
		"bookingId": b.ID, "rating": 4,
	}), http.StatusCreated)

	w := doJSON(t, r, http.MethodPost, "/create-review", gin.H{
		"bookingId": b.ID, "rating": 5,
	})
	env := requireStatus(t, w, http.StatusConflict)
	assert.Equal(t, "You have already reviewed this booking", env.Message)
}

func TestCreateReviewRatingOutOfRange(t *testing.T) {
	f := newReviewFixture(t).withShop(t)
	b := f.seedCompletedBooking(t, f.customer)
	r := f.router(f.customer)

	for _, rating := range []int{0, 6, -1} {
		w := doJSON(t, r, http.MethodPost, "/create-review", gin.H{
			"bookingId": b.ID, "rating": rating,
		})
		requireStatus(t, w, http.StatusBadRequest)
	}
}

func TestCreateReviewBookingNotCompleted(t *testing.T) {
	f := newReviewFixture(t).withShop(t)
	b := f.seedCompletedBooking(t, f.customer)
	require.NoError(t, f.db.Model(b).Update("status", "Pending").Error)

	w := doJSON(t, f.router(f.customer), http.MethodPost, "/create-review", gin.H{
		"bookingId": b.ID, "rating": 4,
	})
	env := requireStatus(t, w, http.StatusNotFound)
	assert.Equal(t, "Booking not found or not completed", env.Message)
}

func TestCreateReviewSomeoneElsesBooking(t *testing.T) {
	f := newReviewFixture(t).withShop(t)
	b := f.seedCompletedBooking(t, f.customer)

	other := seedUser(t, f.db, "other@example.com", "other", models.RoleCustomer, "secret123")
	w := doJSON(t, f.router(other), http.MethodPost, "/create-review", gin.H{
		"bookingId": b.ID, "rating": 4,
	})
	requireStatus(t, w, http.StatusNotFound)
}

func TestGetAllShopReviews(t *testing.T) {
	f := newReviewFixture(t).withShop(t)
	b := f.seedCompletedBooking(t, f.customer)
	r := f.router(f.customer)

	requireStatus(t, doJSON(t, r, http.MethodPost, "/create-review", gin.H{
		"bookingId": b.ID, "rating": 4, "comment": "quick fix",
	}), http.StatusCreated)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/%d/get-all-reviews", f.shop.ID), nil)
	env := requireStatus(t, w, http.StatusOK)
	assert.Contains(t, string(env.Data), "quick fix")
}

func TestGetAllShopReviewsUnknownShop(t *testing.T) {
	f := newReviewFixture(t)
	w := doJSON(t, f.router(f.customer), http.MethodGet, "/999/get-all-reviews", nil)
	requireStatus(t, w, http.StatusNotFound)
}

func TestGetOwnerShopReviews(t *testing.T) {
	f := newReviewFixture(t).withShop(t)
	b := f.seedCompletedBooking(t, f.customer)

	requireStatus(t, doJSON(t, f.router(f.customer), http.MethodPost, "/create-review", gin.H{
		"bookingId": b.ID, "rating": 4,
	}), http.StatusCreated)

	w := doJSON(t, f.router(f.owner), http.MethodGet, "/get-owner-shop-reviews", nil)
	requireStatus(t, w, http.StatusOK)
}

func TestGetOwnerShopReviewsNoShop(t *testing.T) {
	f := newReviewFixture(t)
	w := doJSON(t, f.router(f.owner), http.MethodGet, "/get-owner-shop-reviews", nil)
	env := requireStatus(t, w, http.StatusNotFound)
	assert.Equal(t, "Shop not found or you do not own any shop", env.Message)
}
