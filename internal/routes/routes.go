package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/garagehub/garagehub-api/internal/audit"
	"github.com/garagehub/garagehub-api/internal/clock"
	"github.com/garagehub/garagehub-api/internal/config"
	"github.com/garagehub/garagehub-api/internal/handlers"
	infraRepo "github.com/garagehub/garagehub-api/internal/infra/repository"
	"github.com/garagehub/garagehub-api/internal/middleware"
	"github.com/garagehub/garagehub-api/internal/session"
	"github.com/garagehub/garagehub-api/internal/storage"
	ucBooking "github.com/garagehub/garagehub-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, sessions *session.Store, images storage.ImageStore) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	clk := clock.System()

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher, clk)
	cancelByCustomerUC := ucBooking.NewCancelByCustomer(bookingRepo, auditDispatcher, clk)
	acceptRequestUC := ucBooking.NewAcceptRequest(bookingRepo, auditDispatcher)
	cancelByOwnerUC := ucBooking.NewCancelByOwner(bookingRepo, auditDispatcher, clk)
	completeRequestUC := ucBooking.NewCompleteRequest(bookingRepo, auditDispatcher)
	historyUC := ucBooking.NewListCustomerHistory(bookingRepo)
	shopOrdersUC := ucBooking.NewListShopOrders(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, sessions, images)
	userHandler := handlers.NewUserHandler(db, images)
	addressHandler := handlers.NewAddressHandler(db)
	paymentHandler := handlers.NewPaymentHandler(db)
	shopHandler := handlers.NewShopHandler(db, images, shopOrdersUC)
	reviewHandler := handlers.NewReviewHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelByCustomerUC,
		acceptRequestUC,
		cancelByOwnerUC,
		completeRequestUC,
		historyUC,
	)

	authGate := middleware.AuthMiddleware(cfg, sessions)
	stageImage := middleware.Upload("image", cfg.UploadTempDir)
	stageShopImage := middleware.Upload("shopImage", cfg.UploadTempDir)

	api := r.Group("/api/v1")
	{
		// ------------------------------
		// USERS
		// ------------------------------
		users := api.Group("/users")
		{
			users.POST("/register", stageImage, authHandler.Register)
			users.POST("/login", authHandler.Login)
			users.POST("/refresh-token", authHandler.RefreshToken)

			users.GET("/logout", authGate, authHandler.Logout)
			users.GET("/user/userprofile", authGate, userHandler.Profile)
			users.POST("/user/changecurrentpassword", authGate, userHandler.ChangePassword)
			users.POST("/user/updateprofile", authGate, userHandler.UpdateProfile)
			users.POST("/user/updateprofilepicture", authGate, stageImage, userHandler.UpdateProfilePicture)
		}

		// ------------------------------
		// ADDRESS
		// ------------------------------
		address := api.Group("/address")
		{
			address.POST("/user/update-address", authGate, addressHandler.Upsert)
			address.DELETE("/:addressId/delete", authGate, addressHandler.Delete)
		}

		// ------------------------------
		// PAYMENT
		// ------------------------------
		payment := api.Group("/payment")
		{
			payment.POST("/update-payment", authGate, paymentHandler.Upsert)
			payment.DELETE("/:paymentId/delete-payment", authGate, paymentHandler.Delete)
		}

		// ------------------------------
		// SHOP
		// ------------------------------
		shop := api.Group("/shop")
		{
			shop.POST("/createshop", authGate, stageShopImage, shopHandler.Create)
			shop.DELETE("/:id/deleteshop", authGate, shopHandler.Delete)
			shop.GET("/:id/view-shop-details", shopHandler.ViewDetails)
			shop.PATCH("/:id/update-shop-info", authGate, shopHandler.UpdateInfo)
			shop.PATCH("/:id/update-shop-address", authGate, shopHandler.UpdateAddress)
			shop.POST("/:id/update-shop-image", authGate, stageShopImage, shopHandler.UpdateImage)
			shop.GET("/shop/completed-orders", authGate, shopHandler.CompletedOrders)
			shop.GET("/shop/all-orders", authGate, shopHandler.CompletedAndCancelledOrders)

			shop.POST("/:id/accept-customer-request", authGate, bookingHandler.AcceptRequest)
			shop.POST("/:id/cancel-customer-request", authGate, bookingHandler.CancelRequest)
			shop.POST("/:id/complete-customer-request", authGate, bookingHandler.CompleteRequest)
		}

		// ------------------------------
		// BOOKING
		// ------------------------------
		booking := api.Group("/booking")
		{
			booking.POST("/:id/bookservice", authGate, bookingHandler.BookService)
			booking.DELETE("/:id/cancelservice", authGate, bookingHandler.CancelService)
			booking.GET("/user/bookinghistory", authGate, bookingHandler.History)
		}

		// ------------------------------
		// REVIEW
		// ------------------------------
		review := api.Group("/review")
		{
			review.POST("/create-review", authGate, reviewHandler.Create)
			review.GET("/:shopId/get-all-reviews", authGate, reviewHandler.GetAllShopReviews)
			review.GET("/get-owner-shop-reviews", authGate, reviewHandler.GetOwnerShopReviews)
		}
	}
}
