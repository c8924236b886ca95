package booking

import (
	"context"

	"github.com/garagehub/garagehub-api/internal/models"
)

type Repository interface {
	// -------- Shop --------
	GetShopByID(
		ctx context.Context,
		id uint,
	) (*models.Shop, error)

	GetShopByOwner(
		ctx context.Context,
		ownerID uint,
	) (*models.Shop, error)

	// -------- User --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Booking --------
	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Booking, error)

	ListBookingsForShop(
		ctx context.Context,
		shopID uint,
		statuses []string,
	) ([]models.Booking, error)
}
