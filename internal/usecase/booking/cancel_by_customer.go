package booking

import (
	"context"

	"github.com/garagehub/garagehub-api/internal/audit"
	"github.com/garagehub/garagehub-api/internal/authz"
	"github.com/garagehub/garagehub-api/internal/clock"
	domain "github.com/garagehub/garagehub-api/internal/domain/booking"
	"github.com/garagehub/garagehub-api/internal/httperr"
	"github.com/garagehub/garagehub-api/internal/models"
)

type CancelByCustomer struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock clock.Clock
}

func NewCancelByCustomer(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clk clock.Clock,
) *CancelByCustomer {
	return &CancelByCustomer{
		repo:  repo,
		audit: audit,
		clock: clk,
	}
}

func (uc *CancelByCustomer) Execute(
	ctx context.Context,
	customerID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrNotFound("Booking not found")
	}

	if err := authz.RequireOwner(customerID, b.CustomerID, "You can only cancel your own bookings"); err != nil {
		return nil, err
	}

	if err := domain.CancelByCustomer(b, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   b.ShopID,
		UserID:   &customerID,
		Action:   audit.ActionBookingCancelledByUser,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
