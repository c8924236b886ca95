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

type CancelByOwner struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock clock.Clock
}

func NewCancelByOwner(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clk clock.Clock,
) *CancelByOwner {
	return &CancelByOwner{
		repo:  repo,
		audit: audit,
		clock: clk,
	}
}

// Execute cancels a request on the owner's behalf. The second return
// value reports whether the response window had already lapsed, i.e.
// the cancellation is bookkept as automatic rather than manual.
func (uc *CancelByOwner) Execute(
	ctx context.Context,
	ownerID uint,
	bookingID uint,
) (*models.Booking, bool, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, false, httperr.ErrNotFound("Booking not found")
	}

	shop, err := uc.repo.GetShopByID(ctx, b.ShopID)
	if err != nil {
		return nil, false, httperr.ErrNotFound("Shop not found")
	}

	if err := authz.RequireOwner(ownerID, shop.OwnerID, "You are not authorized to cancel this booking"); err != nil {
		return nil, false, err
	}

	auto, err := domain.CancelByOwner(b, uc.clock.Now())
	if err != nil {
		return nil, false, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, false, err
	}

	action := audit.ActionBookingCancelledByOwner
	if auto {
		action = audit.ActionBookingAutoCancelled
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   shop.ID,
		UserID:   &ownerID,
		Action:   action,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, auto, nil
}
