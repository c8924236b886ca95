package booking

import (
	"context"

	"github.com/garagehub/garagehub-api/internal/audit"
	"github.com/garagehub/garagehub-api/internal/authz"
	domain "github.com/garagehub/garagehub-api/internal/domain/booking"
	"github.com/garagehub/garagehub-api/internal/httperr"
	"github.com/garagehub/garagehub-api/internal/models"
)

type CompleteRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteRequest {
	return &CompleteRequest{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteRequest) Execute(
	ctx context.Context,
	ownerID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrNotFound("Booking not found")
	}

	shop, err := uc.repo.GetShopByID(ctx, b.ShopID)
	if err != nil {
		return nil, httperr.ErrNotFound("Shop not found")
	}

	if err := authz.RequireOwner(ownerID, shop.OwnerID, "You are not authorized to complete this request"); err != nil {
		return nil, err
	}

	if err := domain.Complete(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   shop.ID,
		UserID:   &ownerID,
		Action:   audit.ActionBookingCompleted,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
