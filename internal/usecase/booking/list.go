package booking

import (
	"context"

	domain "github.com/garagehub/garagehub-api/internal/domain/booking"
	"github.com/garagehub/garagehub-api/internal/httperr"
	"github.com/garagehub/garagehub-api/internal/models"
)

// ListCustomerHistory returns every booking the customer ever made,
// with shop and snapshot addresses populated.
type ListCustomerHistory struct {
	repo domain.Repository
}

func NewListCustomerHistory(repo domain.Repository) *ListCustomerHistory {
	return &ListCustomerHistory{repo: repo}
}

func (uc *ListCustomerHistory) Execute(
	ctx context.Context,
	customerID uint,
) ([]models.Booking, error) {
	return uc.repo.ListBookingsForCustomer(ctx, customerID)
}

// ListShopOrders resolves the acting owner's shop and returns its
// bookings filtered by status.
type ListShopOrders struct {
	repo domain.Repository
}

func NewListShopOrders(repo domain.Repository) *ListShopOrders {
	return &ListShopOrders{repo: repo}
}

func (uc *ListShopOrders) Execute(
	ctx context.Context,
	ownerID uint,
	statuses []string,
) ([]models.Booking, error) {

	shop, err := uc.repo.GetShopByOwner(ctx, ownerID)
	if err != nil {
		return nil, httperr.ErrNotFound("Shop not found for this owner")
	}

	return uc.repo.ListBookingsForShop(ctx, shop.ID, statuses)
}
