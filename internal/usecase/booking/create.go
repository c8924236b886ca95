package booking

import (
	"context"
	"time"

	"github.com/garagehub/garagehub-api/internal/audit"
	"github.com/garagehub/garagehub-api/internal/clock"
	domain "github.com/garagehub/garagehub-api/internal/domain/booking"
	"github.com/garagehub/garagehub-api/internal/httperr"
	"github.com/garagehub/garagehub-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerID uint
	ShopID     uint

	Service       string
	AppointmentAt time.Time
	Notes         string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock clock.Clock
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clk clock.Clock,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		clock: clk,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if !models.IsValidService(in.Service) {
		return nil, httperr.ErrValidation("Unknown service category")
	}

	if err := domain.ValidateAppointment(in.AppointmentAt, uc.clock.Now()); err != nil {
		return nil, err
	}

	shop, err := uc.repo.GetShopByID(ctx, in.ShopID)
	if err != nil {
		return nil, httperr.ErrValidation("Select the shop to get service")
	}

	customer, err := uc.repo.GetUserByID(ctx, in.CustomerID)
	if err != nil {
		return nil, httperr.ErrUnauthorized("Unauthorized request")
	}

	// A booking snapshots both sides of the visit, so every reference
	// must resolve up front.
	if customer.AddressID == nil || customer.PaymentID == nil || shop.AddressID == nil {
		return nil, httperr.ErrValidation("Invalid customer or shop information")
	}

	b := &models.Booking{
		CustomerID:        in.CustomerID,
		ShopID:            shop.ID,
		Service:           in.Service,
		Status:            string(domain.InitialStatus()),
		CustomerAddressID: *customer.AddressID,
		ShopAddressID:     *shop.AddressID,
		PaymentID:         customer.PaymentID,
		AppointmentAt:     in.AppointmentAt,
		Notes:             in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   shop.ID,
		UserID:   &in.CustomerID,
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
