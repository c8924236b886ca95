package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/garagehub/garagehub-api/internal/httperr"
	"github.com/garagehub/garagehub-api/internal/httpresp"
	ucBooking "github.com/garagehub/garagehub-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create      *ucBooking.CreateBooking
	cancel      *ucBooking.CancelByCustomer
	accept      *ucBooking.AcceptRequest
	ownerCancel *ucBooking.CancelByOwner
	complete    *ucBooking.CompleteRequest
	history     *ucBooking.ListCustomerHistory
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	cancel *ucBooking.CancelByCustomer,
	accept *ucBooking.AcceptRequest,
	ownerCancel *ucBooking.CancelByOwner,
	complete *ucBooking.CompleteRequest,
	history *ucBooking.ListCustomerHistory,
) *BookingHandler {
	return &BookingHandler{
		create:      create,
		cancel:      cancel,
		accept:      accept,
		ownerCancel: ownerCancel,
		complete:    complete,
		history:     history,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookServiceRequest struct {
	Service         string `json:"service" binding:"required"`
	AppointmentDate string `json:"appointmentDate" binding:"required"`
	Notes           string `json:"notes"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *BookingHandler) BookService(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	shopID, ok := paramID(c, "id", "Select the shop to get service")
	if !ok {
		return
	}

	var req BookServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "All fields are required")
		return
	}

	appointmentAt, err := time.Parse(time.RFC3339, req.AppointmentDate)
	if err != nil {
		httperr.BadRequest(c, "Appointment date must be an RFC3339 timestamp")
		return
	}

	booking, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerID:    identity.UserID,
		ShopID:        shopID,
		Service:       req.Service,
		AppointmentAt: appointmentAt,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, booking, "Service booked successfully")
}

func (h *BookingHandler) CancelService(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	bookingID, ok := paramID(c, "id", "Invalid booking id")
	if !ok {
		return
	}

	booking, err := h.cancel.Execute(c.Request.Context(), identity.UserID, bookingID)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, booking, "Booking cancelled successfully")
}

func (h *BookingHandler) History(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	bookings, err := h.history.Execute(c.Request.Context(), identity.UserID)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, bookings, "Booking history retrieved successfully")
}

// --------- Owner side ---------

func (h *BookingHandler) AcceptRequest(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	bookingID, ok := paramID(c, "id", "Invalid booking id")
	if !ok {
		return
	}

	booking, err := h.accept.Execute(c.Request.Context(), identity.UserID, bookingID)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, booking, "Customer request accepted")
}

func (h *BookingHandler) CancelRequest(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	bookingID, ok := paramID(c, "id", "Invalid booking ID")
	if !ok {
		return
	}

	booking, auto, err := h.ownerCancel.Execute(c.Request.Context(), identity.UserID, bookingID)
	if err != nil {
		httperr.From(c, err)
		return
	}

	message := "Booking cancelled successfully by shop owner"
	if auto {
		message = "Booking has been automatically cancelled due to no response"
	}

	httpresp.OK(c, booking, message)
}

func (h *BookingHandler) CompleteRequest(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	bookingID, ok := paramID(c, "id", "Invalid booking id")
	if !ok {
		return
	}

	booking, err := h.complete.Execute(c.Request.Context(), identity.UserID, bookingID)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, booking, "Customer request completed")
}
