package booking

import (
	"time"

	"github.com/garagehub/garagehub-api/internal/httperr"
	"github.com/garagehub/garagehub-api/internal/models"
)

const (
	// CustomerCancelWindow is how long after creation the requesting
	// customer may still back out.
	CustomerCancelWindow = 5 * time.Minute

	// OwnerResponseWindow is the grace period the owner has to respond
	// before a cancellation counts as automatic.
	OwnerResponseWindow = 2 * time.Minute
)

// ===============================
// Domain Actions
// ===============================

// ValidateAppointment rejects appointment instants that are not
// strictly in the future.
func ValidateAppointment(appointmentAt, now time.Time) error {
	if !appointmentAt.After(now) {
		return httperr.ErrValidation("Appointment date must be a future date")
	}
	return nil
}

// CancelByCustomer transitions to Cancelled when invoked inside the
// customer window. The current status is not re-checked; a repeat
// cancel lands on the same terminal state.
func CancelByCustomer(b *models.Booking, now time.Time) error {
	if now.Sub(b.CreatedAt) > CustomerCancelWindow {
		return httperr.ErrValidation("You can only cancel within 5 minutes of booking")
	}
	b.Status = string(StatusCancelled)
	return nil
}

// Accept moves a pending request to Accepted.
func Accept(b *models.Booking) error {
	if err := CanAccept(Status(b.Status)); err != nil {
		return err
	}
	b.Status = string(StatusAccepted)
	return nil
}

// CancelByOwner transitions to Cancelled unless the request was already
// accepted. The returned flag reports whether the owner response window
// had lapsed, which the caller records as an automatic cancellation.
func CancelByOwner(b *models.Booking, now time.Time) (auto bool, err error) {
	if err := CanCancelByOwner(Status(b.Status)); err != nil {
		return false, err
	}
	auto = now.Sub(b.CreatedAt) > OwnerResponseWindow
	b.Status = string(StatusCancelled)
	return auto, nil
}

// Complete closes out an accepted request.
func Complete(b *models.Booking) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}
	b.Status = string(StatusCompleted)
	return nil
}
