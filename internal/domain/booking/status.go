package booking

import "github.com/garagehub/garagehub-api/internal/httperr"

type Status string

const (
	StatusPending    Status = "Pending"
	StatusAccepted   Status = "Accepted"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

// CanAccept gates the owner-accept transition: only a pending request
// can be accepted, a repeat accept fails.
func CanAccept(current Status) error {
	if current != StatusPending {
		return httperr.ErrValidation("Request cannot be accepted as it's not pending")
	}
	return nil
}

// CanCancelByOwner rejects cancelling an already-accepted request
// regardless of elapsed time.
func CanCancelByOwner(current Status) error {
	if current == StatusAccepted {
		return httperr.ErrValidation("Cannot cancel an accepted booking")
	}
	return nil
}

// CanComplete allows the owner to close out an accepted request.
func CanComplete(current Status) error {
	if current != StatusAccepted {
		return httperr.ErrValidation("Only an accepted booking can be completed")
	}
	return nil
}
