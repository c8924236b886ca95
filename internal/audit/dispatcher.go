package audit

import "github.com/garagehub/garagehub-api/internal/logger"

// Booking lifecycle actions. Auto vs manual owner cancellation is the
// only place the distinction is recorded; the booking status itself is
// Cancelled either way.
const (
	ActionBookingCreated          = "booking_created"
	ActionBookingAccepted         = "booking_accepted"
	ActionBookingCompleted        = "booking_completed"
	ActionBookingCancelledByUser  = "booking_cancelled_by_customer"
	ActionBookingCancelledByOwner = "booking_cancelled_by_owner"
	ActionBookingAutoCancelled    = "booking_auto_cancelled"
)

type Event struct {
	ShopID   uint
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	writer *Logger
	queue  chan Event
}

func NewDispatcher(writer *Logger) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.writer.Log(
			ev.ShopID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logger.L().Errorf("audit error: %v", err)
		}
	}
}

// Dispatch never blocks the request path; a full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		logger.L().Warn("audit queue full, dropping event")
	}
}
