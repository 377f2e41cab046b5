package appointment

import "github.com/BruksfildServices01/barber-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCanceled  Status = "canceled"
	StatusCompleted Status = "completed"
)

// ===============================
// Business error codes
// ===============================

const (
	CodeSlotUnavailable = "slot_unavailable"
	CodeNotFound        = "appointment_not_found"
	CodeInvalidState    = "invalid_state"
)

var (
	ErrSlotUnavailable = httperr.ErrBusiness(CodeSlotUnavailable)
	ErrNotFound        = httperr.ErrBusiness(CodeNotFound)
	ErrInvalidState    = httperr.ErrBusiness(CodeInvalidState)
)

// ===============================
// Validations
// ===============================

// CanCancel reports whether an appointment in the current status may be canceled.
func CanCancel(current Status) error {
	if current != StatusBooked {
		return ErrInvalidState
	}
	return nil
}

// CanComplete reports whether an appointment in the current status may be completed.
func CanComplete(current Status) error {
	if current != StatusBooked {
		return ErrInvalidState
	}
	return nil
}

func InitialStatus() Status {
	return StatusBooked
}
