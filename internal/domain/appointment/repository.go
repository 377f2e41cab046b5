package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ErrRecordNotFound is returned by stores when a lookup by ID finds nothing.
var ErrRecordNotFound = errors.New("record not found")

// ByBarberAndStatus selects appointments of one barber. Zero fields are not
// applied; Window keeps only appointments overlapping it.
type ByBarberAndStatus struct {
	BarberID      uuid.UUID
	ExcludeStatus Status
	Window        *Interval
}

type Store interface {
	// -------- create --------
	Insert(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- read --------
	FindByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	Find(
		ctx context.Context,
		filter ByBarberAndStatus,
	) ([]models.Appointment, error)

	// -------- state change --------

	// UpdateStatus moves an appointment from one status to another and
	// returns the number of modified records.
	UpdateStatus(
		ctx context.Context,
		id uuid.UUID,
		from Status,
		to Status,
		at time.Time,
	) (int64, error)
}
