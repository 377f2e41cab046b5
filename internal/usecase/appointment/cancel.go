package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type CancelAppointment struct {
	store domain.Store
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCancelAppointment(
	store domain.Store,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		store: store,
		audit: audit,
		now:   timezone.Now,
	}
}

// Execute cancels a booked appointment. Canceling an already canceled one
// returns it unchanged; a completed one is an invalid_state error.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	rawID string,
) (*models.Appointment, error) {

	id, err := domain.ParseID("id", rawID)
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "appointment.cancel")
	defer span.End()

	ap, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if domain.Status(ap.Status) == domain.StatusCanceled {
		return ap, nil
	}

	now := uc.now()
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	n, err := uc.store.UpdateStatus(ctx, id, domain.StatusBooked, domain.StatusCanceled, now)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	updated, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}

	// Lost a race with another status change.
	if n == 0 {
		if domain.Status(updated.Status) == domain.StatusCanceled {
			return updated, nil
		}
		return nil, domain.ErrInvalidState
	}

	metrics.AppointmentsCanceled.Inc()
	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentCanceled,
		Entity:   audit.EntityAppointment,
		EntityID: &updated.ID,
		BarberID: &updated.BarberID,
	})

	return updated, nil
}

func (uc *CancelAppointment) find(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	ap, err := uc.store.FindByID(ctx, id)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return ap, err
}
