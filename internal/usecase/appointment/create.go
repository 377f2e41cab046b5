package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/lock"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerName  string
	CustomerPhone string
	BarberID      string
	ServiceName   string
	StartTime     time.Time
	DurationMin   int
	Notes         *string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	store   domain.Store
	checker *AvailabilityChecker
	locker  lock.Locker
	audit   *audit.Dispatcher
}

func NewCreateAppointment(
	store domain.Store,
	checker *AvailabilityChecker,
	locker lock.Locker,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		store:   store,
		checker: checker,
		locker:  locker,
		audit:   audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Input
	// --------------------------------------------------
	if err := validators.First(
		validators.Text("customer_name", in.CustomerName, domain.MaxCustomerNameLen),
		validators.Text("customer_phone", in.CustomerPhone, domain.MaxCustomerPhoneLen),
		validators.Text("service_name", in.ServiceName, domain.MaxServiceNameLen),
		validators.OptionalText("notes", in.Notes, domain.MaxNotesLen),
		validators.IntRange("duration_min", in.DurationMin, domain.MinDurationMin, domain.MaxDurationMin),
	); err != nil {
		return nil, err
	}

	barberID, err := domain.ParseID("barber_id", in.BarberID)
	if err != nil {
		return nil, err
	}
	if in.StartTime.IsZero() {
		return nil, httperr.ErrValidation("start_time", "is required")
	}

	iv := domain.NewInterval(in.StartTime.UTC(), in.DurationMin)

	ctx, span := tracer.Start(ctx, "appointment.create",
		trace.WithAttributes(
			attribute.String("barber.id", barberID.String()),
			attribute.Int("duration_min", in.DurationMin),
		),
	)
	defer span.End()

	// --------------------------------------------------
	// Barber lock: held across check and write
	// --------------------------------------------------
	waitStart := time.Now()
	unlock, err := uc.locker.Lock(ctx, lock.BarberKey(barberID.String()))
	metrics.LockWait.Observe(time.Since(waitStart).Seconds())
	if err != nil {
		metrics.RecordError("lock", "unavailable")
		span.RecordError(err)
		return nil, err
	}
	defer unlock()

	// --------------------------------------------------
	// Conflict
	// --------------------------------------------------
	conflict, err := uc.checker.Conflict(ctx, barberID, iv)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		metrics.RecordSlotConflict("checker")
		uc.dispatchConflict(barberID, iv, &conflict.ID)
		return nil, domain.ErrSlotUnavailable
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	ap := &models.Appointment{
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		BarberID:      barberID,
		ServiceName:   in.ServiceName,
		StartTime:     iv.Start,
		EndTime:       iv.End,
		DurationMin:   in.DurationMin,
		Notes:         in.Notes,
		Status:        string(domain.InitialStatus()),
	}

	if err := uc.store.Insert(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrSlotUnavailable) {
			metrics.RecordSlotConflict("store")
			uc.dispatchConflict(barberID, iv, nil)
		}
		return nil, err
	}

	// --------------------------------------------------
	// Audit
	// --------------------------------------------------
	metrics.AppointmentsCreated.Inc()
	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentCreated,
		Entity:   audit.EntityAppointment,
		EntityID: &ap.ID,
		BarberID: &barberID,
		Metadata: map[string]any{
			"start_time":   ap.StartTime,
			"end_time":     ap.EndTime,
			"service_name": ap.ServiceName,
		},
	})

	return ap, nil
}

func (uc *CreateAppointment) dispatchConflict(
	barberID uuid.UUID,
	iv domain.Interval,
	conflictingID *uuid.UUID,
) {
	meta := map[string]any{
		"start_time": iv.Start,
		"end_time":   iv.End,
	}
	if conflictingID != nil {
		meta["conflicting_id"] = conflictingID.String()
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentConflict,
		Entity:   audit.EntityAppointment,
		BarberID: &barberID,
		Metadata: meta,
	})
}
