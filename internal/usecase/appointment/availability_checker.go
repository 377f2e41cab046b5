package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var tracer = otel.Tracer("barber-booking/usecase/appointment")

// AvailabilityChecker answers whether a barber is free for an interval. The
// check endpoint and the create path share one instance so both apply the
// same overlap rule.
type AvailabilityChecker struct {
	store domain.Store
}

func NewAvailabilityChecker(store domain.Store) *AvailabilityChecker {
	return &AvailabilityChecker{store: store}
}

func (c *AvailabilityChecker) IsAvailable(
	ctx context.Context,
	barberID uuid.UUID,
	start time.Time,
	durationMin int,
) (bool, error) {
	conflict, err := c.Conflict(ctx, barberID, domain.NewInterval(start, durationMin))
	if err != nil {
		return false, err
	}
	return conflict == nil, nil
}

// Conflict returns the first non-canceled appointment of the barber that
// overlaps iv, or nil. An empty or inverted interval overlaps nothing.
func (c *AvailabilityChecker) Conflict(
	ctx context.Context,
	barberID uuid.UUID,
	iv domain.Interval,
) (*models.Appointment, error) {
	ctx, span := tracer.Start(ctx, "availability.conflict",
		trace.WithAttributes(attribute.String("barber.id", barberID.String())),
	)
	defer span.End()

	existing, err := c.store.Find(ctx, domain.ByBarberAndStatus{
		BarberID:      barberID,
		ExcludeStatus: domain.StatusCanceled,
		Window:        &iv,
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	conflict := domain.FirstConflict(iv, existing)
	span.SetAttributes(attribute.Bool("available", conflict == nil))
	return conflict, nil
}
