package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
)

type CheckAvailabilityInput struct {
	BarberID    string
	StartTime   time.Time
	DurationMin int
}

type CheckAvailability struct {
	checker *AvailabilityChecker
}

func NewCheckAvailability(checker *AvailabilityChecker) *CheckAvailability {
	return &CheckAvailability{checker: checker}
}

// Execute is read-only. Duration is not range-checked here: a degenerate
// duration simply reports the slot as available.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	in CheckAvailabilityInput,
) (bool, error) {

	barberID, err := domain.ParseID("barber_id", in.BarberID)
	if err != nil {
		return false, err
	}
	if in.StartTime.IsZero() {
		return false, httperr.ErrValidation("start_time", "is required")
	}

	ok, err := uc.checker.IsAvailable(ctx, barberID, in.StartTime.UTC(), in.DurationMin)
	if err != nil {
		return false, err
	}

	metrics.RecordAvailabilityCheck(ok)
	return ok, nil
}
