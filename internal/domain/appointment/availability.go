package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const (
	MinDurationMin = 5
	MaxDurationMin = 240
)

// Column sizes of the appointments table.
const (
	MaxCustomerNameLen  = 100
	MaxCustomerPhoneLen = 30
	MaxServiceNameLen   = 100
	MaxNotesLen         = 255
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start time.Time, durationMin int) Interval {
	return Interval{Start: start, End: EndTime(start, durationMin)}
}

// Empty reports a zero-length or inverted interval.
func (iv Interval) Empty() bool {
	return !iv.Start.Before(iv.End)
}

// Overlaps is the single conflict predicate shared by the availability check
// and the create path. Touching intervals do not overlap, and an empty
// interval overlaps nothing.
func Overlaps(a, b Interval) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// FirstConflict returns the first appointment in existing whose interval
// overlaps candidate, ignoring canceled ones.
func FirstConflict(candidate Interval, existing []models.Appointment) *models.Appointment {
	for i := range existing {
		ap := &existing[i]
		if Status(ap.Status) == StatusCanceled {
			continue
		}
		if Overlaps(Interval{Start: ap.StartTime, End: ap.EndTime}, candidate) {
			return ap
		}
	}
	return nil
}

func ValidDuration(durationMin int) bool {
	return durationMin >= MinDurationMin && durationMin <= MaxDurationMin
}
