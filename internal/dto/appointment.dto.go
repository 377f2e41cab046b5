package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/privacy"
)

type AppointmentDTO struct {
	ID            uuid.UUID  `json:"id"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	BarberID      uuid.UUID  `json:"barber_id"`
	ServiceName   string     `json:"service_name"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       time.Time  `json:"end_time"`
	DurationMin   int        `json:"duration_min"`
	Notes         *string    `json:"notes"`
	Status        string     `json:"status"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// FromAppointment is the full record, returned to whoever created or
// canceled it.
func FromAppointment(ap models.Appointment) AppointmentDTO {
	out := AppointmentDTO{
		ID:            ap.ID,
		CustomerName:  ap.CustomerName,
		CustomerPhone: ap.CustomerPhone,
		BarberID:      ap.BarberID,
		ServiceName:   ap.ServiceName,
		StartTime:     ap.StartTime.UTC(),
		EndTime:       ap.EndTime.UTC(),
		DurationMin:   ap.DurationMin,
		Notes:         ap.Notes,
		Status:        ap.Status,
	}
	if ap.UpdatedAt != nil {
		u := ap.UpdatedAt.UTC()
		out.UpdatedAt = &u
	}
	return out
}

// MaskedFromAppointment is the public listing shape: name and phone masked,
// notes always null.
func MaskedFromAppointment(ap models.Appointment) AppointmentDTO {
	out := FromAppointment(ap)
	out.CustomerName = privacy.MaskName(ap.CustomerName)
	out.CustomerPhone = privacy.MaskPhone(ap.CustomerPhone)
	out.Notes = nil
	return out
}

func MaskedList(apps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, MaskedFromAppointment(ap))
	}
	return out
}
