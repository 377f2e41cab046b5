package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:30;not null" json:"customer_phone"`

	BarberID    uuid.UUID `gorm:"type:uuid;index;not null" json:"barber_id"`
	ServiceName string    `gorm:"size:100;not null" json:"service_name"`

	StartTime   time.Time `gorm:"not null;index" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`
	DurationMin int       `gorm:"not null" json:"duration_min"`

	Notes  *string `gorm:"size:255" json:"notes"`
	Status string  `gorm:"size:20;not null;default:'booked';index" json:"status"`

	CreatedAt time.Time  `gorm:"index" json:"-"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
