package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Barber struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name      string  `gorm:"size:100;not null;index" json:"name"`
	AvatarURL *string `gorm:"size:255" json:"avatar_url"`
	Bio       *string `gorm:"size:255" json:"bio"`

	CreatedAt time.Time `json:"-"`
}

func (b *Barber) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
