package dto

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BarberDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	AvatarURL *string   `json:"avatar_url"`
	Bio       *string   `json:"bio"`
}

type ServiceDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	DurationMin int       `json:"duration_min"`
	Price       float64   `json:"price"`
}

func FromBarber(b models.Barber) BarberDTO {
	return BarberDTO{
		ID:        b.ID,
		Name:      b.Name,
		AvatarURL: b.AvatarURL,
		Bio:       b.Bio,
	}
}

func FromService(s models.Service) ServiceDTO {
	return ServiceDTO{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		DurationMin: s.DurationMin,
		Price:       s.Price,
	}
}
