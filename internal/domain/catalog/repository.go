package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ErrRecordNotFound is returned by lookups that match nothing.
var ErrRecordNotFound = errors.New("record not found")

const (
	MinServiceDuration = 5
	MaxServiceDuration = 240
)

// Store holds barbers and services. Both collections are append-only apart
// from the pricing correction applied by the seed.
type Store interface {
	// -------- Barber --------
	ListBarbers(ctx context.Context) ([]models.Barber, error)
	CreateBarber(ctx context.Context, b *models.Barber) error
	GetBarber(ctx context.Context, id uuid.UUID) (*models.Barber, error)
	CountBarbersByName(ctx context.Context, name string) (int64, error)

	// -------- Service --------
	ListServices(ctx context.Context) ([]models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
	GetService(ctx context.Context, id uuid.UUID) (*models.Service, error)
	FindServiceByName(ctx context.Context, name string) (*models.Service, error)
	UpdateServicePricing(ctx context.Context, id uuid.UUID, price float64, durationMin int) error
}
