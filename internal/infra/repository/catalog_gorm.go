package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *CatalogGormRepository) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	barbers := []models.Barber{}
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&barbers).Error; err != nil {
		return nil, storeErr("list barbers", err)
	}
	return barbers, nil
}

func (r *CatalogGormRepository) CreateBarber(ctx context.Context, b *models.Barber) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return storeErr("create barber", err)
	}
	return nil
}

func (r *CatalogGormRepository) GetBarber(ctx context.Context, id uuid.UUID) (*models.Barber, error) {
	var b models.Barber
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrRecordNotFound
		}
		return nil, storeErr("get barber", err)
	}
	return &b, nil
}

func (r *CatalogGormRepository) CountBarbersByName(ctx context.Context, name string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Barber{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return 0, storeErr("count barbers", err)
	}
	return count, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *CatalogGormRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	services := []models.Service{}
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&services).Error; err != nil {
		return nil, storeErr("list services", err)
	}
	return services, nil
}

func (r *CatalogGormRepository) CreateService(ctx context.Context, s *models.Service) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return storeErr("create service", err)
	}
	return nil
}

func (r *CatalogGormRepository) GetService(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrRecordNotFound
		}
		return nil, storeErr("get service", err)
	}
	return &s, nil
}

func (r *CatalogGormRepository) FindServiceByName(ctx context.Context, name string) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("created_at ASC").
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrRecordNotFound
		}
		return nil, storeErr("find service", err)
	}
	return &s, nil
}

func (r *CatalogGormRepository) UpdateServicePricing(
	ctx context.Context,
	id uuid.UUID,
	price float64,
	durationMin int,
) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"price":        price,
			"duration_min": durationMin,
		}).Error; err != nil {
		return storeErr("update service pricing", err)
	}
	return nil
}

var _ catalog.Store = (*CatalogGormRepository)(nil)
