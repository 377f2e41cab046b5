package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AuditGormRepository struct {
	db *gorm.DB
}

func NewAuditGormRepository(db *gorm.DB) *AuditGormRepository {
	return &AuditGormRepository{db: db}
}

func (r *AuditGormRepository) SaveAuditLog(ctx context.Context, l *models.AuditLog) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return storeErr("save audit log", err)
	}
	return nil
}

var _ audit.Store = (*AuditGormRepository)(nil)
