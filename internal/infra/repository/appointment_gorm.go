package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AppointmentGormRepository struct {
	db     *gorm.DB
	tracer trace.Tracer
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{
		db:     db,
		tracer: otel.Tracer("barber-booking/repository"),
	}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *AppointmentGormRepository) Insert(
	ctx context.Context,
	ap *models.Appointment,
) error {
	ctx, span := r.tracer.Start(ctx, "appointments.insert",
		trace.WithAttributes(attribute.String("barber.id", ap.BarberID.String())),
	)
	defer span.End()

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if httperr.IsExclusionConflict(err) {
			return domain.ErrSlotUnavailable
		}
		span.RecordError(err)
		return storeErr("insert appointment", err)
	}
	return nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *AppointmentGormRepository) FindByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {
	ctx, span := r.tracer.Start(ctx, "appointments.find_by_id")
	defer span.End()

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecordNotFound
		}
		span.RecordError(err)
		return nil, storeErr("find appointment", err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) Find(
	ctx context.Context,
	filter domain.ByBarberAndStatus,
) ([]models.Appointment, error) {
	ctx, span := r.tracer.Start(ctx, "appointments.find")
	defer span.End()

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if filter.BarberID != uuid.Nil {
		q = q.Where("barber_id = ?", filter.BarberID)
	}
	if filter.ExcludeStatus != "" {
		q = q.Where("status <> ?", string(filter.ExcludeStatus))
	}
	if filter.Window != nil {
		q = q.Where(
			"start_time < ? AND end_time > ?",
			filter.Window.End.UTC(),
			filter.Window.Start.UTC(),
		)
	}

	apps := []models.Appointment{}
	if err := q.
		Order("created_at ASC").
		Find(&apps).Error; err != nil {
		span.RecordError(err)
		return nil, storeErr("list appointments", err)
	}

	return apps, nil
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *AppointmentGormRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	from domain.Status,
	to domain.Status,
	at time.Time,
) (int64, error) {
	ctx, span := r.tracer.Start(ctx, "appointments.update_status",
		trace.WithAttributes(attribute.String("status.to", string(to))),
	)
	defer span.End()

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": at.UTC(),
		})
	if res.Error != nil {
		span.RecordError(res.Error)
		return 0, storeErr("update appointment status", res.Error)
	}

	return res.RowsAffected, nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, httperr.ErrStoreUnavailable, err)
}

// Compile-time check
var _ domain.Store = (*AppointmentGormRepository)(nil)
