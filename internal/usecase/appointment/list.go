package appointment

import (
	"context"
	"errors"
	"strings"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ListAppointments struct {
	store domain.Store
}

func NewListAppointments(store domain.Store) *ListAppointments {
	return &ListAppointments{store: store}
}

// Execute lists appointments in insertion order, every record masked. An
// empty barber filter lists all barbers.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	rawBarberID string,
) ([]dto.AppointmentDTO, error) {

	var filter domain.ByBarberAndStatus
	if strings.TrimSpace(rawBarberID) != "" {
		barberID, err := domain.ParseID("barber_id", rawBarberID)
		if err != nil {
			return nil, err
		}
		filter.BarberID = barberID
	}

	apps, err := uc.store.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.MaskedList(apps), nil
}

type GetAppointment struct {
	store domain.Store
}

func NewGetAppointment(store domain.Store) *GetAppointment {
	return &GetAppointment{store: store}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	rawID string,
) (*models.Appointment, error) {

	id, err := domain.ParseID("id", rawID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return ap, nil
}
