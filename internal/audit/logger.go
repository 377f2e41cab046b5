package audit

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Store interface {
	SaveAuditLog(ctx context.Context, l *models.AuditLog) error
}

type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(
	ctx context.Context,
	action string,
	entity string,
	entityID *uuid.UUID,
	barberID *uuid.UUID,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		BarberID: barberID,
		Metadata: metaJSON,
	}

	return l.store.SaveAuditLog(ctx, &entry)
}
