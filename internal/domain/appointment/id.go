package appointment

import (
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// ParseID turns a path or query value into an identifier, rejecting malformed
// values with a validation error before they reach the store.
func ParseID(field, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, httperr.ErrValidation(field, "is required")
	}

	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, httperr.ErrValidation(field, "is not a valid identifier")
	}
	return id, nil
}
