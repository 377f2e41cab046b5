// Package lock serializes work keyed by an identifier. The appointment
// create path holds the barber's key across its check-then-write.
package lock

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type Unlock func()

type Locker interface {
	// Lock blocks until key is held or ctx is done.
	Lock(ctx context.Context, key string) (Unlock, error)
}

func BarberKey(barberID string) string {
	return "barber-booking:lock:barber:" + barberID
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", httperr.ErrLockUnavailable, err)
}
