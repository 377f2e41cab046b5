// Package seed installs the default barbers and services. Run is safe to
// call on every start.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const defaultBio = "Pro barber"

var DefaultBarbers = []string{"John Fade", "Lisa Shear", "Mike Lineup"}

var DefaultServices = []models.Service{
	{Name: "Haircut", DurationMin: 30, Price: 18.0},
	{Name: "Beard Trim", DurationMin: 15, Price: 15.0},
	{Name: "Haircut + Beard", DurationMin: 45, Price: 35.0},
}

// repricedService always converges to its default price and duration,
// even when it already exists.
const repricedService = "Haircut"

func Run(ctx context.Context, store catalog.Store, log *slog.Logger) error {
	for _, name := range DefaultBarbers {
		n, err := store.CountBarbersByName(ctx, name)
		if err != nil {
			return fmt.Errorf("seed barber %q: %w", name, err)
		}
		if n > 0 {
			continue
		}

		bio := defaultBio
		if err := store.CreateBarber(ctx, &models.Barber{Name: name, Bio: &bio}); err != nil {
			return fmt.Errorf("seed barber %q: %w", name, err)
		}
		log.Info("seeded barber", slog.String("name", name))
	}

	for _, def := range DefaultServices {
		existing, err := store.FindServiceByName(ctx, def.Name)
		switch {
		case errors.Is(err, catalog.ErrRecordNotFound):
			s := def
			if err := store.CreateService(ctx, &s); err != nil {
				return fmt.Errorf("seed service %q: %w", def.Name, err)
			}
			log.Info("seeded service", slog.String("name", def.Name))

		case err != nil:
			return fmt.Errorf("seed service %q: %w", def.Name, err)

		case def.Name == repricedService &&
			(existing.Price != def.Price || existing.DurationMin != def.DurationMin):
			if err := store.UpdateServicePricing(ctx, existing.ID, def.Price, def.DurationMin); err != nil {
				return fmt.Errorf("reprice service %q: %w", def.Name, err)
			}
			log.Info("repriced service",
				slog.String("name", def.Name),
				slog.Float64("price", def.Price),
				slog.Int("duration_min", def.DurationMin),
			)
		}
	}

	return nil
}
