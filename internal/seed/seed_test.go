package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRun_Idempotent(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, Run(ctx, store, discard))
	require.NoError(t, Run(ctx, store, discard))

	barbers, err := store.ListBarbers(ctx)
	require.NoError(t, err)
	require.Len(t, barbers, 3)
	for i, b := range barbers {
		assert.Equal(t, DefaultBarbers[i], b.Name)
		require.NotNil(t, b.Bio)
		assert.Equal(t, "Pro barber", *b.Bio)
	}

	services, err := store.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 3)
}

func TestRun_RepricesExistingHaircut(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.CreateService(ctx, &models.Service{Name: "Haircut", DurationMin: 25, Price: 12}))
	require.NoError(t, store.CreateService(ctx, &models.Service{Name: "Beard Trim", DurationMin: 20, Price: 9}))

	require.NoError(t, Run(ctx, store, discard))

	haircut, err := store.FindServiceByName(ctx, "Haircut")
	require.NoError(t, err)
	assert.Equal(t, 18.0, haircut.Price)
	assert.Equal(t, 30, haircut.DurationMin)

	// only Haircut is corrected
	beard, err := store.FindServiceByName(ctx, "Beard Trim")
	require.NoError(t, err)
	assert.Equal(t, 9.0, beard.Price)

	services, err := store.ListServices(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 3)
}
