package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Contains(t, cfg.DBUrl, "barber_db")
	assert.Equal(t, LockLocal, cfg.LockBackend)
	assert.Equal(t, 10*time.Second, cfg.LockTTL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.True(t, cfg.SeedOnStart)
	assert.Empty(t, cfg.OTLPEndpoint)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("LOCK_BACKEND", "redis")
	t.Setenv("LOCK_TTL", "3s")
	t.Setenv("SEED_ON_START", "false")
	t.Setenv("RATE_LIMIT_RPS", "0.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/x.db", cfg.SQLitePath)
	assert.Equal(t, LockRedis, cfg.LockBackend)
	assert.Equal(t, 3*time.Second, cfg.LockTTL)
	assert.False(t, cfg.SeedOnStart)
	assert.Equal(t, 0.5, cfg.RateLimitRPS)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"driver":   {"DB_DRIVER", "mongo"},
		"lock":     {"LOCK_BACKEND", "etcd"},
		"timeout":  {"REQUEST_TIMEOUT", "soon"},
		"negative": {"SHUTDOWN_TIMEOUT", "-1s"},
	}

	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
