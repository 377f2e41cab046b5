package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/infra/lock"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
	"github.com/BruksfildServices01/barber-booking/internal/seed"
	"github.com/BruksfildServices01/barber-booking/internal/tracing"
)

func main() {
	log := newLogger("info")
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}

	log = newLogger(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting",
		slog.String("addr", cfg.Addr()),
		slog.String("db_driver", cfg.DBDriver),
		slog.String("lock_backend", cfg.LockBackend),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, cfg.OTLPEndpoint, log)
	if err != nil {
		log.Error("tracing setup failed", slog.Any("err", err))
		os.Exit(1)
	}

	// ======================================================
	// STORAGE
	// ======================================================
	var (
		db           *gorm.DB
		appointments domain.Store
		catalogStore catalog.Store
		auditStore   audit.Store
	)

	if cfg.DBDriver == config.DriverMemory {
		mem := infraRepo.NewMemoryStore()
		appointments, catalogStore, auditStore = mem, mem, mem
	} else {
		log.Info("connecting to database", databaseLogArgs(cfg)...)
		db, err = dbpkg.NewDB(cfg, log)
		if err != nil {
			log.Error("database connection failed", slog.Any("err", err))
			os.Exit(1)
		}
		appointments = infraRepo.NewAppointmentGormRepository(db)
		catalogStore = infraRepo.NewCatalogGormRepository(db)
		auditStore = infraRepo.NewAuditGormRepository(db)
	}

	// ======================================================
	// BARBER LOCK
	// ======================================================
	var locker lock.Locker = lock.NewLocal()
	if cfg.LockBackend == config.LockRedis {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Error("invalid REDIS_URL", slog.Any("err", err))
			os.Exit(1)
		}
		client := redis.NewClient(opts)
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = client.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Error("redis unreachable", slog.Any("err", err))
			os.Exit(1)
		}
		locker = lock.NewRedis(client, cfg.LockTTL, log)
	}

	auditDispatcher := audit.NewDispatcher(audit.New(auditStore), log)

	// ======================================================
	// SEED
	// ======================================================
	if cfg.SeedOnStart {
		seedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		err := seed.Run(seedCtx, catalogStore, log)
		cancel()
		if err != nil {
			log.Error("seed failed", slog.Any("err", err))
			os.Exit(1)
		}
	}

	// ======================================================
	// HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:       cfg,
		DB:           db,
		Appointments: appointments,
		Catalog:      catalogStore,
		Locker:       locker,
		Audit:        auditDispatcher,
		Log:          log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.Info("server running", slog.String("addr", cfg.Addr()))

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped with error", slog.Any("err", err))
			os.Exit(1)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http graceful shutdown timed out", slog.Any("err", err))
	}
	if err := auditDispatcher.Close(shutdownCtx); err != nil {
		log.Warn("audit queue not drained", slog.Any("err", err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("tracing shutdown failed", slog.Any("err", err))
	}
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	log.Info("stopped")
}

func newLogger(level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(level)})).With(
		slog.String("service", tracing.ServiceName),
	)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// databaseLogArgs never logs credentials.
func databaseLogArgs(cfg *config.Config) []any {
	if cfg.DBDriver == config.DriverSQLite {
		return []any{slog.String("db_driver", cfg.DBDriver), slog.String("db_path", cfg.SQLitePath)}
	}

	u, err := url.Parse(cfg.DBUrl)
	if err != nil {
		return []any{slog.String("db_driver", cfg.DBDriver), slog.String("db_url", "invalid")}
	}
	return []any{
		slog.String("db_driver", cfg.DBDriver),
		slog.String("db_host", u.Host),
		slog.String("db_name", strings.TrimPrefix(u.Path, "/")),
	}
}
