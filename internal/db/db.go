package db

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// noOverlapSQL keeps live appointments of one barber from overlapping even
// when two instances race past the application-level check.
const noOverlapSQL = `
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'appointments_no_overlap'
	) THEN
		ALTER TABLE appointments
		ADD CONSTRAINT appointments_no_overlap
		EXCLUDE USING gist (
			barber_id WITH =,
			tstzrange(start_time, end_time, '[)') WITH &&
		) WHERE (status <> 'canceled');
	END IF;
END $$;
`

// NewDB opens the configured SQL backend and migrates it. DB_DRIVER=memory
// has no database and must not reach here.
func NewDB(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time { return time.Now().UTC() },
	}

	var (
		db  *gorm.DB
		err error
	)

	switch cfg.DBDriver {
	case config.DriverPostgres:
		gcfg.PrepareStmt = true
		db, err = gorm.Open(postgres.Open(cfg.DBUrl), gcfg)
	case config.DriverSQLite:
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gcfg)
	default:
		return nil, fmt.Errorf("db: driver %q has no SQL backend", cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("db: connect %s: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db: get sql.DB: %w", err)
	}

	if cfg.DBDriver == config.DriverSQLite {
		// one writer; also keeps ":memory:" databases on a single connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	if err := Migrate(db, log); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB, log *slog.Logger) error {
	if err := db.AutoMigrate(
		&models.Barber{},
		&models.Service{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("db: migrate: %w", err)
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	// Without btree_gist the constraint cannot be created; the barber lock
	// still serializes creates within the deployment.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Warn("btree_gist unavailable, overlap constraint skipped", slog.Any("err", err))
		return nil
	}
	if err := db.Exec(noOverlapSQL).Error; err != nil {
		log.Warn("overlap constraint not installed", slog.Any("err", err))
	}
	return nil
}

// Tables lists at most limit table names, for diagnostics.
func Tables(db *gorm.DB, limit int) ([]string, error) {
	tables, err := db.Migrator().GetTables()
	if err != nil {
		return nil, err
	}
	if len(tables) > limit {
		tables = tables[:limit]
	}
	return tables, nil
}
