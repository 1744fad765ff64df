package postgres

import (
	"fmt"
	"time"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/adapters/out/postgres/trackerrepo"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	// DriverPgx selects the pgx stdlib driver bundled with gorm's postgres dialector.
	DriverPgx = "pgx"
	// DriverLibPq selects github.com/lib/pq.
	DriverLibPq = "postgres"
)

// Options configures Open.
type Options struct {
	DSN             string
	Driver          string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to PostgreSQL with the requested database/sql driver. An
// empty driver means pgx.
func Open(opts Options) (*gorm.DB, error) {
	cfg := gormpostgres.Config{DSN: opts.DSN}

	switch opts.Driver {
	case "", DriverPgx:
	case DriverLibPq:
		cfg.DriverName = DriverLibPq
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}

	db, err := gorm.Open(gormpostgres.New(cfg), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	return db, nil
}

// Migrate creates or updates the tracker schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&trackerrepo.TrackerDTO{})
}
